package ledger

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/hance08/tankhah/internal/calendar"
	"github.com/hance08/tankhah/internal/locale"
	"github.com/hance08/tankhah/internal/model"
	"github.com/hance08/tankhah/internal/reference"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2024-03-23 is 1403/01/04, a Saturday.
var today = time.Date(2024, time.March, 23, 10, 0, 0, 0, time.UTC)

func newAggregator(code locale.Code) *Aggregator {
	return New(reference.Default(), calendar.Jalali, locale.MustGet(code))
}

func sample() []model.Transaction {
	return []model.Transaction{
		{ID: "1", Date: "1403/01/01", Amount: 50000000, Type: model.TxDeposit, BankAccount: "mellat_shahin", Description: "واریز اولیه"},
		{ID: "2", Date: "1403/01/02", Amount: 2500000, Type: model.TxExpense, BankAccount: "mellat_shahin", Description: "ناهار کارگران", Category: "lunch"},
		{ID: "3", Date: "1403/01/03", Amount: 15000000, Type: model.TxExpense, BankAccount: "saman_shahin", Description: "خرید لوازم یدکی", Category: "spare_parts"},
		{ID: "4", Date: "1403/01/04", Amount: 800000, Type: model.TxExpense, BankAccount: "mellat_elahah", Description: "قبض برق", Category: "bills"},
	}
}

func randomCollection(r *rand.Rand, n int) []model.Transaction {
	ref := reference.Default()
	accounts := ref.Accounts()
	categories := ref.Categories()

	txs := make([]model.Transaction, 0, n)
	for i := 0; i < n; i++ {
		tx := model.Transaction{
			ID:          fmt.Sprint(i),
			Date:        fmt.Sprintf("%d/%02d/%02d", 1402+r.Intn(2), 1+r.Intn(12), 1+r.Intn(29)),
			Amount:      int64(r.Intn(10_000_000)),
			BankAccount: accounts[r.Intn(len(accounts))].ID,
			Description: fmt.Sprintf("entry %d", i),
			Type:        model.TxDeposit,
		}
		if r.Intn(2) == 0 {
			tx.Type = model.TxExpense
			tx.Category = categories[r.Intn(len(categories))].ID
		}
		txs = append(txs, tx)
	}
	return txs
}

func TestSampleScenario(t *testing.T) {
	a := newAggregator(locale.English)
	txs := sample()[:2]

	totals := a.Totals(txs)
	assert.Equal(t, Totals{Deposits: 50000000, Expenses: 2500000, Balance: 47500000}, totals)

	balances := a.AccountBalances(txs)
	require.Len(t, balances, 3)
	assert.Equal(t, "mellat_shahin", balances[0].Account.ID)
	assert.Equal(t, int64(47500000), balances[0].Balance)
	assert.Zero(t, balances[1].Balance)
	assert.Zero(t, balances[2].Balance)

	cats := a.CategoryTotals(txs)
	require.Len(t, cats, 1)
	assert.Equal(t, "lunch", cats[0].Category.ID)
	assert.Equal(t, int64(2500000), cats[0].Amount)
}

func TestEmptyCollection(t *testing.T) {
	a := newAggregator(locale.English)

	assert.Equal(t, Totals{}, a.Totals(nil))
	for _, b := range a.AccountBalances(nil) {
		assert.Zero(t, b.Balance)
	}
	assert.Empty(t, a.CategoryTotals(nil))
	assert.Len(t, a.Weekly(nil, today), 7)
	assert.Len(t, a.WeeklyByCategory(nil, today), 7)
	assert.Len(t, a.Monthly(nil), 12)
	assert.Empty(t, a.Filter(nil, Query{}))
	assert.Empty(t, a.ExportRows(nil))
}

func TestAggregationProperties(t *testing.T) {
	a := newAggregator(locale.English)
	r := rand.New(rand.NewSource(42))

	for round := 0; round < 50; round++ {
		txs := randomCollection(r, r.Intn(40))

		totals := a.Totals(txs)
		require.Equal(t, totals.Deposits-totals.Expenses, totals.Balance)

		var accountSum int64
		for _, b := range a.AccountBalances(txs) {
			accountSum += b.Balance
		}
		require.Equal(t, totals.Balance, accountSum)

		var categorySum int64
		for _, c := range a.CategoryTotals(txs) {
			require.Positive(t, c.Amount)
			categorySum += c.Amount
		}
		require.Equal(t, totals.Expenses, categorySum)

		monthly := a.Monthly(txs)
		require.Len(t, monthly, 12)
		for m, b := range monthly {
			require.Equal(t, m, b.Month)
			require.GreaterOrEqual(t, b.Deposits, int64(0))
			require.GreaterOrEqual(t, b.Expenses, int64(0))
		}

		deposits := a.Filter(txs, Query{Type: FilterDeposit})
		expenses := a.Filter(txs, Query{Type: FilterExpense})
		require.Len(t, a.Filter(txs, Query{Type: FilterAll}), len(txs))
		require.Equal(t, len(txs), len(deposits)+len(expenses))

		seen := make(map[string]bool, len(txs))
		for _, tx := range append(deposits, expenses...) {
			require.False(t, seen[tx.ID], "transaction %s in both partitions", tx.ID)
			seen[tx.ID] = true
		}
	}
}

func TestWeekly(t *testing.T) {
	a := newAggregator(locale.English)
	weekly := a.Weekly(sample(), today)

	require.Len(t, weekly, 7)
	assert.Equal(t, calendar.Date{Year: 1402, Month: 12, Day: 27}, weekly[0].Date)
	assert.Equal(t, calendar.Date{Year: 1403, Month: 1, Day: 4}, weekly[6].Date)
	assert.Equal(t, "Sunday", weekly[0].Label)
	assert.Equal(t, "Wednesday", weekly[3].Label)
	assert.Equal(t, "Saturday", weekly[6].Label)

	for i := 0; i < 3; i++ {
		assert.Zero(t, weekly[i].Deposits)
		assert.Zero(t, weekly[i].Expenses)
	}
	assert.Equal(t, int64(5000000), weekly[3].Deposits)
	assert.Equal(t, int64(250000), weekly[4].Expenses)
	assert.Equal(t, int64(1500000), weekly[5].Expenses)
	assert.Equal(t, int64(80000), weekly[6].Expenses)

	for i := 1; i < len(weekly); i++ {
		assert.Equal(t, -1, calendar.Compare(weekly[i-1].Date, weekly[i].Date))
	}
}

func TestWeeklyOutsideWindow(t *testing.T) {
	a := newAggregator(locale.English)
	later := today.AddDate(0, 1, 0)

	for _, b := range a.Weekly(sample(), later) {
		assert.Zero(t, b.Deposits)
		assert.Zero(t, b.Expenses)
	}
}

func TestWeeklyByCategory(t *testing.T) {
	a := newAggregator(locale.English)
	txs := append(sample(), model.Transaction{
		ID: "5", Date: "1403/01/02", Amount: 1000, Type: model.TxExpense, BankAccount: "saman_shahin", Category: "lunch",
	})

	weekly := a.WeeklyByCategory(txs, today)
	require.Len(t, weekly, 7)
	assert.Empty(t, weekly[3].Amounts, "deposits are not part of this view")
	assert.Equal(t, map[string]int64{"lunch": 2501000}, weekly[4].Amounts)
	assert.Equal(t, map[string]int64{"spare_parts": 15000000}, weekly[5].Amounts)
	assert.Equal(t, map[string]int64{"bills": 800000}, weekly[6].Amounts)
}

func TestMonthly(t *testing.T) {
	a := newAggregator(locale.English)
	monthly := a.Monthly(sample())

	require.Len(t, monthly, 12)
	assert.Equal(t, "Farvardin", monthly[0].Name)
	assert.Equal(t, int64(5000000), monthly[0].Deposits)
	assert.Equal(t, int64(1830000), monthly[0].Expenses)
	for _, b := range monthly[1:] {
		assert.Zero(t, b.Deposits)
		assert.Zero(t, b.Expenses)
	}
}

// The monthly view does not filter on year: Khordad 1402 and Khordad 1403 share a bucket.
// Kept as is until the intended behaviour is settled.
func TestMonthlyAggregatesAcrossYears(t *testing.T) {
	a := newAggregator(locale.English)
	txs := []model.Transaction{
		{ID: "a", Date: "1402/03/05", Amount: 1000, Type: model.TxExpense, BankAccount: "mellat_shahin", Category: "misc"},
		{ID: "b", Date: "1403/03/10", Amount: 2000, Type: model.TxExpense, BankAccount: "mellat_shahin", Category: "misc"},
	}

	monthly := a.Monthly(txs)
	assert.Equal(t, int64(300), monthly[2].Expenses)

	detail := a.MonthDetail(txs, 2)
	assert.Equal(t, int64(3000), detail.Expenses)
	assert.Len(t, detail.Transactions, 2)
}

func TestMonthDetail(t *testing.T) {
	a := newAggregator(locale.English)
	txs := sample()

	detail := a.MonthDetail(txs, 0)
	assert.Equal(t, int64(50000000), detail.Deposits)
	assert.Equal(t, int64(18300000), detail.Expenses)
	assert.Equal(t, int64(31700000), detail.Balance)
	assert.Equal(t, txs, detail.Transactions)
	require.Len(t, detail.Categories, 3)
	assert.Equal(t, "lunch", detail.Categories[0].Category.ID)
	assert.Equal(t, "spare_parts", detail.Categories[1].Category.ID)
	assert.Equal(t, "bills", detail.Categories[2].Category.ID)
}

func TestMonthDetailEmptyMonth(t *testing.T) {
	a := newAggregator(locale.English)

	detail := a.MonthDetail(sample(), 5)
	assert.Equal(t, "Shahrivar", detail.Name)
	assert.Zero(t, detail.Deposits)
	assert.Zero(t, detail.Expenses)
	assert.NotNil(t, detail.Transactions)
	assert.Empty(t, detail.Transactions)
	assert.Empty(t, detail.Categories)

	detail = a.MonthDetail(sample(), 12)
	assert.Empty(t, detail.Transactions)
}

func TestUnparseableDates(t *testing.T) {
	a := newAggregator(locale.English)
	txs := append(sample(), model.Transaction{
		ID: "bad", Date: "someday", Amount: 70, Type: model.TxExpense, BankAccount: "mellat_shahin", Category: "misc",
	})

	assert.Equal(t, int64(18300070), a.Totals(txs).Expenses)
	assert.Equal(t, []string{"bad"}, a.Undated(txs))

	var monthly int64
	for _, b := range a.Monthly(txs) {
		monthly += b.Expenses
	}
	assert.Equal(t, int64(1830000), monthly)

	filtered := a.Filter(txs, Query{})
	require.Len(t, filtered, 5)
	assert.Equal(t, "bad", filtered[4].ID)
}

func TestFilter(t *testing.T) {
	txs := sample()

	t.Run("sorted newest first", func(t *testing.T) {
		got := newAggregator(locale.English).Filter(txs, Query{})
		ids := make([]string, len(got))
		for i, tx := range got {
			ids[i] = tx.ID
		}
		assert.Equal(t, []string{"4", "3", "2", "1"}, ids)
	})

	t.Run("description match", func(t *testing.T) {
		got := newAggregator(locale.Persian).Filter(txs, Query{Search: "ناهار"})
		require.Len(t, got, 1)
		assert.Equal(t, "2", got[0].ID)
	})

	t.Run("case insensitive", func(t *testing.T) {
		withLatin := append(sample(), model.Transaction{ID: "5", Date: "1403/01/05", Description: "Taxi Fare", Type: model.TxExpense, Category: "misc"})
		got := newAggregator(locale.English).Filter(withLatin, Query{Search: "taxi"})
		require.Len(t, got, 1)
		assert.Equal(t, "5", got[0].ID)
	})

	t.Run("formatted amount match", func(t *testing.T) {
		got := newAggregator(locale.Persian).Filter(txs, Query{Search: "۲۵۰٬۰۰۰"})
		require.Len(t, got, 1)
		assert.Equal(t, "2", got[0].ID)

		got = newAggregator(locale.English).Filter(txs, Query{Search: "1,500,000"})
		require.Len(t, got, 1)
		assert.Equal(t, "3", got[0].ID)
	})

	t.Run("type filter", func(t *testing.T) {
		got := newAggregator(locale.English).Filter(txs, Query{Type: FilterDeposit})
		require.Len(t, got, 1)
		assert.Equal(t, "1", got[0].ID)
	})

	t.Run("no match", func(t *testing.T) {
		got := newAggregator(locale.English).Filter(txs, Query{Search: "nothing like this"})
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("equal dates keep collection order", func(t *testing.T) {
		same := []model.Transaction{
			{ID: "x", Date: "1403/02/01", Type: model.TxDeposit},
			{ID: "y", Date: "1403/2/1", Type: model.TxDeposit},
			{ID: "z", Date: "1403/02/01", Type: model.TxDeposit},
		}
		got := newAggregator(locale.English).Filter(same, Query{})
		assert.Equal(t, "x", got[0].ID)
		assert.Equal(t, "y", got[1].ID)
		assert.Equal(t, "z", got[2].ID)
	})
}

func TestParseFilterType(t *testing.T) {
	f, err := ParseFilterType("")
	require.NoError(t, err)
	assert.Equal(t, FilterAll, f)

	f, err = ParseFilterType("Expense")
	require.NoError(t, err)
	assert.Equal(t, FilterExpense, f)

	_, err = ParseFilterType("transfer")
	assert.Error(t, err)
}

func TestExportRows(t *testing.T) {
	a := newAggregator(locale.Persian)
	txs := append(sample(), model.Transaction{
		ID: "5", Date: "1403/01/05", Amount: 15, Type: model.TxExpense, BankAccount: "closed", Category: "unknown", Description: "x",
	})

	rows := a.ExportRows(txs)
	require.Len(t, rows, 5)

	assert.Equal(t, ExportRow{
		Date:        "۱۴۰۳/۰۱/۰۱",
		Type:        "واریزی",
		Amount:      "۵۰۰۰۰۰۰",
		Account:     "بانک ملی - شاهین شبستری",
		Category:    "-",
		Description: "واریز اولیه",
	}, rows[0])
	assert.Equal(t, "هزینه", rows[1].Type)
	assert.Equal(t, "ناهار و عصرانه", rows[1].Category)

	assert.Equal(t, "-", rows[4].Account)
	assert.Equal(t, "-", rows[4].Category)
	assert.Equal(t, "۲", rows[4].Amount)
	assert.Len(t, rows[4].Record(), 6)
}
