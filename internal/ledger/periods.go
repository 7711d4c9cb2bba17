package ledger

import (
	"time"

	"github.com/hance08/tankhah/internal/calendar"
	"github.com/hance08/tankhah/internal/constants"
	"github.com/hance08/tankhah/internal/model"
	"github.com/hance08/tankhah/internal/utils"
)

// WeeklyBucket holds one day of the trailing week, amounts in the coarse unit.
type WeeklyBucket struct {
	Date     calendar.Date
	Label    string
	Deposits int64
	Expenses int64
}

// WeeklyCategoryBucket holds one day of expenses split by category id, in the fine unit.
type WeeklyCategoryBucket struct {
	Date    calendar.Date
	Label   string
	Amounts map[string]int64
}

// MonthlyBucket holds the totals of one calendar month, amounts in the coarse unit.
type MonthlyBucket struct {
	Month    int // 0-11
	Name     string
	Deposits int64
	Expenses int64
}

type MonthDetail struct {
	Month        int
	Name         string
	Deposits     int64
	Expenses     int64
	Balance      int64
	Transactions []model.Transaction
	Categories   []CategoryTotal
}

// week returns the seven days ending today, oldest first.
func (a *Aggregator) week(now time.Time) ([]calendar.Date, map[calendar.Date]int) {
	today := calendar.Today(now, a.cal)
	days := make([]calendar.Date, constants.WeekDays)
	index := make(map[calendar.Date]int, constants.WeekDays)

	for i := range days {
		d := today.AddDays(i-(constants.WeekDays-1), a.cal)
		days[i] = d
		index[d] = i
	}
	return days, index
}

func (a *Aggregator) dayOf(tx model.Transaction, index map[calendar.Date]int) (int, bool) {
	d, err := calendar.Parse(tx.Date, a.cal)
	if err != nil {
		return 0, false
	}
	i, ok := index[d]
	return i, ok
}

// Weekly always returns seven buckets, even when no transaction falls in the window.
func (a *Aggregator) Weekly(txs []model.Transaction, now time.Time) []WeeklyBucket {
	days, index := a.week(now)

	deposits := make([]int64, len(days))
	expenses := make([]int64, len(days))
	for _, tx := range txs {
		i, ok := a.dayOf(tx, index)
		if !ok {
			continue
		}
		switch tx.Type {
		case model.TxDeposit:
			deposits[i] += tx.Amount
		case model.TxExpense:
			expenses[i] += tx.Amount
		}
	}

	out := make([]WeeklyBucket, len(days))
	for i, d := range days {
		out[i] = WeeklyBucket{
			Date:     d,
			Label:    a.loc.Weekday(d.Weekday(a.cal)),
			Deposits: utils.ToCoarse(deposits[i]),
			Expenses: utils.ToCoarse(expenses[i]),
		}
	}
	return out
}

func (a *Aggregator) WeeklyByCategory(txs []model.Transaction, now time.Time) []WeeklyCategoryBucket {
	days, index := a.week(now)

	out := make([]WeeklyCategoryBucket, len(days))
	for i, d := range days {
		out[i] = WeeklyCategoryBucket{
			Date:    d,
			Label:   a.loc.Weekday(d.Weekday(a.cal)),
			Amounts: make(map[string]int64),
		}
	}

	for _, tx := range txs {
		if !tx.IsExpense() || tx.Category == "" {
			continue
		}
		if i, ok := a.dayOf(tx, index); ok {
			out[i].Amounts[tx.Category] += tx.Amount
		}
	}
	return out
}

// Monthly returns twelve buckets in calendar order. The year of the date token is not
// looked at, so the same month of different years lands in one bucket.
func (a *Aggregator) Monthly(txs []model.Transaction) []MonthlyBucket {
	var deposits, expenses [constants.MonthsInYear]int64
	for _, tx := range txs {
		m, ok := calendar.MonthOf(tx.Date)
		if !ok {
			continue
		}
		switch tx.Type {
		case model.TxDeposit:
			deposits[m] += tx.Amount
		case model.TxExpense:
			expenses[m] += tx.Amount
		}
	}

	out := make([]MonthlyBucket, constants.MonthsInYear)
	for m := range out {
		out[m] = MonthlyBucket{
			Month:    m,
			Name:     a.loc.MonthName(a.cal, m),
			Deposits: utils.ToCoarse(deposits[m]),
			Expenses: utils.ToCoarse(expenses[m]),
		}
	}
	return out
}

// MonthDetail narrows the collection to one month (0-11, any year) and summarises it.
// Transactions keep the collection order.
func (a *Aggregator) MonthDetail(txs []model.Transaction, month int) MonthDetail {
	detail := MonthDetail{
		Month:        month,
		Name:         a.loc.MonthName(a.cal, month),
		Transactions: make([]model.Transaction, 0),
	}

	for _, tx := range txs {
		if m, ok := calendar.MonthOf(tx.Date); ok && m == month {
			detail.Transactions = append(detail.Transactions, tx)
		}
	}

	t := a.Totals(detail.Transactions)
	detail.Deposits = t.Deposits
	detail.Expenses = t.Expenses
	detail.Balance = t.Balance
	detail.Categories = a.categoryTotals(detail.Transactions)

	return detail
}
