// Package ledger derives every reporting view of the petty-cash book from a transaction
// list. All methods are pure: they read the slice they are given, never modify it and
// keep no state between calls, so callers recompute a view whenever the collection or a
// selection parameter changes.
//
// Amounts are in the fine unit unless a view says otherwise. Transactions whose date
// token cannot be parsed are left out of the date-bucketed views and still counted in the
// totals.
package ledger

import (
	"github.com/hance08/tankhah/internal/calendar"
	"github.com/hance08/tankhah/internal/locale"
	"github.com/hance08/tankhah/internal/model"
	"github.com/hance08/tankhah/internal/reference"
)

type Aggregator struct {
	ref reference.Tables
	cal calendar.System
	loc locale.Locale
}

func New(ref reference.Tables, cal calendar.System, loc locale.Locale) *Aggregator {
	return &Aggregator{ref: ref, cal: cal, loc: loc}
}

func (a *Aggregator) Reference() reference.Tables { return a.ref }
func (a *Aggregator) Calendar() calendar.System   { return a.cal }
func (a *Aggregator) Locale() locale.Locale       { return a.loc }

type Totals struct {
	Deposits int64
	Expenses int64
	Balance  int64
}

type AccountBalance struct {
	Account  model.BankAccount
	Deposits int64
	Expenses int64
	Balance  int64
}

type CategoryTotal struct {
	Category model.ExpenseCategory
	Amount   int64
}

func (a *Aggregator) Totals(txs []model.Transaction) Totals {
	var t Totals
	for _, tx := range txs {
		switch tx.Type {
		case model.TxDeposit:
			t.Deposits += tx.Amount
		case model.TxExpense:
			t.Expenses += tx.Amount
		}
	}
	t.Balance = t.Deposits - t.Expenses
	return t
}

// AccountBalances returns one entry per bank account, in reference order.
func (a *Aggregator) AccountBalances(txs []model.Transaction) []AccountBalance {
	accounts := a.ref.Accounts()
	out := make([]AccountBalance, 0, len(accounts))

	for _, acc := range accounts {
		b := AccountBalance{Account: acc}
		for _, tx := range txs {
			if tx.BankAccount != acc.ID {
				continue
			}
			switch tx.Type {
			case model.TxDeposit:
				b.Deposits += tx.Amount
			case model.TxExpense:
				b.Expenses += tx.Amount
			}
		}
		b.Balance = b.Deposits - b.Expenses
		out = append(out, b)
	}

	return out
}

// CategoryTotals sums expenses per category over the whole collection. Categories with
// nothing spent are omitted.
func (a *Aggregator) CategoryTotals(txs []model.Transaction) []CategoryTotal {
	return a.categoryTotals(txs)
}

func (a *Aggregator) categoryTotals(txs []model.Transaction) []CategoryTotal {
	sums := make(map[string]int64)
	for _, tx := range txs {
		if tx.IsExpense() && tx.Category != "" {
			sums[tx.Category] += tx.Amount
		}
	}

	out := make([]CategoryTotal, 0, len(sums))
	for _, cat := range a.ref.Categories() {
		if v := sums[cat.ID]; v > 0 {
			out = append(out, CategoryTotal{Category: cat, Amount: v})
		}
	}
	return out
}

// Undated returns the ids of transactions whose date token does not parse.
func (a *Aggregator) Undated(txs []model.Transaction) []string {
	var ids []string
	for _, tx := range txs {
		if _, err := calendar.Parse(tx.Date, a.cal); err != nil {
			ids = append(ids, tx.ID)
		}
	}
	return ids
}
