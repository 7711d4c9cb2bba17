package views

import (
	"github.com/hance08/tankhah/internal/ledger"
	"github.com/hance08/tankhah/internal/model"
	"github.com/hance08/tankhah/internal/ui"
	"github.com/hance08/tankhah/internal/utils"
	"github.com/pterm/pterm"
)

// amount formats a fine amount in the aggregator's locale.
func amount(agg *ledger.Aggregator, fine int64) string {
	return utils.FormatCoarse(fine, agg.Locale())
}

// coarse formats an amount that is already in the coarse unit.
func coarse(agg *ledger.Aggregator, n int64) string {
	loc := agg.Locale()
	return utils.FormatNumber(n, loc) + loc.CurrencySuffix
}

func typed(tx model.Transaction, s string) string {
	if tx.IsDeposit() {
		return ui.Deposit(s)
	}
	return ui.Expense(s)
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

func renderTable(data pterm.TableData) error {
	return pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(data).
		Render()
}
