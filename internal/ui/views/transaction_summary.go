package views

import (
	"github.com/hance08/tankhah/internal/ledger"
	"github.com/hance08/tankhah/internal/model"
	"github.com/pterm/pterm"
)

// RenderTransactionSummary confirms a created transaction and the balance it leaves.
func RenderTransactionSummary(tx model.Transaction, totals ledger.Totals, agg *ledger.Aggregator) error {
	pterm.DefaultSection.Println("Transaction Summary")

	if err := renderTable(TransactionDetailRows(tx, agg)); err != nil {
		return err
	}

	pterm.Info.Printf("Balance is now %s\n", amount(agg, totals.Balance))
	return nil
}
