package views

import (
	"github.com/hance08/tankhah/internal/ledger"
	"github.com/hance08/tankhah/internal/model"
	"github.com/hance08/tankhah/internal/ui"
	"github.com/pterm/pterm"
)

func RenderTransactionDeletePreview(tx model.Transaction, agg *ledger.Aggregator) error {
	pterm.Warning.Printf("About to delete transaction %s:\n", tx.ID)

	if err := pterm.DefaultTable.WithData(TransactionDetailRows(tx, agg)[1:]).Render(); err != nil {
		return err
	}
	pterm.Warning.Println("This action cannot be undone!")
	return nil
}

func RenderTransactionDeleteSuccess(id string) {
	pterm.Success.Printf("Transaction %s deleted successfully\n", id)
	ui.Separator()
}
