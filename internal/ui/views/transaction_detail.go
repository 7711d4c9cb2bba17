package views

import (
	"github.com/hance08/tankhah/internal/ledger"
	"github.com/hance08/tankhah/internal/model"
	"github.com/hance08/tankhah/internal/ui"
	"github.com/pterm/pterm"
)

func TransactionDetailRows(tx model.Transaction, agg *ledger.Aggregator) pterm.TableData {
	item := NewTransactionListItems([]model.Transaction{tx}, agg)[0]
	return pterm.TableData{
		{"Field", "Value"},
		{"ID", item.ID},
		{"Date", item.Date},
		{"Type", typed(tx, item.Type)},
		{"Amount", typed(tx, item.Amount)},
		{"Account", item.Account},
		{"Category", item.Category},
		{"Description", item.Description},
	}
}

func RenderTransactionDetail(tx model.Transaction, agg *ledger.Aggregator) error {
	pterm.Println()
	ui.PrintL2Title("Transaction Info")
	return renderTable(TransactionDetailRows(tx, agg))
}
