package views

import (
	"github.com/hance08/tankhah/internal/ledger"
	"github.com/hance08/tankhah/internal/model"
	"github.com/hance08/tankhah/internal/utils"
	"github.com/pterm/pterm"
)

type TransactionListItem struct {
	ID          string
	Date        string
	Type        string
	Account     string
	Category    string
	Description string
	Amount      string
	Deposit     bool
}

func NewTransactionListItems(txs []model.Transaction, agg *ledger.Aggregator) []TransactionListItem {
	loc := agg.Locale()
	items := make([]TransactionListItem, 0, len(txs))
	for _, tx := range txs {
		category := loc.Placeholder
		if tx.IsExpense() {
			category = agg.CategoryName(tx.Category)
		}
		items = append(items, TransactionListItem{
			ID:          tx.ID,
			Date:        loc.Digits(tx.Date),
			Type:        loc.TypeLabel(string(tx.Type)),
			Account:     agg.AccountName(tx.BankAccount),
			Category:    category,
			Description: tx.Description,
			Amount:      utils.FormatCoarse(tx.Amount, loc),
			Deposit:     tx.IsDeposit(),
		})
	}
	return items
}

func TransactionRows(items []TransactionListItem) pterm.TableData {
	tableData := pterm.TableData{
		{"ID", "Date", "Type", "Account", "Category", "Description", "Amount"},
	}

	for _, item := range items {
		coloredType, coloredAmount := pterm.Red(item.Type), pterm.Red(item.Amount)
		if item.Deposit {
			coloredType, coloredAmount = pterm.Green(item.Type), pterm.Green(item.Amount)
		}

		tableData = append(tableData, []string{
			item.ID,
			item.Date,
			coloredType,
			item.Account,
			item.Category,
			item.Description,
			coloredAmount,
		})
	}
	return tableData
}

type TransactionListView struct{}

func NewTransactionListView() *TransactionListView {
	return &TransactionListView{}
}

// Render shows at most limit items; limit <= 0 shows all of them.
func (v *TransactionListView) Render(items []TransactionListItem, limit int) error {
	if len(items) == 0 {
		pterm.Warning.Println("No transactions found")
		return nil
	}

	shown := items
	if limit > 0 && len(items) > limit {
		shown = items[:limit]
		pterm.DefaultSection.Printf("Showing %d of %d transactions", limit, len(items))
	} else {
		pterm.DefaultSection.Println("Transactions")
	}

	if err := renderTable(TransactionRows(shown)); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d transactions\n", len(items))
	return nil
}
