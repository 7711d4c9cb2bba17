package ledger

import (
	"strconv"

	"github.com/hance08/tankhah/internal/model"
	"github.com/hance08/tankhah/internal/utils"
)

// ExportRow is one transaction flattened to display strings.
type ExportRow struct {
	Date        string
	Type        string
	Amount      string
	Account     string
	Category    string
	Description string
}

func (r ExportRow) Record() []string {
	return []string{r.Date, r.Type, r.Amount, r.Account, r.Category, r.Description}
}

// ExportRows projects the collection in its natural order. Unknown accounts and
// categories become the locale placeholder.
func (a *Aggregator) ExportRows(txs []model.Transaction) []ExportRow {
	rows := make([]ExportRow, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, ExportRow{
			Date:        a.loc.Digits(tx.Date),
			Type:        a.loc.TypeLabel(string(tx.Type)),
			Amount:      a.loc.Digits(strconv.FormatInt(utils.ToCoarse(tx.Amount), 10)),
			Account:     a.AccountName(tx.BankAccount),
			Category:    a.CategoryName(tx.Category),
			Description: tx.Description,
		})
	}
	return rows
}

func (a *Aggregator) AccountName(id string) string {
	if acc, ok := a.ref.Account(id); ok {
		return acc.DisplayName()
	}
	return a.loc.Placeholder
}

func (a *Aggregator) CategoryName(id string) string {
	if cat, ok := a.ref.Category(id); ok {
		return cat.Name
	}
	return a.loc.Placeholder
}
