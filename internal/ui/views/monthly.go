package views

import (
	"fmt"

	"github.com/hance08/tankhah/internal/ledger"
	"github.com/hance08/tankhah/internal/ui"
	"github.com/pterm/pterm"
)

func MonthlyRows(buckets []ledger.MonthlyBucket, agg *ledger.Aggregator) pterm.TableData {
	tableData := pterm.TableData{{"Month", "Deposits", "Expenses", "Net"}}
	for _, b := range buckets {
		net := b.Deposits - b.Expenses
		tableData = append(tableData, []string{
			b.Name,
			ui.Deposit(coarse(agg, b.Deposits)),
			ui.Expense(coarse(agg, b.Expenses)),
			ui.Signed(net, coarse(agg, net)),
		})
	}
	return tableData
}

func RenderMonthly(buckets []ledger.MonthlyBucket, agg *ledger.Aggregator, year int) error {
	ui.PrintL2Title("Monthly Report %s", agg.Locale().Digits(fmt.Sprint(year)))
	return renderTable(MonthlyRows(buckets, agg))
}

// MonthDetailSummary shows the balance as a magnitude, its sign carried by the colour.
func MonthDetailSummary(d ledger.MonthDetail, agg *ledger.Aggregator) pterm.TableData {
	return pterm.TableData{
		{"Deposits", ui.Deposit(amount(agg, d.Deposits))},
		{"Expenses", ui.Expense(amount(agg, d.Expenses))},
		{"Balance", ui.Signed(d.Balance, amount(agg, abs(d.Balance)))},
	}
}

func MonthCategoryRows(d ledger.MonthDetail, agg *ledger.Aggregator) pterm.TableData {
	tableData := pterm.TableData{{"Category", "Amount"}}
	for _, c := range d.Categories {
		tableData = append(tableData, []string{
			c.Category.Icon + " " + ui.HexText(c.Category.Color, c.Category.Name),
			amount(agg, c.Amount),
		})
	}
	return tableData
}

func RenderMonthDetail(d ledger.MonthDetail, agg *ledger.Aggregator) error {
	ui.PrintL2Title("%s", d.Name)
	if err := pterm.DefaultTable.WithData(MonthDetailSummary(d, agg)).Render(); err != nil {
		return err
	}

	if len(d.Transactions) == 0 {
		pterm.Info.Println("No transactions in this month")
		return nil
	}

	if len(d.Categories) > 0 {
		pterm.Println()
		if err := renderTable(MonthCategoryRows(d, agg)); err != nil {
			return err
		}
	}

	pterm.Println()
	return renderTable(TransactionRows(NewTransactionListItems(d.Transactions, agg)))
}
