package views

import (
	"fmt"

	"github.com/hance08/tankhah/internal/ledger"
	"github.com/hance08/tankhah/internal/service"
	"github.com/hance08/tankhah/internal/ui"
	"github.com/hance08/tankhah/internal/utils"
	"github.com/pterm/pterm"
)

func TotalsRows(t ledger.Totals, agg *ledger.Aggregator) pterm.TableData {
	return pterm.TableData{
		{"Total deposits", ui.Deposit(amount(agg, t.Deposits))},
		{"Total expenses", ui.Expense(amount(agg, t.Expenses))},
		{"Balance", ui.Signed(t.Balance, amount(agg, t.Balance))},
	}
}

// CategoryBars sizes the bars by coarse amount.
func CategoryBars(totals []ledger.CategoryTotal, agg *ledger.Aggregator) pterm.Bars {
	bars := make(pterm.Bars, 0, len(totals))
	for _, c := range totals {
		bars = append(bars, pterm.Bar{
			Label: fmt.Sprintf("%s %s (%s)", c.Category.Icon, c.Category.Name, amount(agg, c.Amount)),
			Value: int(utils.ToCoarse(c.Amount)),
		})
	}
	return bars
}

func WeeklyRows(buckets []ledger.WeeklyBucket, agg *ledger.Aggregator) pterm.TableData {
	loc := agg.Locale()
	tableData := pterm.TableData{{"Day", "Date", "Deposits", "Expenses"}}
	for _, b := range buckets {
		tableData = append(tableData, []string{
			b.Label,
			loc.Digits(b.Date.String()),
			ui.Deposit(coarse(agg, b.Deposits)),
			ui.Expense(coarse(agg, b.Expenses)),
		})
	}
	return tableData
}

// WeeklyCategoryRows has one column per expense category that was spent on during the week.
func WeeklyCategoryRows(buckets []ledger.WeeklyCategoryBucket, agg *ledger.Aggregator) pterm.TableData {
	var ids []string
	header := []string{"Day"}
	for _, cat := range agg.Reference().Categories() {
		for _, b := range buckets {
			if b.Amounts[cat.ID] > 0 {
				ids = append(ids, cat.ID)
				header = append(header, cat.Icon+" "+cat.Name)
				break
			}
		}
	}
	if len(ids) == 0 {
		return nil
	}

	tableData := pterm.TableData{header}
	for _, b := range buckets {
		row := []string{b.Label}
		for _, id := range ids {
			row = append(row, amount(agg, b.Amounts[id]))
		}
		tableData = append(tableData, row)
	}
	return tableData
}

func RenderDashboard(d service.Dashboard, agg *ledger.Aggregator, year int) error {
	ui.PrintL1Title("Petty Cash %s", agg.Locale().Digits(fmt.Sprint(year)))
	pterm.Println()

	if err := pterm.DefaultTable.WithData(TotalsRows(d.Totals, agg)).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("%d transactions\n", d.Count)
	pterm.Println()

	if err := RenderAccountBalances(d.Accounts, agg); err != nil {
		return err
	}
	pterm.Println()

	ui.PrintL2Title("Expenses by Category")
	if bars := CategoryBars(d.Categories, agg); len(bars) > 0 {
		if err := pterm.DefaultBarChart.WithHorizontal().WithBars(bars).Render(); err != nil {
			return err
		}
	} else {
		pterm.Info.Println("No expenses recorded")
	}
	pterm.Println()

	ui.PrintL2Title("Last 7 Days")
	if err := renderTable(WeeklyRows(d.Weekly, agg)); err != nil {
		return err
	}

	if rows := WeeklyCategoryRows(d.WeeklyByCategory, agg); rows != nil {
		pterm.Println()
		ui.PrintL2Title("Last 7 Days by Category")
		if err := renderTable(rows); err != nil {
			return err
		}
	}

	if len(d.Undated) > 0 {
		pterm.Warning.Printf("%d transactions have unreadable dates and are left out of the weekly view\n", len(d.Undated))
	}
	return nil
}
