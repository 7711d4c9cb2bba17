package views

import (
	"github.com/hance08/tankhah/internal/ledger"
	"github.com/hance08/tankhah/internal/ui"
	"github.com/pterm/pterm"
)

func AccountBalanceRows(balances []ledger.AccountBalance, agg *ledger.Aggregator) pterm.TableData {
	tableData := pterm.TableData{{"Account", "Deposits", "Expenses", "Balance"}}

	for _, b := range balances {
		tableData = append(tableData, []string{
			b.Account.Logo + " " + ui.HexText(b.Account.Color, b.Account.DisplayName()),
			ui.Deposit(amount(agg, b.Deposits)),
			ui.Expense(amount(agg, b.Expenses)),
			ui.Signed(b.Balance, amount(agg, b.Balance)),
		})
	}
	return tableData
}

func RenderAccountBalances(balances []ledger.AccountBalance, agg *ledger.Aggregator) error {
	ui.PrintL2Title("Bank Accounts")
	return renderTable(AccountBalanceRows(balances, agg))
}
