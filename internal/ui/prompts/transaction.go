package prompts

import (
	"fmt"

	"github.com/hance08/tankhah/internal/calendar"
	"github.com/hance08/tankhah/internal/constants"
	"github.com/hance08/tankhah/internal/ledger"
	"github.com/hance08/tankhah/internal/locale"
	"github.com/hance08/tankhah/internal/model"
	"github.com/hance08/tankhah/internal/utils"
)

// TypeOptions lists deposit and expense with their labels in loc.
func TypeOptions(loc locale.Locale) []Option {
	return []Option{
		{Label: loc.TypeLabel(constants.TypeExpense), Value: constants.TypeExpense},
		{Label: loc.TypeLabel(constants.TypeDeposit), Value: constants.TypeDeposit},
	}
}

// FilterOptions lists the type filters of the transaction list.
func FilterOptions(loc locale.Locale) []Option {
	return append([]Option{{Label: "All", Value: constants.FilterAll}}, TypeOptions(loc)...)
}

// TransactionOptions labels every transaction with its date, type, amount and description.
func TransactionOptions(txs []model.Transaction, agg *ledger.Aggregator) []Option {
	loc := agg.Locale()
	opts := make([]Option, 0, len(txs))
	for _, tx := range txs {
		opts = append(opts, Option{
			Label: fmt.Sprintf("%s  %s  %s  %s",
				loc.Digits(tx.Date),
				loc.TypeLabel(string(tx.Type)),
				utils.FormatCoarse(tx.Amount, loc),
				tx.Description,
			),
			Value: tx.ID,
		})
	}
	return opts
}

func PromptTransactionType(loc locale.Locale, defaultType string) (string, error) {
	return PromptSelect("Transaction type:", TypeOptions(loc), defaultType)
}

func PromptTransactionDate(today calendar.Date, sys calendar.System) (string, error) {
	return PromptInput(
		fmt.Sprintf("Date (YYYY/MM/DD, empty for %s):", today),
		today.String(),
		DateValidator(sys),
	)
}

func PromptAmount() (string, error) {
	return PromptInput("Amount (toman):", "", AmountValidator)
}

// DateValidator accepts any date token the calendar can parse.
func DateValidator(sys calendar.System) func(string) error {
	return func(s string) error {
		_, err := calendar.Parse(s, sys)
		return err
	}
}

func AmountValidator(s string) error {
	_, err := utils.ToFine(s)
	return err
}
