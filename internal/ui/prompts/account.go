package prompts

import (
	"fmt"

	"github.com/hance08/tankhah/internal/model"
)

// AccountOptions shows each bank account with its glyph and owner.
func AccountOptions(accounts []model.BankAccount) []Option {
	opts := make([]Option, 0, len(accounts))
	for _, acc := range accounts {
		opts = append(opts, Option{Label: fmt.Sprintf("%s %s", acc.Logo, acc.DisplayName()), Value: acc.ID})
	}
	return opts
}

func CategoryOptions(categories []model.ExpenseCategory) []Option {
	opts := make([]Option, 0, len(categories))
	for _, cat := range categories {
		opts = append(opts, Option{Label: fmt.Sprintf("%s %s", cat.Icon, cat.Name), Value: cat.ID})
	}
	return opts
}

func PromptBankAccount(accounts []model.BankAccount, defaultID string) (string, error) {
	return PromptSelect("Bank account:", AccountOptions(accounts), defaultID)
}

func PromptCategory(categories []model.ExpenseCategory, defaultID string) (string, error) {
	return PromptSelect("Category:", CategoryOptions(categories), defaultID)
}
