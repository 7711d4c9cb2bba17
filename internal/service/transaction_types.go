package service

import "strings"

// TransactionInput is what the add form collects. Amount is in the coarse unit (toman)
// as typed by the user.
type TransactionInput struct {
	Date        string `validate:"required"`
	Amount      string `validate:"required"`
	Type        string `validate:"required,oneof=deposit expense"`
	BankAccount string `validate:"required"`
	Description string `validate:"required,max=200"`
	Category    string `validate:"required_if=Type expense"`
}

func (in TransactionInput) normalized() TransactionInput {
	return TransactionInput{
		Date:        strings.TrimSpace(in.Date),
		Amount:      strings.TrimSpace(in.Amount),
		Type:        strings.ToLower(strings.TrimSpace(in.Type)),
		BankAccount: strings.TrimSpace(in.BankAccount),
		Description: strings.TrimSpace(in.Description),
		Category:    strings.TrimSpace(in.Category),
	}
}
