package store

import "github.com/hance08/tankhah/internal/model"

// SeedTransactions is the sample book every session starts from.
func SeedTransactions() []model.Transaction {
	return []model.Transaction{
		{ID: "1", Date: "1403/01/01", Amount: 50000000, Type: model.TxDeposit, BankAccount: "mellat_shahin", Description: "واریز اولیه"},
		{ID: "2", Date: "1403/01/02", Amount: 2500000, Type: model.TxExpense, BankAccount: "mellat_shahin", Description: "ناهار کارگران", Category: "lunch"},
		{ID: "3", Date: "1403/01/03", Amount: 15000000, Type: model.TxExpense, BankAccount: "saman_shahin", Description: "خرید لوازم یدکی", Category: "spare_parts"},
		{ID: "4", Date: "1403/01/04", Amount: 800000, Type: model.TxExpense, BankAccount: "mellat_elahah", Description: "قبض برق", Category: "bills"},
	}
}
