// Package reference holds the fixed bank-account and expense-category tables.
// Tables is built once at startup and handed by value to every aggregation.
package reference

import "github.com/hance08/tankhah/internal/model"

type Tables struct {
	accounts   []model.BankAccount
	categories []model.ExpenseCategory
}

// New copies the given entries so later changes to the arguments are not observed.
func New(accounts []model.BankAccount, categories []model.ExpenseCategory) Tables {
	return Tables{
		accounts:   append([]model.BankAccount(nil), accounts...),
		categories: append([]model.ExpenseCategory(nil), categories...),
	}
}

// Default returns the three bank accounts and five expense categories of the petty-cash book.
func Default() Tables {
	return New(
		[]model.BankAccount{
			{ID: "mellat_shahin", Name: "بانک ملی", Owner: "شاهین شبستری", Logo: "🏛️", Color: "#dc2626"},
			{ID: "saman_shahin", Name: "بانک سامان", Owner: "شاهین شبستری", Logo: "🏦", Color: "#2563eb"},
			{ID: "mellat_elahah", Name: "بانک ملی", Owner: "الهه هادی دولابی فرد", Logo: "🏛️", Color: "#dc2626"},
		},
		[]model.ExpenseCategory{
			{ID: "lunch", Name: "ناهار و عصرانه", Icon: "🍽", Color: "#f97316"},
			{ID: "spare_parts", Name: "لوازم یدکی", Icon: "🔧", Color: "#3b82f6"},
			{ID: "bills", Name: "قبوض", Icon: "🧾", Color: "#ef4444"},
			{ID: "services", Name: "خدمات", Icon: "💼", Color: "#8b5cf6"},
			{ID: "misc", Name: "متفرقه", Icon: "…", Color: "#6b7280"},
		},
	)
}

func (t Tables) Accounts() []model.BankAccount {
	return append([]model.BankAccount(nil), t.accounts...)
}

func (t Tables) Categories() []model.ExpenseCategory {
	return append([]model.ExpenseCategory(nil), t.categories...)
}

func (t Tables) Account(id string) (model.BankAccount, bool) {
	for _, a := range t.accounts {
		if a.ID == id {
			return a, true
		}
	}
	return model.BankAccount{}, false
}

func (t Tables) Category(id string) (model.ExpenseCategory, bool) {
	for _, c := range t.categories {
		if c.ID == id {
			return c, true
		}
	}
	return model.ExpenseCategory{}, false
}
