package model

type BankAccount struct {
	ID    string
	Name  string
	Owner string
	Logo  string
	Color string
}

// DisplayName joins bank name and owner the way reports show an account.
func (a BankAccount) DisplayName() string {
	return a.Name + " - " + a.Owner
}

type ExpenseCategory struct {
	ID    string
	Name  string
	Icon  string
	Color string
}
