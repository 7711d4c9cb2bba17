package constants

const (
	// Transaction types
	TypeDeposit = "deposit"
	TypeExpense = "expense"

	// Type filters
	FilterAll = "all"

	// Date token layout, calendar independent
	DateFormat = "%04d/%02d/%02d"

	// Fixed bucket counts
	WeekDays       = 7
	MonthsInYear   = 12
	DefaultYear    = 1403
	DefaultListCap = 20
)
