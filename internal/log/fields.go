package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldTxID       = "tx_id"
	FieldTxType     = "tx_type"
	FieldAmountFine = "amount_rial"
	FieldAccount    = "account"
	FieldCategory   = "category"
	FieldDate       = "date"
	FieldMonth      = "month"
	FieldCount      = "count"
	FieldPath       = "path"
	FieldError      = "error"
	FieldView       = "view"
)

// Components
const (
	ComponentApp     = "app"
	ComponentLedger  = "ledger"
	ComponentReport  = "report"
	ComponentExport  = "export"
	ComponentSession = "session"
)
