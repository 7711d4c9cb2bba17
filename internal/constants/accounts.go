package constants

const (
	// SubUnitFactor is the number of fine units (rial) in one coarse unit (toman).
	SubUnitFactor = 10
)

const (
	// MaxDescriptionLen mirrors the max tag on service.TransactionInput.Description.
	MaxDescriptionLen = 200

	// MaxSafeCoarse caps one entered amount so that sums over the whole collection stay
	// well inside int64 in the fine unit.
	MaxSafeCoarse = 1_000_000_000_000_000
)

const (
	DefaultAccountID  = "mellat_shahin"
	DefaultCategoryID = "misc"
)
