package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hance08/tankhah/internal/constants"
	"github.com/hance08/tankhah/internal/locale"
	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("invalid amount")

var (
	subUnit   = decimal.NewFromInt(constants.SubUnitFactor)
	maxCoarse = decimal.NewFromInt(constants.MaxSafeCoarse)
)

// ToFine converts a user-entered coarse amount (toman) into the fine storage unit (rial).
// e.g., "150" -> 1500, "150.5" -> 1505, "1,250" -> 12500
func ToFine(coarse string) (int64, error) {
	s := locale.ASCIIDigits(strings.TrimSpace(coarse))
	s = strings.NewReplacer(",", "", "٬", "", " ", "").Replace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidAmount)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidAmount, coarse)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("%w: %s must not be negative", ErrInvalidAmount, coarse)
	}
	if d.GreaterThan(maxCoarse) {
		return 0, fmt.Errorf("%w: %s is too large", ErrInvalidAmount, coarse)
	}

	return d.Mul(subUnit).Round(0).IntPart(), nil
}

// ToCoarse converts fine units to the nearest whole coarse unit, halves rounding up.
func ToCoarse(fine int64) int64 {
	n := fine + constants.SubUnitFactor/2
	q := n / constants.SubUnitFactor
	if n%constants.SubUnitFactor != 0 && n < 0 {
		q--
	}
	return q
}

// FormatNumber groups thousands and localizes the digits.
func FormatNumber(n int64, loc locale.Locale) string {
	sign := ""
	if n < 0 {
		sign = "-"
	}

	digits := strconv.FormatInt(n, 10)
	digits = strings.TrimPrefix(digits, "-")

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteString(loc.GroupSeparator)
		}
		b.WriteRune(r)
	}

	return sign + loc.Digits(b.String())
}

// FormatCoarse renders a fine amount as the display string shown to the user, e.g. "۲۵۰٬۰۰۰ تومان".
func FormatCoarse(fine int64, loc locale.Locale) string {
	return FormatNumber(ToCoarse(fine), loc) + loc.CurrencySuffix
}
