// Package calendar parses and converts the YYYY/MM/DD date tokens stored on transactions.
// Tokens are written in the Jalali (Solar Hijri) calendar by default; Gregorian tokens are
// supported for books kept that way.
package calendar

import (
	"cmp"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hance08/tankhah/internal/constants"
)

type System string

const (
	Jalali    System = "jalali"
	Gregorian System = "gregorian"
)

var ErrInvalidDate = errors.New("invalid date")

func ParseSystem(s string) (System, error) {
	switch sys := System(strings.ToLower(strings.TrimSpace(s))); sys {
	case Jalali, Gregorian:
		return sys, nil
	default:
		return "", fmt.Errorf("unknown calendar '%s' (must be jalali or gregorian)", s)
	}
}

// Date is a calendar day in whichever System it was parsed with.
type Date struct {
	Year  int
	Month int
	Day   int
}

func (d Date) String() string {
	return fmt.Sprintf(constants.DateFormat, d.Year, d.Month, d.Day)
}

func (d Date) IsZero() bool {
	return d == Date{}
}

func Compare(a, b Date) int {
	if c := cmp.Compare(a.Year, b.Year); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Month, b.Month); c != 0 {
		return c
	}
	return cmp.Compare(a.Day, b.Day)
}

// Parse reads "YYYY/MM/DD" or "YYYY-MM-DD"; unpadded parts and Persian digits are accepted.
func Parse(token string, sys System) (Date, error) {
	parts, ok := splitToken(token)
	if !ok || len(parts) != 3 {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, token)
	}

	d := Date{Year: parts[0], Month: parts[1], Day: parts[2]}
	if d.Month < 1 || d.Month > constants.MonthsInYear {
		return Date{}, fmt.Errorf("%w: month out of range in %q", ErrInvalidDate, token)
	}

	days, ok := DaysInMonth(d.Year, d.Month, sys)
	if !ok {
		return Date{}, fmt.Errorf("%w: year out of range in %q", ErrInvalidDate, token)
	}
	if d.Day < 1 || d.Day > days {
		return Date{}, fmt.Errorf("%w: day out of range in %q", ErrInvalidDate, token)
	}

	return d, nil
}

// MonthOf returns the zero-based month index taken from the second component of the
// token. The day is not validated.
func MonthOf(token string) (int, bool) {
	parts, ok := splitToken(token)
	if !ok || len(parts) < 2 {
		return 0, false
	}
	m := parts[1] - 1
	if m < 0 || m >= constants.MonthsInYear {
		return 0, false
	}
	return m, true
}

func DaysInMonth(year, month int, sys System) (int, bool) {
	if month < 1 || month > constants.MonthsInYear {
		return 0, false
	}

	if sys == Gregorian {
		if year < 1 {
			return 0, false
		}
		return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day(), true
	}

	leap, ok := IsJalaliLeap(year)
	if !ok {
		return 0, false
	}
	switch {
	case month <= 6:
		return 31, true
	case month <= 11:
		return 30, true
	case leap:
		return 30, true
	default:
		return 29, true
	}
}

// FromTime returns the calendar day of t (in t's own location).
func FromTime(t time.Time, sys System) Date {
	y, m, d := t.Date()
	if sys == Gregorian {
		return Date{Year: y, Month: int(m), Day: d}
	}
	jd, _ := gregorianToJalali(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
	return jd
}

// Time returns midnight UTC of the day in the Gregorian calendar.
func (d Date) Time(sys System) time.Time {
	if sys == Gregorian {
		return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
	}
	return jalaliToGregorian(d)
}

func (d Date) AddDays(n int, sys System) Date {
	return FromTime(d.Time(sys).AddDate(0, 0, n), sys)
}

func (d Date) Weekday(sys System) time.Weekday {
	return d.Time(sys).Weekday()
}

func Today(now time.Time, sys System) Date {
	return FromTime(now, sys)
}

func splitToken(token string) ([]int, bool) {
	token = normalizeDigits(strings.TrimSpace(token))
	if token == "" {
		return nil, false
	}

	fields := strings.FieldsFunc(token, func(r rune) bool { return r == '/' || r == '-' })
	if len(fields) == 0 {
		return nil, false
	}

	parts := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, false
		}
		parts = append(parts, n)
	}
	return parts, true
}

// normalizeDigits maps Persian (U+06F0..) and Arabic-Indic (U+0660..) digits to ASCII.
func normalizeDigits(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= '۰' && r <= '۹':
			return '0' + (r - '۰')
		case r >= '٠' && r <= '٩':
			return '0' + (r - '٠')
		}
		return r
	}, s)
}
