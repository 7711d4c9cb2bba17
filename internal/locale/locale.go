// Package locale holds the display conventions of the ledger: digits, number grouping,
// type labels and calendar names.
package locale

import (
	"fmt"
	"strings"
	"time"

	"github.com/hance08/tankhah/internal/calendar"
	"github.com/hance08/tankhah/internal/constants"
)

type Code string

const (
	Persian Code = "fa"
	English Code = "en"
)

type Locale struct {
	Code           Code
	GroupSeparator string
	CurrencySuffix string
	Placeholder    string

	depositLabel string
	expenseLabel string
	digits       *[10]rune
	weekdays     [7]string
	months       map[calendar.System][12]string
	exportHeader []string
}

var persianDigits = [10]rune{'۰', '۱', '۲', '۳', '۴', '۵', '۶', '۷', '۸', '۹'}

var locales = map[Code]Locale{
	Persian: {
		Code:           Persian,
		GroupSeparator: "٬",
		CurrencySuffix: " تومان",
		Placeholder:    "-",
		depositLabel:   "واریزی",
		expenseLabel:   "هزینه",
		digits:         &persianDigits,
		weekdays:       [7]string{"یکشنبه", "دوشنبه", "سه‌شنبه", "چهارشنبه", "پنجشنبه", "جمعه", "شنبه"},
		months: map[calendar.System][12]string{
			calendar.Jalali: {"فروردین", "اردیبهشت", "خرداد", "تیر", "مرداد", "شهریور",
				"مهر", "آبان", "آذر", "دی", "بهمن", "اسفند"},
			calendar.Gregorian: {"ژانویه", "فوریه", "مارس", "آوریل", "مه", "ژوئن",
				"ژوئیه", "اوت", "سپتامبر", "اکتبر", "نوامبر", "دسامبر"},
		},
		exportHeader: []string{"تاریخ", "نوع", "مبلغ (تومان)", "حساب", "دسته‌بندی", "شرح"},
	},
	English: {
		Code:           English,
		GroupSeparator: ",",
		CurrencySuffix: " toman",
		Placeholder:    "-",
		depositLabel:   "Deposit",
		expenseLabel:   "Expense",
		weekdays:       [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
		months: map[calendar.System][12]string{
			calendar.Jalali: {"Farvardin", "Ordibehesht", "Khordad", "Tir", "Mordad", "Shahrivar",
				"Mehr", "Aban", "Azar", "Dey", "Bahman", "Esfand"},
			calendar.Gregorian: {"January", "February", "March", "April", "May", "June",
				"July", "August", "September", "October", "November", "December"},
		},
		exportHeader: []string{"Date", "Type", "Amount (toman)", "Account", "Category", "Description"},
	},
}

func Get(code Code) (Locale, error) {
	l, ok := locales[Code(strings.ToLower(string(code)))]
	if !ok {
		return Locale{}, fmt.Errorf("unsupported locale '%s' (must be fa or en)", code)
	}
	return l, nil
}

// MustGet is for locales known at compile time.
func MustGet(code Code) Locale {
	l, err := Get(code)
	if err != nil {
		panic(err)
	}
	return l
}

// Digits replaces ASCII digits with the locale's digits.
func (l Locale) Digits(s string) string {
	if l.digits == nil {
		return s
	}
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return l.digits[r-'0']
		}
		return r
	}, s)
}

// TypeLabel returns the label for "deposit" and "expense"; anything else is returned as is.
func (l Locale) TypeLabel(txType string) string {
	switch txType {
	case constants.TypeDeposit:
		return l.depositLabel
	case constants.TypeExpense:
		return l.expenseLabel
	default:
		return txType
	}
}

func (l Locale) Weekday(d time.Weekday) string {
	return l.weekdays[d]
}

// MonthName takes a zero-based month index.
func (l Locale) MonthName(sys calendar.System, month int) string {
	if month < 0 || month >= constants.MonthsInYear {
		return l.Placeholder
	}
	names, ok := l.months[sys]
	if !ok {
		names = l.months[calendar.Jalali]
	}
	return names[month]
}

func (l Locale) MonthNames(sys calendar.System) []string {
	names := make([]string, constants.MonthsInYear)
	for i := range names {
		names[i] = l.MonthName(sys, i)
	}
	return names
}

func (l Locale) ExportHeader() []string {
	return append([]string(nil), l.exportHeader...)
}

// ASCIIDigits maps Persian and Arabic-Indic digits back to ASCII.
func ASCIIDigits(s string) string {
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
