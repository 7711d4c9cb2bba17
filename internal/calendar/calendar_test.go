package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gregorian(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		token string
		sys   System
		want  Date
		ok    bool
	}{
		{"padded jalali", "1403/01/01", Jalali, Date{1403, 1, 1}, true},
		{"dashes and unpadded", "1403-1-2", Jalali, Date{1403, 1, 2}, true},
		{"persian digits", "۱۴۰۳/۰۱/۰۴", Jalali, Date{1403, 1, 4}, true},
		{"leap esfand", "1403/12/30", Jalali, Date{1403, 12, 30}, true},
		{"non-leap esfand", "1402/12/30", Jalali, Date{}, false},
		{"mehr has 30 days", "1403/07/31", Jalali, Date{}, false},
		{"month 13", "1403/13/01", Jalali, Date{}, false},
		{"gregorian leap day", "2024-02-29", Gregorian, Date{2024, 2, 29}, true},
		{"gregorian non-leap", "2023-02-29", Gregorian, Date{}, false},
		{"garbage", "yesterday", Jalali, Date{}, false},
		{"two parts", "1403/01", Jalali, Date{}, false},
		{"empty", "", Jalali, Date{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.token, tt.sys)
			if !tt.ok {
				assert.ErrorIs(t, err, ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMonthOf(t *testing.T) {
	m, ok := MonthOf("1403/05/10")
	assert.True(t, ok)
	assert.Equal(t, 4, m)

	m, ok = MonthOf("1403/12/99")
	assert.True(t, ok, "day is not validated")
	assert.Equal(t, 11, m)

	for _, token := range []string{"", "1403", "1403/13/01", "1403/00/01", "a/b/c"} {
		_, ok := MonthOf(token)
		assert.False(t, ok, token)
	}
}

func TestJalaliConversion(t *testing.T) {
	tests := []struct {
		jalali Date
		greg   time.Time
	}{
		{Date{1403, 1, 1}, gregorian(2024, time.March, 20)},
		{Date{1402, 12, 29}, gregorian(2024, time.March, 19)},
		{Date{1403, 7, 1}, gregorian(2024, time.September, 22)},
		{Date{1403, 12, 30}, gregorian(2025, time.March, 20)},
		{Date{1404, 1, 1}, gregorian(2025, time.March, 21)},
	}

	for _, tt := range tests {
		t.Run(tt.jalali.String(), func(t *testing.T) {
			assert.Equal(t, tt.greg, tt.jalali.Time(Jalali))
			assert.Equal(t, tt.jalali, FromTime(tt.greg, Jalali))
		})
	}
}

func TestJalaliRoundTrip(t *testing.T) {
	start := gregorian(2020, time.January, 1)
	for i := 0; i < 2000; i++ {
		day := start.AddDate(0, 0, i)
		d := FromTime(day, Jalali)
		require.Equal(t, day, d.Time(Jalali), "day %s -> %s", day.Format("2006-01-02"), d)

		days, ok := DaysInMonth(d.Year, d.Month, Jalali)
		require.True(t, ok)
		require.LessOrEqual(t, d.Day, days)
	}
}

func TestAddDaysAndWeekday(t *testing.T) {
	d := Date{1403, 1, 1}
	assert.Equal(t, time.Wednesday, d.Weekday(Jalali))
	assert.Equal(t, Date{1402, 12, 29}, d.AddDays(-1, Jalali))
	assert.Equal(t, Date{1403, 1, 7}, d.AddDays(6, Jalali))

	g := Date{2024, 3, 1}
	assert.Equal(t, Date{2024, 2, 29}, g.AddDays(-1, Gregorian))
}

func TestToday(t *testing.T) {
	now := time.Date(2024, time.March, 20, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, Date{1403, 1, 1}, Today(now, Jalali))
	assert.Equal(t, Date{2024, 3, 20}, Today(now, Gregorian))
}

func TestCompare(t *testing.T) {
	assert.Equal(t, -1, Compare(Date{1403, 1, 1}, Date{1403, 1, 2}))
	assert.Equal(t, 1, Compare(Date{1403, 2, 1}, Date{1403, 1, 31}))
	assert.Equal(t, 0, Compare(Date{1403, 1, 1}, Date{1403, 1, 1}))
}

func TestParseSystem(t *testing.T) {
	sys, err := ParseSystem(" Jalali ")
	require.NoError(t, err)
	assert.Equal(t, Jalali, sys)

	_, err = ParseSystem("lunar")
	assert.Error(t, err)
}
