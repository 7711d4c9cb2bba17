package calendar

import "time"

// Jalali years at which the 33-year leap cycle is re-anchored. Valid for years
// breaks[0] <= jy < breaks[len-1].
var breaks = [...]int{
	-61, 9, 38, 199, 426, 686, 756, 818, 1111, 1181, 1210,
	1635, 2060, 2097, 2192, 2262, 2324, 2394, 2456, 3178,
}

type jalaliYear struct {
	leap  int // years since the last leap year, 0 means jy itself is leap
	gy    int // Gregorian year in which jy begins
	march int // day of March on which Farvardin 1 falls
}

func jalCal(jy int) (jalaliYear, bool) {
	if jy < breaks[0] || jy >= breaks[len(breaks)-1] {
		return jalaliYear{}, false
	}

	gy := jy + 621
	leapJ := -14
	jp := breaks[0]
	jump := 0

	for i := 1; i < len(breaks); i++ {
		jm := breaks[i]
		jump = jm - jp
		if jy < jm {
			break
		}
		leapJ += jump/33*8 + jump%33/4
		jp = jm
	}

	n := jy - jp
	leapJ += n/33*8 + (n%33+3)/4
	if jump%33 == 4 && jump-n == 4 {
		leapJ++
	}

	leapG := gy/4 - (gy/100+1)*3/4 - 150
	march := 20 + leapJ - leapG

	if jump-n < 6 {
		n = n - jump + (jump+4)/33*33
	}
	leap := ((n+1)%33 - 1) % 4
	if leap == -1 {
		leap = 4
	}

	return jalaliYear{leap: leap, gy: gy, march: march}, true
}

func IsJalaliLeap(jy int) (bool, bool) {
	y, ok := jalCal(jy)
	if !ok {
		return false, false
	}
	return y.leap == 0, true
}

func jalaliToGregorian(d Date) time.Time {
	y, _ := jalCal(d.Year)
	start := time.Date(y.gy, time.March, y.march, 0, 0, 0, 0, time.UTC)
	offset := (d.Month-1)*31 - d.Month/7*(d.Month-7) + d.Day - 1
	return start.AddDate(0, 0, offset)
}

// gregorianToJalali expects t at midnight UTC.
func gregorianToJalali(t time.Time) (Date, bool) {
	jy := t.Year() - 621
	y, ok := jalCal(jy)
	if !ok {
		return Date{}, false
	}

	start := time.Date(y.gy, time.March, y.march, 0, 0, 0, 0, time.UTC)
	k := int(t.Sub(start).Hours()) / 24

	if k >= 0 {
		if k <= 185 {
			return Date{Year: jy, Month: 1 + k/31, Day: k%31 + 1}, true
		}
		k -= 186
	} else {
		jy--
		k += 179
		if y.leap == 1 {
			k++
		}
	}

	return Date{Year: jy, Month: 7 + k/30, Day: k%30 + 1}, true
}
