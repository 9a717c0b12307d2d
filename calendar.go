package daytime

import "time"

const (
	// EpochYear is the year of the zero Date (1900-01-01).
	EpochYear = 1900
	// MaxYear is the largest year that can be constructed or parsed.
	MaxYear = 9999

	daysPer400Years = 365*400 + 97
	daysPer100Years = 365*100 + 24
	daysPer4Years   = 365*4 + 1

	// Days from 1601-01-01 (start of 400-year cycle) to 1900-01-01.
	cycleToEpochDays = 109207
	// Days from 1900-01-01 to 1970-01-01.
	epochToUnixDays = 25567
)

// monthStart[leap][m] is zero-based day of the year on which month m+1
// starts. The last entry is the length of the year.
var monthStart = [2][13]int64{
	{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334, 365},
	{0, 31, 60, 91, 121, 152, 182, 213, 244, 274, 305, 335, 366},
}

// IsLeapYear reports whether year is leap in the Gregorian calendar.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func leapIndex(year int) int {
	if IsLeapYear(year) {
		return 1
	}
	return 0
}

// DaysInMonth returns number of days in month of year.
//
// Returns zero for invalid month.
func DaysInMonth(year int, month time.Month) int {
	if month < time.January || month > time.December {
		return 0
	}
	starts := &monthStart[leapIndex(year)]
	return int(starts[month] - starts[month-1])
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	return int(monthStart[leapIndex(year)][12])
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// leapsBefore counts leap years in (0, year).
func leapsBefore(year int64) int64 {
	y := year - 1
	return floorDiv(y, 4) - floorDiv(y, 100) + floorDiv(y, 400)
}

// daysBeforeYear returns days from 1900-01-01 to January 1 of year.
func daysBeforeYear(year int) int64 {
	y := int64(year)
	return 365*(y-EpochYear) + leapsBefore(y) - leapsBefore(EpochYear)
}

// daysBefore returns zero-based days since 1900-01-01 for calendar fields.
//
// Fields must be valid.
func daysBefore(year int, month time.Month, day int) int64 {
	return daysBeforeYear(year) + monthStart[leapIndex(year)][month-1] + int64(day) - 1
}

// yearDay splits zero-based days since 1900-01-01 into year and zero-based
// day of that year, walking 400, 100, 4 and 1 year cycles.
func yearDay(n int64) (year int, yday int64) {
	d := n + cycleToEpochDays

	q := floorDiv(d, daysPer400Years)
	d -= q * daysPer400Years
	y := 1601 + q*400

	c := d / daysPer100Years
	if c == 4 {
		// Last day of leap 400th year.
		c = 3
	}
	d -= c * daysPer100Years
	y += c * 100

	f := d / daysPer4Years
	d -= f * daysPer4Years
	y += f * 4

	r := d / 365
	if r == 4 {
		// Last day of leap 4th year.
		r = 3
	}
	d -= r * 365
	y += r

	return int(y), d
}

// civil converts zero-based days since 1900-01-01 into calendar fields.
func civil(n int64) (year int, month time.Month, day int) {
	year, yday := yearDay(n)
	starts := &monthStart[leapIndex(year)]
	m := 12
	for yday < starts[m-1] {
		m--
	}
	return year, time.Month(m), int(yday-starts[m-1]) + 1
}
