package daytime

import (
	"time"
)

// Date is a Gregorian calendar day, stored as number of days since the
// epoch.
//
// Zero value is 1900-01-01.
type Date struct {
	n      int64 // zero-based days since 1900-01-01
	format DateFormatter
}

// NewDate returns the Date corresponding to year, month and day.
//
// Returns *RangeError if year is outside [EpochYear, MaxYear], month is not
// valid or day does not exist in month of year.
func NewDate(year int, month time.Month, day int) (Date, error) {
	if year < EpochYear || year > MaxYear {
		return Date{}, rangeErr("year", int64(year), EpochYear, MaxYear)
	}
	if month < time.January || month > time.December {
		return Date{}, rangeErr("month", int64(month), int64(time.January), int64(time.December))
	}
	if day < 1 || day > 31 {
		return Date{}, rangeErr("day", int64(day), 1, 31)
	}
	if last := DaysInMonth(year, month); day > last {
		return Date{}, rangeErr("day", int64(day), 1, int64(last))
	}
	return Date{n: daysBefore(year, month, day)}, nil
}

// DateFromDays returns Date with given day number, where 1900-01-01 is
// day 1. Any value is accepted.
func DateFromDays(days int64) Date {
	return Date{n: days - 1}
}

// DateOf returns Date of t shifted to offset o, clamped to
// [MinOffset, MaxOffset].
func DateOf(t time.Time, o Offset) Date {
	o = o.clamp()
	sec := t.Unix() + int64(o)*secInHour
	return Date{n: floorDiv(sec, secInDay) + epochToUnixDays}
}

// Today returns current Date in UTC.
func Today() Date {
	return DateOf(time.Now(), UTC)
}

// TodayIn returns current Date at offset o.
func TodayIn(o Offset) Date {
	return DateOf(time.Now(), o)
}

// LocalDate returns current Date at offset of the system time zone.
func LocalDate() Date {
	now := time.Now()
	return DateOf(now, OffsetOf(now))
}

// Days returns day number of d, where 1900-01-01 is day 1.
func (d Date) Days() int64 {
	return d.n + 1
}

// Fields returns year, month and day of d.
func (d Date) Fields() (year int, month time.Month, day int) {
	return civil(d.n)
}

// Year of d.
func (d Date) Year() int {
	year, _ := yearDay(d.n)
	return year
}

// Month of d.
func (d Date) Month() time.Month {
	_, month, _ := civil(d.n)
	return month
}

// Day of the month of d.
func (d Date) Day() int {
	_, _, day := civil(d.n)
	return day
}

// YearDay returns day of the year of d, in range [1, 366].
func (d Date) YearDay() int {
	_, yday := yearDay(d.n)
	return int(yday) + 1
}

// Weekday is day number modulo 7; 1900-01-01 is Monday.
func (d Date) Weekday() time.Weekday {
	wd := d.Days() % 7
	if wd < 0 {
		wd += 7
	}
	return time.Weekday(wd)
}

// IsWeekend reports whether d is Saturday or Sunday.
func (d Date) IsWeekend() bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// StdTime returns midnight of d in UTC.
func (d Date) StdTime() time.Time {
	return time.Unix((d.n-epochToUnixDays)*secInDay, 0).UTC()
}

// AddDays returns d shifted by n days forward.
func (d Date) AddDays(n int) Date {
	d.n += int64(n)
	return d
}

// SubtractDays returns d shifted by n days backward.
func (d Date) SubtractDays(n int) Date {
	d.n -= int64(n)
	return d
}

// AddMonths returns d shifted by n months forward.
//
// Day of the month is kept when possible, otherwise clamped to the last
// day of the resulting month: 2024-01-31 + 1 month is 2024-02-29.
// Results beyond the range of day numbers wrap around, as in AddDays.
func (d Date) AddMonths(n int) Date {
	return d.shiftMonths(int64(n))
}

// SubtractMonths returns d shifted by n months backward, see AddMonths.
func (d Date) SubtractMonths(n int) Date {
	return d.shiftMonths(-int64(n))
}

// shiftMonths moves d by months, anchored to the day of the month of d.
func (d Date) shiftMonths(months int64) Date {
	year, month, day := civil(d.n)
	m := int64(year)*12 + int64(month-time.January) + months
	y := floorDiv(m, 12)
	d.n = daysClamped(y, time.January+time.Month(m-y*12), day)
	return d
}

// AddYears returns d shifted by n years forward.
//
// February 29 is clamped to February 28 in non-leap years.
func (d Date) AddYears(n int) Date {
	return d.shiftYears(int64(n))
}

// SubtractYears returns d shifted by n years backward, see AddYears.
func (d Date) SubtractYears(n int) Date {
	return d.shiftYears(-int64(n))
}

func (d Date) shiftYears(years int64) Date {
	year, month, day := civil(d.n)
	d.n = daysClamped(int64(year)+years, month, day)
	return d
}

// daysClamped is daysBefore with day clamped to the length of month.
func daysClamped(year int64, month time.Month, day int) int64 {
	y := int(year)
	return daysBefore(y, month, minInt(day, DaysInMonth(y, month)))
}

// Equal reports whether d and other are the same day.
func (d Date) Equal(other Date) bool { return d.n == other.n }

// Before reports whether d is before other.
func (d Date) Before(other Date) bool { return d.n < other.n }

// After reports whether d is after other.
func (d Date) After(other Date) bool { return d.n > other.n }

// Compare returns -1, 0 or +1 when d is before, equal or after other.
func (d Date) Compare(other Date) int {
	switch {
	case d.n < other.n:
		return -1
	case d.n > other.n:
		return 1
	default:
		return 0
	}
}

// SetFormatter sets per-instance formatter, shadowing the default one.
//
// Nil formatter restores the default.
func (d *Date) SetFormatter(f DateFormatter) {
	d.format = f
}

// String returns d rendered by per-instance or default formatter.
func (d Date) String() string {
	if d.format != nil {
		return d.format(d)
	}
	return dateHook.get()(d)
}

// MarshalText encodes d as YYYY-MM-DD, ignoring formatters.
func (d Date) MarshalText() ([]byte, error) {
	return appendDate(make([]byte, 0, len("YYYY-MM-DD")), d), nil
}

// UnmarshalText decodes d from YYYY-MM-DD or YYYYMMDD.
func (d *Date) UnmarshalText(b []byte) error {
	v, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	d.n = v.n
	return nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
