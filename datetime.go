package daytime

import "time"

// DefaultPrecision is precision of DateTime values obtained from the system
// clock without explicit precision.
const DefaultPrecision = PrecisionSecond

// DateTime is a Date with Time of that day.
//
// Ordering is date-major, time-minor.
type DateTime struct {
	date   Date
	time   Time
	format DateTimeFormatter
}

// NewDateTime returns DateTime of d and t.
func NewDateTime(d Date, t Time) DateTime {
	return DateTime{date: d, time: t}
}

// DateTimeOf returns DateTime of t shifted to offset o with precision p.
func DateTimeOf(t time.Time, o Offset, p Precision) DateTime {
	return DateTime{
		date: DateOf(t, o),
		time: TimeOf(t, o, p),
	}
}

// Now returns current UTC DateTime with DefaultPrecision.
func Now() DateTime {
	return DateTimeOf(time.Now(), UTC, DefaultPrecision)
}

// NowIn returns current DateTime at offset o with DefaultPrecision.
func NowIn(o Offset) DateTime {
	return DateTimeOf(time.Now(), o, DefaultPrecision)
}

// Local returns current DateTime at offset of the system time zone with
// DefaultPrecision.
func Local() DateTime {
	now := time.Now()
	return DateTimeOf(now, OffsetOf(now), DefaultPrecision)
}

// Date of dt.
func (dt DateTime) Date() Date { return dt.date }

// Time of dt.
func (dt DateTime) Time() Time { return dt.time }

// SetDate replaces date of dt.
func (dt *DateTime) SetDate(d Date) { dt.date = d }

// SetTime replaces time of dt.
func (dt *DateTime) SetTime(t Time) { dt.time = t }

// SetDateFormatter sets formatter of the date member.
func (dt *DateTime) SetDateFormatter(f DateFormatter) { dt.date.SetFormatter(f) }

// SetTimeFormatter sets formatter of the time member.
func (dt *DateTime) SetTimeFormatter(f TimeFormatter) { dt.time.SetFormatter(f) }

// SetFormatter sets per-instance formatter, shadowing the default one.
func (dt *DateTime) SetFormatter(f DateTimeFormatter) { dt.format = f }

// Equal reports whether both date and time of dt and other are equal.
func (dt DateTime) Equal(other DateTime) bool {
	return dt.date.Equal(other.date) && dt.time.Equal(other.time)
}

// Before reports whether dt is before other.
//
// Times are compared only on equal dates, see Time.Before.
func (dt DateTime) Before(other DateTime) bool {
	if !dt.date.Equal(other.date) {
		return dt.date.Before(other.date)
	}
	return dt.time.Before(other.time)
}

// After reports whether dt is after other.
func (dt DateTime) After(other DateTime) bool {
	if !dt.date.Equal(other.date) {
		return dt.date.After(other.date)
	}
	return dt.time.After(other.time)
}

// Compare returns -1, 0 or +1 when dt is before, equal or after other.
//
// Dates are compared first, then times with Time.Compare.
func (dt DateTime) Compare(other DateTime) int {
	if c := dt.date.Compare(other.date); c != 0 {
		return c
	}
	return dt.time.Compare(other.time)
}

// StdTime returns dt as time.Time in fixed zone of time offset.
func (dt DateTime) StdTime() time.Time {
	o := dt.time.Offset()
	return dt.date.StdTime().
		Add(dt.time.Duration()).
		Add(-o.Duration()).
		In(o.Location())
}

// String returns dt rendered by per-instance or default formatter.
func (dt DateTime) String() string {
	if dt.format != nil {
		return dt.format(dt)
	}
	return dateTimeHook.get()(dt)
}

// MarshalText encodes dt as "<date>T<time>", ignoring formatters.
func (dt DateTime) MarshalText() ([]byte, error) {
	b := make([]byte, 0, 34)
	b = appendDate(b, dt.date)
	b = append(b, 'T')
	return appendTime(b, dt.time), nil
}

// UnmarshalText decodes dt, see ParseDateTime.
func (dt *DateTime) UnmarshalText(b []byte) error {
	v, err := ParseDateTime(string(b))
	if err != nil {
		return err
	}
	dt.date.n = v.date.n
	v.time.format = dt.time.format
	dt.time = v.time
	return nil
}
