package daytime

import (
	"time"

	"github.com/go-faster/errors"
)

// Time is a time of the day with fixed precision.
//
// Time stores number of precision ticks elapsed since local midnight, in
// range [0, Precision.PerDay()). Offset describes the zone the time belongs
// to and does not shift the stored value.
//
// Zero value is 00:00 UTC with minute precision.
type Time struct {
	ticks     int64
	precision Precision
	offset    Offset
	format    TimeFormatter
}

// subFields describes fields that follow minutes, in order of precision.
var subFields = [...]struct {
	name string
	max  int
	mul  int64
}{
	{name: "seconds", max: 59, mul: 60},
	{name: "milliseconds", max: 999, mul: 1000},
	{name: "microseconds", max: 999, mul: 1000},
	{name: "nanoseconds", max: 999, mul: 1000},
}

// NewTime returns UTC Time from hours, minutes and up to four trailing
// fields: seconds, milliseconds, microseconds and nanoseconds.
//
// Number of trailing fields selects precision, so NewTime(10, 20) has
// minute precision and NewTime(10, 20, 30, 400) has millisecond one.
func NewTime(hours, minutes int, fields ...int) (Time, error) {
	if len(fields) > len(subFields) {
		return Time{}, rangeErr("fields", int64(len(fields)), 0, int64(len(subFields)))
	}
	if hours < 0 || hours > 23 {
		return Time{}, rangeErr("hours", int64(hours), 0, 23)
	}
	if minutes < 0 || minutes > 59 {
		return Time{}, rangeErr("minutes", int64(minutes), 0, 59)
	}
	t := Time{
		ticks:     int64(hours)*60 + int64(minutes),
		precision: PrecisionMinute,
	}
	for i, v := range fields {
		f := subFields[i]
		if v < 0 || v > f.max {
			return Time{}, rangeErr(f.name, int64(v), 0, int64(f.max))
		}
		t.ticks = t.ticks*f.mul + int64(v)
		t.precision++
	}
	return t, nil
}

// TimeFromDuration returns Time of d elapsed since midnight, truncated to
// precision p.
func TimeFromDuration(d time.Duration, p Precision, o Offset) (Time, error) {
	if !p.Valid() {
		return Time{}, errors.Errorf("invalid precision %d", p)
	}
	if !o.Valid() {
		return Time{}, rangeErr("offset", int64(o), int64(MinOffset), int64(MaxOffset))
	}
	if d < 0 || int64(d) >= nsInDay {
		return Time{}, rangeErr("duration", int64(d), 0, nsInDay-1)
	}
	return Time{
		ticks:     int64(d / p.Duration()),
		precision: p,
		offset:    o,
	}, nil
}

// TimeOf returns time of the day of t shifted to offset o, truncated to
// precision p.
//
// Offset outside of [MinOffset, MaxOffset] is clamped, invalid precision is
// replaced with PrecisionMax.
func TimeOf(t time.Time, o Offset, p Precision) Time {
	o, p = o.clamp(), p.clamp()
	u := t.UTC().Add(o.Duration())
	h, m, s := u.Clock()
	d := time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second +
		time.Duration(u.Nanosecond())
	return Time{
		ticks:     int64(d / p.Duration()),
		precision: p,
		offset:    o,
	}
}

// TimeNow returns current UTC time of the day.
func TimeNow(p Precision) Time {
	return TimeOf(time.Now(), UTC, p)
}

// TimeNowIn returns current time of the day at offset o.
func TimeNowIn(o Offset, p Precision) Time {
	return TimeOf(time.Now(), o, p)
}

// LocalTime returns current time of the day at offset of the system time
// zone.
func LocalTime(p Precision) Time {
	now := time.Now()
	return TimeOf(now, OffsetOf(now), p)
}

// Precision of t.
func (t Time) Precision() Precision { return t.precision }

// Offset of t.
func (t Time) Offset() Offset { return t.offset }

// Duration returns elapsed time since midnight.
func (t Time) Duration() time.Duration {
	return time.Duration(t.ticks) * t.precision.Duration()
}

// Hours in range [0, 23].
func (t Time) Hours() int {
	return int(t.Duration() / time.Hour)
}

// Minutes in range [0, 59].
func (t Time) Minutes() int {
	return int(t.Duration() / time.Minute % 60)
}

// Seconds in range [0, 59], zero for minute precision.
func (t Time) Seconds() int {
	if t.precision < PrecisionSecond {
		return 0
	}
	return int(t.Duration() / time.Second % 60)
}

// Milliseconds in range [0, 999], zero for precision coarser than
// millisecond.
func (t Time) Milliseconds() int {
	if t.precision < PrecisionMillisecond {
		return 0
	}
	return int(t.Duration() / time.Millisecond % 1000)
}

// Microseconds in range [0, 999], zero for precision coarser than
// microsecond.
func (t Time) Microseconds() int {
	if t.precision < PrecisionMicrosecond {
		return 0
	}
	return int(t.Duration() / time.Microsecond % 1000)
}

// Nanoseconds in range [0, 999], zero for precision coarser than
// nanosecond.
func (t Time) Nanoseconds() int {
	if t.precision < PrecisionNanosecond {
		return 0
	}
	return int(t.Duration() % 1000)
}

// Comparable reports whether t and other have the same precision.
//
// Times of different precision are never equal and never ordered.
func (t Time) Comparable(other Time) bool {
	return t.precision == other.precision
}

// Equal reports whether t and other have the same precision and value.
// Offset is not compared.
func (t Time) Equal(other Time) bool {
	return t.Comparable(other) && t.ticks == other.ticks
}

// Before reports whether t is before other. Always false if precisions
// differ.
func (t Time) Before(other Time) bool {
	return t.Comparable(other) && t.ticks < other.ticks
}

// After reports whether t is after other. Always false if precisions
// differ.
func (t Time) After(other Time) bool {
	return t.Comparable(other) && t.ticks > other.ticks
}

// Compare returns -1, 0 or +1 when t is before, equal or after other.
//
// Times of different precision are ordered by precision, coarser first,
// so Compare is a total order that agrees with Equal. Check Comparable
// before reading the result as time of the day order.
func (t Time) Compare(other Time) int {
	switch {
	case t.precision != other.precision:
		if t.precision < other.precision {
			return -1
		}
		return 1
	case t.ticks < other.ticks:
		return -1
	case t.ticks > other.ticks:
		return 1
	default:
		return 0
	}
}

// SetFormatter sets per-instance formatter, shadowing the default one.
//
// Nil formatter restores the default.
func (t *Time) SetFormatter(f TimeFormatter) {
	t.format = f
}

// String returns t rendered by per-instance or default formatter.
func (t Time) String() string {
	if t.format != nil {
		return t.format(t)
	}
	return timeHook.get()(t)
}

// MarshalText encodes t in the layout of its precision, ignoring formatters.
func (t Time) MarshalText() ([]byte, error) {
	return appendTime(make([]byte, 0, len("HH:MM:SS.mmm.uuu.nnn+HH")), t), nil
}

// UnmarshalText decodes t, see ParseTime.
func (t *Time) UnmarshalText(b []byte) error {
	v, err := ParseTime(string(b))
	if err != nil {
		return err
	}
	v.format = t.format
	*t = v
	return nil
}
