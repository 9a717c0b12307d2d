package daytime

import "time"

// shift moves t by n units, wrapping at the day boundary.
//
// Units finer than precision of t are dropped.
func (t Time) shift(unit time.Duration, n int, subtract bool) Time {
	step := t.precision.Duration()
	if unit < step {
		return t
	}
	per := nsInDay / int64(unit)
	v := int64(n) % per
	if v < 0 {
		v += per
	}
	if subtract && v != 0 {
		v = per - v
	}
	t.ticks = (t.ticks + v*int64(unit/step)) % t.precision.PerDay()
	return t
}

// AddHours returns t shifted by n hours.
func (t Time) AddHours(n int) Time { return t.shift(time.Hour, n, false) }

// AddMinutes returns t shifted by n minutes.
func (t Time) AddMinutes(n int) Time { return t.shift(time.Minute, n, false) }

// AddSeconds returns t shifted by n seconds. No-op for minute precision.
func (t Time) AddSeconds(n int) Time { return t.shift(time.Second, n, false) }

// AddMilliseconds returns t shifted by n milliseconds. No-op for precision
// coarser than millisecond.
func (t Time) AddMilliseconds(n int) Time { return t.shift(time.Millisecond, n, false) }

// AddMicroseconds returns t shifted by n microseconds. No-op for precision
// coarser than microsecond.
func (t Time) AddMicroseconds(n int) Time { return t.shift(time.Microsecond, n, false) }

// AddNanoseconds returns t shifted by n nanoseconds. No-op for precision
// coarser than nanosecond.
func (t Time) AddNanoseconds(n int) Time { return t.shift(time.Nanosecond, n, false) }

// SubtractHours returns t shifted back by n hours.
func (t Time) SubtractHours(n int) Time { return t.shift(time.Hour, n, true) }

// SubtractMinutes returns t shifted back by n minutes.
func (t Time) SubtractMinutes(n int) Time { return t.shift(time.Minute, n, true) }

// SubtractSeconds returns t shifted back by n seconds.
func (t Time) SubtractSeconds(n int) Time { return t.shift(time.Second, n, true) }

// SubtractMilliseconds returns t shifted back by n milliseconds.
func (t Time) SubtractMilliseconds(n int) Time { return t.shift(time.Millisecond, n, true) }

// SubtractMicroseconds returns t shifted back by n microseconds.
func (t Time) SubtractMicroseconds(n int) Time { return t.shift(time.Microsecond, n, true) }

// SubtractNanoseconds returns t shifted back by n nanoseconds.
func (t Time) SubtractNanoseconds(n int) Time { return t.shift(time.Nanosecond, n, true) }

// WithPrecision returns t converted to precision p.
//
// Conversion to coarser precision truncates. Invalid precision is replaced
// with PrecisionMax.
func (t Time) WithPrecision(p Precision) Time {
	p = p.clamp()
	switch {
	case p > t.precision:
		t.ticks *= p.scale(t.precision)
	case p < t.precision:
		t.ticks /= t.precision.scale(p)
	}
	t.precision = p
	return t
}

// WithOffset returns t with offset o clamped to [MinOffset, MaxOffset].
// Stored value is not shifted.
func (t Time) WithOffset(o Offset) Time {
	t.offset = o.clamp()
	return t
}

// Add returns sum of t and other, with finer of two precisions.
//
// Fields of other are added starting from the finest one, each wrapping at
// the day boundary. Offset and formatter of t are kept.
func (t Time) Add(other Time) Time {
	r := t.WithPrecision(maxPrecision(t.precision, other.precision))
	switch other.precision {
	case PrecisionNanosecond:
		r = r.AddNanoseconds(other.Nanoseconds())
		fallthrough
	case PrecisionMicrosecond:
		r = r.AddMicroseconds(other.Microseconds())
		fallthrough
	case PrecisionMillisecond:
		r = r.AddMilliseconds(other.Milliseconds())
		fallthrough
	case PrecisionSecond:
		r = r.AddSeconds(other.Seconds())
		fallthrough
	case PrecisionMinute:
		r = r.AddMinutes(other.Minutes())
		r = r.AddHours(other.Hours())
	default:
		panic("invalid precision: " + other.precision.String())
	}
	return r
}

// Sub returns difference of t and other, see Add.
func (t Time) Sub(other Time) Time {
	r := t.WithPrecision(maxPrecision(t.precision, other.precision))
	switch other.precision {
	case PrecisionNanosecond:
		r = r.SubtractNanoseconds(other.Nanoseconds())
		fallthrough
	case PrecisionMicrosecond:
		r = r.SubtractMicroseconds(other.Microseconds())
		fallthrough
	case PrecisionMillisecond:
		r = r.SubtractMilliseconds(other.Milliseconds())
		fallthrough
	case PrecisionSecond:
		r = r.SubtractSeconds(other.Seconds())
		fallthrough
	case PrecisionMinute:
		r = r.SubtractMinutes(other.Minutes())
		r = r.SubtractHours(other.Hours())
	default:
		panic("invalid precision: " + other.precision.String())
	}
	return r
}

func maxPrecision(a, b Precision) Precision {
	if a > b {
		return a
	}
	return b
}
