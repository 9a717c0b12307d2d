package daytime

import "time"

//go:generate go run github.com/dmarkham/enumer -type Precision -trimprefix Precision -output precision_enum.go

// Precision is the finest unit that Time can represent.
//
// Greater value is finer precision.
type Precision byte

const (
	PrecisionMinute Precision = iota
	PrecisionSecond
	PrecisionMillisecond
	PrecisionMicrosecond
	PrecisionNanosecond

	// PrecisionMax is the finest precision (nanosecond).
	PrecisionMax = PrecisionNanosecond
)

const (
	secInMinute = 60
	secInHour   = 60 * secInMinute
	secInDay    = 24 * secInHour

	nsInDay = int64(secInDay) * int64(time.Second)
)

// Valid reports whether precision is valid.
func (p Precision) Valid() bool {
	return p <= PrecisionMax
}

// clamp returns p, or PrecisionMax if p is not valid.
func (p Precision) clamp() Precision {
	if !p.Valid() {
		return PrecisionMax
	}
	return p
}

// Duration returns duration of single tick for precision.
func (p Precision) Duration() time.Duration {
	switch p {
	case PrecisionMinute:
		return time.Minute
	case PrecisionSecond:
		return time.Second
	case PrecisionMillisecond:
		return time.Millisecond
	case PrecisionMicrosecond:
		return time.Microsecond
	case PrecisionNanosecond:
		return time.Nanosecond
	default:
		panic("invalid precision: " + p.String())
	}
}

// PerDay returns number of ticks in one day.
func (p Precision) PerDay() int64 {
	return nsInDay / int64(p.Duration())
}

// scale returns number of p ticks in one tick of coarser precision c.
func (p Precision) scale(c Precision) int64 {
	return int64(c.Duration() / p.Duration())
}
