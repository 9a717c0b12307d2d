package daytime

import (
	"fmt"
	"time"
)

// Offset is a fixed time zone offset in whole hours.
//
// Valid range: [MinOffset:MaxOffset].
type Offset int8

const (
	// UTC is zero offset.
	UTC Offset = 0

	MinOffset Offset = -12
	MaxOffset Offset = 12
)

// NewOffset returns Offset of h hours.
func NewOffset(h int) (Offset, error) {
	if h < int(MinOffset) || h > int(MaxOffset) {
		return UTC, rangeErr("offset", int64(h), int64(MinOffset), int64(MaxOffset))
	}
	return Offset(h), nil
}

// Valid reports whether offset is in range.
func (o Offset) Valid() bool {
	return o >= MinOffset && o <= MaxOffset
}

// Duration returns offset as time.Duration.
func (o Offset) Duration() time.Duration {
	return time.Duration(o) * time.Hour
}

// Location returns fixed time.Location of offset.
func (o Offset) Location() *time.Location {
	if o == UTC {
		return time.UTC
	}
	return time.FixedZone("UTC"+o.String(), int(o)*secInHour)
}

// String returns offset as "+HH" or "-HH".
func (o Offset) String() string {
	return fmt.Sprintf("%+03d", int(o))
}

// OffsetOf returns whole-hour offset of t's zone, clamped to valid range.
//
// Sub-hour parts of the zone offset are truncated.
func OffsetOf(t time.Time) Offset {
	_, sec := t.Zone()
	return clampOffset(sec / secInHour)
}

func clampOffset(h int) Offset {
	switch {
	case h < int(MinOffset):
		return MinOffset
	case h > int(MaxOffset):
		return MaxOffset
	default:
		return Offset(h)
	}
}

// clamp returns o limited to [MinOffset, MaxOffset].
func (o Offset) clamp() Offset {
	return clampOffset(int(o))
}

// LocalOffset returns current offset of the system time zone.
func LocalOffset() Offset {
	return OffsetOf(time.Now())
}
