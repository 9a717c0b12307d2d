package daytime

import (
	"fmt"

	"github.com/go-faster/errors"
)

var (
	// ErrRange is reported (via errors.Is) by every *RangeError.
	ErrRange = errors.New("value out of range")
	// ErrInvalidFormat is reported (via errors.Is) by every *FormatError.
	ErrInvalidFormat = errors.New("invalid format")
)

// RangeError means that numeric field is outside of its valid domain.
type RangeError struct {
	Field string
	Value int64
	Min   int64
	Max   int64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("bad %s value %d: expected value between %d and %d", e.Field, e.Value, e.Min, e.Max)
}

// Is reports whether target is ErrRange.
func (e *RangeError) Is(target error) bool { return target == ErrRange }

// FormatError means that string does not match the expected fixed layout.
type FormatError struct {
	Kind   string // "date", "time", "datetime", "offset"
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Kind, e.Input, e.Reason)
}

// Is reports whether target is ErrInvalidFormat.
func (e *FormatError) Is(target error) bool { return target == ErrInvalidFormat }

// AsRangeError finds first *RangeError in err chain.
func AsRangeError(err error) (*RangeError, bool) {
	var e *RangeError
	if !errors.As(err, &e) {
		return nil, false
	}
	return e, true
}

// AsFormatError finds first *FormatError in err chain.
func AsFormatError(err error) (*FormatError, bool) {
	var e *FormatError
	if !errors.As(err, &e) {
		return nil, false
	}
	return e, true
}

// IsRangeError reports whether err is *RangeError.
func IsRangeError(err error) bool {
	return errors.Is(err, ErrRange)
}

// IsInvalidFormat reports whether err is *FormatError.
func IsInvalidFormat(err error) bool {
	return errors.Is(err, ErrInvalidFormat)
}

func rangeErr(field string, v, min, max int64) error {
	return &RangeError{Field: field, Value: v, Min: min, Max: max}
}

func formatErr(kind, input, reason string) error {
	return &FormatError{Kind: kind, Input: input, Reason: reason}
}
