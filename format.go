package daytime

import (
	"go.uber.org/atomic"
)

type (
	// DateFormatter renders Date as string.
	DateFormatter func(d Date) string
	// TimeFormatter renders Time as string.
	TimeFormatter func(t Time) string
	// DateTimeFormatter renders DateTime as string.
	DateTimeFormatter func(dt DateTime) string
)

// hook is process-wide formatter that falls back to def.
//
// Default is installed lazily on first use.
type hook[F any] struct {
	def F
	p   atomic.Pointer[F]
}

func (h *hook[F]) get() F {
	if f := h.p.Load(); f != nil {
		return *f
	}
	h.p.CompareAndSwap(nil, &h.def)
	return *h.p.Load()
}

func (h *hook[F]) set(f *F) {
	if f == nil {
		f = &h.def
	}
	h.p.Store(f)
}

var (
	dateHook     = &hook[DateFormatter]{def: formatDate}
	timeHook     = &hook[TimeFormatter]{def: formatTime}
	dateTimeHook = &hook[DateTimeFormatter]{def: formatDateTime}
)

// SetDefaultDateFormatter sets process-wide formatter used by Date.String
// when Date has no own formatter. Nil restores YYYY-MM-DD rendering.
//
// Safe for concurrent use.
func SetDefaultDateFormatter(f DateFormatter) {
	if f == nil {
		dateHook.set(nil)
		return
	}
	dateHook.set(&f)
}

// SetDefaultTimeFormatter sets process-wide formatter used by Time.String
// when Time has no own formatter. Nil restores the built-in rendering.
func SetDefaultTimeFormatter(f TimeFormatter) {
	if f == nil {
		timeHook.set(nil)
		return
	}
	timeHook.set(&f)
}

// SetDefaultDateTimeFormatter sets process-wide formatter used by
// DateTime.String when DateTime has no own formatter. Nil restores
// rendering of date and time joined by "T".
func SetDefaultDateTimeFormatter(f DateTimeFormatter) {
	if f == nil {
		dateTimeHook.set(nil)
		return
	}
	dateTimeHook.set(&f)
}

func formatDate(d Date) string {
	return string(appendDate(make([]byte, 0, 10), d))
}

func formatTime(t Time) string {
	return string(appendTime(make([]byte, 0, 23), t))
}

func formatDateTime(dt DateTime) string {
	return dt.date.String() + "T" + dt.time.String()
}

// appendDate appends YYYY-MM-DD.
func appendDate(b []byte, d Date) []byte {
	year, month, day := d.Fields()
	b = appendInt(b, year, 4)
	b = append(b, '-')
	b = appendInt(b, int(month), 2)
	b = append(b, '-')
	return appendInt(b, day, 2)
}

// appendTime appends time in layout of its precision, followed by offset
// if it is not UTC.
func appendTime(b []byte, t Time) []byte {
	b = appendInt(b, t.Hours(), 2)
	b = append(b, ':')
	b = appendInt(b, t.Minutes(), 2)
	switch t.precision {
	case PrecisionNanosecond, PrecisionMicrosecond, PrecisionMillisecond, PrecisionSecond:
		b = append(b, ':')
		b = appendInt(b, t.Seconds(), 2)
	}
	switch t.precision {
	case PrecisionNanosecond, PrecisionMicrosecond, PrecisionMillisecond:
		b = append(b, '.')
		b = appendInt(b, t.Milliseconds(), 3)
	}
	switch t.precision {
	case PrecisionNanosecond, PrecisionMicrosecond:
		b = append(b, '.')
		b = appendInt(b, t.Microseconds(), 3)
	}
	if t.precision == PrecisionNanosecond {
		b = append(b, '.')
		b = appendInt(b, t.Nanoseconds(), 3)
	}
	if t.offset != UTC {
		b = appendOffset(b, t.offset)
	}
	return b
}

func appendOffset(b []byte, o Offset) []byte {
	v := int(o)
	if v < 0 {
		b = append(b, '-')
		v = -v
	} else {
		b = append(b, '+')
	}
	return appendInt(b, v, 2)
}

// appendInt appends decimal v, zero-padded to width.
func appendInt(b []byte, v, width int) []byte {
	if v < 0 {
		b = append(b, '-')
		v = -v
	}
	var buf [20]byte
	i := len(buf)
	for v >= 10 || width > 1 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
		width--
	}
	i--
	buf[i] = byte('0' + v)
	return append(b, buf[i:]...)
}
