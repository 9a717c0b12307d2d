package daytime

import (
	"strings"
	"time"

	"github.com/go-faster/errors"
)

// ParseDate parses Date from "YYYY-MM-DD" or "YYYYMMDD".
//
// Returns *FormatError if layout does not match and *RangeError if fields
// do not form a valid date.
func ParseDate(s string) (Date, error) {
	var sep bool
	switch len(s) {
	case len("YYYYMMDD"):
	case len("YYYY-MM-DD"):
		sep = true
	default:
		return Date{}, formatErr("date", s, "expected 8 or 10 characters")
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isDigit(c) {
			continue
		}
		if c != '-' {
			return Date{}, formatErr("date", s, "unexpected character "+quoteByte(c))
		}
		if !sep || (i != 4 && i != 7) {
			return Date{}, formatErr("date", s, "unexpected hyphen")
		}
	}
	if sep && (s[4] != '-' || s[7] != '-') {
		return Date{}, formatErr("date", s, "expected hyphen separators")
	}

	year := atoi(s[0:4])
	if sep {
		s = s[5:]
	} else {
		s = s[4:]
	}
	month := atoi(s[0:2])
	day := atoi(s[len(s)-2:])
	return NewDate(year, time.Month(month), day)
}

// timeLayout is per-position grammar of time, where 'd' is digit. Prefix of
// length 5, 8, 12, 16 or 20 selects precision.
const timeLayout = "dd:dd:dd.ddd.ddd.ddd"

// fieldStart is position of every trailing field in timeLayout.
var fieldStart = [...]int{6, 9, 13, 17}

// ParseTime parses Time from "HH:MM[:SS[.mmm[.uuu[.nnn]]]]", optionally
// followed by offset "+HH" or "-HH".
//
// Precision is selected by layout length.
func ParseTime(s string) (Time, error) {
	body, offset := s, UTC
	if n := len(s); n > 3 && (s[n-3] == '+' || s[n-3] == '-') {
		o, err := parseOffset(s[n-3:])
		if err != nil {
			return Time{}, err
		}
		body, offset = s[:n-3], o
	}

	var fields int
	switch len(body) {
	case 5:
		fields = 0
	case 8:
		fields = 1
	case 12:
		fields = 2
	case 16:
		fields = 3
	case 20:
		fields = 4
	default:
		return Time{}, formatErr("time", s, "unexpected length")
	}
	for i := 0; i < len(body); i++ {
		c, want := body[i], timeLayout[i]
		if want == 'd' {
			if !isDigit(c) {
				return Time{}, formatErr("time", s, "expected digit at position "+itoa(i))
			}
			continue
		}
		if c != want {
			return Time{}, formatErr("time", s, "expected "+quoteByte(want)+" at position "+itoa(i))
		}
	}

	values := make([]int, fields)
	for i := range values {
		start := fieldStart[i]
		end := start + 3
		if i == 0 {
			end = start + 2
		}
		values[i] = atoi(body[start:end])
	}
	t, err := NewTime(atoi(body[0:2]), atoi(body[3:5]), values...)
	if err != nil {
		return Time{}, err
	}
	t.offset = offset
	return t, nil
}

// ParseOffset parses "+HH" or "-HH".
func ParseOffset(s string) (Offset, error) {
	return parseOffset(s)
}

func parseOffset(s string) (Offset, error) {
	if len(s) != 3 || (s[0] != '+' && s[0] != '-') || !isDigit(s[1]) || !isDigit(s[2]) {
		return UTC, formatErr("offset", s, "expected +HH or -HH")
	}
	h := atoi(s[1:])
	if s[0] == '-' {
		h = -h
	}
	return NewOffset(h)
}

// ParseDateTime parses DateTime from "<date>T<time>", see ParseDate and
// ParseTime.
func ParseDateTime(s string) (DateTime, error) {
	idx := strings.IndexByte(s, 'T')
	if idx < 0 {
		return DateTime{}, formatErr("datetime", s, "missing T separator")
	}
	d, err := ParseDate(s[:idx])
	if err != nil {
		return DateTime{}, errors.Wrap(err, "date")
	}
	t, err := ParseTime(s[idx+1:])
	if err != nil {
		return DateTime{}, errors.Wrap(err, "time")
	}
	return NewDateTime(d, t), nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// atoi decodes ASCII digits, validated by caller.
func atoi(s string) int {
	var v int
	for i := 0; i < len(s); i++ {
		v = v*10 + int(s[i]-'0')
	}
	return v
}

func itoa(v int) string {
	return string(appendInt(nil, v, 1))
}

func quoteByte(c byte) string {
	if c < 0x20 || c >= 0x7f {
		return "0x" + string(hexDigits[c>>4]) + string(hexDigits[c&0xf])
	}
	return "'" + string(c) + "'"
}

const hexDigits = "0123456789abcdef"
