package proto

import (
	"bufio"
	"encoding/binary"
	"io"
	"time"
	"unicode/utf8"

	"github.com/go-faster/errors"

	"github.com/go-faster/daytime"
)

// Reader implements decoding from buffered reader.
type Reader struct {
	s *bufio.Reader
	b *Buffer
}

// UVarInt reads uint64 from internal reader.
func (r *Reader) UVarInt() (uint64, error) {
	n, err := binary.ReadUvarint(r.s)
	if err != nil {
		return 0, errors.Wrap(err, "read")
	}
	return n, nil
}

// Int decodes uvarint as int.
func (r *Reader) Int() (int, error) {
	n, err := r.UVarInt()
	if err != nil {
		return 0, errors.Wrap(err, "uvarint")
	}
	return int(n), nil
}

const maxStrLen = 10 * 1024 * 1024 // 10mb

// Str decodes string.
func (r *Reader) Str() (string, error) {
	n, err := r.Int()
	if err != nil {
		return "", errors.Wrap(err, "read length")
	}
	if n < 0 || n > maxStrLen {
		return "", errors.Errorf("invalid string length %d", n)
	}
	r.b.Ensure(n)
	if _, err := io.ReadFull(r.s, r.b.Buf); err != nil {
		return "", errors.Wrap(err, "read str")
	}
	if !utf8.Valid(r.b.Buf) {
		return "", errors.New("invalid utf8")
	}
	return string(r.b.Buf), nil
}

func (r *Reader) readFull(n int) ([]byte, error) {
	r.b.Ensure(n)
	if _, err := io.ReadFull(r.s, r.b.Buf); err != nil {
		return nil, errors.Wrap(err, "read")
	}
	return r.b.Buf, nil
}

// UInt8 decodes uint8 value.
func (r *Reader) UInt8() (uint8, error) {
	v, err := r.s.ReadByte()
	if err != nil {
		return 0, errors.Wrap(err, "read")
	}
	return v, nil
}

// Int8 decodes int8 value.
func (r *Reader) Int8() (int8, error) {
	v, err := r.UInt8()
	return int8(v), err
}

// UInt64 decodes uint64 value.
func (r *Reader) UInt64() (uint64, error) {
	buf, err := r.readFull(64 / 8)
	if err != nil {
		return 0, err
	}
	return bin.Uint64(buf), nil
}

// Int64 decodes int64 value.
func (r *Reader) Int64() (int64, error) {
	v, err := r.UInt64()
	return int64(v), err
}

// Date decodes day number.
func (r *Reader) Date() (daytime.Date, error) {
	v, err := r.Int64()
	if err != nil {
		return daytime.Date{}, errors.Wrap(err, "days")
	}
	return daytime.DateFromDays(v), nil
}

// TimeHeader decodes and validates precision and offset.
func (r *Reader) TimeHeader() (daytime.Precision, daytime.Offset, error) {
	p, err := r.UInt8()
	if err != nil {
		return 0, 0, errors.Wrap(err, "precision")
	}
	if !daytime.Precision(p).Valid() {
		return 0, 0, errors.Errorf("invalid precision %d", p)
	}
	o, err := r.Int8()
	if err != nil {
		return 0, 0, errors.Wrap(err, "offset")
	}
	if !daytime.Offset(o).Valid() {
		return 0, 0, errors.Errorf("invalid offset %d", o)
	}
	return daytime.Precision(p), daytime.Offset(o), nil
}

// TimeTicks decodes time value without header.
func (r *Reader) TimeTicks(p daytime.Precision, o daytime.Offset) (daytime.Time, error) {
	v, err := r.UInt64()
	if err != nil {
		return daytime.Time{}, errors.Wrap(err, "ticks")
	}
	if v >= uint64(p.PerDay()) {
		return daytime.Time{}, errors.Errorf("ticks %d overflow day at %s precision", v, p)
	}
	t, err := daytime.TimeFromDuration(time.Duration(v)*p.Duration(), p, o)
	if err != nil {
		return daytime.Time{}, errors.Wrap(err, "time")
	}
	return t, nil
}

// Time decodes time with header.
func (r *Reader) Time() (daytime.Time, error) {
	p, o, err := r.TimeHeader()
	if err != nil {
		return daytime.Time{}, errors.Wrap(err, "header")
	}
	return r.TimeTicks(p, o)
}

// DateTime decodes date and time.
func (r *Reader) DateTime() (daytime.DateTime, error) {
	d, err := r.Date()
	if err != nil {
		return daytime.DateTime{}, errors.Wrap(err, "date")
	}
	t, err := r.Time()
	if err != nil {
		return daytime.DateTime{}, errors.Wrap(err, "time")
	}
	return daytime.NewDateTime(d, t), nil
}

const defaultReaderSize = 1024 // 1kb

// NewReader initializes new Reader from provided io.Reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		s: bufio.NewReaderSize(r, defaultReaderSize),
		b: &Buffer{},
	}
}
