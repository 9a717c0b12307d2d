package proto

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/go-faster/daytime"
)

// Buffer implements binary encoding of daytime values.
type Buffer struct {
	Buf []byte
}

// Reader returns new *Reader from *Buffer.
func (b *Buffer) Reader() *Reader {
	return NewReader(bytes.NewReader(b.Buf))
}

// Ensure Buf length.
func (b *Buffer) Ensure(n int) {
	b.Buf = append(b.Buf[:0], make([]byte, n)...)
}

// Encoder implements encoding to Buffer.
type Encoder interface {
	Encode(b *Buffer)
}

// Encode value that implements Encoder.
func (b *Buffer) Encode(e Encoder) {
	e.Encode(b)
}

// Reset buffer to zero length.
func (b *Buffer) Reset() {
	b.Buf = b.Buf[:0]
}

// Read implements io.Reader.
func (b *Buffer) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	if len(b.Buf) == 0 {
		return 0, io.EOF
	}
	n = copy(p, b.Buf)
	b.Buf = b.Buf[n:]
	return n, nil
}

// PutRaw writes v as raw bytes to buffer.
func (b *Buffer) PutRaw(v []byte) {
	b.Buf = append(b.Buf, v...)
}

// PutUVarInt encodes x as uvarint.
func (b *Buffer) PutUVarInt(x uint64) {
	var buf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(buf[:], x)
	b.Buf = append(b.Buf, buf[:n]...)
}

// PutInt encodes integer as uvarint.
func (b *Buffer) PutInt(x int) {
	b.PutUVarInt(uint64(x))
}

// PutLen encodes length to buffer as uvarint.
func (b *Buffer) PutLen(x int) {
	b.PutUVarInt(uint64(x))
}

// PutString encodes sting value to buffer.
func (b *Buffer) PutString(s string) {
	b.PutLen(len(s))
	b.Buf = append(b.Buf, s...)
}

func (b *Buffer) PutUInt8(x uint8) {
	b.Buf = append(b.Buf, x)
}

func (b *Buffer) PutInt8(x int8) {
	b.PutUInt8(uint8(x))
}

func (b *Buffer) PutUInt64(x uint64) {
	var buf [64 / 8]byte
	bin.PutUint64(buf[:], x)
	b.Buf = append(b.Buf, buf[:]...)
}

func (b *Buffer) PutInt64(x int64) {
	b.PutUInt64(uint64(x))
}

// PutDate encodes day number of d.
func (b *Buffer) PutDate(d daytime.Date) {
	b.PutInt64(d.Days())
}

// PutTimeHeader encodes precision and offset of time.
func (b *Buffer) PutTimeHeader(p daytime.Precision, o daytime.Offset) {
	b.PutUInt8(uint8(p))
	b.PutInt8(int8(o))
}

// PutTimeTicks encodes time value without header.
func (b *Buffer) PutTimeTicks(t daytime.Time) {
	b.PutUInt64(uint64(t.Duration() / t.Precision().Duration()))
}

// PutTime encodes t with its header.
func (b *Buffer) PutTime(t daytime.Time) {
	b.PutTimeHeader(t.Precision(), t.Offset())
	b.PutTimeTicks(t)
}

// PutDateTime encodes date and time of dt.
func (b *Buffer) PutDateTime(dt daytime.DateTime) {
	b.PutDate(dt.Date())
	b.PutTime(dt.Time())
}
