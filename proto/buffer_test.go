package proto

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-faster/daytime"
)

func TestBuffer(t *testing.T) {
	var b Buffer

	b.PutString("Hello, world!")
	b.PutInt(1)
	b.PutInt8(-2)
	b.PutUInt8(3)
	b.PutInt64(-4)
	b.PutUInt64(5)
	b.PutUVarInt(300)
	b.PutLen(114)
	b.PutRaw([]byte{1, 2, 3, 4})

	r := b.Reader()
	s, err := r.Str()
	require.NoError(t, err)
	assert.Equal(t, "Hello, world!", s)

	i, err := r.Int()
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	i8, err := r.Int8()
	require.NoError(t, err)
	assert.Equal(t, int8(-2), i8)

	u8, err := r.UInt8()
	require.NoError(t, err)
	assert.Equal(t, uint8(3), u8)

	i64, err := r.Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(-4), i64)

	u64, err := r.UInt64()
	require.NoError(t, err)
	assert.Equal(t, uint64(5), u64)

	uv, err := r.UVarInt()
	require.NoError(t, err)
	assert.Equal(t, uint64(300), uv)

	l, err := r.Int()
	require.NoError(t, err)
	assert.Equal(t, 114, l)

	raw := make([]byte, 4)
	_, err = io.ReadFull(r.s, raw)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4}, raw)

	_, err = r.UInt8()
	assert.ErrorIs(t, err, io.EOF)
}

func TestBuffer_Values(t *testing.T) {
	dt, err := daytime.ParseDateTime("2024-02-29T10:20:30.400+05")
	require.NoError(t, err)

	var b Buffer
	b.PutDate(dt.Date())
	assert.Equal(t, []byte{0x26, 0xb1, 0, 0, 0, 0, 0, 0}, b.Buf, "day 45350")

	b.Reset()
	b.PutTime(dt.Time())
	assert.Equal(t, []byte{
		byte(daytime.PrecisionMillisecond), 5,
		0x40, 0x17, 0x38, 0x02, 0, 0, 0, 0,
	}, b.Buf, "37230400ms")

	b.Reset()
	b.PutDateTime(dt)
	out, err := b.Reader().DateTime()
	require.NoError(t, err)
	assert.True(t, dt.Equal(out))
	assert.Equal(t, dt.Time().Offset(), out.Time().Offset())
	assert.Equal(t, dt.String(), out.String())
}

func TestReader_Invalid(t *testing.T) {
	for _, tc := range []struct {
		Name string
		Data []byte
	}{
		{Name: "Empty"},
		{Name: "Precision", Data: []byte{10, 0, 0, 0, 0, 0, 0, 0, 0, 0}},
		{Name: "Offset", Data: []byte{0, 13, 0, 0, 0, 0, 0, 0, 0, 0}},
		{Name: "NegativeOffset", Data: []byte{0, 0xf3, 0, 0, 0, 0, 0, 0, 0, 0}},
		{Name: "Overflow", Data: []byte{0, 0, 0xa0, 0x05, 0, 0, 0, 0, 0, 0}},
		{Name: "Truncated", Data: []byte{0, 0, 1, 2}},
	} {
		t.Run(tc.Name, func(t *testing.T) {
			b := Buffer{Buf: tc.Data}
			_, err := b.Reader().Time()
			require.Error(t, err)
		})
	}
}
