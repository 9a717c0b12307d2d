package proto

import (
	"io"

	"github.com/go-faster/errors"

	"github.com/go-faster/daytime/internal/compress"
)

// InputColumn is named column to encode.
type InputColumn struct {
	Name string
	Data Column
}

// EncodeStart encodes column name and type.
func (c InputColumn) EncodeStart(buf *Buffer) {
	buf.PutString(c.Name)
	buf.PutString(string(c.Data.Type()))
}

// ResultColumn is named column to decode into.
type ResultColumn struct {
	Name string // Name of column, required.
	Data Column // Data of column, required.
}

// Results is set of columns that block is decoded into.
type Results []ResultColumn

func (r Results) get(name string) (Column, bool) {
	for _, c := range r {
		if c.Name == name {
			return c.Data, true
		}
	}
	return nil, false
}

// Block is header of columns group.
type Block struct {
	Columns int
	Rows    int
}

// Encode block header.
func (b Block) Encode(buf *Buffer) {
	buf.PutInt(Version)
	buf.PutInt(b.Columns)
	buf.PutInt(b.Rows)
}

// End reports whether block is end of data marker.
func (b Block) End() bool {
	return b.Columns == 0 && b.Rows == 0
}

// EncodeBlock encodes header and input columns.
func (b Block) EncodeBlock(buf *Buffer, input []InputColumn) error {
	if len(input) != b.Columns {
		return errors.Errorf("got %d columns, expected %d", len(input), b.Columns)
	}
	b.Encode(buf)
	for _, col := range input {
		if r := col.Data.Rows(); r != b.Rows {
			return errors.Errorf("%q has %d rows, expected %d", col.Name, r, b.Rows)
		}
		col.EncodeStart(buf)
		col.Data.EncodeColumn(buf)
	}
	return nil
}

// EncodeCompressed encodes block with w using method m and appends
// compressed data to buf.
func (b Block) EncodeCompressed(buf *Buffer, w *compress.Writer, m compress.Method, input []InputColumn) error {
	var raw Buffer
	if err := b.EncodeBlock(&raw, input); err != nil {
		return errors.Wrap(err, "encode")
	}
	if err := w.Compress(m, raw.Buf); err != nil {
		return errors.Wrap(err, "compress")
	}
	buf.PutRaw(w.Data)
	return nil
}

const (
	maxColumnsInBlock = 1_000_000
	maxRowsInBlock    = 1_000_000
)

func checkRows(n int) error {
	if n < 0 || n > maxRowsInBlock {
		return errors.Errorf("invalid: %d < %d < %d",
			0, n, maxRowsInBlock,
		)
	}
	return nil
}

// DecodeBlock decodes header and columns into target.
//
// Every column of block must be present in target with the same base type.
func (b *Block) DecodeBlock(r *Reader, target Results) error {
	{
		v, err := r.Int()
		if err != nil {
			return errors.Wrap(err, "version")
		}
		if v != Version {
			return errors.Errorf("unsupported version %d", v)
		}
	}
	{
		v, err := r.Int()
		if err != nil {
			return errors.Wrap(err, "columns")
		}
		if v > maxColumnsInBlock || v < 0 {
			return errors.Errorf("invalid columns number %d", v)
		}
		b.Columns = v
	}
	{
		v, err := r.Int()
		if err != nil {
			return errors.Wrap(err, "rows")
		}
		if err := checkRows(v); err != nil {
			return errors.Wrap(err, "rows count")
		}
		b.Rows = v
	}
	for i := 0; i < b.Columns; i++ {
		name, err := r.Str()
		if err != nil {
			return errors.Wrapf(err, "column [%d] name", i)
		}
		t, err := r.Str()
		if err != nil {
			return errors.Wrapf(err, "column [%d] type", i)
		}
		col, ok := target.get(name)
		if !ok {
			return errors.Errorf("unexpected column %q", name)
		}
		if got, want := ColumnType(t), col.Type(); got != want && got.Base() != want {
			return errors.Errorf("column %q type mismatch: %s (got) != %s (expected)", name, got, want)
		}
		if err := col.DecodeColumn(r, b.Rows); err != nil {
			return errors.Wrapf(err, "column %q", name)
		}
	}
	return nil
}

// NewCompressedReader returns Reader that decompresses blocks written by
// Block.EncodeCompressed.
func NewCompressedReader(r io.Reader) *Reader {
	return NewReader(compress.NewReader(r))
}
