package proto

import (
	"fmt"

	"github.com/go-faster/errors"

	"github.com/go-faster/daytime"
)

// ColTime is column of daytime.Time with shared precision and offset.
//
// Precision and offset are taken from the first appended value unless set
// explicitly.
type ColTime struct {
	Data      []daytime.Time
	Precision daytime.Precision
	Offset    daytime.Offset
	Set       bool
}

var _ ColumnOf[daytime.Time] = (*ColTime)(nil)

// WithPrecision sets column precision and offset.
func (c *ColTime) WithPrecision(p daytime.Precision, o daytime.Offset) *ColTime {
	c.Precision = p
	c.Offset = o
	c.Set = true
	return c
}

func (c ColTime) Type() ColumnType {
	if !c.Set {
		return ColumnTypeTime
	}
	return ColumnTypeTime.With(c.Precision.String(), c.Offset.String())
}

func (c ColTime) Rows() int {
	return len(c.Data)
}

func (c *ColTime) Reset() {
	c.Data = c.Data[:0]
}

// Append v to column.
//
// Panics if precision or offset of v differs from column's.
func (c *ColTime) Append(v daytime.Time) {
	if !c.Set {
		c.WithPrecision(v.Precision(), v.Offset())
	}
	if v.Precision() != c.Precision || v.Offset() != c.Offset {
		panic(fmt.Sprintf("proto: appending %s %s to %s column", v.Precision(), v.Offset(), c.Type()))
	}
	c.Data = append(c.Data, v)
}

func (c ColTime) Row(i int) daytime.Time {
	return c.Data[i]
}

// EncodeColumn encodes header followed by ticks of every row.
func (c ColTime) EncodeColumn(b *Buffer) {
	b.PutTimeHeader(c.Precision, c.Offset)
	for _, v := range c.Data {
		b.PutTimeTicks(v)
	}
}

// DecodeColumn decodes header and rows values.
func (c *ColTime) DecodeColumn(r *Reader, rows int) error {
	p, o, err := r.TimeHeader()
	if err != nil {
		return errors.Wrap(err, "header")
	}
	if c.Set && (p != c.Precision || o != c.Offset) {
		return errors.Errorf("got %s %s, expected %s", p, o, c.Type())
	}
	c.WithPrecision(p, o)
	for i := 0; i < rows; i++ {
		v, err := r.TimeTicks(p, o)
		if err != nil {
			return errors.Wrapf(err, "[%d]", i)
		}
		c.Data = append(c.Data, v)
	}
	return nil
}
