package proto

import (
	"github.com/go-faster/errors"

	"github.com/go-faster/daytime"
)

// ColDate is column of daytime.Date.
type ColDate []daytime.Date

var _ ColumnOf[daytime.Date] = (*ColDate)(nil)

func (c ColDate) Type() ColumnType {
	return ColumnTypeDate
}

func (c ColDate) Rows() int {
	return len(c)
}

func (c *ColDate) Reset() {
	*c = (*c)[:0]
}

func (c *ColDate) Append(v daytime.Date) {
	*c = append(*c, v)
}

func (c ColDate) Row(i int) daytime.Date {
	return c[i]
}

// EncodeColumn encodes day numbers of every row.
func (c ColDate) EncodeColumn(b *Buffer) {
	for _, v := range c {
		b.PutDate(v)
	}
}

// DecodeColumn decodes rows day numbers.
func (c *ColDate) DecodeColumn(r *Reader, rows int) error {
	for i := 0; i < rows; i++ {
		v, err := r.Date()
		if err != nil {
			return errors.Wrapf(err, "[%d]", i)
		}
		c.Append(v)
	}
	return nil
}
