package proto

import (
	"github.com/go-faster/errors"

	"github.com/go-faster/daytime"
)

// ColDateTime is column of daytime.DateTime, encoded as dates column
// followed by times column.
type ColDateTime struct {
	Date ColDate
	Time ColTime
}

var _ ColumnOf[daytime.DateTime] = (*ColDateTime)(nil)

func (c ColDateTime) Type() ColumnType {
	if !c.Time.Set {
		return ColumnTypeDateTime
	}
	return ColumnTypeDateTime.With(c.Time.Precision.String(), c.Time.Offset.String())
}

func (c ColDateTime) Rows() int {
	return c.Date.Rows()
}

func (c *ColDateTime) Reset() {
	c.Date.Reset()
	c.Time.Reset()
}

// Append v to column, see ColTime.Append.
func (c *ColDateTime) Append(v daytime.DateTime) {
	c.Time.Append(v.Time())
	c.Date.Append(v.Date())
}

func (c ColDateTime) Row(i int) daytime.DateTime {
	return daytime.NewDateTime(c.Date.Row(i), c.Time.Row(i))
}

func (c ColDateTime) EncodeColumn(b *Buffer) {
	c.Date.EncodeColumn(b)
	c.Time.EncodeColumn(b)
}

func (c *ColDateTime) DecodeColumn(r *Reader, rows int) error {
	if err := c.Date.DecodeColumn(r, rows); err != nil {
		return errors.Wrap(err, "date")
	}
	if err := c.Time.DecodeColumn(r, rows); err != nil {
		return errors.Wrap(err, "time")
	}
	return nil
}
