package proto

import (
	"fmt"
	"strings"
)

// ColumnType is type of column element.
type ColumnType string

func (c ColumnType) String() string {
	return string(c)
}

// Base returns type without parameters, "Time" for "Time(Second, +03)".
func (c ColumnType) Base() ColumnType {
	if i := strings.Index(string(c), "("); i > 0 {
		return c[:i]
	}
	return c
}

// With returns ColumnType(p1, p2, ...) from ColumnType.
func (c ColumnType) With(params ...string) ColumnType {
	if len(params) == 0 {
		return c
	}
	return ColumnType(fmt.Sprintf("%s(%s)", c, strings.Join(params, ", ")))
}

const (
	ColumnTypeNone     ColumnType = ""
	ColumnTypeDate     ColumnType = "Date"
	ColumnTypeTime     ColumnType = "Time"
	ColumnTypeDateTime ColumnType = "DateTime"
)

// Column of values.
type Column interface {
	Type() ColumnType
	Rows() int
	Reset()
	EncodeColumn(b *Buffer)
	DecodeColumn(r *Reader, rows int) error
}

// ColumnOf is generic Column with typed rows.
type ColumnOf[T any] interface {
	Column
	Append(v T)
	Row(i int) T
}
