// Package proto implements binary encoding of daytime values.
//
// Values are encoded in little endian:
//
//	Date     int64 day number, 1900-01-01 is day 1
//	Time     uint8 precision, int8 offset, uint64 ticks since midnight
//	DateTime Date followed by Time
//
// Columns encode many values of one type and Block groups named columns
// with equal number of rows.
package proto

import "encoding/binary"

// Version of the encoding.
const Version = 1

var bin = binary.LittleEndian
