// Package compress implements block compression with checksums.
package compress

import (
	"encoding/binary"
	"fmt"

	"github.com/go-faster/city"
)

//go:generate go run github.com/dmarkham/enumer -transform snake_upper -type Method -output method_enum.go

// Method is compression codec.
type Method byte

// Possible compression methods.
const (
	None Method = iota
	LZ4
	ZSTD
	NumMethods int = iota
)

// methodEncoding is Method representation in block header.
type methodEncoding byte

const (
	encodingNone methodEncoding = 0x02
	encodingLZ4  methodEncoding = 0x82
	encodingZSTD methodEncoding = 0x90
)

var methodTable = map[Method]methodEncoding{
	None: encodingNone,
	LZ4:  encodingLZ4,
	ZSTD: encodingZSTD,
}

// Block layout:
//
//	checksum (16) | method (1) | compressed size (4) | raw size (4) | payload
//
// Compressed size includes method and sizes. Checksum is CityHash128 of
// everything that follows it.
const (
	checksumSize       = 16
	compressHeaderSize = 1 + 4 + 4
	headerSize         = checksumSize + compressHeaderSize
	maxBlockSize       = 1024 * 1024 * 128 // 128MB

	hMethod         = 16
	hCompressedSize = 17
	hRawSize        = 21
)

var bin = binary.LittleEndian

// CorruptedDataErr means that provided hash mismatch with calculated.
type CorruptedDataErr struct {
	Actual    city.U128
	Reference city.U128
	RawSize   int
	DataSize  int
}

func (c *CorruptedDataErr) Error() string {
	return fmt.Sprintf("corrupted data: %s (actual), %s (reference), compressed size: %d, data size: %d",
		formatU128(c.Actual), formatU128(c.Reference), c.RawSize, c.DataSize,
	)
}

func formatU128(v city.U128) string {
	return fmt.Sprintf("%016x%016x", v.High, v.Low)
}
