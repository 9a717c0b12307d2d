package compress

import (
	"io"

	"github.com/go-faster/city"
	"github.com/go-faster/errors"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Reader decompresses blocks written by Writer.
//
// Not safe for concurrent use.
type Reader struct {
	reader io.Reader
	data   []byte
	pos    int64
	raw    []byte
	zstd   *zstd.Decoder
}

// readBlock reads next compressed block into raw and decompresses into data.
func (c *Reader) readBlock() error {
	c.pos = 0

	c.raw = append(c.raw[:0], make([]byte, headerSize)...)
	if _, err := io.ReadFull(c.reader, c.raw); err != nil {
		return errors.Wrap(err, "header")
	}

	var (
		compressedSize = int(bin.Uint32(c.raw[hCompressedSize:]))
		dataSize       = int(bin.Uint32(c.raw[hRawSize:]))
	)
	if compressedSize < compressHeaderSize || compressedSize > maxBlockSize {
		return errors.Errorf("compressed size should be %d < %d < %d", compressHeaderSize, compressedSize, maxBlockSize)
	}
	if dataSize < 0 || dataSize > maxBlockSize {
		return errors.Errorf("data size should be %d < %d < %d", 0, dataSize, maxBlockSize)
	}

	c.raw = append(c.raw, make([]byte, compressedSize-compressHeaderSize)...)
	if _, err := io.ReadFull(c.reader, c.raw[headerSize:]); err != nil {
		return errors.Wrap(err, "read raw")
	}
	h := city.CH128(c.raw[hMethod:])
	if ref := (city.U128{
		Low:  bin.Uint64(c.raw[0:8]),
		High: bin.Uint64(c.raw[8:16]),
	}); h != ref {
		return &CorruptedDataErr{
			Actual:    h,
			Reference: ref,
			RawSize:   compressedSize,
			DataSize:  dataSize,
		}
	}

	payload := c.raw[headerSize:]
	c.data = append(c.data[:0], make([]byte, dataSize)...)
	switch m := methodEncoding(c.raw[hMethod]); m {
	case encodingLZ4:
		n, err := lz4.UncompressBlock(payload, c.data)
		if err != nil {
			return errors.Wrap(err, "lz4")
		}
		c.data = c.data[:n]
	case encodingZSTD:
		if c.zstd == nil {
			d, err := zstd.NewReader(nil)
			if err != nil {
				return errors.Wrap(err, "zstd")
			}
			c.zstd = d
		}
		data, err := c.zstd.DecodeAll(payload, c.data[:0])
		if err != nil {
			return errors.Wrap(err, "zstd")
		}
		c.data = data
	case encodingNone:
		c.data = append(c.data[:0], payload...)
	default:
		return errors.Errorf("compression 0x%02x not implemented", byte(m))
	}
	if len(c.data) != dataSize {
		return errors.Errorf("decompressed %d bytes, expected %d", len(c.data), dataSize)
	}

	return nil
}

// Read implements io.Reader.
func (c *Reader) Read(p []byte) (n int, err error) {
	if c.pos >= int64(len(c.data)) {
		if err := c.readBlock(); err != nil {
			if errors.Is(err, io.EOF) {
				return 0, io.EOF
			}
			return 0, errors.Wrap(err, "read next block")
		}
	}
	n = copy(p, c.data[c.pos:])
	c.pos += int64(n)
	return n, nil
}

// NewReader returns new Reader of compressed blocks from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		reader: r,
	}
}
