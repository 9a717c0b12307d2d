package compress

import (
	"github.com/go-faster/city"
	"github.com/go-faster/errors"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Writer encodes compressed blocks.
//
// Not safe for concurrent use.
type Writer struct {
	Data []byte

	lz4  *lz4.Compressor
	zstd *zstd.Encoder
}

// Compress buf into Data using method m.
func (w *Writer) Compress(m Method, buf []byte) error {
	if len(buf) > maxBlockSize {
		return errors.Errorf("buf size %d > %d", len(buf), maxBlockSize)
	}
	enc, ok := methodTable[m]
	if !ok {
		return errors.Errorf("unknown method %v", m)
	}

	maxSize := lz4.CompressBlockBound(len(buf))
	w.Data = append(w.Data[:0], make([]byte, maxSize+headerSize)...)
	_ = w.Data[:headerSize]
	w.Data[hMethod] = byte(enc)

	var n int
	switch m {
	case LZ4:
		if w.lz4 == nil {
			return errors.Errorf("writer was not configured to accept method: %v", m)
		}
		compressedSize, err := w.lz4.CompressBlock(buf, w.Data[headerSize:])
		if err != nil {
			return errors.Wrap(err, "block")
		}
		if compressedSize == 0 {
			// Incompressible data.
			w.Data[hMethod] = byte(encodingNone)
			compressedSize = copy(w.Data[headerSize:], buf)
		}
		n = compressedSize
	case ZSTD:
		if w.zstd == nil {
			return errors.Errorf("writer was not configured to accept method: %v", m)
		}
		w.Data = w.zstd.EncodeAll(buf, w.Data[:headerSize])
		n = len(w.Data) - headerSize
	case None:
		n = copy(w.Data[headerSize:], buf)
	}

	w.Data = w.Data[:n+headerSize]

	bin.PutUint32(w.Data[hCompressedSize:], uint32(n+compressHeaderSize))
	bin.PutUint32(w.Data[hRawSize:], uint32(len(buf)))
	h := city.CH128(w.Data[hMethod:])
	bin.PutUint64(w.Data[0:8], h.Low)
	bin.PutUint64(w.Data[8:16], h.High)

	return nil
}

// NewWriter creates a new Writer that supports only the specified methods,
// or all methods if none specified.
func NewWriter(methods ...Method) *Writer {
	if len(methods) == 0 {
		methods = MethodValues()
	}
	w := &Writer{}
	for _, m := range methods {
		switch m {
		case LZ4:
			w.lz4 = &lz4.Compressor{}
		case ZSTD:
			enc, err := zstd.NewWriter(nil,
				zstd.WithEncoderLevel(zstd.SpeedDefault),
				zstd.WithEncoderConcurrency(1),
				zstd.WithLowerEncoderMem(true),
			)
			if err != nil {
				panic(err)
			}
			w.zstd = enc
		case None:
			// Nothing to do.
		default:
			panic(errors.Errorf("unsupported compression method: %v", m))
		}
	}
	return w
}
