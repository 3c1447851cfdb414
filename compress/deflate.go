package compress

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/flate"

	"github.com/arloliu/kymaosc/internal/pool"
)

// DeflateCompressor implements the headerless DEFLATE packaging Kyma uses for
// most compressed VCS blobs: a raw RFC 1951 stream with no zlib or gzip
// framing and no marker byte.
//
// Decompress doubles as the probe for compression resolution. A raw DEFLATE
// stream carries no magic number, so the only way to recognize one is to
// inflate it and see whether the stream structure holds up; Decompress
// returns an error for anything that is not a complete raw stream.
type DeflateCompressor struct{}

var _ Codec = (*DeflateCompressor)(nil)

// NewDeflateCompressor creates a new headerless DEFLATE compressor.
func NewDeflateCompressor() DeflateCompressor {
	return DeflateCompressor{}
}

// flateReader is the reuse surface of a pooled flate reader. The reader
// returned by flate.NewReader implements Resetter for exactly this purpose.
type flateReader interface {
	io.ReadCloser
	flate.Resetter
}

// flateReaderPool pools flate readers for reuse. Resetting a pooled reader
// is much cheaper than building the Huffman state from scratch per payload.
var flateReaderPool = sync.Pool{
	New: func() any {
		return flate.NewReader(nil).(flateReader)
	},
}

// flateWriterPool pools flate writers for reuse via Reset.
var flateWriterPool = sync.Pool{
	New: func() any {
		w, err := flate.NewWriter(nil, flate.DefaultCompression)
		if err != nil {
			// DefaultCompression is always a valid level
			panic(fmt.Sprintf("failed to create flate writer for pool: %v", err))
		}
		return w
	},
}

// Compress compresses data into a headerless DEFLATE stream.
func (c DeflateCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	buf := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(buf)

	if err := deflateInto(buf, data); err != nil {
		return nil, err
	}

	return buf.CopyBytes(), nil
}

// Decompress inflates a headerless DEFLATE stream.
//
// Empty input is an error: a raw DEFLATE stream always contains at least a
// final block header. Bytes past the end of the stream are ignored.
func (c DeflateCompressor) Decompress(data []byte) ([]byte, error) {
	buf := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(buf)

	if err := inflateInto(buf, data); err != nil {
		return nil, err
	}

	return buf.CopyBytes(), nil
}

// deflateInto compresses data into buf using a pooled flate writer.
func deflateInto(buf *pool.ByteBuffer, data []byte) error {
	fw, _ := flateWriterPool.Get().(*flate.Writer)
	defer flateWriterPool.Put(fw)

	fw.Reset(buf)
	if _, err := fw.Write(data); err != nil {
		return fmt.Errorf("deflate compression failed: %w", err)
	}
	if err := fw.Close(); err != nil {
		return fmt.Errorf("deflate compression failed: %w", err)
	}

	return nil
}

// inflateInto decompresses a raw DEFLATE stream into buf using a pooled
// flate reader. A failed reader is still safe to pool; Reset rebuilds its
// state for the next use.
func inflateInto(buf *pool.ByteBuffer, data []byte) error {
	fr, _ := flateReaderPool.Get().(flateReader)
	defer flateReaderPool.Put(fr)

	if err := fr.Reset(bytes.NewReader(data), nil); err != nil {
		return fmt.Errorf("deflate decompression failed: %w", err)
	}
	if _, err := buf.ReadFrom(fr); err != nil {
		return fmt.Errorf("deflate decompression failed: %w", err)
	}

	return nil
}
