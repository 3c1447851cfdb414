package compress

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/klauspost/compress/gzip"

	"github.com/arloliu/kymaosc/internal/pool"
)

// gzipMagic is the stream prefix mandated by RFC 1952.
var gzipMagic = [2]byte{0x1F, 0x8B}

// IsGzip reports whether data begins with the GZIP magic number.
//
// The magic number gates the GZIP path during compression resolution: a
// payload that carries it is either valid GZIP or an error, never raw
// record data.
func IsGzip(data []byte) bool {
	return len(data) >= 2 && data[0] == gzipMagic[0] && data[1] == gzipMagic[1]
}

// GzipCompressor implements full GZIP packaging (RFC 1952): DEFLATE wrapped
// in the gzip header and CRC trailer. Kyma emits this framing from some
// hosts, so the decode path must accept it even though the marked DEFLATE
// form is more common.
type GzipCompressor struct{}

var _ Codec = (*GzipCompressor)(nil)

// NewGzipCompressor creates a new GZIP compressor.
func NewGzipCompressor() GzipCompressor {
	return GzipCompressor{}
}

// gzipWriterPool pools gzip writers for reuse via Reset.
var gzipWriterPool = sync.Pool{
	New: func() any {
		return gzip.NewWriter(nil)
	},
}

// gzipReaderPool pools gzip readers. A zero gzip.Reader is initialized by
// Reset, so the pool hands out empty readers.
var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// Compress compresses data into a single-member GZIP stream.
func (c GzipCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	buf := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(buf)

	gw, _ := gzipWriterPool.Get().(*gzip.Writer)
	defer gzipWriterPool.Put(gw)

	gw.Reset(buf)
	if _, err := gw.Write(data); err != nil {
		return nil, fmt.Errorf("gzip compression failed: %w", err)
	}
	if err := gw.Close(); err != nil {
		return nil, fmt.Errorf("gzip compression failed: %w", err)
	}

	return buf.CopyBytes(), nil
}

// Decompress decompresses a single GZIP member, validating the header and
// the CRC trailer. Bytes past the end of the member are ignored.
func (c GzipCompressor) Decompress(data []byte) ([]byte, error) {
	gr, _ := gzipReaderPool.Get().(*gzip.Reader)
	defer gzipReaderPool.Put(gr)

	if err := gr.Reset(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("gzip decompression failed: %w", err)
	}
	gr.Multistream(false)

	buf := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(buf)

	if _, err := buf.ReadFrom(gr); err != nil {
		return nil, fmt.Errorf("gzip decompression failed: %w", err)
	}

	return buf.CopyBytes(), nil
}
