package compress

import (
	"fmt"

	"github.com/arloliu/kymaosc/format"
	"github.com/arloliu/kymaosc/internal/pool"
)

// MarkedDeflateCompressor implements the '?'-marked DEFLATE packaging: a
// single 0x3F marker byte followed by a headerless DEFLATE stream.
//
// Some Kyma senders emit the marker so receivers can recognize compression
// without probing. The marker byte is not part of the compressed stream.
type MarkedDeflateCompressor struct{}

var _ Codec = (*MarkedDeflateCompressor)(nil)

// NewMarkedDeflateCompressor creates a new '?'-marked DEFLATE compressor.
func NewMarkedDeflateCompressor() MarkedDeflateCompressor {
	return MarkedDeflateCompressor{}
}

// Compress compresses data into a headerless DEFLATE stream prefixed with
// the '?' marker byte.
func (c MarkedDeflateCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	buf := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(buf)

	buf.B = append(buf.B, format.DeflateMarker)
	if err := deflateInto(buf, data); err != nil {
		return nil, err
	}

	return buf.CopyBytes(), nil
}

// Decompress strips the '?' marker and inflates the remaining headerless
// DEFLATE stream. Input without the marker is rejected.
func (c MarkedDeflateCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 || data[0] != format.DeflateMarker {
		return nil, fmt.Errorf("missing %q deflate marker", format.DeflateMarker)
	}

	return DeflateCompressor{}.Decompress(data[1:])
}
