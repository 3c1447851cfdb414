package compress

import (
	"fmt"

	"github.com/arloliu/kymaosc/format"
)

// Compressor compresses VCS record payloads before they are wrapped in an
// OSC envelope.
//
// Payloads are small and regular: a sequence of fixed 8-byte event records,
// typically a few dozen per message. Compression pays off because Kyma
// batches widget updates, and runs of near-identical records compress well
// with DEFLATE-family algorithms.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	//   - Internal buffers may be reused for efficiency
	Compress(data []byte) ([]byte, error)
}

// Decompressor recovers VCS record payloads from their wire form.
//
// Implementations validate the stream framing of their algorithm and return
// an error for corrupted or foreign data; compression resolution relies on
// that failure signal to tell the payload packagings apart.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original result.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	//   - Internal buffers may be reused for efficiency
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec is a factory function that creates a Codec for the specified
// packaging scheme.
//
// Parameters:
//   - scheme: Payload packaging scheme (None, Deflate, MarkedDeflate or Gzip)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: Codec instance for the specified scheme
//   - error: Invalid scheme error
func CreateCodec(scheme format.Scheme, target string) (Codec, error) {
	switch scheme {
	case format.SchemeNone:
		return NewNoOpCompressor(), nil
	case format.SchemeDeflate:
		return NewDeflateCompressor(), nil
	case format.SchemeMarkedDeflate:
		return NewMarkedDeflateCompressor(), nil
	case format.SchemeGzip:
		return NewGzipCompressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression scheme: %s", target, scheme)
	}
}

var builtinCodecs = map[format.Scheme]Codec{
	format.SchemeNone:          NewNoOpCompressor(),
	format.SchemeDeflate:       NewDeflateCompressor(),
	format.SchemeMarkedDeflate: NewMarkedDeflateCompressor(),
	format.SchemeGzip:          NewGzipCompressor(),
}

// GetCodec retrieves a built-in Codec for the specified packaging scheme.
func GetCodec(scheme format.Scheme) (Codec, error) {
	if codec, ok := builtinCodecs[scheme]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression scheme: %s", scheme)
}
