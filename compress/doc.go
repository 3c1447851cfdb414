// Package compress provides the payload packaging codecs for Kyma VCS blobs.
//
// A VCS blob carries fixed 8-byte event records, but the bytes on the wire
// arrive in one of four packagings depending on the sending host and payload
// size. This package implements all four behind a common codec interface;
// packaging detection itself (which codec applies to an incoming payload)
// lives in the blob package, because it is a property of the message format,
// not of any single algorithm.
//
// # Packagings
//
// **Verbatim** (format.SchemeNone)
//
//	codec := compress.NewNoOpCompressor()
//
// Raw record bytes with no compression. Kyma uses this for small blobs where
// compression overhead exceeds the savings. The codec passes data through
// without copying.
//
// **Headerless DEFLATE** (format.SchemeDeflate)
//
//	codec := compress.NewDeflateCompressor()
//
// A raw RFC 1951 stream with no framing at all: no zlib header, no gzip
// header, no marker byte. There is no magic number to detect; the stream is
// recognized by inflating it and seeing whether it holds up. Decompress
// returns an error for anything that is not a complete raw stream, which is
// the signal packaging detection relies on.
//
// **Marked DEFLATE** (format.SchemeMarkedDeflate)
//
//	codec := compress.NewMarkedDeflateCompressor()
//
// A single '?' (0x3F) marker byte followed by a headerless DEFLATE stream.
// The marker lets receivers recognize compression without probing. A '?'
// payload whose remainder does not inflate is an error, never raw data.
//
// **GZIP** (format.SchemeGzip)
//
//	codec := compress.NewGzipCompressor()
//
// Full RFC 1952 framing: header, DEFLATE body, CRC32 trailer. Detected by
// the two-byte magic number (see IsGzip). The CRC is verified; a payload
// with the magic number that fails to decode is an error, never raw data.
//
// # Interfaces
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// Codecs are obtained from the scheme-keyed factories:
//
//	codec, err := compress.GetCodec(format.SchemeDeflate)
//	codec, err := compress.CreateCodec(scheme, "event payload")
//
// # Memory Management
//
// Compress and Decompress return newly allocated slices owned by the caller
// (the NoOp codec is the documented exception: it aliases its input). The
// DEFLATE and GZIP codecs stage work in pooled buffers and reuse flate and
// gzip coder state through sync.Pool, so steady-state operation allocates
// only the returned slices.
//
// # Thread Safety
//
// All codecs are stateless values and safe for concurrent use. Pooled
// internal state is per-operation.
package compress
