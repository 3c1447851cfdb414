package format

// Scheme identifies how a VCS blob payload is packaged on the wire.
type Scheme uint8

const (
	SchemeNone          Scheme = 0x1 // SchemeNone represents a verbatim, uncompressed payload.
	SchemeDeflate       Scheme = 0x2 // SchemeDeflate represents a headerless DEFLATE stream.
	SchemeMarkedDeflate Scheme = 0x3 // SchemeMarkedDeflate represents a '?'-marked headerless DEFLATE stream.
	SchemeGzip          Scheme = 0x4 // SchemeGzip represents a full GZIP stream.
)

// DeflateMarker is the single-byte prefix some Kyma senders place in front of
// a headerless DEFLATE stream.
const DeflateMarker byte = '?'

func (s Scheme) String() string {
	switch s {
	case SchemeNone:
		return "None"
	case SchemeDeflate:
		return "Deflate"
	case SchemeMarkedDeflate:
		return "MarkedDeflate"
	case SchemeGzip:
		return "Gzip"
	default:
		return "Unknown"
	}
}
