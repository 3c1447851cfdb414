// Package errs defines the sentinel errors returned while decoding Kyma VCS
// messages. Callers match them with errors.Is; decode paths wrap them with
// fmt.Errorf("%w: ...") to attach detail.
package errs

import "errors"

// Envelope errors, reported before the blob payload is touched.
var (
	// ErrTooShort indicates the buffer cannot hold the minimal /vcs envelope
	// (address field, type tag field and blob length field).
	ErrTooShort = errors.New("buffer too short to contain required fields")

	// ErrMalformedAddress indicates the address pattern is not NUL-terminated.
	ErrMalformedAddress = errors.New("address pattern not null-terminated")

	// ErrUnexpectedAddress indicates the address pattern is not "/vcs".
	ErrUnexpectedAddress = errors.New("unexpected address pattern")

	// ErrInvalidTypeTag indicates the type tag field is not ",b".
	ErrInvalidTypeTag = errors.New(`invalid type tag, expected ",b"`)

	// ErrTruncatedLength indicates the buffer ends before the 4-byte blob
	// length field.
	ErrTruncatedLength = errors.New("buffer too short for blob length")

	// ErrTruncatedBlob indicates the buffer holds fewer blob bytes than the
	// length field declares.
	ErrTruncatedBlob = errors.New("buffer too short for blob data")
)

// Payload errors, reported while resolving and decoding the blob payload.
var (
	// ErrEmptyBlob indicates a compression resolution attempt on an empty
	// payload.
	ErrEmptyBlob = errors.New("blob payload is empty")

	// ErrDecompressionFailed indicates a '?'-marked payload whose remainder
	// is not a valid headerless DEFLATE stream.
	ErrDecompressionFailed = errors.New("marked deflate decompression failed")

	// ErrInvalidGzip indicates a payload carrying the GZIP magic number that
	// does not decompress as GZIP.
	ErrInvalidGzip = errors.New("invalid gzip data")

	// ErrMisalignedRecordData indicates resolved record data whose length is
	// not a multiple of the 8-byte record size.
	ErrMisalignedRecordData = errors.New("record data length is not a multiple of 8")
)
