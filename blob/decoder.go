package blob

import (
	"github.com/arloliu/kymaosc/envelope"
	"github.com/arloliu/kymaosc/format"
)

// Decoder decodes one /vcs message into its events.
//
// NewDecoder validates the OSC envelope eagerly; Decode resolves the blob
// packaging and decodes the event records. The decoder borrows the input
// buffer and never mutates it, but the buffer must stay alive and unchanged
// until Decode returns.
//
// Note: The Decoder is NOT thread-safe. Each decoder instance should be used
// by a single goroutine at a time; concurrent decodes of independent buffers
// with independent decoders are safe.
type Decoder struct {
	env    envelope.Envelope
	scheme format.Scheme
}

// NewDecoder creates a Decoder for one complete /vcs message.
//
// The envelope is validated immediately: the address pattern, type tag and
// blob length field must all check out before a decoder is returned.
//
// Parameters:
//   - data: Complete OSC message buffer (one datagram)
//
// Returns:
//   - *Decoder: Decoder ready to decode the blob payload
//   - error: ErrTooShort, ErrMalformedAddress, ErrUnexpectedAddress,
//     ErrInvalidTypeTag, ErrTruncatedLength or ErrTruncatedBlob
func NewDecoder(data []byte) (*Decoder, error) {
	env, err := envelope.Parse(data)
	if err != nil {
		return nil, err
	}

	return &Decoder{env: env}, nil
}

// Decode resolves the blob packaging and decodes the event records.
//
// An empty blob is not an error: Kyma emits zero-length blobs for messages
// that report no changes, and they decode to an empty, non-nil event list
// without touching the resolver. Every other payload goes through Resolve
// and then record decoding.
//
// The returned slice is newly allocated and shares nothing with the input
// buffer.
//
// Returns:
//   - []Event: Decoded events in blob order, one per 8-byte record
//   - error: ErrEmptyBlob is never returned here; ErrDecompressionFailed,
//     ErrInvalidGzip or ErrMisalignedRecordData from resolution
func (d *Decoder) Decode() ([]Event, error) {
	if len(d.env.Blob) == 0 {
		d.scheme = format.SchemeNone
		return []Event{}, nil
	}

	data, scheme, err := Resolve(d.env.Blob)
	if err != nil {
		return nil, err
	}
	d.scheme = scheme

	return decodeRecords(data), nil
}

// Scheme returns the packaging scheme detected by the last successful
// Decode, or zero if Decode has not succeeded yet. An empty blob reports
// format.SchemeNone.
func (d *Decoder) Scheme() format.Scheme {
	return d.scheme
}

// BlobSize returns the wire size of the blob payload in bytes, before any
// decompression.
func (d *Decoder) BlobSize() int {
	return len(d.env.Blob)
}
