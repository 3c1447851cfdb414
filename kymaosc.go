// Package kymaosc decodes and encodes the OSC /vcs messages a Kyma system
// uses to broadcast Virtual Control Surface state.
//
// A /vcs message is an OSC datagram whose single ,b blob argument carries
// widget-change events: fixed 8-byte records pairing a big-endian int32
// widget identifier with a big-endian float32 value. The blob arrives in one
// of four packagings (verbatim, headerless DEFLATE, marker-prefixed DEFLATE,
// or gzip); the decoder detects the packaging automatically.
//
// # Core Features
//
//   - Tolerant payload resolution across all four wire packagings
//   - Strict envelope validation with sentinel errors for each failure mode
//   - Bit-exact float32 handling (NaN payloads pass through untouched)
//   - Encoder with configurable payload compression
//   - Pooled buffers on the hot decode and encode paths
//
// # Basic Usage
//
// Decoding a datagram:
//
//	events, err := kymaosc.Decode(datagram)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, ev := range events {
//	    fmt.Printf("widget=%d value=%f\n", ev.EventID, ev.Value)
//	}
//
// Encoding events:
//
//	msg, err := kymaosc.Encode([]blob.Event{
//	    {EventID: 42, Value: 0.5},
//	    {EventID: 7, Value: -1.0},
//	}, blob.WithCompression(format.SchemeDeflate))
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the blob
// package, simplifying the most common use cases. For stepwise decoding,
// packaging inspection or lower-level framing, use the blob, envelope and
// compress packages directly.
package kymaosc

import (
	"github.com/arloliu/kymaosc/blob"
)

// Decode extracts the widget-change events from a complete /vcs datagram.
//
// This is the one-shot entry point for the common case: it validates the
// envelope, resolves the blob packaging and splits the payload into events.
//
// Parameters:
//   - data: The raw datagram bytes (typically one UDP packet)
//
// Returns:
//   - []blob.Event: Decoded events in wire order, never nil on success.
//   - error: An error wrapping one of the errs package sentinels.
//
// Example:
//
//	events, err := kymaosc.Decode(datagram)
//	if err != nil {
//	    log.Printf("not a VCS message: %v", err)
//	    return
//	}
func Decode(data []byte) ([]blob.Event, error) {
	decoder, err := blob.NewDecoder(data)
	if err != nil {
		return nil, err
	}

	return decoder.Decode()
}

// Encode builds a complete /vcs datagram from events.
//
// Parameters:
//   - events: Events to serialize, in order
//   - opts: Optional configuration functions (see blob.EncoderOption)
//
// Returns:
//   - []byte: Complete OSC message ready to send.
//   - error: An error if the configuration is invalid or compression fails.
//
// Available options:
//   - blob.WithCompression(format.SchemeNone|SchemeDeflate|SchemeMarkedDeflate|SchemeGzip)
//   - blob.WithEventCapacity(n)
//
// Example:
//
//	msg, err := kymaosc.Encode(events, blob.WithCompression(format.SchemeGzip))
func Encode(events []blob.Event, opts ...blob.EncoderOption) ([]byte, error) {
	encoder, err := blob.NewEncoder(opts...)
	if err != nil {
		return nil, err
	}
	encoder.AddEvents(events...)

	return encoder.Finish()
}

// NewDecoder creates a stepwise decoder for a /vcs datagram.
//
// The envelope is validated immediately; payload resolution is deferred to
// Decode. Use this instead of Decode when the detected packaging or the raw
// blob size is of interest.
//
// Parameters:
//   - data: The raw datagram bytes
//
// Returns:
//   - *blob.Decoder: The created decoder.
//   - error: An error if the envelope is not a well-formed /vcs message.
//
// Example:
//
//	decoder, err := kymaosc.NewDecoder(datagram)
//	if err != nil {
//	    return err
//	}
//	events, err := decoder.Decode()
//	log.Printf("packaging: %s", decoder.Scheme())
func NewDecoder(data []byte) (*blob.Decoder, error) {
	return blob.NewDecoder(data)
}

// NewEncoder creates an event encoder with custom options.
//
// Parameters:
//   - opts: Optional configuration functions (see blob.EncoderOption)
//
// Returns:
//   - *blob.Encoder: The created encoder.
//   - error: An error if the configuration is invalid.
//
// Example:
//
//	encoder, err := kymaosc.NewEncoder(blob.WithCompression(format.SchemeDeflate))
//	encoder.AddEvent(42, 0.5)
//	msg, err := encoder.Finish()
func NewEncoder(opts ...blob.EncoderOption) (*blob.Encoder, error) {
	return blob.NewEncoder(opts...)
}
