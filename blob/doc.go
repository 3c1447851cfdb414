// Package blob provides high-level APIs for decoding and encoding Kyma VCS
// event messages.
//
// This package is the primary interface for working with /vcs traffic. It
// turns a raw OSC datagram into the widget-change events it carries, and
// builds well-formed datagrams from events. The envelope walk, payload
// packaging detection and record layout live in the envelope, compress and
// format packages; blob ties them together.
//
// # Core Types
//
// **Event**: One widget change, a widget identifier paired with its new value.
//
// **Decoder**: Reads events from a complete OSC message. Created with
// NewDecoder, which validates the envelope up front.
//
// **Encoder**: Builds a complete OSC message from queued events with a
// configurable payload packaging.
//
// # Decoding Workflow
//
// Decoding is a two-step process:
//
//	// 1. Parse the envelope
//	decoder, err := blob.NewDecoder(datagram)
//	if err != nil {
//	    return err // not a /vcs message
//	}
//
//	// 2. Resolve the payload and split it into events
//	events, err := decoder.Decode()
//	for _, ev := range events {
//	    fmt.Printf("widget=%d value=%f\n", ev.EventID, ev.Value)
//	}
//
// The payload packaging is detected automatically; after Decode the detected
// scheme is available via decoder.Scheme().
//
// # Encoding Workflow
//
//	encoder, err := blob.NewEncoder(
//	    blob.WithCompression(format.SchemeDeflate),
//	)
//
//	encoder.AddEvent(42, 0.5)
//	encoder.AddEvent(7, -1.0)
//
//	msg, err := encoder.Finish()
//
// # Payload Packagings
//
// The blob inside a /vcs message arrives in one of four packagings, resolved
// in a fixed order by Resolve:
//   - format.SchemeDeflate: headerless DEFLATE stream
//   - format.SchemeMarkedDeflate: '?' marker byte followed by a DEFLATE stream
//   - format.SchemeGzip: standard gzip member
//   - format.SchemeNone: verbatim record data
//
// # Thread Safety
//
// **Encoders**: Not thread-safe. Use one encoder per goroutine.
//
// **Decoders**: Not thread-safe. Decode mutates the detected scheme.
//
// **Events**: Plain values, safe to share.
//
// # Error Handling
//
// All decode failures are wrapped around the sentinel errors in the errs
// package and match with errors.Is:
//   - errs.ErrUnexpectedAddress: Message addressed to something other than /vcs
//   - errs.ErrTruncatedBlob: Declared blob length overruns the datagram
//   - errs.ErrDecompressionFailed: Marked payload with a corrupt DEFLATE stream
//   - errs.ErrInvalidGzip: Gzip magic with a corrupt member
//   - errs.ErrMisalignedRecordData: Resolved payload is not whole 8-byte records
//
// # Examples
//
// See the examples directory for complete working examples:
//   - examples/decode_demo: Decoding fixed datagrams in each packaging
//   - examples/listen_demo: Decoding live UDP traffic
package blob
