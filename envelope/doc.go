// Package envelope implements the OSC envelope of Kyma VCS messages.
//
// A VCS message is a single OSC message with address pattern "/vcs" and one
// blob argument. The envelope is the fixed framing around the blob payload;
// this package validates it on the way in (Parse) and produces it on the way
// out (Append). What the blob payload contains, and whether it is
// compressed, is the blob package's concern.
//
// # Wire Layout
//
// OSC aligns every field to a 4-byte boundary, counting the NUL terminator
// of string fields before rounding up:
//
//	┌──────────────────────────────────────────────┐
//	│ Address field (8 bytes for "/vcs")           │
//	│  - "/vcs" + NUL + 3 padding bytes            │
//	├──────────────────────────────────────────────┤
//	│ Type tag field (4 bytes)                     │
//	│  - ",b" + NUL + 1 padding byte               │
//	├──────────────────────────────────────────────┤
//	│ Blob length (4 bytes, big-endian uint32)     │
//	├──────────────────────────────────────────────┤
//	│ Blob payload (blob length bytes)             │
//	└──────────────────────────────────────────────┘
//
// A zero blob length is valid and carries an empty payload. Bytes after the
// blob are ignored.
//
// Parse borrows: the returned Envelope's Blob aliases the input buffer, so
// the envelope of a datagram can be inspected without copying.
//
// Only the exact "/vcs" + ",b" shape is accepted. Other addresses, other
// type tag strings and OSC bundles are out of scope and rejected with
// errs.ErrUnexpectedAddress or errs.ErrInvalidTypeTag.
package envelope
