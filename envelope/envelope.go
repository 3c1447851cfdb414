package envelope

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"unicode/utf8"

	"github.com/arloliu/kymaosc/errs"
)

// Envelope is the parsed OSC envelope of a /vcs message.
//
// Blob references the input buffer directly; it stays valid only as long as
// the buffer does and must not be mutated through the envelope.
type Envelope struct {
	// Address is the OSC address pattern, always Address on success.
	Address string
	// Blob is the raw blob payload, zero-copy into the input buffer.
	Blob []byte
}

// Parse validates the OSC envelope of a /vcs message and extracts its blob
// payload without copying.
//
// The buffer must hold, in order: the NUL-terminated address pattern padded
// to a 4-byte boundary, the ",b" type tag field, a big-endian uint32 blob
// length, and that many payload bytes. Bytes after the blob are ignored;
// framing is the transport's concern.
//
// Returns:
//   - Envelope: Parsed envelope with the blob aliasing data
//   - error: ErrTooShort, ErrMalformedAddress, ErrUnexpectedAddress,
//     ErrInvalidTypeTag, ErrTruncatedLength or ErrTruncatedBlob
func Parse(data []byte) (Envelope, error) {
	if len(data) < MinMessageSize {
		return Envelope{}, fmt.Errorf("%w: %d bytes, need at least %d", errs.ErrTooShort, len(data), MinMessageSize)
	}

	addrEnd := bytes.IndexByte(data, 0)
	if addrEnd < 0 {
		return Envelope{}, errs.ErrMalformedAddress
	}

	addr := data[:addrEnd]
	if string(addr) != Address {
		if !utf8.Valid(addr) {
			return Envelope{}, errs.ErrUnexpectedAddress
		}

		return Envelope{}, fmt.Errorf("%w: %q", errs.ErrUnexpectedAddress, addr)
	}

	tagStart := paddedFieldSize(addrEnd)
	if tagStart+TypeTagFieldSize > len(data) ||
		data[tagStart] != TypeTag[0] || data[tagStart+1] != TypeTag[1] {
		return Envelope{}, errs.ErrInvalidTypeTag
	}

	lengthStart := tagStart + TypeTagFieldSize
	if lengthStart+LengthFieldSize > len(data) {
		return Envelope{}, errs.ErrTruncatedLength
	}

	blobLen := binary.BigEndian.Uint32(data[lengthStart:])
	blobStart := lengthStart + LengthFieldSize
	if uint64(blobLen) > uint64(len(data)-blobStart) {
		return Envelope{}, fmt.Errorf("%w: declared %d bytes, %d available",
			errs.ErrTruncatedBlob, blobLen, len(data)-blobStart)
	}

	return Envelope{
		Address: Address,
		Blob:    data[blobStart : blobStart+int(blobLen)],
	}, nil
}

// Append serializes a complete /vcs message around blob and appends it to
// dst, returning the extended buffer. The blob bytes are copied.
func Append(dst []byte, blob []byte) []byte {
	dst = appendPaddedString(dst, Address)
	dst = appendPaddedString(dst, TypeTag)
	dst = binary.BigEndian.AppendUint32(dst, uint32(len(blob)))
	dst = append(dst, blob...)

	return dst
}

// Size returns the serialized size of a /vcs message carrying a blob of
// blobLen bytes.
func Size(blobLen int) int {
	return paddedFieldSize(len(Address)) + TypeTagFieldSize + LengthFieldSize + blobLen
}

// paddedFieldSize returns the wire size of a NUL-terminated string field of
// n significant bytes: the terminator is counted before rounding up to the
// 4-byte boundary, so the field always ends with at least one NUL.
func paddedFieldSize(n int) int {
	return (n + 4) &^ 3
}

// appendPaddedString appends s, its NUL terminator and the 4-byte boundary
// padding to dst.
func appendPaddedString(dst []byte, s string) []byte {
	dst = append(dst, s...)
	for i := len(s); i < paddedFieldSize(len(s)); i++ {
		dst = append(dst, 0)
	}

	return dst
}
