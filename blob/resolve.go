package blob

import (
	"bytes"
	"fmt"

	"github.com/arloliu/kymaosc/compress"
	"github.com/arloliu/kymaosc/errs"
	"github.com/arloliu/kymaosc/format"
)

// Resolve determines how a blob payload is packaged and returns the raw
// record data together with the detected scheme.
//
// Nothing in the envelope says whether a payload is compressed, so
// resolution probes the payload in a fixed order:
//
//  1. An empty payload cannot be resolved: errs.ErrEmptyBlob.
//  2. If the whole payload inflates as a headerless DEFLATE stream, the
//     inflated bytes win: format.SchemeDeflate.
//  3. If the payload starts with the '?' marker, the remainder must
//     inflate: format.SchemeMarkedDeflate. A marked payload that does not
//     inflate is corrupt: errs.ErrDecompressionFailed.
//  4. If the payload starts with the GZIP magic number, it must decompress
//     as GZIP: format.SchemeGzip. Failure is errs.ErrInvalidGzip and never
//     falls through to verbatim.
//  5. Otherwise the payload is verbatim record data: format.SchemeNone.
//
// The order is a wire-compatibility contract; reordering it changes how
// ambiguous payloads decode. Steps 3 and 4 can only be reached when step 2
// fails, which is guaranteed for their inputs: both '?' (0x3F) and the GZIP
// magic byte (0x1F) open a DEFLATE block with the reserved type 3, so
// neither prefix ever inflates as a whole. The residual ambiguity is
// verbatim record data that happens to form a valid DEFLATE stream; such a
// payload resolves as compressed, matching the behavior of existing
// receivers.
//
// The returned slice is newly allocated and never aliases payload. Its
// length is always a multiple of RecordSize; resolved data that is not is
// rejected with errs.ErrMisalignedRecordData.
func Resolve(payload []byte) ([]byte, format.Scheme, error) {
	if len(payload) == 0 {
		return nil, 0, errs.ErrEmptyBlob
	}

	if data, err := decompressAs(format.SchemeDeflate, payload); err == nil {
		return aligned(data, format.SchemeDeflate)
	}

	if payload[0] == format.DeflateMarker {
		data, err := decompressAs(format.SchemeMarkedDeflate, payload)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %v", errs.ErrDecompressionFailed, err)
		}

		return aligned(data, format.SchemeMarkedDeflate)
	}

	if compress.IsGzip(payload) {
		data, err := decompressAs(format.SchemeGzip, payload)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %v", errs.ErrInvalidGzip, err)
		}

		return aligned(data, format.SchemeGzip)
	}

	return aligned(bytes.Clone(payload), format.SchemeNone)
}

// decompressAs runs the payload through the codec registered for scheme.
func decompressAs(scheme format.Scheme, payload []byte) ([]byte, error) {
	codec, err := compress.GetCodec(scheme)
	if err != nil {
		return nil, err
	}

	return codec.Decompress(payload)
}

// aligned enforces the record alignment contract on resolved data.
func aligned(data []byte, scheme format.Scheme) ([]byte, format.Scheme, error) {
	if len(data)%RecordSize != 0 {
		return nil, 0, fmt.Errorf("%w: %d bytes resolved as %s",
			errs.ErrMisalignedRecordData, len(data), scheme)
	}

	return data, scheme, nil
}
