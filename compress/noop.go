package compress

// NoOpCompressor passes payloads through unchanged. It packages verbatim
// record data, the form Kyma emits when a blob is too small for compression
// to pay off.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new pass-through compressor.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns the input slice as-is without copying.
//
// Note: the returned slice shares the same underlying memory as the input.
// Callers that need an owned result must copy it themselves.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input slice as-is without copying.
//
// Note: the returned slice shares the same underlying memory as the input.
// Callers that need an owned result must copy it themselves.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
