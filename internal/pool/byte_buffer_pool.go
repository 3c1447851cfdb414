// Package pool provides pooled byte buffers for payload staging.
//
// Encoding stages record payloads in a pooled buffer before the envelope is
// assembled, and the compression codecs stream their input and output through
// pooled buffers before copying the exact-size result out. Pooled memory
// never escapes to callers.
package pool

import (
	"io"
	"sync"
)

const (
	// PayloadBufferDefaultSize is the initial capacity of pooled buffers.
	// VCS payloads are small (8 bytes per event), so a few KiB covers the
	// common case without reallocation.
	PayloadBufferDefaultSize = 4 * 1024

	// PayloadBufferMaxThreshold is the largest buffer the pool retains.
	// Bigger buffers are dropped to avoid pinning memory after an
	// unusually large datagram.
	PayloadBufferMaxThreshold = 64 * 1024

	// minReadChunk is the smallest amount of free space ReadFrom keeps
	// available ahead of a read.
	minReadChunk = 512
)

// ByteBuffer is a growable byte buffer. The underlying slice is exported so
// callers can append to it directly with the binary.Append* helpers.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a ByteBuffer with the given initial capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer while retaining the allocated memory.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the number of bytes in the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Grow ensures the buffer can hold requiredBytes more bytes without
// reallocating. Small buffers grow by PayloadBufferDefaultSize, larger ones
// by a quarter of their capacity, so repeated small appends stay cheap.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	if cap(bb.B)-len(bb.B) >= requiredBytes {
		return
	}

	growBy := PayloadBufferDefaultSize
	if cap(bb.B) > 4*PayloadBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write appends data to the buffer, growing it as needed. It never fails;
// the error is always nil and exists to satisfy io.Writer.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// ReadFrom reads r until EOF, appending to the buffer and growing as needed.
func (bb *ByteBuffer) ReadFrom(r io.Reader) (int64, error) {
	var total int64
	for {
		if cap(bb.B)-len(bb.B) < minReadChunk {
			bb.Grow(minReadChunk)
		}

		n, err := r.Read(bb.B[len(bb.B):cap(bb.B)])
		bb.B = bb.B[:len(bb.B)+n]
		total += int64(n)
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

// CopyBytes returns a newly allocated copy of the buffer contents. Decode
// results must not alias pooled memory, so every codec copies out through
// this before the buffer returns to the pool.
func (bb *ByteBuffer) CopyBytes() []byte {
	out := make([]byte, len(bb.B))
	copy(out, bb.B)

	return out
}

// ByteBufferPool is a sync.Pool of ByteBuffers with a retention threshold.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool handing out buffers of defaultSize
// capacity. Buffers larger than maxThreshold are discarded on Put; a
// maxThreshold of 0 disables the limit.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var payloadDefaultPool = NewByteBufferPool(PayloadBufferDefaultSize, PayloadBufferMaxThreshold)

// GetPayloadBuffer retrieves a ByteBuffer from the default payload pool.
func GetPayloadBuffer() *ByteBuffer {
	return payloadDefaultPool.Get()
}

// PutPayloadBuffer returns a ByteBuffer to the default payload pool.
func PutPayloadBuffer(bb *ByteBuffer) {
	payloadDefaultPool.Put(bb)
}
