package blob

import (
	"fmt"

	"github.com/arloliu/kymaosc/compress"
	"github.com/arloliu/kymaosc/envelope"
	"github.com/arloliu/kymaosc/format"
	"github.com/arloliu/kymaosc/internal/options"
	"github.com/arloliu/kymaosc/internal/pool"
)

// initialEventCapacity is the initial capacity of the event queue. Typical
// VCS messages carry a handful of widget changes; 16 covers the common case
// without reallocation.
const initialEventCapacity = 16

// Encoder builds a complete /vcs message from queued events.
//
// Events are accumulated with AddEvent/AddEvents and serialized by Finish:
// fixed 8-byte records, compressed with the configured packaging scheme and
// wrapped in the OSC envelope. The default scheme is format.SchemeNone.
//
// Note: The Encoder is NOT thread-safe. Each encoder instance should be used
// by a single goroutine at a time.
type Encoder struct {
	events []Event
	scheme format.Scheme
	codec  compress.Codec
}

// EncoderOption represents a functional option for configuring the Encoder.
type EncoderOption = options.Option[*Encoder]

// WithCompression sets the packaging scheme Finish applies to the record
// payload. The scheme must be one of the four wire packagings; anything
// else fails NewEncoder.
func WithCompression(scheme format.Scheme) EncoderOption {
	return options.New(func(e *Encoder) error {
		codec, err := compress.CreateCodec(scheme, "event payload")
		if err != nil {
			return err
		}

		e.scheme = scheme
		e.codec = codec

		return nil
	})
}

// WithEventCapacity pre-allocates the event queue for callers that know the
// batch size up front.
func WithEventCapacity(capacity int) EncoderOption {
	return options.New(func(e *Encoder) error {
		if capacity < 0 {
			return fmt.Errorf("invalid event capacity: %d", capacity)
		}

		e.events = make([]Event, 0, capacity)

		return nil
	})
}

// NewEncoder creates an Encoder with the given options.
//
// Returns:
//   - *Encoder: Encoder with an empty event queue
//   - error: Option validation error
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	encoder := &Encoder{
		events: make([]Event, 0, initialEventCapacity),
		scheme: format.SchemeNone,
		codec:  compress.NewNoOpCompressor(),
	}

	if err := options.Apply(encoder, opts...); err != nil {
		return nil, err
	}

	return encoder, nil
}

// AddEvent queues one widget change.
func (e *Encoder) AddEvent(eventID int32, value float32) {
	e.events = append(e.events, Event{EventID: eventID, Value: value})
}

// AddEvents queues events in order.
func (e *Encoder) AddEvents(events ...Event) {
	e.events = append(e.events, events...)
}

// EventCount returns the number of queued events.
func (e *Encoder) EventCount() int {
	return len(e.events)
}

// Scheme returns the configured packaging scheme.
func (e *Encoder) Scheme() format.Scheme {
	return e.scheme
}

// Finish serializes the queued events into a complete /vcs message.
//
// The record payload is staged in a pooled buffer, packaged with the
// configured codec and wrapped in the OSC envelope. Finish does not drain
// the queue; the encoder still holds its events afterwards.
//
// Returns:
//   - []byte: Complete OSC message, newly allocated
//   - error: Compression error
func (e *Encoder) Finish() ([]byte, error) {
	buf := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(buf)

	buf.Grow(len(e.events) * RecordSize)
	for _, ev := range e.events {
		buf.B = appendRecord(buf.B, ev)
	}

	payload, err := e.codec.Compress(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to compress event payload: %w", err)
	}

	msg := make([]byte, 0, envelope.Size(len(payload)))

	return envelope.Append(msg, payload), nil
}
