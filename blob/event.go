package blob

import (
	"encoding/binary"
	"fmt"
	"math"
)

// RecordSize is the wire size of one event record: a big-endian int32 event
// identifier followed by a big-endian IEEE-754 float32 value.
const RecordSize = 8

// Event is one VCS widget change: the widget's event identifier and the
// value it changed to.
//
// Events carry no ordering or uniqueness guarantees of their own. Kyma may
// report the same identifier more than once in a single message; duplicates
// and blob order are preserved exactly.
type Event struct {
	EventID int32   `json:"event_id"`
	Value   float32 `json:"value"`
}

// String implements fmt.Stringer.
func (e Event) String() string {
	return fmt.Sprintf("Event{event_id: %d, value: %v}", e.EventID, e.Value)
}

// appendRecord appends the 8-byte wire record of ev to dst.
func appendRecord(dst []byte, ev Event) []byte {
	dst = binary.BigEndian.AppendUint32(dst, uint32(ev.EventID))
	dst = binary.BigEndian.AppendUint32(dst, math.Float32bits(ev.Value))

	return dst
}

// decodeRecords decodes resolved record data into events. The data length
// must be a multiple of RecordSize; Resolve guarantees that.
//
// Values pass through bit-exact: NaN and infinity are legal event values and
// are not filtered or normalized.
func decodeRecords(data []byte) []Event {
	events := make([]Event, 0, len(data)/RecordSize)
	for start := 0; start+RecordSize <= len(data); start += RecordSize {
		events = append(events, Event{
			EventID: int32(binary.BigEndian.Uint32(data[start : start+4])),
			Value:   math.Float32frombits(binary.BigEndian.Uint32(data[start+4 : start+8])),
		})
	}

	return events
}
