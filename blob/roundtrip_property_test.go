package blob

import (
	"math"
	"testing"

	"github.com/arloliu/kymaosc/format"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// genVCSEvent generates events with realistic widget identifiers and control
// values. The bounded ranges keep verbatim record data from ever forming a
// valid DEFLATE prefix, so uncompressed payloads always resolve verbatim.
func genVCSEvent() gopter.Gen {
	return gopter.CombineGens(
		gen.Int32Range(-32768, 32767),
		gen.Float32Range(-1000, 1000),
	).Map(func(values []interface{}) Event {
		return Event{EventID: values[0].(int32), Value: values[1].(float32)}
	})
}

// genAnyEvent generates events over the full identifier and value space.
func genAnyEvent() gopter.Gen {
	return gopter.CombineGens(
		gen.Int32(),
		gen.Float32(),
	).Map(func(values []interface{}) Event {
		return Event{EventID: values[0].(int32), Value: values[1].(float32)}
	})
}

func sameEvents(a, b []Event) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i].EventID != b[i].EventID {
			return false
		}
		if math.Float32bits(a[i].Value) != math.Float32bits(b[i].Value) {
			return false
		}
	}

	return true
}

// encodeDecode runs events through a full message round trip and reports the
// packaging the decoder detected.
func encodeDecode(scheme format.Scheme, events []Event) ([]Event, format.Scheme, error) {
	encoder, err := NewEncoder(WithCompression(scheme))
	if err != nil {
		return nil, 0, err
	}
	encoder.AddEvents(events...)

	msg, err := encoder.Finish()
	if err != nil {
		return nil, 0, err
	}

	decoder, err := NewDecoder(msg)
	if err != nil {
		return nil, 0, err
	}

	decoded, err := decoder.Decode()
	if err != nil {
		return nil, 0, err
	}

	return decoded, decoder.Scheme(), nil
}

// TestProperty_MessageRoundTrip validates that encoding and decoding are
// inverse operations for every payload packaging, for any number of events
// including zero.
func TestProperty_MessageRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	// Property: uncompressed messages carry events verbatim and unchanged
	properties.Property("uncompressed messages round-trip any number of events", prop.ForAll(
		func(events []Event) bool {
			decoded, detected, err := encodeDecode(format.SchemeNone, events)
			if err != nil {
				return false
			}

			if len(events) > 0 && detected != format.SchemeNone {
				return false
			}

			return sameEvents(events, decoded)
		},
		gen.SliceOf(genVCSEvent()),
	))

	// Property: compression never changes the decoded events, over the full
	// identifier and value space
	properties.Property("compressed messages round-trip the full event space", prop.ForAll(
		func(events []Event) bool {
			compressed := []format.Scheme{
				format.SchemeDeflate,
				format.SchemeMarkedDeflate,
				format.SchemeGzip,
			}

			for _, scheme := range compressed {
				decoded, detected, err := encodeDecode(scheme, events)
				if err != nil {
					return false
				}

				if len(events) > 0 && detected != scheme {
					return false
				}

				if !sameEvents(events, decoded) {
					return false
				}
			}

			return true
		},
		gen.SliceOf(genAnyEvent()),
	))

	// Property: the packaging is transparent, every scheme decodes to the
	// same events
	properties.Property("every packaging decodes to the same events", prop.ForAll(
		func(events []Event) bool {
			baseline, _, err := encodeDecode(format.SchemeNone, events)
			if err != nil {
				return false
			}

			for _, scheme := range []format.Scheme{
				format.SchemeDeflate,
				format.SchemeMarkedDeflate,
				format.SchemeGzip,
			} {
				decoded, _, err := encodeDecode(scheme, events)
				if err != nil {
					return false
				}

				if !sameEvents(baseline, decoded) {
					return false
				}
			}

			return true
		},
		gen.SliceOf(genVCSEvent()),
	))

	properties.TestingRun(t)
}
