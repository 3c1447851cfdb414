package kymaosc

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/kymaosc/blob"
	"github.com/arloliu/kymaosc/errs"
	"github.com/arloliu/kymaosc/format"
)

// TestDecode verifies the one-shot decode path on a hand-assembled datagram
func TestDecode(t *testing.T) {
	msg := []byte("/vcs\x00\x00\x00\x00,b\x00\x00")
	msg = binary.BigEndian.AppendUint32(msg, 8)
	msg = binary.BigEndian.AppendUint32(msg, 42)
	msg = binary.BigEndian.AppendUint32(msg, math.Float32bits(3.14))

	events, err := Decode(msg)
	require.NoError(t, err)
	require.Equal(t, []blob.Event{{EventID: 42, Value: 3.14}}, events)
}

// TestDecode_Errors verifies envelope sentinels surface through the facade
func TestDecode_Errors(t *testing.T) {
	events, err := Decode([]byte("/other\x00\x00,b\x00\x00\x00\x00\x00\x00"))
	require.ErrorIs(t, err, errs.ErrUnexpectedAddress)
	require.Nil(t, events)

	events, err = Decode(nil)
	require.ErrorIs(t, err, errs.ErrTooShort)
	require.Nil(t, events)
}

// TestEncode_Decode verifies the round trip through the facade
func TestEncode_Decode(t *testing.T) {
	original := []blob.Event{
		{EventID: 1, Value: 0.5},
		{EventID: 1, Value: 0.75},
		{EventID: -9, Value: 100},
	}

	for _, scheme := range []format.Scheme{format.SchemeNone, format.SchemeGzip} {
		msg, err := Encode(original, blob.WithCompression(scheme))
		require.NoError(t, err)

		events, err := Decode(msg)
		require.NoError(t, err)
		require.Equal(t, original, events)
	}
}

// TestEncode_NoEvents verifies an empty batch produces a decodable message
func TestEncode_NoEvents(t *testing.T) {
	msg, err := Encode(nil)
	require.NoError(t, err)

	events, err := Decode(msg)
	require.NoError(t, err)
	require.Empty(t, events)
}

// TestNewDecoder verifies the stepwise decoder exposes the detected packaging
func TestNewDecoder(t *testing.T) {
	msg, err := Encode([]blob.Event{{EventID: 3, Value: 1.5}}, blob.WithCompression(format.SchemeDeflate))
	require.NoError(t, err)

	decoder, err := NewDecoder(msg)
	require.NoError(t, err)

	events, err := decoder.Decode()
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, format.SchemeDeflate, decoder.Scheme())
}

// TestNewEncoder verifies option validation surfaces through the facade
func TestNewEncoder(t *testing.T) {
	encoder, err := NewEncoder(blob.WithCompression(format.Scheme(0xFF)))
	require.Error(t, err)
	require.Nil(t, encoder)

	encoder, err = NewEncoder()
	require.NoError(t, err)
	require.NotNil(t, encoder)
}
