package wire

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// buildBytesValue returns an ABI-encoded `bytes` value starting at offset 0:
// a 32-byte length word followed by data padded up to the next 32-byte
// boundary.
func buildBytesValue(data []byte) []byte {
	padded := (len(data) + 31) &^ 31
	buf := make([]byte, 32+padded)
	buf[31] = byte(len(data))
	copy(buf[32:], data)

	return buf
}

func TestDecodeBytes(t *testing.T) {
	data := []byte{0xaa, 0xbb, 0xcc}
	buf := buildBytesValue(data)

	got, err := DecodeBytes(buf, Narrow16(), 0)
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.True(t, bytes.Equal(got, data))
}

func TestDecodeBytesIsBorrowed(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03}
	buf := buildBytesValue(data)

	got, err := DecodeBytes(buf, Narrow16(), 0)
	require.NoError(t, err)

	// Mutating the source buffer at the view's position is observable
	// through the view: no copy was made (§8 Scenario E).
	buf[32] = 0xFF
	require.Equal(t, byte(0xFF), got[0])
}

func TestDecodeBytesMalformedLength(t *testing.T) {
	buf := buildBytesValue([]byte{0x01, 0x02, 0x03})
	buf[31] = 200 // claims far more data than the buffer has

	_, err := DecodeBytes(buf, Narrow16(), 0)
	require.Error(t, err)
}
