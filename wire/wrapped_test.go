package wire

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

type innerPair struct {
	R0 Uint128
	R1 Uint128
}

func TestDecodeWrapped(t *testing.T) {
	// word0: bytes length (arbitrary, unused by the inner decode)
	// word1: the payload's own self-referential indirection offset (32)
	// word2: r0, word3: r1
	buf := make([]byte, 128)
	putWord32(buf, 0, 64)
	putWord32(buf, 32, 32)
	binary.BigEndian.PutUint64(buf[64+24:64+32], 111)
	binary.BigEndian.PutUint64(buf[96+24:96+32], 222)

	got, err := DecodeWrapped(buf, Narrow16(), 0, func(buf []byte, base int) (innerPair, error) {
		r0, err := DecodeUint128(buf, base)
		if err != nil {
			return innerPair{}, err
		}

		r1, err := DecodeUint128(buf, base+32)
		if err != nil {
			return innerPair{}, err
		}

		return innerPair{R0: r0, R1: r1}, nil
	})
	require.NoError(t, err)
	require.Equal(t, Uint128{Lo: 111}, got.R0)
	require.Equal(t, Uint128{Lo: 222}, got.R1)
}
