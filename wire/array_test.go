package wire

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/arloliu/ethabi/errs"
	"github.com/stretchr/testify/require"
)

func putWord32(buf []byte, pos int, v int) {
	binary.BigEndian.PutUint32(buf[pos+28:pos+32], uint32(v))
}

func TestDecodeFixedArray(t *testing.T) {
	buf := make([]byte, 96) // 3 words
	putWord32(buf, 0, 10)
	putWord32(buf, 32, 20)
	putWord32(buf, 64, 30)

	got, err := DecodeFixedArray(buf, 0, 3, 1, DecodeUint32)
	require.NoError(t, err)
	require.Equal(t, []uint32{10, 20, 30}, got)
}

func TestDecodeArrayOfStatic(t *testing.T) {
	// length word = 3, then 3 head-inline uint32 elements
	buf := make([]byte, 32+3*32)
	putWord32(buf, 0, 3)
	putWord32(buf, 32, 1)
	putWord32(buf, 64, 2)
	putWord32(buf, 96, 3)

	got, err := DecodeArrayOfStatic(buf, Narrow16(), 0, 1, DecodeUint32)
	require.NoError(t, err)
	require.Equal(t, []uint32{1, 2, 3}, got)
}

// buildArrayOfDynamic assembles an ABI array-head for a variable-length
// array of dynamic elements: a length word, followed by one tail offset per
// element (measured from the slot after the length word), followed by the
// elements themselves in order. Each element in elements must already be a
// complete dynamic encoding (e.g. the output of buildBytesValue).
func buildArrayOfDynamic(elements [][]byte) []byte {
	n := len(elements)
	offsetsBase := 32
	elemAreaStart := offsetsBase + n*32

	buf := make([]byte, elemAreaStart)
	putWord32(buf, 0, n)

	pos := elemAreaStart
	for i, e := range elements {
		putWord32(buf, offsetsBase+i*32, pos-offsetsBase)
		buf = append(buf, e...)
		pos += len(e)
	}

	return buf
}

func TestDecodeArrayOfDynamic(t *testing.T) {
	elem0 := buildBytesValue([]byte("AB"))
	elem1 := buildBytesValue([]byte("C"))
	buf := buildArrayOfDynamic([][]byte{elem0, elem1})

	got, err := DecodeArrayOfDynamic(buf, Narrow16(), 0, func(buf []byte, pos int) (Bytes, error) {
		return DecodeBytes(buf, Narrow16(), pos)
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.True(t, bytes.Equal(got[0], []byte("AB")))
	require.True(t, bytes.Equal(got[1], []byte("C")))
}

func TestDecodeArrayOfDynamic_RejectsNestedArray(t *testing.T) {
	buf := buildArrayOfDynamic([][]byte{buildBytesValue([]byte("AB"))})

	_, err := DecodeArrayOfDynamic(buf, Narrow16(), 0, func(buf []byte, pos int) ([]uint32, error) {
		return nil, nil
	})
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrNestedUnsupported)
}

func TestDecodeArrayOfStatic_RejectsNestedArray(t *testing.T) {
	buf := make([]byte, 32+3*32)
	putWord32(buf, 0, 3)

	_, err := DecodeArrayOfStatic(buf, Narrow16(), 0, 1, func(buf []byte, pos int) ([]uint32, error) {
		return nil, nil
	})
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrNestedUnsupported)
}
