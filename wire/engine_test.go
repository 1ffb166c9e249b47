package wire

import (
	"errors"
	"testing"

	"github.com/arloliu/ethabi/errs"
	"github.com/stretchr/testify/require"
)

func TestNarrow16ReadOffset(t *testing.T) {
	buf := word()
	buf[30] = 0x01
	buf[31] = 0x02

	got, err := Narrow16().ReadOffset(buf, 0)
	require.NoError(t, err)
	require.Equal(t, 0x0102, got)
}

func TestNarrow16IgnoresUpperBytes(t *testing.T) {
	buf := word()
	buf[0] = 0xFF // would overflow a naive 32-byte big-endian read
	buf[31] = 0x05

	got, err := Narrow16().ReadOffset(buf, 0)
	require.NoError(t, err)
	require.Equal(t, 5, got)
}

func TestWide32ReadOffset(t *testing.T) {
	buf := word()
	buf[28] = 0x00
	buf[29] = 0x01
	buf[30] = 0x00
	buf[31] = 0x00

	got, err := Wide32().ReadOffset(buf, 0)
	require.NoError(t, err)
	require.Equal(t, 0x00010000, got)
}

func TestReadOffsetTruncated(t *testing.T) {
	_, err := Narrow16().ReadOffset(make([]byte, 10), 0)
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrTruncatedInput))
}
