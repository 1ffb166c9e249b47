package wire

import (
	"encoding/binary"

	"github.com/arloliu/ethabi/errs"
	"github.com/holiman/uint256"
)

// DecodeAddress reads the 20-byte address at word bytes 12..32 of the word
// starting at pos. The ABI places addresses right-aligned in their 32-byte
// word; implementations that bind the whole word instead of this 20-byte
// subrange are non-conformant (see SPEC_FULL.md §D.1).
func DecodeAddress(buf []byte, pos int) (Address, error) {
	if pos+32 > len(buf) {
		return nil, errs.At(pos, errs.ErrTruncatedInput)
	}

	return Address(buf[pos+12 : pos+32 : pos+32]), nil
}

// DecodeBool reads the boolean at byte 31 of the word starting at pos.
// Only the exact byte value 1 decodes as true; every other byte, including
// any other non-zero value, decodes as false. Use DecodeBoolStrict to reject
// non-canonical values outright instead of folding them into false.
func DecodeBool(buf []byte, pos int) (bool, error) {
	if pos+32 > len(buf) {
		return false, errs.At(pos, errs.ErrTruncatedInput)
	}

	return buf[pos+31] == 1, nil
}

// DecodeBoolStrict is DecodeBool with the non-canonical-boolean open question
// resolved the strict way: only byte values 0 and 1 are accepted.
func DecodeBoolStrict(buf []byte, pos int) (bool, error) {
	if pos+32 > len(buf) {
		return false, errs.At(pos, errs.ErrTruncatedInput)
	}

	switch buf[pos+31] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, errs.At(pos, errs.ErrMalformedBool)
	}
}

// DecodeUint8 reads the rightmost byte of the word starting at pos.
func DecodeUint8(buf []byte, pos int) (uint8, error) {
	if pos+32 > len(buf) {
		return 0, errs.At(pos, errs.ErrTruncatedInput)
	}

	return buf[pos+31], nil
}

// DecodeUint16 reads the rightmost 2 bytes of the word starting at pos,
// big-endian, zero-extended.
func DecodeUint16(buf []byte, pos int) (uint16, error) {
	if pos+32 > len(buf) {
		return 0, errs.At(pos, errs.ErrTruncatedInput)
	}

	return binary.BigEndian.Uint16(buf[pos+30 : pos+32]), nil
}

// DecodeUint32 reads the rightmost 4 bytes of the word starting at pos,
// big-endian, zero-extended.
func DecodeUint32(buf []byte, pos int) (uint32, error) {
	if pos+32 > len(buf) {
		return 0, errs.At(pos, errs.ErrTruncatedInput)
	}

	return binary.BigEndian.Uint32(buf[pos+28 : pos+32]), nil
}

// DecodeUint64 reads the rightmost 8 bytes of the word starting at pos,
// big-endian, zero-extended.
func DecodeUint64(buf []byte, pos int) (uint64, error) {
	if pos+32 > len(buf) {
		return 0, errs.At(pos, errs.ErrTruncatedInput)
	}

	return binary.BigEndian.Uint64(buf[pos+24 : pos+32]), nil
}

// DecodeUint128 reads the rightmost 16 bytes of the word starting at pos,
// big-endian, zero-extended, as a native Hi/Lo pair.
func DecodeUint128(buf []byte, pos int) (Uint128, error) {
	if pos+32 > len(buf) {
		return Uint128{}, errs.At(pos, errs.ErrTruncatedInput)
	}

	return Uint128{
		Hi: binary.BigEndian.Uint64(buf[pos+16 : pos+24]),
		Lo: binary.BigEndian.Uint64(buf[pos+24 : pos+32]),
	}, nil
}

// DecodeUint256 reads the full 32-byte word starting at pos as a big-endian
// unsigned integer, using the uint256 library's constructor from a 32-byte
// big-endian slice — the one contract point this decoder has with that
// out-of-scope collaborator.
func DecodeUint256(buf []byte, pos int) (*uint256.Int, error) {
	if pos+32 > len(buf) {
		return nil, errs.At(pos, errs.ErrTruncatedInput)
	}

	return new(uint256.Int).SetBytes(buf[pos : pos+32]), nil
}

// decodeBytesN binds the first n bytes of the word starting at pos as a
// borrowed view. n must be one of {4, 8, 16, 32}; upper padding bytes within
// the word are not checked.
func decodeBytesN(buf []byte, pos, n int) ([]byte, error) {
	if pos+32 > len(buf) {
		return nil, errs.At(pos, errs.ErrTruncatedInput)
	}

	return buf[pos : pos+n : pos+n], nil
}

// DecodeBytes4 binds bytes4.
func DecodeBytes4(buf []byte, pos int) (Bytes4, error) {
	v, err := decodeBytesN(buf, pos, 4)
	return Bytes4(v), err
}

// DecodeBytes8 binds bytes8.
func DecodeBytes8(buf []byte, pos int) (Bytes8, error) {
	v, err := decodeBytesN(buf, pos, 8)
	return Bytes8(v), err
}

// DecodeBytes16 binds bytes16.
func DecodeBytes16(buf []byte, pos int) (Bytes16, error) {
	v, err := decodeBytesN(buf, pos, 16)
	return Bytes16(v), err
}

// DecodeBytes32 binds bytes32.
func DecodeBytes32(buf []byte, pos int) (Bytes32, error) {
	v, err := decodeBytesN(buf, pos, 32)
	return Bytes32(v), err
}
