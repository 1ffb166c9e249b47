package wire

import "github.com/arloliu/ethabi/errs"

// DecodeWrapped decodes a Wrapped<T> value (§4.8): the value is encoded as
// `bytes`, but the bytes payload is itself a standalone ABI encoding of a
// single dynamic parameter T, which carries one more self-referential
// indirection word before T's own tail data.
//
// pos is the resolved byte position of the outer bytes value (word 0 is its
// length, matching DecodeBytes). The decoder skips 64 bytes — the bytes
// length word and the payload's own leading indirection word — landing on
// T's tail data, then invokes decodeRecord with that position as T's base
// (T's interior offsets are relative to it, exactly as for a dynamic tuple).
func DecodeWrapped[T any](buf []byte, mode OffsetMode, pos int, decodeRecord func(buf []byte, base int) (T, error)) (T, error) {
	var zero T

	if _, err := mode.ReadOffset(buf, pos); err != nil {
		return zero, err
	}

	innerStart := pos + 64
	if innerStart > len(buf) {
		return zero, errs.At(pos, errs.ErrTruncatedInput)
	}

	return decodeRecord(buf, innerStart)
}
