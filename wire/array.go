package wire

import (
	"reflect"

	"github.com/arloliu/ethabi/errs"
)

// isNestedDynamicArray reports whether T is itself a slice-of-non-byte type,
// i.e. an array element type that would make the array an array-of-arrays.
// Leaf zero-copy views (Bytes, Address) are also Go byte slices under the
// hood and must not trip this check; only a slice whose element kind is not
// Uint8 represents genuine nesting.
func isNestedDynamicArray[T any]() bool {
	t := reflect.TypeOf((*T)(nil)).Elem()

	return t.Kind() == reflect.Slice && t.Elem().Kind() != reflect.Uint8
}

// DecodeFixedArray decodes a fixed-size homogeneous array T[N] of static T.
// N is fixed by the caller (a compile-time constant in the generated record
// decoder); all N elements are laid out head-inline, each occupying
// wordsPerElem*32 bytes starting at base.
func DecodeFixedArray[T any](buf []byte, base, n, wordsPerElem int, decodeElem func(buf []byte, pos int) (T, error)) ([]T, error) {
	out := make([]T, n)
	for i := 0; i < n; i++ {
		elem, err := decodeElem(buf, base+i*wordsPerElem*32)
		if err != nil {
			return nil, err
		}

		out[i] = elem
	}

	return out, nil
}

// DecodeArrayOfStatic decodes a variable-length homogeneous array T[] whose
// element type T is static (§4.4). pos is the resolved byte position of the
// array's own head (length word). Elements are decoded sequentially at
// pos+32+i*wordsPerElem*32; the result is sized to exactly the decoded
// length.
func DecodeArrayOfStatic[T any](buf []byte, mode OffsetMode, pos, wordsPerElem int, decodeElem func(buf []byte, pos int) (T, error)) ([]T, error) {
	if isNestedDynamicArray[T]() {
		return nil, errs.At(pos, errs.ErrNestedUnsupported)
	}

	length, err := mode.ReadOffset(buf, pos)
	if err != nil {
		return nil, err
	}

	base := pos + 32
	if base+length*wordsPerElem*32 > len(buf) {
		return nil, errs.At(pos, errs.ErrMalformedLength)
	}

	return DecodeFixedArray(buf, base, length, wordsPerElem, decodeElem)
}

// DecodeArrayOfDynamic decodes a variable-length homogeneous array T[] whose
// element type T is dynamic (§4.5), and is also the decoding rule for
// Tuples<T> (§4.7: an array of dynamic tuples is the same shape, since a
// dynamic tuple is itself a dynamic element type whose interior offsets are
// relative to its own start).
//
// pos is the resolved byte position of the array's own head (length word).
// The length word is followed by length per-element tail offsets, each
// measured from the slot immediately after the length word — i.e. from
// pos+32, not from pos. This is the tie-breaker called out in §4.5/§4.7/§9:
// offsets are added to the post-length base.
func DecodeArrayOfDynamic[T any](buf []byte, mode OffsetMode, pos int, decodeElem func(buf []byte, pos int) (T, error)) ([]T, error) {
	if isNestedDynamicArray[T]() {
		return nil, errs.At(pos, errs.ErrNestedUnsupported)
	}

	length, err := mode.ReadOffset(buf, pos)
	if err != nil {
		return nil, err
	}

	offsetsBase := pos + 32
	if offsetsBase+length*32 > len(buf) {
		return nil, errs.At(pos, errs.ErrMalformedLength)
	}

	out := make([]T, length)
	for i := 0; i < length; i++ {
		rel, err := mode.ReadOffset(buf, offsetsBase+i*32)
		if err != nil {
			return nil, err
		}

		elemPos := offsetsBase + rel
		if elemPos > len(buf) {
			return nil, errs.At(offsetsBase+i*32, errs.ErrMalformedOffset)
		}

		elem, err := decodeElem(buf, elemPos)
		if err != nil {
			return nil, err
		}

		out[i] = elem
	}

	return out, nil
}
