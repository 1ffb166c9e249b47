// Package errs defines the sentinel errors returned by the ethabi decoder.
//
// The default contract (see the root ethabi package) is a boolean success
// signal: callers that only check `err != nil` never need to look here.
// Callers that want a reason compare with errors.Is against these sentinels,
// or unwrap a *DecodeError (see DecodeError below) with errors.As to recover
// the byte offset where decoding failed.
package errs

import "errors"

var (
	// ErrTruncatedInput is returned when a read would exceed the input buffer.
	ErrTruncatedInput = errors.New("ethabi: truncated input")

	// ErrMalformedOffset is returned when a head offset points outside the buffer.
	ErrMalformedOffset = errors.New("ethabi: malformed offset")

	// ErrMalformedLength is returned when a length word implies an out-of-range read.
	ErrMalformedLength = errors.New("ethabi: malformed length")

	// ErrOffsetOutOfRange is returned when an offset or length exceeds the
	// supported range of the active OffsetMode. Only Wide32 returns it (for
	// values above 0x7FFFFFFF); the default Narrow16 mode never does, since it
	// silently keeps only the low 16 bits.
	ErrOffsetOutOfRange = errors.New("ethabi: offset exceeds supported range")

	// ErrNestedUnsupported is returned when an array-of-array shape is
	// encountered. Go generics have no equivalent to the derive macro's
	// compile-time field-type check, so wire.DecodeArrayOfStatic and
	// wire.DecodeArrayOfDynamic guard against it at the start of every call.
	ErrNestedUnsupported = errors.New("ethabi: nested dynamic arrays are unsupported")

	// ErrMalformedBool is returned by DecodeBoolStrict for any byte other than 0 or 1.
	ErrMalformedBool = errors.New("ethabi: non-canonical boolean value")

	// ErrDepthExceeded is returned when a decode recursion (Wrapped or dynamic
	// tuple indirection) exceeds the limit of a wire.DepthGuard.
	ErrDepthExceeded = errors.New("ethabi: recursion depth exceeded")
)

// DecodeError is an additive, optional enrichment of the boolean failure
// contract described in the package overview: it pins a sentinel reason to
// the byte offset where the read was attempted. Primitive decoders populate
// it; callers that only care about success/failure can ignore it entirely.
type DecodeError struct {
	// Offset is the byte position in the input buffer where decoding failed.
	Offset int
	// Reason is one of the sentinel errors above.
	Reason error
}

func (e *DecodeError) Error() string {
	return e.Reason.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Reason
}

// At wraps a sentinel reason with the byte offset it was detected at.
func At(offset int, reason error) error {
	return &DecodeError{Offset: offset, Reason: reason}
}
