// Package ethabi decodes Ethereum Contract ABI-encoded byte buffers into
// compile-time-known Go record types, borrowing variable-length fields
// (byte strings, dynamic arrays) directly from the input buffer.
//
// # Declaring a record
//
// A record is any Go struct whose pointer type implements Record by calling
// package schema's two-pass TupleDecoder, in declared field order, once per
// field:
//
//	type Call3 struct {
//	    Target       wire.Address
//	    AllowFailure bool
//	    CallData     wire.Bytes
//	}
//
//	func (c *Call3) DecodeABI(buf []byte, base int, mode wire.OffsetMode) error {
//	    d := schema.NewTupleDecoder(buf, base, mode)
//	    schema.Static(d, &c.Target, wire.DecodeAddress)
//	    schema.Static(d, &c.AllowFailure, wire.DecodeBool)
//	    schema.Dynamic(d, &c.CallData, func(buf []byte, pos int) (wire.Bytes, error) {
//	        return wire.DecodeBytes(buf, mode, pos)
//	    })
//	    return d.Finish()
//	}
//
// # Decoding
//
//	call3, err := ethabi.Decode[Call3](buf)
//
// Decode uses the default Narrow16 offset mode (§4.9); DecodeWithMode
// accepts an explicit wire.OffsetMode, and DecodeAt decodes starting at a
// caller-chosen byte offset instead of 0.
package ethabi

import "github.com/arloliu/ethabi/wire"

// Record is implemented by a pointer to every user-declared record type.
// DecodeABI decodes the record's fields starting at head slot base, using
// mode to interpret head offsets and length words.
type Record interface {
	DecodeABI(buf []byte, base int, mode wire.OffsetMode) error
}

// recordPtr constrains a type parameter pair (T, *T) so that generic
// functions below can construct a T and decode into it through its pointer,
// without the caller ever naming *T explicitly at the call site beyond the
// type argument list.
type recordPtr[T any] interface {
	*T
	Record
}

// Decode decodes buf into a new R, starting at byte 0, using the default
// Narrow16 offset mode. Equivalent to DecodeAt(buf, 0).
func Decode[T any, PT recordPtr[T]](buf []byte) (T, error) {
	return DecodeWithMode[T, PT](buf, wire.Narrow16())
}

// DecodeAt decodes buf into a new R, starting at the given byte offset,
// using the default Narrow16 offset mode.
func DecodeAt[T any, PT recordPtr[T]](buf []byte, base int) (T, error) {
	var v T
	pv := PT(&v)
	err := pv.DecodeABI(buf, base, wire.Narrow16())

	return v, err
}

// DecodeWithMode decodes buf into a new R starting at byte 0, using an
// explicit wire.OffsetMode (e.g. wire.Wide32 for inputs whose offsets or
// lengths may exceed 65535).
func DecodeWithMode[T any, PT recordPtr[T]](buf []byte, mode wire.OffsetMode) (T, error) {
	var v T
	pv := PT(&v)
	err := pv.DecodeABI(buf, 0, mode)

	return v, err
}

// DecodeTupleAt decodes a nested dynamic tuple field (§4.6): T's interior
// offsets are measured from pos, its own start.
func DecodeTupleAt[T any, PT recordPtr[T]](buf []byte, mode wire.OffsetMode, pos int) (T, error) {
	var v T
	pv := PT(&v)
	err := pv.DecodeABI(buf, pos, mode)

	return v, err
}

// DecodeTuplesAt decodes an array of dynamic tuples (§4.7) or, equivalently,
// a variable-length array of any other dynamic element type T (§4.5) whose
// elements are themselves records. pos is the resolved byte position of the
// array's own head (its length word).
func DecodeTuplesAt[T any, PT recordPtr[T]](buf []byte, mode wire.OffsetMode, pos int) ([]T, error) {
	return wire.DecodeArrayOfDynamic(buf, mode, pos, func(buf []byte, elemPos int) (T, error) {
		return DecodeTupleAt[T, PT](buf, mode, elemPos)
	})
}

// DecodeTuplesAtTop decodes a standalone top-level Tuples<T> value (§4.7):
// unlike a Tuples<T> field nested inside another record, where the
// surrounding tuple's head pass has already resolved the field's offset to a
// byte position, a value sitting alone at the root of an ABI buffer still
// carries its own leading head slot — a single offset word pointing at the
// length word that follows it. DecodeTuplesAtTop reads that leading offset
// itself before delegating to DecodeTuplesAt, matching what a real ABI
// encoder emits for a lone dynamic return value.
func DecodeTuplesAtTop[T any, PT recordPtr[T]](buf []byte, mode wire.OffsetMode) ([]T, error) {
	pos, err := mode.ReadOffset(buf, 0)
	if err != nil {
		return nil, err
	}

	return DecodeTuplesAt[T, PT](buf, mode, pos)
}

// DecodeWrappedAt decodes a Wrapped<T> field (§4.8): pos is the resolved
// byte position of the outer bytes value carrying T's re-encoded payload.
func DecodeWrappedAt[T any, PT recordPtr[T]](buf []byte, mode wire.OffsetMode, pos int) (T, error) {
	return wire.DecodeWrapped(buf, mode, pos, func(buf []byte, innerBase int) (T, error) {
		return DecodeTupleAt[T, PT](buf, mode, innerBase)
	})
}

// DecodeTupleAtGuarded is DecodeTupleAt with an explicit wire.DepthGuard: a
// record type whose own DecodeABI recurses back into DecodeTupleAtGuarded or
// DecodeWrappedAtGuarded (a self-referential schema, e.g. a tree-shaped
// record) should thread the same guard through every such call so the chain
// is bounded. Top-level decodes and non-recursive records have no reason to
// use this over DecodeTupleAt; a nil guard behaves identically to it.
func DecodeTupleAtGuarded[T any, PT recordPtr[T]](buf []byte, mode wire.OffsetMode, pos int, guard *wire.DepthGuard) (T, error) {
	var v T
	if err := guard.Enter(pos); err != nil {
		return v, err
	}
	defer guard.Exit()

	pv := PT(&v)
	err := pv.DecodeABI(buf, pos, mode)

	return v, err
}

// DecodeWrappedAtGuarded is DecodeWrappedAt with an explicit wire.DepthGuard;
// see DecodeTupleAtGuarded.
func DecodeWrappedAtGuarded[T any, PT recordPtr[T]](buf []byte, mode wire.OffsetMode, pos int, guard *wire.DepthGuard) (T, error) {
	return wire.DecodeWrapped(buf, mode, pos, func(buf []byte, innerBase int) (T, error) {
		return DecodeTupleAtGuarded[T, PT](buf, mode, innerBase, guard)
	})
}
