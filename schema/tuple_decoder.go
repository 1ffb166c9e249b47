// Package schema implements the record specializer (§4.10): the mechanism
// that composes package wire's primitive decoding rules, in declared field
// order, into the two-pass head/tail decode routine for a user-declared
// record type.
//
// There is no runtime schema description and no reflection. A record type
// "specializes" by hand-writing (or code-generating) a DecodeABI method that
// calls Static, Dynamic, and Skip against a *TupleDecoder in field
// declaration order; the Go compiler monomorphizes each call site, so the
// result is a straight-line decoder per record type, exactly as §2 and
// §4.10 describe.
//
// Static, Dynamic and Skip are free functions parameterized by the field's
// Go type, not methods on *TupleDecoder: Go does not allow a generic type
// parameter on a struct method, only on a function (the same constraint
// documented by the karalabe/ssz decoder this package's two-pass protocol is
// grounded on), so the type parameter lives on the function instead.
package schema

import (
	"github.com/arloliu/ethabi/errs"
	"github.com/arloliu/ethabi/wire"
)

// TupleDecoder accumulates a record's head pass, then its tail pass, over
// exactly one call to Finish. It is not reusable; create one per decode.
type TupleDecoder struct {
	buf  []byte
	base int
	mode wire.OffsetMode
	slot int
	err  error
	// tails holds one deferred closure per dynamic field, in declared field
	// order, matching the tail-pass ordering guarantee in §5.
	tails []func() error
}

// NewTupleDecoder starts a record decode. base is the byte position of the
// record's first head slot (0 for a top-level decode, or a resolved tail
// offset for a nested dynamic tuple / array element / Wrapped payload).
func NewTupleDecoder(buf []byte, base int, mode wire.OffsetMode) *TupleDecoder {
	return &TupleDecoder{buf: buf, base: base, mode: mode}
}

func (d *TupleDecoder) headPos() int {
	return d.base + 32*d.slot
}

// Static decodes a field whose type is static (§4.10 head pass, static
// branch): it occupies exactly one head slot and is decoded immediately,
// in place, from that slot.
func Static[T any](d *TupleDecoder, dst *T, decode func(buf []byte, pos int) (T, error)) {
	if d.err != nil {
		d.slot++
		return
	}

	pos := d.headPos()
	v, err := decode(d.buf, pos)
	d.slot++
	if err != nil {
		d.err = err
		return
	}

	*dst = v
}

// Dynamic reads a field's head offset (§4.10 head pass, dynamic branch) and
// defers the actual decode to the tail pass (§4.10 tail pass), preserving
// declared field order in dst regardless of tail layout in the wire data.
func Dynamic[T any](d *TupleDecoder, dst *T, decode func(buf []byte, pos int) (T, error)) {
	if d.err != nil {
		d.slot++
		return
	}

	pos := d.headPos()
	rel, err := d.mode.ReadOffset(d.buf, pos)
	d.slot++
	if err != nil {
		d.err = err
		return
	}

	resolved := d.base + rel
	d.tails = append(d.tails, func() error {
		if resolved > len(d.buf) {
			return errs.At(pos, errs.ErrMalformedOffset)
		}

		v, err := decode(d.buf, resolved)
		if err != nil {
			return err
		}

		*dst = v
		return nil
	})
}

// Skip marks a field carrying the `skip` annotation (§6): its head slot's
// bytes are never read or interpreted, and dst is left at its type's zero
// value. The slot is still consumed positionally, so a record that skips a
// field it is not interested in can still be decoded against wire data
// produced for the full, unskipped tuple — the next declared field lands on
// the next real head slot, exactly where a conforming encoder put it.
func Skip[T any](d *TupleDecoder, dst *T) {
	var zero T
	*dst = zero
	d.slot++
}

// Finish runs the tail pass and returns the first error encountered during
// either pass, or nil if the record decoded cleanly.
func (d *TupleDecoder) Finish() error {
	if d.err != nil {
		return d.err
	}

	for _, tail := range d.tails {
		if err := tail(); err != nil {
			return err
		}
	}

	return nil
}

// HeadWords reports how many head slots were consumed (skipped fields are
// counted, since Skip still consumes its slot). Useful for validating a buffer's minimum static footprint
// before dispatch, per §7's bounds-checking guidance.
func (d *TupleDecoder) HeadWords() int {
	return d.slot
}
