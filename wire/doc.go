// Package wire implements the primitive, type-directed decoding rules for the
// Ethereum Contract ABI head/tail wire format.
//
// Each rule is a small function from (buf, pos) to a decoded value or a
// failure; none of them allocate for fixed-size and borrowed-view results
// except DecodeUint256, which returns a newly allocated *uint256.Int, and
// none of them carry a runtime type tag. The record specializer in
// package schema composes these rules in declared field order to decode a
// user-declared record type.
//
// # Offset width
//
// By default, head offsets and length words are read using only their low 16
// bits (Narrow16), per the "16-bit offset/length optimization" this decoder
// commits to. A full 32-bit variant (Wide32) is available as an explicit
// opt-in for inputs outside that range; see OffsetMode.
package wire
