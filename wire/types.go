package wire

// Address is a borrowed 20-byte view into the input buffer (ABI word bytes
// 12..32). It always has length 20; it is never copied off the buffer it
// decoded from.
type Address []byte

// Bytes4, Bytes8, Bytes16 and Bytes32 are borrowed fixed-size byte views,
// one per bytesN wire type this decoder supports. Each always has the
// length its name implies.
type (
	Bytes4  []byte
	Bytes8  []byte
	Bytes16 []byte
	Bytes32 []byte
)

// Bytes is a borrowed variable-length byte view (the `bytes` wire type).
// Its length is whatever the wire length word specified; ABI padding to the
// next 32-byte boundary is excluded.
type Bytes []byte

// Uint128 is a native 128-bit unsigned integer, represented as two uint64
// halves. No third-party 128-bit integer type appears anywhere in this
// decoder's example corpus, so a plain struct is used rather than reaching
// for a library that doesn't exist in the ecosystem this decoder draws from.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// Equal reports whether two Uint128 values represent the same number.
func (u Uint128) Equal(o Uint128) bool {
	return u.Hi == o.Hi && u.Lo == o.Lo
}

// IsZero reports whether u is the zero value.
func (u Uint128) IsZero() bool {
	return u.Hi == 0 && u.Lo == 0
}
