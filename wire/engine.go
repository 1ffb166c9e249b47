package wire

import (
	"encoding/binary"

	"github.com/arloliu/ethabi/errs"
)

// OffsetMode controls how head offset and length words are interpreted.
//
// The ABI wire format always encodes offsets and lengths as full 32-byte
// big-endian words, but this decoder's default mode (Narrow16) only
// consults the low 2 bytes of that word, bounding the maximum decodable
// offset or length at 65535. This is a deliberate throughput trade-off
// (see package doc), not a bug: the target workload (batched multicall-style
// results) never approaches that bound, and truncating avoids a multi-word
// big-endian materialization per offset.
//
// Wide32 lifts the bound to 0x7FFFFFFF at a small per-offset cost.
//
// OffsetMode implementations are immutable and safe for concurrent use.
type OffsetMode interface {
	// ReadOffset interprets the 32-byte word at buf[pos:pos+32] as a byte
	// position or length. A mode that rejects out-of-range values (Wide32)
	// returns errs.ErrOffsetOutOfRange for them; Narrow16 instead truncates
	// to the low 16 bits and never returns that error.
	ReadOffset(buf []byte, pos int) (int, error)

	// MaxOffset is the largest offset or length value this mode accepts.
	MaxOffset() int
}

type narrow16Engine struct{}

// Narrow16 returns the default OffsetMode: only the low 16 bits of an offset
// or length word are consulted (bytes 30 and 31 of the word).
func Narrow16() OffsetMode { return narrow16Engine{} }

func (narrow16Engine) MaxOffset() int { return 0xFFFF }

func (narrow16Engine) ReadOffset(buf []byte, pos int) (int, error) {
	if pos+32 > len(buf) {
		return 0, errs.At(pos, errs.ErrTruncatedInput)
	}

	hi := buf[pos+30]
	lo := buf[pos+31]

	return int(hi)<<8 | int(lo), nil
}

type wide32Engine struct{}

// Wide32 returns an OffsetMode that reads the full low 32 bits of an offset
// or length word, rejecting values above 0x7FFFFFFF.
// Upper bytes beyond the low 4 are still ignored, matching the ABI's
// practical offset range; use this when inputs may legitimately exceed the
// default 65535 bound.
func Wide32() OffsetMode { return wide32Engine{} }

func (wide32Engine) MaxOffset() int { return 0x7FFFFFFF }

func (wide32Engine) ReadOffset(buf []byte, pos int) (int, error) {
	if pos+32 > len(buf) {
		return 0, errs.At(pos, errs.ErrTruncatedInput)
	}

	v := binary.BigEndian.Uint32(buf[pos+28 : pos+32])
	if v > 0x7FFFFFFF {
		return 0, errs.At(pos, errs.ErrOffsetOutOfRange)
	}

	return int(v), nil
}
