package wire

import "github.com/arloliu/ethabi/errs"

// DepthGuard bounds a chain of recursive indirections (Wrapped<T>, a dynamic
// tuple field whose own fields are themselves Wrapped or dynamic tuples)
// against adversarial input that nests deeply enough to exhaust the stack.
//
// The zero value (and a nil *DepthGuard) imposes no limit, matching the
// spec's default of unbounded recursion depth; callers that want a bound
// construct one with NewDepthGuard and thread it through every recursive
// decode call in a record's DecodeABI.
//
// A DepthGuard is not safe for concurrent use; construct one per top-level
// Decode call.
type DepthGuard struct {
	max     int
	current int
}

// NewDepthGuard returns a guard that rejects the (max+1)th nested
// indirection. max <= 0 disables the limit.
func NewDepthGuard(max int) *DepthGuard {
	return &DepthGuard{max: max}
}

// Enter records one more level of recursion, returning
// errs.ErrDepthExceeded if doing so would exceed the guard's configured
// maximum. Every successful Enter must be matched by a deferred Exit.
func (g *DepthGuard) Enter(pos int) error {
	if g == nil || g.max <= 0 {
		return nil
	}

	g.current++
	if g.current > g.max {
		return errs.At(pos, errs.ErrDepthExceeded)
	}

	return nil
}

// Exit reverses one Enter. Safe to call on a nil guard.
func (g *DepthGuard) Exit() {
	if g != nil {
		g.current--
	}
}
