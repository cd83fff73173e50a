// Package frontend provides a minimal circuit-building environment for the
// Pedersen hash gadget: wires carry concrete values together with a
// visibility mode, and the builder keeps an exact account of every
// allocation and constraint the gadgets emit. It is not a full constraint
// system compiler; its purpose is to evaluate gadgets in-process while
// reproducing their proof-time cost, so allocation and constraint counts are
// part of the package contract, not an implementation detail.
package frontend

import (
	"fmt"

	"github.com/vocdoni/pedersen-circuit/log"
)

// Mode is the visibility of a wire: baked into the circuit, revealed
// alongside the proof, or hidden behind a witness.
type Mode int

const (
	Constant Mode = iota
	Public
	Private
)

// String returns the name of the mode.
func (m Mode) String() string {
	switch m {
	case Constant:
		return "constant"
	case Public:
		return "public"
	case Private:
		return "private"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Combine returns the visibility of a wire derived from wires of modes m and
// n. Only constants stay constant; anything touched by a public or private
// wire must be witnessed, so the result is private.
func (m Mode) Combine(n Mode) Mode {
	if m == Constant && n == Constant {
		return Constant
	}
	return Private
}

// Counters is a snapshot of the builder's allocation and constraint counts.
type Counters struct {
	Constants   int
	Publics     int
	Privates    int
	Constraints int
}

// Sub returns the element-wise difference c - o, used to measure the cost of
// a scoped region of circuit construction.
func (c Counters) Sub(o Counters) Counters {
	return Counters{
		Constants:   c.Constants - o.Constants,
		Publics:     c.Publics - o.Publics,
		Privates:    c.Privates - o.Privates,
		Constraints: c.Constraints - o.Constraints,
	}
}

// Builder records the wires and constraints of one circuit under
// construction. Wires are assigned in the order they are created, so two
// identical call sequences produce identical layouts. A Builder must not be
// shared by concurrent gadget calls; independent circuits get independent
// builders.
type Builder struct {
	counters Counters
}

// NewBuilder creates an empty circuit builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Counters returns a snapshot of the current allocation and constraint
// counts.
func (b *Builder) Counters() Counters {
	return b.counters
}

// alloc records n wire allocations of the given mode.
func (b *Builder) alloc(mode Mode, n int) {
	switch mode {
	case Constant:
		b.counters.Constants += n
	case Public:
		b.counters.Publics += n
	case Private:
		b.counters.Privates += n
	}
}

// constrain records n emitted constraints.
func (b *Builder) constrain(n int) {
	b.counters.Constraints += n
}

// Halt aborts circuit construction with a descriptive message. It is
// reserved for caller contract violations: the failure is not recoverable
// and no partial wires are emitted, so it panics instead of returning an
// error.
func (b *Builder) Halt(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	log.Errorf("circuit construction halted: %s", msg)
	panic(msg)
}
