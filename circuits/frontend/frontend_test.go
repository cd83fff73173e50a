package frontend

import (
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/vocdoni/pedersen-circuit/crypto/ecc/curves"
)

func TestModeCombine(t *testing.T) {
	c := qt.New(t)
	c.Assert(Constant.Combine(Constant), qt.Equals, Constant)
	c.Assert(Constant.Combine(Public), qt.Equals, Private)
	c.Assert(Public.Combine(Constant), qt.Equals, Private)
	c.Assert(Public.Combine(Private), qt.Equals, Private)
	c.Assert(Private.Combine(Private), qt.Equals, Private)
}

func TestBooleanAllocation(t *testing.T) {
	c := qt.New(t)
	b := NewBuilder()

	NewBoolean(b, Constant, true)
	NewBoolean(b, Public, false)
	NewBoolean(b, Private, true)

	counters := b.Counters()
	c.Assert(counters.Constants, qt.Equals, 1)
	c.Assert(counters.Publics, qt.Equals, 1)
	c.Assert(counters.Privates, qt.Equals, 1)
	c.Assert(counters.Constraints, qt.Equals, 0)
}

func TestZeroIsFree(t *testing.T) {
	c := qt.New(t)
	curve, err := curves.New(curves.CurveTypeBabyJubJub)
	c.Assert(err, qt.IsNil)

	b := NewBuilder()
	zero := Zero(curve)
	c.Assert(b.Counters(), qt.Equals, Counters{})
	c.Assert(zero.Mode(), qt.Equals, Constant)
	c.Assert(zero.Value().Equal(curve.New()), qt.IsTrue)
}

func TestSelectCosts(t *testing.T) {
	c := qt.New(t)
	curve, err := curves.New(curves.CurveTypeBabyJubJub)
	c.Assert(err, qt.IsNil)
	base := curve.New()
	base.SetGenerator()
	zero := curve.New()

	// constant bit: the selection folds at build time
	b := NewBuilder()
	bit := NewBoolean(b, Constant, true)
	before := b.Counters()
	out := Select(b, bit, base, zero)
	c.Assert(b.Counters().Sub(before), qt.Equals, Counters{Constants: 2})
	c.Assert(out.Mode(), qt.Equals, Constant)
	c.Assert(out.Value().Equal(base), qt.IsTrue)

	// non-constant bit: same cost whichever way the bit goes
	for _, value := range []bool{true, false} {
		b := NewBuilder()
		bit := NewBoolean(b, Private, value)
		before := b.Counters()
		out := Select(b, bit, base, zero)
		c.Assert(b.Counters().Sub(before), qt.Equals,
			Counters{Constants: 2, Privates: 2, Constraints: 2})
		c.Assert(out.Mode(), qt.Equals, Private)
		want := zero
		if value {
			want = base
		}
		c.Assert(out.Value().Equal(want), qt.IsTrue)
	}
}

func TestAddCosts(t *testing.T) {
	c := qt.New(t)
	curve, err := curves.New(curves.CurveTypeBabyJubJub)
	c.Assert(err, qt.IsNil)
	base := curve.New()
	base.SetGenerator()
	zero := curve.New()

	newGroup := func(b *Builder, mode Mode) Group {
		bit := NewBoolean(b, mode, true)
		return Select(b, bit, base, zero)
	}

	// constant + constant
	b := NewBuilder()
	p, q := newGroup(b, Constant), newGroup(b, Constant)
	before := b.Counters()
	out := Add(b, p, q)
	c.Assert(b.Counters().Sub(before), qt.Equals, Counters{Constants: 2})
	c.Assert(out.Mode(), qt.Equals, Constant)

	// constant + variable
	b = NewBuilder()
	p, q = newGroup(b, Constant), newGroup(b, Private)
	before = b.Counters()
	out = Add(b, p, q)
	c.Assert(b.Counters().Sub(before), qt.Equals, Counters{Privates: 1, Constraints: 1})
	c.Assert(out.Mode(), qt.Equals, Private)

	// variable + variable
	b = NewBuilder()
	p, q = newGroup(b, Private), newGroup(b, Private)
	before = b.Counters()
	out = Add(b, p, q)
	c.Assert(b.Counters().Sub(before), qt.Equals, Counters{Privates: 4, Constraints: 4})
	c.Assert(out.Mode(), qt.Equals, Private)

	// the ejected value is the group sum
	double := curve.New()
	double.Add(base, base)
	c.Assert(out.Value().Equal(double), qt.IsTrue)
}

func TestHaltPanics(t *testing.T) {
	c := qt.New(t)
	b := NewBuilder()
	c.Assert(func() { b.Halt("bad input of %d bits", 9) },
		qt.PanicMatches, "bad input of 9 bits")
}
