package frontend

import "github.com/vocdoni/pedersen-circuit/crypto/ecc"

// Group is a wire pair carrying a group element by its two affine
// coordinates.
type Group struct {
	mode  Mode
	value ecc.Point
}

// Mode returns the visibility mode of the wire.
func (g Group) Mode() Mode { return g.mode }

// Value ejects the concrete group element carried by the wire.
func (g Group) Value() ecc.Point { return g.value }

// Zero returns the group identity as a literal constant. Literals are
// interned and cost no wire allocation.
func Zero(curve ecc.Point) Group {
	return Group{mode: Constant, value: curve.New()}
}

func clone(p ecc.Point) ecc.Point {
	c := p.New()
	c.Set(p)
	return c
}

// Select returns bit ? ifTrue : ifFalse, where both branches are fixed curve
// points. The two branch constants enter the circuit as constant wires in
// every case. With a constant bit the selection is resolved at build time
// and emits nothing else. With a public or private bit, the two selected
// coordinates are witnessed with one constraint each; the constraint shape
// is the same whichever way the bit goes, so the cost never depends on the
// value of the bit.
func Select(b *Builder, bit Boolean, ifTrue, ifFalse ecc.Point) Group {
	sel := ifFalse
	if bit.Value() {
		sel = ifTrue
	}
	b.alloc(Constant, 2)
	if bit.Mode() == Constant {
		return Group{mode: Constant, value: clone(sel)}
	}
	b.alloc(Private, 2)
	b.constrain(2)
	return Group{mode: Private, value: clone(sel)}
}

// Add returns the group sum of two wires. Two constant operands fold into a
// new constant, two constant wire allocations. When exactly one operand is
// constant it folds into the linear terms of the complete addition formula
// and only the cross product of the variable coordinates is witnessed, one
// constraint. The general case witnesses the four products of the complete
// addition formula, one constraint each.
func Add(b *Builder, p, q Group) Group {
	sum := p.value.New()
	sum.Add(p.value, q.value)
	mode := p.mode.Combine(q.mode)
	switch {
	case mode == Constant:
		b.alloc(Constant, 2)
	case p.mode == Constant || q.mode == Constant:
		b.alloc(Private, 1)
		b.constrain(1)
	default:
		b.alloc(Private, 4)
		b.constrain(4)
	}
	return Group{mode: mode, value: sum}
}
