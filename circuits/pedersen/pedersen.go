// Package pedersen implements the fixed-base Pedersen hash as a circuit
// gadget. The gadget shares its generator table with the plain hash in
// crypto/pedersen, so ejecting the result wire of a circuit hash always
// matches the plain hash of the same bits.
package pedersen

import (
	"github.com/vocdoni/pedersen-circuit/circuits/frontend"
	"github.com/vocdoni/pedersen-circuit/crypto/ecc"
	crh "github.com/vocdoni/pedersen-circuit/crypto/pedersen"
)

// Pedersen is a circuit Pedersen hash instance. It is bound for its lifetime
// to the parameter table it was created with, and can be shared by any
// number of hash calls on independent builders.
type Pedersen struct {
	params *crh.Params
}

// New creates a hash gadget over an existing parameter table.
func New(params *crh.Params) *Pedersen {
	return &Pedersen{params: params}
}

// Setup derives a fresh parameter table from the label and returns a gadget
// bound to it. Same label, same gadget behavior.
func Setup(curve ecc.Point, label string, numWindows, windowSize int) (*Pedersen, error) {
	params, err := crh.Setup(curve, label, numWindows, windowSize)
	if err != nil {
		return nil, err
	}
	return New(params), nil
}

// Params returns the parameter table the gadget is bound to.
func (p *Pedersen) Params() *crh.Params {
	return p.params
}

// Hash maps the input bits to a group element wire, emitting the constraints
// that prove the result. Inputs shorter than the capacity are right-padded
// with constant false bits, so padding never costs witness constraints.
// An input longer than the capacity is a caller contract violation and halts
// circuit construction.
func (p *Pedersen) Hash(b *frontend.Builder, input []frontend.Boolean) frontend.Group {
	capacity := p.params.Capacity()
	if len(input) > capacity {
		b.Halt("pedersen: input length %d exceeds capacity of %d bits", len(input), capacity)
	}
	bits := make([]frontend.Boolean, 0, capacity)
	bits = append(bits, input...)
	for len(bits) < capacity {
		bits = append(bits, frontend.NewBoolean(b, frontend.Constant, false))
	}

	// Sum bit ? base : identity over every window position, in window order
	// then position order. The order is fixed so that identical inputs
	// always produce the identical constraint layout.
	zero := p.params.Curve()
	acc := frontend.Zero(zero)
	for w := 0; w < p.params.NumWindows; w++ {
		window := bits[w*p.params.WindowSize : (w+1)*p.params.WindowSize]
		for i, bit := range window {
			selected := frontend.Select(b, bit, p.params.Bases[w][i], zero)
			acc = frontend.Add(b, acc, selected)
		}
	}
	return acc
}
