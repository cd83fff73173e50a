// Package hashproof proves knowledge of a Pedersen hash preimage inside a
// Groth16 SNARK. The circuit recomputes the fixed-base sum over BabyJubJub
// with the same generator table as the plain hash and the counting gadget,
// and asserts that it lands on a public point.
package hashproof

import (
	"fmt"
	"math/big"

	tedwards "github.com/consensys/gnark-crypto/ecc/twistededwards"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/algebra/native/twistededwards"

	"github.com/vocdoni/pedersen-circuit/crypto/ecc/format"
	"github.com/vocdoni/pedersen-circuit/crypto/pedersen"
)

// Circuit proves knowledge of Bits such that PedersenHash(Bits) = (HashX, HashY).
//
// The generator table is baked into the circuit at compile time, so one
// compiled circuit is bound to one parameter table, exactly like the gadget.
// Coordinates are in the reduced Twisted Edwards form used by gnark.
type Circuit struct {
	// Bits is the secret preimage, one boolean-constrained variable per
	// capacity bit.
	Bits []frontend.Variable

	// HashX and HashY are the public coordinates of the expected hash.
	HashX frontend.Variable `gnark:",public"`
	HashY frontend.Variable `gnark:",public"`

	// bases holds the fixed generator coordinates, flattened in window
	// order then position order.
	bases [][2]*big.Int
}

// NewCircuit builds a compile-time placeholder for the given parameter
// table. Only the BabyJubJub backends are supported, since the circuit works
// on gnark's native BN254 twisted Edwards curve.
func NewCircuit(params *pedersen.Params) (*Circuit, error) {
	curveType := params.Curve().Type()
	if curveType != "bjj_gnark" && curveType != "bjj_iden3" {
		return nil, fmt.Errorf("unsupported curve type for hashproof: %s", curveType)
	}
	capacity := params.Capacity()
	bases := make([][2]*big.Int, 0, capacity)
	for _, window := range params.Bases {
		for _, base := range window {
			x, y := base.Point()
			xRTE, yRTE := format.FromTEtoRTE(x, y)
			bases = append(bases, [2]*big.Int{xRTE, yRTE})
		}
	}
	return &Circuit{
		Bits:  make([]frontend.Variable, capacity),
		bases: bases,
	}, nil
}

// Define implements the gnark circuit: per-bit conditional selection of the
// generator against the identity, accumulated with twisted Edwards
// additions in a fixed order.
func (c *Circuit) Define(api frontend.API) error {
	if len(c.bases) != len(c.Bits) {
		return fmt.Errorf("circuit has %d bases for %d bits", len(c.bases), len(c.Bits))
	}
	curve, err := twistededwards.NewEdCurve(api, tedwards.BN254)
	if err != nil {
		return err
	}
	acc := twistededwards.Point{X: 0, Y: 1}
	for i, bit := range c.Bits {
		api.AssertIsBoolean(bit)
		selected := twistededwards.Point{
			X: api.Mul(bit, c.bases[i][0]),
			Y: api.Select(bit, c.bases[i][1], 1),
		}
		acc = curve.Add(acc, selected)
	}
	api.AssertIsEqual(acc.X, c.HashX)
	api.AssertIsEqual(acc.Y, c.HashY)
	return nil
}
