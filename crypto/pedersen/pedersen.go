// Package pedersen implements the plain (non-circuit) fixed-base Pedersen
// hash over an abstract elliptic curve group, together with the generator
// table shared with the circuit gadget. The hash maps a bit string to a
// group element as the sum of one fixed generator per set bit.
package pedersen

import (
	"crypto/sha256"
	"fmt"
	"math/big"

	"github.com/iden3/go-iden3-crypto/poseidon"
	"github.com/vocdoni/pedersen-circuit/crypto/ecc"
	"github.com/vocdoni/pedersen-circuit/log"
)

// Params holds the fixed generator table of a Pedersen hash instance: one
// window of WindowSize generators per input window. A Params value is bound
// to the (NumWindows, WindowSize) pair it was created with and is immutable
// after Setup, so it can be shared by any number of concurrent hash calls.
type Params struct {
	NumWindows int
	WindowSize int
	Bases      [][]ecc.Point
}

// Setup deterministically derives numWindows*windowSize generators from the
// given domain-separation label on the provided curve. The same label always
// yields the same table, which keeps the plain hash and the circuit gadget
// in agreement. Each generator is H(label, window, position)·G, with H a
// Poseidon hash of the label digest and the indices reduced into the scalar
// field.
func Setup(curve ecc.Point, label string, numWindows, windowSize int) (*Params, error) {
	if numWindows <= 0 || windowSize <= 0 {
		return nil, fmt.Errorf("window parameters must be positive, got %d windows of %d bits", numWindows, windowSize)
	}
	digest := sha256.Sum256([]byte(label))
	labelScalar := ecc.BigToFF(curve.Order(), new(big.Int).SetBytes(digest[:]))
	bases := make([][]ecc.Point, numWindows)
	for w := range bases {
		bases[w] = make([]ecc.Point, windowSize)
		for i := range bases[w] {
			h, err := poseidon.Hash([]*big.Int{labelScalar, big.NewInt(int64(w)), big.NewInt(int64(i))})
			if err != nil {
				return nil, fmt.Errorf("failed to derive generator (%d,%d): %v", w, i, err)
			}
			scalar := ecc.BigToFF(curve.Order(), h)
			if scalar.Sign() == 0 {
				// a zero scalar would yield the identity, which cannot act as a generator
				scalar = big.NewInt(1)
			}
			base := curve.New()
			base.ScalarBaseMult(scalar)
			bases[w][i] = base
		}
	}
	log.Debugw("pedersen parameters generated",
		"label", label,
		"curve", curve.Type(),
		"windows", numWindows,
		"windowSize", windowSize,
	)
	return &Params{NumWindows: numWindows, WindowSize: windowSize, Bases: bases}, nil
}

// Capacity returns the fixed input capacity of the hash in bits.
func (p *Params) Capacity() int {
	return p.NumWindows * p.WindowSize
}

// Curve returns a fresh identity element of the group the table lives on.
func (p *Params) Curve() ecc.Point {
	return p.Bases[0][0].New()
}

// Hash computes the Pedersen hash of the given bits. Inputs shorter than the
// capacity are right-padded with false; inputs longer than the capacity are
// rejected with an error.
func (p *Params) Hash(bits []bool) (ecc.Point, error) {
	if len(bits) > p.Capacity() {
		return nil, fmt.Errorf("pedersen: input length %d exceeds capacity of %d bits", len(bits), p.Capacity())
	}
	acc := p.Curve()
	for w := 0; w < p.NumWindows; w++ {
		for i := 0; i < p.WindowSize; i++ {
			idx := w*p.WindowSize + i
			if idx < len(bits) && bits[idx] {
				acc.Add(acc, p.Bases[w][i])
			}
		}
	}
	return acc, nil
}

// HashBytes computes the Pedersen hash of the given bytes, taking bits in
// little-endian order within each byte.
func (p *Params) HashBytes(data []byte) (ecc.Point, error) {
	bits := make([]bool, 0, len(data)*8)
	for _, b := range data {
		for i := 0; i < 8; i++ {
			bits = append(bits, b&(1<<i) != 0)
		}
	}
	return p.Hash(bits)
}
