// Package format converts BabyJubJub point coordinates between the standard
// Twisted Edwards form used by iden3 (ax² + y² = 1 + dx²y², a = 168700) and
// the reduced form used by gnark-crypto and the gnark circuits (a = -1).
// The two curves are isomorphic through the map x' = -f·x, y' = y, where f is
// a square root of -168700 in the BN254 scalar field.
package format

import "math/big"

var (
	// baseField is the BN254 scalar field, over which BabyJubJub is defined.
	baseField, _ = new(big.Int).SetString("21888242871839275222246405745257275088548364400416034343698204186575808495617", 10)
	// scalingFactor is f, with f² = -168700 mod baseField.
	scalingFactor, _ = new(big.Int).SetString("6360561867910373094066688120553762416144456282423235903351243436111059670888", 10)
	// negFactorInv is (-f)⁻¹ mod baseField.
	negFactorInv = new(big.Int).ModInverse(new(big.Int).Neg(scalingFactor), baseField)
)

// FromTEtoRTE converts a point from standard Twisted Edwards coordinates to
// reduced Twisted Edwards coordinates: x' = -f·x, y' = y.
func FromTEtoRTE(x, y *big.Int) (*big.Int, *big.Int) {
	xRTE := new(big.Int).Mul(x, new(big.Int).Neg(scalingFactor))
	return xRTE.Mod(xRTE, baseField), new(big.Int).Set(y)
}

// FromRTEtoTE converts a point from reduced Twisted Edwards coordinates back
// to standard Twisted Edwards coordinates: x = x'/(-f), y = y'.
func FromRTEtoTE(x, y *big.Int) (*big.Int, *big.Int) {
	xTE := new(big.Int).Mul(x, negFactorInv)
	return xTE.Mod(xTE, baseField), new(big.Int).Set(y)
}
