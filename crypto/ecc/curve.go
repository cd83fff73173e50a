package ecc

import (
	"math/big"

	"github.com/vocdoni/pedersen-circuit/types"
)

// Point defines the common operations that can be performed on elliptic curve
// group elements. It represents the affine coordinates of a point on an
// elliptic curve and provides methods for arithmetic operations,
// serialization, and comparison.
type Point interface {
	// New returns a new elliptic curve point set to the identity element.
	New() Point

	// Order returns the order of the elliptic curve group.
	// This is the number of elements in the group, represented as a big integer.
	Order() *big.Int

	// Add adds two elliptic curve group elements and stores the result in the receiver.
	// a and b are the elements to be added.
	Add(a, b Point)

	// SafeAdd adds two elliptic curve group elements and stores the result in the receiver.
	// It is thread-safe, ensuring exclusive access to the receiver during the operation.
	SafeAdd(a, b Point)

	// ScalarMult performs scalar multiplication of an elliptic curve element.
	// Multiplies the group element a by the scalar value.
	ScalarMult(a Point, scalar *big.Int)

	// ScalarBaseMult performs scalar multiplication of the generator point by a scalar value.
	// The receiver is set to the result of multiplying the generator point by the scalar.
	ScalarBaseMult(scalar *big.Int)

	// Marshal serializes the elliptic curve element into a byte slice.
	Marshal() []byte

	// Unmarshal deserializes a byte slice into an elliptic curve element.
	// The input buf must represent a valid serialized point, or an error will be returned.
	Unmarshal(buf []byte) error

	// Equal checks if two elliptic curve elements are equal.
	Equal(a Point) bool

	// Neg negates an elliptic curve element, effectively computing its inverse.
	Neg(a Point)

	// SetZero sets the elliptic curve element to the identity element of the group.
	SetZero()

	// Set sets the value of the receiver to be equal to another elliptic curve element.
	Set(a Point)

	// SetGenerator sets the elliptic curve element to the generator point.
	SetGenerator()

	// String returns a string representation of the elliptic curve element.
	// Useful for debugging or displaying the group element in a human-readable form.
	String() string

	// Point returns the X and Y coordinates of the elliptic curve element.
	Point() (*big.Int, *big.Int)

	// SetPoint sets the X and Y coordinates of the elliptic curve element.
	SetPoint(x, y *big.Int) Point

	// Type returns the curve type identifier of the backend.
	Type() string
}

// PointEC is the JSON representation of an elliptic curve point.
type PointEC struct {
	X types.BigInt `json:"x"`
	Y types.BigInt `json:"y"`
}
