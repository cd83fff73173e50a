package bn254

import (
	"encoding/json"
	"fmt"
	"math/big"
	"sync"

	"github.com/fxamacker/cbor/v2"
	curve "github.com/vocdoni/pedersen-circuit/crypto/ecc"
	"github.com/vocdoni/pedersen-circuit/types"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

const CurveType = "bn254"

var Generator bn254.G1Jac

func init() {
	Generator.X.SetOne()
	Generator.Y.SetUint64(2)
	Generator.Z.SetOne()
}

// G1 is the affine representation of a G1 group element.
type G1 struct {
	inner *bn254.G1Affine
	lock  sync.Mutex
}

// New creates a new G1 point set to the identity element.
func New() curve.Point {
	return &G1{inner: new(bn254.G1Affine)}
}

// New creates a new G1 point set to the identity element.
func (g *G1) New() curve.Point {
	return New()
}

// Order returns the order of the BN254 G1 group.
func (g *G1) Order() *big.Int {
	return fr.Modulus()
}

// Add performs the addition of two points and stores the result in g.
func (g *G1) Add(a, b curve.Point) {
	temp := new(bn254.G1Affine)
	temp.Add(a.(*G1).inner, b.(*G1).inner)
	*g.inner = *temp
}

// SafeAdd performs the addition of two points with a lock.
func (g *G1) SafeAdd(a, b curve.Point) {
	g.lock.Lock()
	defer g.lock.Unlock()
	g.Add(a, b)
}

// ScalarMult performs scalar multiplication of a point by a scalar.
func (g *G1) ScalarMult(a curve.Point, scalar *big.Int) {
	temp := new(bn254.G1Affine)
	temp.ScalarMultiplication(a.(*G1).inner, scalar)
	*g.inner = *temp
}

// ScalarBaseMult performs scalar multiplication using the base point.
func (g *G1) ScalarBaseMult(scalar *big.Int) {
	g.inner.ScalarMultiplicationBase(scalar)
}

// Marshal serializes the elliptic curve element into a byte slice.
func (g *G1) Marshal() []byte {
	return g.inner.Marshal()
}

// Unmarshal deserializes the elliptic curve element from a byte slice.
func (g *G1) Unmarshal(buf []byte) error {
	_, err := g.inner.SetBytes(buf)
	return err
}

// MarshalJSON serializes the elliptic curve element into a JSON byte slice.
func (g *G1) MarshalJSON() ([]byte, error) {
	points := &curve.PointEC{}
	points.X.SetBigInt(g.inner.X.BigInt(new(big.Int)))
	points.Y.SetBigInt(g.inner.Y.BigInt(new(big.Int)))
	return json.Marshal(points)
}

// UnmarshalJSON deserializes the elliptic curve element from a JSON byte slice.
func (g *G1) UnmarshalJSON(buf []byte) error {
	points := &curve.PointEC{}
	if err := json.Unmarshal(buf, points); err != nil {
		return err
	}
	if g.inner == nil {
		g.inner = new(bn254.G1Affine)
	}
	g.inner.X.SetBigInt(points.X.MathBigInt())
	g.inner.Y.SetBigInt(points.Y.MathBigInt())
	return nil
}

// MarshalCBOR serializes the elliptic curve element into a CBOR byte slice.
func (g *G1) MarshalCBOR() ([]byte, error) {
	x := g.inner.X.BigInt(new(big.Int))
	y := g.inner.Y.BigInt(new(big.Int))
	return cbor.Marshal([]*types.BigInt{(*types.BigInt)(x), (*types.BigInt)(y)})
}

// UnmarshalCBOR deserializes the elliptic curve element from a CBOR byte slice.
func (g *G1) UnmarshalCBOR(buf []byte) error {
	if g.inner == nil {
		g.inner = new(bn254.G1Affine)
	}
	var coords []*types.BigInt
	if err := cbor.Unmarshal(buf, &coords); err != nil {
		return err
	}
	if len(coords) != 2 {
		return fmt.Errorf("expected 2 coordinates, got %d", len(coords))
	}
	g.inner.X.SetBigInt(coords[0].MathBigInt())
	g.inner.Y.SetBigInt(coords[1].MathBigInt())
	return nil
}

// Equal checks if the given point is equal to the current point.
func (g *G1) Equal(a curve.Point) bool {
	return g.inner.Equal(a.(*G1).inner)
}

// Neg negates the given point and stores the result in g.
func (g *G1) Neg(a curve.Point) {
	g.inner.Neg(a.(*G1).inner)
}

// SetZero sets the current point to the identity element (point at infinity).
func (g *G1) SetZero() {
	g.inner.X.SetZero()
	g.inner.Y.SetZero()
}

// Set sets g to the value of another point.
func (g *G1) Set(a curve.Point) {
	g.inner.X.Set(&a.(*G1).inner.X)
	g.inner.Y.Set(&a.(*G1).inner.Y)
}

// SetGenerator sets the point to the BN254 G1 generator.
func (g *G1) SetGenerator() {
	g.inner.FromJacobian(&Generator)
}

// String returns the hexadecimal string representation of the point.
func (g *G1) String() string {
	bytes := g.Marshal()
	return fmt.Sprintf("%x", bytes)
}

// Point returns the X and Y coordinates of the elliptic curve element.
func (g *G1) Point() (*big.Int, *big.Int) {
	return g.inner.X.BigInt(new(big.Int)), g.inner.Y.BigInt(new(big.Int))
}

// SetPoint sets the elliptic curve element from the X and Y coordinates.
func (g *G1) SetPoint(x, y *big.Int) curve.Point {
	p := &G1{inner: new(bn254.G1Affine)}
	p.inner.X.SetBigInt(x)
	p.inner.Y.SetBigInt(y)
	return p
}

// Type returns the curve type identifier of this backend.
func (g *G1) Type() string {
	return CurveType
}
