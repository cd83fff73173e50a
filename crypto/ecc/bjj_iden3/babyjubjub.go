package bjj

import (
	"encoding/json"
	"fmt"
	"math/big"
	"sync"

	"github.com/fxamacker/cbor/v2"
	babyjubjub "github.com/iden3/go-iden3-crypto/babyjub"

	curve "github.com/vocdoni/pedersen-circuit/crypto/ecc"
	"github.com/vocdoni/pedersen-circuit/types"
)

const CurveType = "bjj_iden3"

// BJJ is the affine representation of the BabyJubJub group element, in the
// standard Twisted Edwards form used by iden3.
type BJJ struct {
	inner *babyjubjub.Point
	lock  sync.Mutex
}

// New creates a new BJJ point set to the identity element.
func New() curve.Point {
	return &BJJ{inner: babyjubjub.NewPoint()}
}

// New creates a new BJJ point set to the identity element.
func (g *BJJ) New() curve.Point {
	return New()
}

// Order returns the order of the BabyJubJub curve subgroup.
func (g *BJJ) Order() *big.Int {
	return new(big.Int).Set(babyjubjub.SubOrder)
}

// Add performs the addition of two points and stores the result in g.
func (g *BJJ) Add(a, b curve.Point) {
	g.inner = g.inner.Projective().Add(a.(*BJJ).inner.Projective(), b.(*BJJ).inner.Projective()).Affine()
}

// SafeAdd performs the addition of two points with a lock.
func (g *BJJ) SafeAdd(a, b curve.Point) {
	g.lock.Lock()
	defer g.lock.Unlock()
	g.Add(a, b)
}

// ScalarMult performs scalar multiplication of a point by a scalar.
func (g *BJJ) ScalarMult(a curve.Point, scalar *big.Int) {
	g.inner = g.inner.Mul(scalar, a.(*BJJ).inner)
}

// ScalarBaseMult performs scalar multiplication using the base point.
func (g *BJJ) ScalarBaseMult(scalar *big.Int) {
	g.inner = g.inner.Mul(scalar, babyjubjub.B8)
}

// Marshal serializes the elliptic curve element into a byte slice.
func (g *BJJ) Marshal() []byte {
	b := g.inner.Compress()
	return b[:]
}

// Unmarshal deserializes the elliptic curve element from a byte slice.
func (g *BJJ) Unmarshal(buf []byte) error {
	b32 := [32]byte{}
	copy(b32[:], buf)
	_, err := g.inner.Decompress(b32)
	return err
}

// MarshalJSON serializes the elliptic curve element into a JSON byte slice.
func (g *BJJ) MarshalJSON() ([]byte, error) {
	points := &curve.PointEC{}
	points.X.SetBigInt(g.inner.X)
	points.Y.SetBigInt(g.inner.Y)
	return json.Marshal(points)
}

// UnmarshalJSON deserializes the elliptic curve element from a JSON byte slice.
func (g *BJJ) UnmarshalJSON(buf []byte) error {
	points := &curve.PointEC{}
	if err := json.Unmarshal(buf, points); err != nil {
		return err
	}
	if g.inner == nil {
		g.inner = babyjubjub.NewPoint()
	}
	g.inner.X = new(big.Int).Set(points.X.MathBigInt())
	g.inner.Y = new(big.Int).Set(points.Y.MathBigInt())
	return nil
}

// MarshalCBOR serializes the elliptic curve element into a CBOR byte slice.
func (g *BJJ) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal([]*types.BigInt{
		(*types.BigInt)(g.inner.X),
		(*types.BigInt)(g.inner.Y),
	})
}

// UnmarshalCBOR deserializes the elliptic curve element from a CBOR byte slice.
func (g *BJJ) UnmarshalCBOR(buf []byte) error {
	if g.inner == nil {
		g.inner = babyjubjub.NewPoint()
	}
	var coords []*types.BigInt
	if err := cbor.Unmarshal(buf, &coords); err != nil {
		return err
	}
	if len(coords) != 2 {
		return fmt.Errorf("expected 2 coordinates, got %d", len(coords))
	}
	g.inner.X = new(big.Int).Set(coords[0].MathBigInt())
	g.inner.Y = new(big.Int).Set(coords[1].MathBigInt())
	return nil
}

// Equal checks if the given point is equal to the current point.
func (g *BJJ) Equal(a curve.Point) bool {
	return g.inner.X.Cmp(a.(*BJJ).inner.X) == 0 && g.inner.Y.Cmp(a.(*BJJ).inner.Y) == 0
}

// Neg negates the given point and stores the result in g.
func (g *BJJ) Neg(a curve.Point) {
	proj := a.(*BJJ).inner.Projective()
	proj.X = proj.X.Neg(proj.X)
	aff := proj.Affine()
	g.inner.X = new(big.Int).Set(aff.X)
	g.inner.Y = new(big.Int).Set(aff.Y)
}

// SetZero sets the current point to the identity element (0, 1).
func (g *BJJ) SetZero() {
	g.inner.X = big.NewInt(0)
	g.inner.Y = big.NewInt(1)
}

// Set sets g to the value of another point.
func (g *BJJ) Set(a curve.Point) {
	g.inner.X = g.inner.X.Set(a.(*BJJ).inner.X)
	g.inner.Y = g.inner.Y.Set(a.(*BJJ).inner.Y)
}

// SetGenerator sets the point to the BabyJubJub generator.
func (g *BJJ) SetGenerator() {
	gen := babyjubjub.B8
	g.inner.X = g.inner.X.Set(gen.X)
	g.inner.Y = g.inner.Y.Set(gen.Y)
}

// String returns a string representation of the point in standard Twisted
// Edwards coordinates.
func (g *BJJ) String() string {
	return fmt.Sprintf("%s,%s", g.inner.X.String(), g.inner.Y.String())
}

// Point returns the X and Y coordinates of the elliptic curve element in
// standard Twisted Edwards coordinates.
func (g *BJJ) Point() (*big.Int, *big.Int) {
	return new(big.Int).Set(g.inner.X), new(big.Int).Set(g.inner.Y)
}

// SetPoint sets the elliptic curve element from the X and Y coordinates in
// standard Twisted Edwards coordinates.
func (g *BJJ) SetPoint(x, y *big.Int) curve.Point {
	p := &BJJ{inner: babyjubjub.NewPoint()}
	p.inner.X = new(big.Int).Set(x)
	p.inner.Y = new(big.Int).Set(y)
	return p
}

// Type returns the curve type identifier of this backend.
func (g *BJJ) Type() string {
	return CurveType
}
