package pedersen

import (
	"encoding/json"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/vocdoni/pedersen-circuit/crypto/ecc/curves"
	"github.com/vocdoni/pedersen-circuit/util"
)

const testLabel = "test-label"

func TestSetupDeterminism(t *testing.T) {
	c := qt.New(t)
	curve, err := curves.New(curves.CurveTypeBabyJubJub)
	c.Assert(err, qt.IsNil)

	params1, err := Setup(curve, testLabel, 2, 8)
	c.Assert(err, qt.IsNil)
	params2, err := Setup(curve, testLabel, 2, 8)
	c.Assert(err, qt.IsNil)
	for w := range params1.Bases {
		for i := range params1.Bases[w] {
			c.Assert(params1.Bases[w][i].Equal(params2.Bases[w][i]), qt.IsTrue)
		}
	}

	// a different label must yield a different table
	params3, err := Setup(curve, "another-label", 2, 8)
	c.Assert(err, qt.IsNil)
	c.Assert(params1.Bases[0][0].Equal(params3.Bases[0][0]), qt.IsFalse)
}

func TestSetupInvalidSizes(t *testing.T) {
	c := qt.New(t)
	curve, err := curves.New(curves.CurveTypeBabyJubJub)
	c.Assert(err, qt.IsNil)

	_, err = Setup(curve, testLabel, 0, 8)
	c.Assert(err, qt.IsNotNil)
	_, err = Setup(curve, testLabel, 1, -1)
	c.Assert(err, qt.IsNotNil)
}

func TestHashPadding(t *testing.T) {
	c := qt.New(t)
	curve, err := curves.New(curves.CurveTypeBabyJubJub)
	c.Assert(err, qt.IsNil)
	params, err := Setup(curve, testLabel, 1, 8)
	c.Assert(err, qt.IsNil)

	short := []bool{true, false, true, true, false}
	padded := []bool{true, false, true, true, false, false, false, false}

	gotShort, err := params.Hash(short)
	c.Assert(err, qt.IsNil)
	gotPadded, err := params.Hash(padded)
	c.Assert(err, qt.IsNil)
	c.Assert(gotShort.Equal(gotPadded), qt.IsTrue)

	// the empty input hashes to the identity
	empty, err := params.Hash(nil)
	c.Assert(err, qt.IsNil)
	zero := curve.New()
	c.Assert(empty.Equal(zero), qt.IsTrue)
}

func TestHashCapacityExceeded(t *testing.T) {
	c := qt.New(t)
	curve, err := curves.New(curves.CurveTypeBabyJubJub)
	c.Assert(err, qt.IsNil)
	params, err := Setup(curve, testLabel, 1, 8)
	c.Assert(err, qt.IsNil)

	_, err = params.Hash(make([]bool, 9))
	c.Assert(err, qt.ErrorMatches, "pedersen: input length 9 exceeds capacity of 8 bits")
}

func TestHashBackendsAgree(t *testing.T) {
	c := qt.New(t)
	gnarkCurve, err := curves.New(curves.CurveTypeBabyJubJubGnark)
	c.Assert(err, qt.IsNil)
	iden3Curve, err := curves.New(curves.CurveTypeBabyJubJubIden3)
	c.Assert(err, qt.IsNil)

	gnarkParams, err := Setup(gnarkCurve, testLabel, 2, 8)
	c.Assert(err, qt.IsNil)
	iden3Params, err := Setup(iden3Curve, testLabel, 2, 8)
	c.Assert(err, qt.IsNil)

	for i := 0; i < 10; i++ {
		bits := util.RandomBits(16)
		gnarkHash, err := gnarkParams.Hash(bits)
		c.Assert(err, qt.IsNil)
		iden3Hash, err := iden3Params.Hash(bits)
		c.Assert(err, qt.IsNil)
		c.Assert(gnarkHash.String(), qt.Equals, iden3Hash.String())
	}
}

func TestHashBN254(t *testing.T) {
	c := qt.New(t)
	curve, err := curves.New(curves.CurveTypeBN254)
	c.Assert(err, qt.IsNil)
	params, err := Setup(curve, testLabel, 1, 16)
	c.Assert(err, qt.IsNil)

	bits := util.RandomBits(16)
	hash1, err := params.Hash(bits)
	c.Assert(err, qt.IsNil)
	hash2, err := params.Hash(bits)
	c.Assert(err, qt.IsNil)
	c.Assert(hash1.Equal(hash2), qt.IsTrue)

	// flipping one bit must change the result
	bits[0] = !bits[0]
	hash3, err := params.Hash(bits)
	c.Assert(err, qt.IsNil)
	c.Assert(hash1.Equal(hash3), qt.IsFalse)
}

func TestHashBytes(t *testing.T) {
	c := qt.New(t)
	curve, err := curves.New(curves.CurveTypeBabyJubJub)
	c.Assert(err, qt.IsNil)
	params, err := Setup(curve, testLabel, 2, 8)
	c.Assert(err, qt.IsNil)

	got, err := params.HashBytes([]byte{0b00000101, 0b10000000})
	c.Assert(err, qt.IsNil)
	want, err := params.Hash([]bool{
		true, false, true, false, false, false, false, false,
		false, false, false, false, false, false, false, true,
	})
	c.Assert(err, qt.IsNil)
	c.Assert(got.Equal(want), qt.IsTrue)
}

func TestParamsJSON(t *testing.T) {
	c := qt.New(t)
	for _, curveType := range []string{
		curves.CurveTypeBabyJubJubGnark,
		curves.CurveTypeBabyJubJubIden3,
		curves.CurveTypeBN254,
	} {
		curve, err := curves.New(curveType)
		c.Assert(err, qt.IsNil)
		params, err := Setup(curve, testLabel, 1, 8)
		c.Assert(err, qt.IsNil)

		buf, err := json.Marshal(params)
		c.Assert(err, qt.IsNil)

		restored := new(Params)
		c.Assert(json.Unmarshal(buf, restored), qt.IsNil)
		c.Assert(restored.NumWindows, qt.Equals, params.NumWindows)
		c.Assert(restored.WindowSize, qt.Equals, params.WindowSize)

		bits := util.RandomBits(8)
		want, err := params.Hash(bits)
		c.Assert(err, qt.IsNil)
		got, err := restored.Hash(bits)
		c.Assert(err, qt.IsNil)
		c.Assert(got.Equal(want), qt.IsTrue)
	}
}
