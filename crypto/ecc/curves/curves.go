package curves

import (
	"fmt"

	"github.com/vocdoni/pedersen-circuit/crypto/ecc"
	bjjGnark "github.com/vocdoni/pedersen-circuit/crypto/ecc/bjj_gnark"
	bjjIden3 "github.com/vocdoni/pedersen-circuit/crypto/ecc/bjj_iden3"
	"github.com/vocdoni/pedersen-circuit/crypto/ecc/bn254"
)

const (
	CurveTypeBabyJubJub      = "bjj_gnark" // Default bjj curve type
	CurveTypeBabyJubJubGnark = "bjj_gnark"
	CurveTypeBabyJubJubIden3 = "bjj_iden3"
	CurveTypeBN254           = "bn254"
)

// New creates a new instance of a Curve implementation based on the provided
// type string. The supported types are defined as constants in this package.
// The returned point is set to the identity element of the group.
func New(curveType string) (ecc.Point, error) {
	switch curveType {
	case CurveTypeBabyJubJubGnark:
		return bjjGnark.New(), nil
	case CurveTypeBabyJubJubIden3:
		return bjjIden3.New(), nil
	case CurveTypeBN254:
		return bn254.New(), nil
	default:
		return nil, fmt.Errorf("unsupported curve type: %s", curveType)
	}
}
