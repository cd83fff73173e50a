package pedersen

import (
	"encoding/json"
	"fmt"

	"github.com/vocdoni/pedersen-circuit/crypto/ecc"
	"github.com/vocdoni/pedersen-circuit/crypto/ecc/curves"
)

// paramsData is the serialized representation of a generator table. Points
// are stored by their affine coordinates so the encoding does not depend on
// the backend's internal point representation.
type paramsData struct {
	CurveType  string          `json:"curveType"`
	NumWindows int             `json:"numWindows"`
	WindowSize int             `json:"windowSize"`
	Bases      [][]ecc.PointEC `json:"bases"`
}

// MarshalJSON serializes the generator table, e.g. to cache it as a setup
// artifact.
func (p *Params) MarshalJSON() ([]byte, error) {
	data := paramsData{
		CurveType:  p.Curve().Type(),
		NumWindows: p.NumWindows,
		WindowSize: p.WindowSize,
		Bases:      make([][]ecc.PointEC, p.NumWindows),
	}
	for w, window := range p.Bases {
		data.Bases[w] = make([]ecc.PointEC, len(window))
		for i, base := range window {
			x, y := base.Point()
			data.Bases[w][i].X.SetBigInt(x)
			data.Bases[w][i].Y.SetBigInt(y)
		}
	}
	return json.Marshal(data)
}

// UnmarshalJSON deserializes a generator table produced by MarshalJSON.
func (p *Params) UnmarshalJSON(buf []byte) error {
	var data paramsData
	if err := json.Unmarshal(buf, &data); err != nil {
		return err
	}
	if data.NumWindows <= 0 || data.WindowSize <= 0 {
		return fmt.Errorf("window parameters must be positive, got %d windows of %d bits", data.NumWindows, data.WindowSize)
	}
	if len(data.Bases) != data.NumWindows {
		return fmt.Errorf("expected %d windows, got %d", data.NumWindows, len(data.Bases))
	}
	proto, err := curves.New(data.CurveType)
	if err != nil {
		return err
	}
	bases := make([][]ecc.Point, data.NumWindows)
	for w, window := range data.Bases {
		if len(window) != data.WindowSize {
			return fmt.Errorf("expected %d generators in window %d, got %d", data.WindowSize, w, len(window))
		}
		bases[w] = make([]ecc.Point, data.WindowSize)
		for i, coords := range window {
			bases[w][i] = proto.SetPoint(coords.X.MathBigInt(), coords.Y.MathBigInt())
		}
	}
	p.NumWindows = data.NumWindows
	p.WindowSize = data.WindowSize
	p.Bases = bases
	return nil
}
