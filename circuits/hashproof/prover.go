package hashproof

import (
	"bytes"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"

	curve "github.com/vocdoni/pedersen-circuit/crypto/ecc"
	"github.com/vocdoni/pedersen-circuit/crypto/ecc/format"
	"github.com/vocdoni/pedersen-circuit/crypto/pedersen"
	"github.com/vocdoni/pedersen-circuit/log"
)

// ProvingKeys holds the Groth16 artifacts of one compiled hashproof circuit.
type ProvingKeys struct {
	PK  groth16.ProvingKey
	VK  groth16.VerifyingKey
	CCS constraint.ConstraintSystem
}

var (
	keysCache = map[string]*ProvingKeys{}
	keysMutex sync.Mutex
)

// cacheKey identifies a parameter table by its serialized content, so two
// tables with the same generators share compiled artifacts.
func cacheKey(params *pedersen.Params) (string, error) {
	buf, err := json.Marshal(params)
	if err != nil {
		return "", err
	}
	digest := sha256.Sum256(buf)
	return fmt.Sprintf("%x", digest), nil
}

// Setup compiles the circuit for the given parameter table and runs the
// Groth16 trusted setup. Results are cached per table.
func Setup(params *pedersen.Params) (*ProvingKeys, error) {
	key, err := cacheKey(params)
	if err != nil {
		return nil, err
	}
	keysMutex.Lock()
	defer keysMutex.Unlock()
	if keys, ok := keysCache[key]; ok {
		return keys, nil
	}

	circuit, err := NewCircuit(params)
	if err != nil {
		return nil, err
	}
	ccs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, circuit)
	if err != nil {
		return nil, fmt.Errorf("hashproof circuit compilation failed: %w", err)
	}
	pk, vk, err := groth16.Setup(ccs)
	if err != nil {
		return nil, fmt.Errorf("groth16 setup failed: %w", err)
	}
	log.Infow("hashproof circuit ready",
		"capacity", params.Capacity(),
		"constraints", ccs.GetNbConstraints(),
	)

	keys := &ProvingKeys{PK: pk, VK: vk, CCS: ccs}
	keysCache[key] = keys
	return keys, nil
}

// assignment builds the full witness values for the given bits and hash.
func assignment(capacity int, bits []bool, hash curve.Point) *Circuit {
	c := &Circuit{Bits: make([]frontend.Variable, capacity)}
	for i := range c.Bits {
		c.Bits[i] = 0
		if i < len(bits) && bits[i] {
			c.Bits[i] = 1
		}
	}
	x, y := hash.Point()
	c.HashX, c.HashY = format.FromTEtoRTE(x, y)
	return c
}

// Prove generates a Groth16 proof of knowledge of the given bits. It returns
// the serialized proof and the hash point the proof opens.
func Prove(keys *ProvingKeys, params *pedersen.Params, bits []bool) ([]byte, curve.Point, error) {
	hash, err := params.Hash(bits)
	if err != nil {
		return nil, nil, err
	}
	witness, err := frontend.NewWitness(
		assignment(params.Capacity(), bits, hash), ecc.BN254.ScalarField())
	if err != nil {
		return nil, nil, fmt.Errorf("witness creation failed: %w", err)
	}
	proof, err := groth16.Prove(keys.CCS, keys.PK, witness)
	if err != nil {
		return nil, nil, fmt.Errorf("proof generation failed: %w", err)
	}
	var buf bytes.Buffer
	if _, err := proof.WriteTo(&buf); err != nil {
		return nil, nil, fmt.Errorf("proof serialization failed: %w", err)
	}
	return buf.Bytes(), hash, nil
}

// Verify checks a serialized proof against the public hash point.
func Verify(keys *ProvingKeys, hash curve.Point, proofBytes []byte) error {
	x, y := hash.Point()
	xRTE, yRTE := format.FromTEtoRTE(x, y)
	public := &Circuit{HashX: xRTE, HashY: yRTE}
	witness, err := frontend.NewWitness(public, ecc.BN254.ScalarField(), frontend.PublicOnly())
	if err != nil {
		return fmt.Errorf("public witness creation failed: %w", err)
	}
	proof := groth16.NewProof(ecc.BN254)
	if _, err := proof.ReadFrom(bytes.NewReader(proofBytes)); err != nil {
		return fmt.Errorf("proof deserialization failed: %w", err)
	}
	if err := groth16.Verify(proof, keys.VK, witness); err != nil {
		return fmt.Errorf("proof verification failed: %w", err)
	}
	return nil
}
