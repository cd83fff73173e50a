package types

import (
	"fmt"
	"math/big"

	"github.com/fxamacker/cbor/v2"
)

// BigInt is a big.Int wrapper which marshals JSON to a string representation
// of the big number. Note that a nil pointer value marshals as the empty
// string.
type BigInt big.Int

// MarshalText returns the decimal string representation of the number.
func (i *BigInt) MarshalText() ([]byte, error) {
	if i == nil {
		return []byte(""), nil
	}
	return []byte((*big.Int)(i).String()), nil
}

// UnmarshalText parses the decimal string representation of the number.
func (i *BigInt) UnmarshalText(data []byte) error {
	if _, ok := (*big.Int)(i).SetString(string(data), 10); !ok {
		return fmt.Errorf("cannot parse big integer %q", data)
	}
	return nil
}

// MarshalCBOR encodes the number as its decimal string representation.
func (i *BigInt) MarshalCBOR() ([]byte, error) {
	if i == nil {
		return cbor.Marshal("")
	}
	return cbor.Marshal((*big.Int)(i).String())
}

// UnmarshalCBOR decodes the number from its decimal string representation.
func (i *BigInt) UnmarshalCBOR(data []byte) error {
	var s string
	if err := cbor.Unmarshal(data, &s); err != nil {
		return err
	}
	return i.UnmarshalText([]byte(s))
}

// Equal reports whether i and j represent the same number. A nil pointer is
// only equal to another nil pointer.
func (i *BigInt) Equal(j *BigInt) bool {
	if i == nil || j == nil {
		return i == j
	}
	return (*big.Int)(i).Cmp((*big.Int)(j)) == 0
}

// String returns the decimal string representation of the number.
func (i *BigInt) String() string {
	return (*big.Int)(i).String()
}

// SetBigInt sets the value to the provided big.Int and returns the receiver.
func (i *BigInt) SetBigInt(v *big.Int) *BigInt {
	(*big.Int)(i).Set(v)
	return i
}

// MathBigInt converts the BigInt to a math/big *big.Int.
func (i *BigInt) MathBigInt() *big.Int {
	return (*big.Int)(i)
}
