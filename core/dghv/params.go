package dghv

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/google/go-cmp/cmp"
)

// ParametersLiteral is a literal representation of DGHV parameters. It has
// public fields and is used to express unchecked user-defined parameters
// literally into Go programs. The NewParametersFromLiteral function is used
// to generate the actual checked parameters from the literal representation.
//
// The three fields are bit-lengths:
//   - Eta: bit-length of the fresh noise terms r, i.e. |r| < 2^Eta.
//   - SecretBits: exact bit-length of the secret odd modulus p.
//   - Gamma: bit-length of the large multiplier q, i.e. q in [0, 2^Gamma).
//
// They must satisfy 0 < Eta < SecretBits < Gamma: the noise must start far
// below the correctness threshold p/2, and the multiplier must dominate the
// secret modulus so that the p*q term hides it.
type ParametersLiteral struct {
	Eta        int
	SecretBits int
	Gamma      int
}

// Parameters represents a set of DGHV parameters. Its fields are private and
// immutable. See ParametersLiteral for user-specified parameters.
type Parameters struct {
	eta        int
	secretBits int
	gamma      int
}

// NewParametersFromLiteral instantiates a set of Parameters from a
// ParametersLiteral. It returns an error if the literal violates the
// ordering 0 < Eta < SecretBits < Gamma, under which the correctness
// threshold of the scheme would be meaningless.
func NewParametersFromLiteral(paramDef ParametersLiteral) (Parameters, error) {

	if paramDef.Eta < 1 {
		return Parameters{}, fmt.Errorf("invalid parameters: Eta=%d should be at least 1", paramDef.Eta)
	}

	if paramDef.SecretBits <= paramDef.Eta {
		return Parameters{}, fmt.Errorf("invalid parameters: SecretBits=%d should be greater than Eta=%d", paramDef.SecretBits, paramDef.Eta)
	}

	if paramDef.Gamma <= paramDef.SecretBits {
		return Parameters{}, fmt.Errorf("invalid parameters: Gamma=%d should be greater than SecretBits=%d", paramDef.Gamma, paramDef.SecretBits)
	}

	return Parameters{
		eta:        paramDef.Eta,
		secretBits: paramDef.SecretBits,
		gamma:      paramDef.Gamma,
	}, nil
}

// ParametersLiteral returns the ParametersLiteral of the target Parameters.
func (p Parameters) ParametersLiteral() ParametersLiteral {
	return ParametersLiteral{
		Eta:        p.eta,
		SecretBits: p.secretBits,
		Gamma:      p.gamma,
	}
}

// Eta returns the bit-length bound of the fresh noise terms.
func (p Parameters) Eta() int {
	return p.eta
}

// SecretBits returns the exact bit-length of the secret modulus p.
func (p Parameters) SecretBits() int {
	return p.secretBits
}

// Gamma returns the bit-length of the large multiplier q.
func (p Parameters) Gamma() int {
	return p.gamma
}

// NoiseBound returns the exclusive bound 2^Eta on the magnitude of fresh
// noise terms.
func (p Parameters) NoiseBound() *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(p.eta))
}

// Equal checks two Parameters for equality.
func (p Parameters) Equal(other *Parameters) bool {
	return cmp.Equal(p.ParametersLiteral(), other.ParametersLiteral())
}

// MarshalBinary returns a []byte representation of the parameter set.
// This representation corresponds to the one obtained by MarshalJSON.
func (p Parameters) MarshalBinary() ([]byte, error) {
	return p.MarshalJSON()
}

// UnmarshalBinary decodes a []byte into a parameter set struct.
func (p *Parameters) UnmarshalBinary(data []byte) error {
	return p.UnmarshalJSON(data)
}

// MarshalJSON returns a JSON representation of this parameter set. See
// Marshal from the [encoding/json] package.
func (p Parameters) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ParametersLiteral())
}

// UnmarshalJSON reads a JSON representation of a parameter set into the
// receiver Parameters. See Unmarshal from the [encoding/json] package.
func (p *Parameters) UnmarshalJSON(data []byte) (err error) {
	var params ParametersLiteral
	if err = json.Unmarshal(data, &params); err != nil {
		return err
	}
	*p, err = NewParametersFromLiteral(params)
	return
}
