// Package hebin implements homomorphic boolean gates and binary arithmetic
// circuits over encrypted bits.
//
// The gates (XOR, AND, NOT, OR, XNOR) are thin compositions of the
// homomorphic addition and multiplication of core/dghv. The circuits operate
// on ordered bit-vectors of ciphertexts with the least significant bit at
// index 0 and evaluate every bit position unconditionally: there is no
// ciphertext-dependent branching, so the multiplication count of a circuit
// depends only on the width of its inputs, never on the encrypted values.
//
// Constants enter the circuits as noiseless trivial ciphertexts rather than
// as fresh encryptions, so the Evaluator holds no key material.
//
// No gate or circuit checks the noise of its operands. Once the accumulated
// noise of a ciphertext exceeds the correctness bound of the parameters, its
// decryption is silently incorrect; it is up to the caller to keep circuits
// shallow enough for the chosen parameters, with the Noise and NoiseBudget
// diagnostics of core/dghv as a predictive signal.
package hebin

import (
	"fmt"
	"math/big"

	"github.com/alvin21mfmlai/toy-fhe-gentry/core/dghv"
)

// NewTrivialCiphertext returns the noiseless trivial encryption of the given
// bit, i.e. the ciphertext c = bit with a zero noise term and a zero
// multiple of the secret modulus. A trivial ciphertext offers no hiding; it
// injects a public constant into a circuit, such as the carry-in of a
// subtraction or the one of a NOT gate, without growing the noise of the
// result.
func NewTrivialCiphertext(bit uint64) *dghv.Ciphertext {
	if bit > 1 {
		panic(fmt.Errorf("cannot NewTrivialCiphertext: bit must be 0 or 1 but is %d", bit))
	}
	return &dghv.Ciphertext{Value: new(big.Int).SetUint64(bit)}
}
