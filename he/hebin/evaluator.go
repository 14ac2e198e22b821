package hebin

import (
	"github.com/alvin21mfmlai/toy-fhe-gentry/core/dghv"
)

// Evaluator evaluates boolean gates on ciphertexts encrypting single bits.
// It wraps the homomorphic addition and multiplication of the scheme and
// holds no key material: the NOT gate and the circuit layers inject their
// constants as noiseless trivial ciphertexts.
//
// Gates never modify their operands and return a new ciphertext, so a
// single Evaluator can be used concurrently.
type Evaluator struct {
	*dghv.Evaluator
}

// NewEvaluator instantiates a new Evaluator for the given parameters.
func NewEvaluator(params dghv.Parameters) *Evaluator {
	return &Evaluator{Evaluator: dghv.NewEvaluator(params)}
}

// XOR returns a new ciphertext encrypting the exclusive OR of the two
// operand bits, as a single homomorphic addition. The noise of the result
// is the sum of the operand noises.
func (eval Evaluator) XOR(op0, op1 *dghv.Ciphertext) *dghv.Ciphertext {
	return eval.AddNew(op0, op1)
}

// AND returns a new ciphertext encrypting the conjunction of the two
// operand bits, as a single homomorphic multiplication. The noise of the
// result grows with the product of the operand noises, which makes AND the
// gate that bounds the evaluable circuit depth.
func (eval Evaluator) AND(op0, op1 *dghv.Ciphertext) *dghv.Ciphertext {
	return eval.MulNew(op0, op1)
}

// NOT returns a new ciphertext encrypting the negation of the operand bit,
// as the XOR of the operand with a trivial encryption of one. The trivial
// operand is noiseless, so the noise of the result matches the operand's up
// to the carry of the plaintext bits.
func (eval Evaluator) NOT(op0 *dghv.Ciphertext) *dghv.Ciphertext {
	return eval.XOR(op0, NewTrivialCiphertext(1))
}

// OR returns a new ciphertext encrypting the disjunction of the two operand
// bits. The gate set has no native OR, so it is derived as
// XOR(XOR(op0, op1), AND(op0, op1)); the embedded AND dominates the noise
// growth.
func (eval Evaluator) OR(op0, op1 *dghv.Ciphertext) *dghv.Ciphertext {
	return eval.XOR(eval.XOR(op0, op1), eval.AND(op0, op1))
}

// XNOR returns a new ciphertext encrypting the equality of the two operand
// bits, as NOT(XOR(op0, op1)). Like XOR it costs no multiplication.
func (eval Evaluator) XNOR(op0, op1 *dghv.Ciphertext) *dghv.Ciphertext {
	return eval.NOT(eval.XOR(op0, op1))
}
