package dghv

// Evaluator performs homomorphic operations on DGHV ciphertexts. It holds no
// key material and no mutable buffers, so a single Evaluator can be used
// concurrently on independent ciphertexts.
type Evaluator struct {
	params Parameters
}

// NewEvaluator creates a new Evaluator for the given parameters.
func NewEvaluator(params Parameters) *Evaluator {
	return &Evaluator{params: params}
}

// GetParameters returns the underlying Parameters.
func (eval Evaluator) GetParameters() Parameters {
	return eval.params
}

// Add evaluates opOut = op0 + op1 over the integers, which encrypts the XOR
// of the two plaintext bits:
//
//	(m0 + 2*r0 + p*q0) + (m1 + 2*r1 + p*q1) = (m0 + m1) + 2*(r0 + r1) + p*(q0 + q1)
//
// The noise terms add, so chains of additions grow the noise linearly.
// opOut may alias op0 or op1; the operands are never modified.
func (eval Evaluator) Add(op0, op1, opOut *Ciphertext) {
	opOut.Value.Add(op0.Value, op1.Value)
}

// AddNew evaluates opOut = op0 + op1 and returns the result in a new
// Ciphertext. See Add for the noise behaviour.
func (eval Evaluator) AddNew(op0, op1 *Ciphertext) (opOut *Ciphertext) {
	opOut = NewCiphertext(eval.params)
	eval.Add(op0, op1, opOut)
	return
}

// Mul evaluates opOut = op0 * op1 over the integers, which encrypts the AND
// of the two plaintext bits: modulo p the product reduces to
//
//	m0*m1 + 2*(2*r0*r1 + r0*m1 + r1*m0)
//
// so the new noise magnitude is about 4*|r0|*|r1| + 2*(|r0| + |r1|).
// Multiplication is the depth limiter of the scheme: noise grows roughly
// multiplicatively and a handful of chained products exhausts the budget.
// opOut may alias op0 or op1; the operands are never modified.
func (eval Evaluator) Mul(op0, op1, opOut *Ciphertext) {
	opOut.Value.Mul(op0.Value, op1.Value)
}

// MulNew evaluates opOut = op0 * op1 and returns the result in a new
// Ciphertext. See Mul for the noise behaviour.
func (eval Evaluator) MulNew(op0, op1 *Ciphertext) (opOut *Ciphertext) {
	opOut = NewCiphertext(eval.params)
	eval.Mul(op0, op1, opOut)
	return
}
