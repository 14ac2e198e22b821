package hebin

import (
	"fmt"

	"github.com/alvin21mfmlai/toy-fhe-gentry/core/dghv"
)

// FullAdder evaluates the addition of the bits a and b and the carry-in
// cin, returning the encrypted sum and carry-out bits:
//
//	sum  = XOR(XOR(a, b), cin)
//	cout = OR(AND(a, b), AND(cin, XOR(a, b)))
//
// The carry-out is the majority of the three input bits. The gate costs
// three multiplications in total, two explicit ANDs and the one inside the
// derived OR, which makes the carry chain the dominant source of noise in
// the circuits built on top of it.
func (eval Evaluator) FullAdder(a, b, cin *dghv.Ciphertext) (sum, cout *dghv.Ciphertext) {
	t := eval.XOR(a, b)
	sum = eval.XOR(t, cin)
	cout = eval.OR(eval.AND(a, b), eval.AND(cin, t))
	return
}

// Add evaluates the ripple-carry addition of the equal-length bit-vectors a
// and b, index 0 holding the least significant bit. It returns the
// bit-vector encrypting (a + b) mod 2^len(a) and the final carry-out, which
// encrypts the overflow bit.
//
// The carry-in of the first position is a trivial encryption of zero, and
// the carry ripples through one FullAdder per position, so the noise of the
// upper sum bits grows with the width of the inputs. Wide enough vectors
// exceed the correctness bound of any fixed parameter set.
func (eval Evaluator) Add(a, b []*dghv.Ciphertext) (sum []*dghv.Ciphertext, carry *dghv.Ciphertext, err error) {

	if err = checkBitVectors(a, b); err != nil {
		return nil, nil, fmt.Errorf("cannot Add: %w", err)
	}

	sum = make([]*dghv.Ciphertext, len(a))
	carry = NewTrivialCiphertext(0)

	for i := range a {
		sum[i], carry = eval.FullAdder(a[i], b[i], carry)
	}

	return sum, carry, nil
}

// Sub evaluates the two's-complement subtraction of the equal-length
// bit-vectors a and b, index 0 holding the least significant bit. It
// returns the bit-vector encrypting (a - b) mod 2^len(a) and a borrow bit
// that encrypts 1 exactly when a < b, in which case the difference has
// wrapped around.
//
// The subtraction is evaluated as a + NOT(b) + 1 by negating every bit of b
// and seeding the carry chain with a trivial encryption of one. The final
// carry-out of that chain encrypts a >= b and is negated into the returned
// borrow.
func (eval Evaluator) Sub(a, b []*dghv.Ciphertext) (diff []*dghv.Ciphertext, borrow *dghv.Ciphertext, err error) {

	if err = checkBitVectors(a, b); err != nil {
		return nil, nil, fmt.Errorf("cannot Sub: %w", err)
	}

	diff, carry := eval.rippleSub(a, b)

	return diff, eval.NOT(carry), nil
}

// Geq evaluates the unsigned comparison a >= b on two equal-length
// bit-vectors and returns the encrypted indicator bit. It is the final
// carry of the two's-complement subtraction a - b, which is set exactly
// when the subtraction does not underflow.
func (eval Evaluator) Geq(a, b []*dghv.Ciphertext) (*dghv.Ciphertext, error) {

	if err := checkBitVectors(a, b); err != nil {
		return nil, fmt.Errorf("cannot Geq: %w", err)
	}

	_, carry := eval.rippleSub(a, b)

	return carry, nil
}

// Lt evaluates the unsigned comparison a < b on two equal-length
// bit-vectors and returns the encrypted indicator bit, the complement of
// Geq.
func (eval Evaluator) Lt(a, b []*dghv.Ciphertext) (*dghv.Ciphertext, error) {

	if err := checkBitVectors(a, b); err != nil {
		return nil, fmt.Errorf("cannot Lt: %w", err)
	}

	_, carry := eval.rippleSub(a, b)

	return eval.NOT(carry), nil
}

// rippleSub runs the subtraction chain a + NOT(b) + 1 and returns the
// difference bits along with the final carry-out, which encrypts the
// indicator of a >= b. Inputs are assumed to have matching non-zero
// lengths.
func (eval Evaluator) rippleSub(a, b []*dghv.Ciphertext) (diff []*dghv.Ciphertext, carry *dghv.Ciphertext) {

	diff = make([]*dghv.Ciphertext, len(a))
	carry = NewTrivialCiphertext(1)

	for i := range a {
		diff[i], carry = eval.FullAdder(a[i], eval.NOT(b[i]), carry)
	}

	return
}

func checkBitVectors(a, b []*dghv.Ciphertext) error {
	if len(a) == 0 {
		return fmt.Errorf("bit-vectors must not be empty")
	}
	if len(a) != len(b) {
		return fmt.Errorf("bit-vectors must have matching lengths but have %d and %d", len(a), len(b))
	}
	return nil
}
