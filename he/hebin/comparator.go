package hebin

import (
	"fmt"

	"github.com/alvin21mfmlai/toy-fhe-gentry/core/dghv"
)

// Compare evaluates the unsigned comparison of the equal-length bit-vectors
// a and b, index 0 holding the least significant bit, and returns three
// encrypted indicator bits for a < b, a == b and a > b, exactly one of
// which encrypts 1.
//
// The scan runs from the most significant bit down. Each position derives
// the per-bit outcomes
//
//	bitEq = XNOR(a[i], b[i])
//	bitGt = AND(a[i], NOT(b[i]))
//	bitLt = AND(NOT(a[i]), b[i])
//
// and folds them into the running result: a position decides the comparison
// only if all higher positions were equal, so bitGt and bitLt are masked by
// the accumulated equality prefix before being ORed into gt and lt, and the
// prefix itself is the AND of the bitEq chain. Every position is evaluated
// unconditionally. The prefix multiplications make Compare the deepest
// circuit of this package and the first to exhaust a noise budget as the
// width grows.
func (eval Evaluator) Compare(a, b []*dghv.Ciphertext) (lt, eq, gt *dghv.Ciphertext, err error) {

	if err = checkBitVectors(a, b); err != nil {
		return nil, nil, nil, fmt.Errorf("cannot Compare: %w", err)
	}

	for i := len(a) - 1; i >= 0; i-- {

		bitEq := eval.XNOR(a[i], b[i])
		bitGt := eval.AND(a[i], eval.NOT(b[i]))
		bitLt := eval.AND(eval.NOT(a[i]), b[i])

		if eq == nil {
			lt, eq, gt = bitLt, bitEq, bitGt
			continue
		}

		lt = eval.OR(lt, eval.AND(eq, bitLt))
		gt = eval.OR(gt, eval.AND(eq, bitGt))
		eq = eval.AND(eq, bitEq)
	}

	return lt, eq, gt, nil
}
