package dghv

import (
	"fmt"

	"github.com/alvin21mfmlai/toy-fhe-gentry/utils/sampling"
)

type TestContext struct {
	Params Parameters

	Prng sampling.PRNG

	Kgen *KeyGenerator
	Sk   *SecretKey

	Enc *Encryptor
	Dec *Decryptor

	Evl *Evaluator
}

func NewTestContext(params ParametersLiteral) *TestContext {
	tc := new(TestContext)

	var err error

	tc.Params, err = NewParametersFromLiteral(params)
	if err != nil {
		panic(err)
	}

	tc.Prng, err = sampling.NewPRNG()
	if err != nil {
		panic(err)
	}

	tc.Kgen = NewKeyGenerator(tc.Params)
	tc.Sk = tc.Kgen.GenSecretKeyNew()

	tc.Enc = NewEncryptor(tc.Params, tc.Sk)
	tc.Dec = NewDecryptor(tc.Params, tc.Sk)

	tc.Evl = NewEvaluator(tc.Params)

	return tc
}

func (tc TestContext) String() string {
	return fmt.Sprintf("Eta=%d/Secret=%d/Gamma=%d",
		tc.Params.Eta(),
		tc.Params.SecretBits(),
		tc.Params.Gamma())
}
