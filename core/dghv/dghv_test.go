package dghv

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/big"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alvin21mfmlai/toy-fhe-gentry/utils/sampling"
)

var flagParamString = flag.String("params", "", "specify the test parameters as a JSON string. Overrides the default test parameters.")

var testParams = []ParametersLiteral{
	ExampleParametersEta3Secret32Gamma64,
	ExampleParametersEta2Secret16Gamma32,
}

func name(op string, tc *TestContext) string {
	return fmt.Sprintf("%s/%s", op, tc)
}

func TestDGHV(t *testing.T) {

	var err error

	paramsLiterals := testParams

	if *flagParamString != "" {
		var jsonParams ParametersLiteral
		if err = json.Unmarshal([]byte(*flagParamString), &jsonParams); err != nil {
			t.Fatal(err)
		}
		paramsLiterals = []ParametersLiteral{jsonParams}
	}

	for _, p := range paramsLiterals[:] {

		tc := NewTestContext(p)

		for _, testSet := range []func(tc *TestContext, t *testing.T){
			testParameters,
			testKeyGenerator,
			testEncryptor,
			testEvaluator,
			testNoise,
		} {
			testSet(tc, t)
			runtime.GC()
		}
	}
}

func testParameters(tc *TestContext, t *testing.T) {

	t.Run(name("Parameters/Binary", tc), func(t *testing.T) {
		bytes, err := tc.Params.MarshalBinary()
		require.Nil(t, err)
		var p Parameters
		require.Nil(t, p.UnmarshalBinary(bytes))
		require.True(t, tc.Params.Equal(&p))
	})

	t.Run(name("Parameters/JSON", tc), func(t *testing.T) {
		// checks that parameters can be marshalled without error
		data, err := json.Marshal(tc.Params)
		require.Nil(t, err)
		require.NotNil(t, data)

		// checks that the Parameters can be unmarshalled without error
		var paramsRec Parameters
		require.Nil(t, json.Unmarshal(data, &paramsRec))
		require.True(t, tc.Params.Equal(&paramsRec))

		// checks that the Parameters can be unmarshalled from a literal
		// JSON definition without error
		dataLiteral := []byte(fmt.Sprintf(`{"Eta":%d,"SecretBits":%d,"Gamma":%d}`,
			tc.Params.Eta(), tc.Params.SecretBits(), tc.Params.Gamma()))
		var paramsLit Parameters
		require.Nil(t, json.Unmarshal(dataLiteral, &paramsLit))
		require.True(t, tc.Params.Equal(&paramsLit))
	})

	t.Run(name("Parameters/Validation", tc), func(t *testing.T) {

		var err error

		_, err = NewParametersFromLiteral(ParametersLiteral{Eta: 0, SecretBits: 16, Gamma: 32})
		require.Error(t, err)

		_, err = NewParametersFromLiteral(ParametersLiteral{Eta: 16, SecretBits: 16, Gamma: 32})
		require.Error(t, err)

		_, err = NewParametersFromLiteral(ParametersLiteral{Eta: 4, SecretBits: 32, Gamma: 32})
		require.Error(t, err)
	})

	t.Run(name("Parameters/NoiseBound", tc), func(t *testing.T) {
		bound := new(big.Int).Lsh(big.NewInt(1), uint(tc.Params.Eta()))
		require.True(t, bound.Cmp(tc.Params.NoiseBound()) == 0)
	})
}

func testKeyGenerator(tc *TestContext, t *testing.T) {

	t.Run(name("KeyGenerator/GenSecretKey", tc), func(t *testing.T) {
		sk := tc.Kgen.GenSecretKeyNew()
		require.Equal(t, tc.Params.SecretBits(), sk.Value.BitLen())
		require.Equal(t, uint(1), sk.Value.Bit(0))
	})

	t.Run(name("KeyGenerator/Deterministic", tc), func(t *testing.T) {

		seed := make([]byte, 32)

		prng0, err := sampling.NewKeyedPRNG(seed)
		require.Nil(t, err)
		prng1, err := sampling.NewKeyedPRNG(seed)
		require.Nil(t, err)

		sk0 := tc.Kgen.WithPRNG(prng0).GenSecretKeyNew()
		sk1 := tc.Kgen.WithPRNG(prng1).GenSecretKeyNew()

		require.True(t, sk0.Equal(sk1))
	})
}

func testEncryptor(tc *TestContext, t *testing.T) {

	t.Run(name("Encryptor/Encrypt", tc), func(t *testing.T) {

		freshBound := new(big.Int).Lsh(big.NewInt(1), uint(tc.Params.Eta()+1))

		for _, bit := range []uint64{0, 1} {
			ct, err := tc.Enc.EncryptNew(bit)
			require.Nil(t, err)
			require.Equal(t, bit, tc.Dec.Decrypt(ct))
			require.True(t, Noise(ct, tc.Sk).Cmp(freshBound) < 0)
		}
	})

	t.Run(name("Encryptor/Probabilistic", tc), func(t *testing.T) {
		ct0, err := tc.Enc.EncryptNew(1)
		require.Nil(t, err)
		ct1, err := tc.Enc.EncryptNew(1)
		require.Nil(t, err)
		require.False(t, ct0.Equal(ct1))
	})

	t.Run(name("Encryptor/NonBinaryPlaintext", tc), func(t *testing.T) {
		_, err := tc.Enc.EncryptNew(2)
		require.Error(t, err)
	})

	t.Run(name("Encryptor/Deterministic", tc), func(t *testing.T) {

		key := PRNGKey(tc.Sk, "test")
		require.NotEqual(t, key, PRNGKey(tc.Sk, "other"))

		prng0, err := sampling.NewKeyedPRNG(key)
		require.Nil(t, err)
		prng1, err := sampling.NewKeyedPRNG(key)
		require.Nil(t, err)

		ct0, err := tc.Enc.WithPRNG(prng0).EncryptNew(1)
		require.Nil(t, err)
		ct1, err := tc.Enc.WithPRNG(prng1).EncryptNew(1)
		require.Nil(t, err)

		require.True(t, ct0.Equal(ct1))
	})
}

func testEvaluator(tc *TestContext, t *testing.T) {

	encryptBit := func(t *testing.T, bit uint64) *Ciphertext {
		ct, err := tc.Enc.EncryptNew(bit)
		require.Nil(t, err)
		return ct
	}

	bitPairs := [][2]uint64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}

	t.Run(name("Evaluator/Add/New", tc), func(t *testing.T) {
		for _, bits := range bitPairs {
			ct0 := encryptBit(t, bits[0])
			ct1 := encryptBit(t, bits[1])

			ct2 := tc.Evl.AddNew(ct0, ct1)
			require.Equal(t, bits[0]^bits[1], tc.Dec.Decrypt(ct2))

			// operands are not modified
			require.Equal(t, bits[0], tc.Dec.Decrypt(ct0))
			require.Equal(t, bits[1], tc.Dec.Decrypt(ct1))
		}
	})

	t.Run(name("Evaluator/Add/Inplace", tc), func(t *testing.T) {
		for _, bits := range bitPairs {
			ct0 := encryptBit(t, bits[0])
			ct1 := encryptBit(t, bits[1])

			tc.Evl.Add(ct0, ct1, ct0)
			require.Equal(t, bits[0]^bits[1], tc.Dec.Decrypt(ct0))
		}
	})

	t.Run(name("Evaluator/Mul/New", tc), func(t *testing.T) {
		for _, bits := range bitPairs {
			ct0 := encryptBit(t, bits[0])
			ct1 := encryptBit(t, bits[1])

			ct2 := tc.Evl.MulNew(ct0, ct1)
			require.Equal(t, bits[0]&bits[1], tc.Dec.Decrypt(ct2))

			// operands are not modified
			require.Equal(t, bits[0], tc.Dec.Decrypt(ct0))
			require.Equal(t, bits[1], tc.Dec.Decrypt(ct1))
		}
	})

	t.Run(name("Evaluator/Mul/Inplace", tc), func(t *testing.T) {
		for _, bits := range bitPairs {
			ct0 := encryptBit(t, bits[0])
			ct1 := encryptBit(t, bits[1])

			tc.Evl.Mul(ct0, ct1, ct1)
			require.Equal(t, bits[0]&bits[1], tc.Dec.Decrypt(ct1))
		}
	})
}

func testNoise(tc *TestContext, t *testing.T) {

	// newTestCiphertext builds m + 2*r + p*q directly from the key, so the
	// noise term is exact rather than sampled.
	newTestCiphertext := func(r *big.Int, m uint64) *Ciphertext {
		c := new(big.Int).Mul(tc.Sk.Value, big.NewInt(0xabcdef))
		c.Add(c, new(big.Int).Lsh(r, 1))
		c.Add(c, new(big.Int).SetUint64(m))
		return &Ciphertext{Value: c}
	}

	t.Run(name("Noise/Exact", tc), func(t *testing.T) {

		// c = 1 + 2*1 + p*q has noise exactly 2
		ct := newTestCiphertext(big.NewInt(1), 1)
		require.True(t, Noise(ct, tc.Sk).Cmp(big.NewInt(2)) == 0)

		// (1 + 2*1) + (1 + 2*1) = 2 + 4: the carry of the plaintext bits
		// joins the even noise part
		ctAdd := tc.Evl.AddNew(ct, ct)
		require.Equal(t, uint64(0), tc.Dec.Decrypt(ctAdd))
		require.True(t, Noise(ctAdd, tc.Sk).Cmp(big.NewInt(6)) == 0)

		// (1 + 2*1)^2 = 9 = 1 + 2*4
		ctMul := tc.Evl.MulNew(ct, ct)
		require.Equal(t, uint64(1), tc.Dec.Decrypt(ctMul))
		require.True(t, Noise(ctMul, tc.Sk).Cmp(big.NewInt(8)) == 0)
	})

	t.Run(name("Noise/MonotoneAlongChain", tc), func(t *testing.T) {

		ct, err := tc.Enc.EncryptNew(1)
		require.Nil(t, err)

		noisePrev := Noise(ct, tc.Sk)
		budgetPrev := NoiseBudget(ct, tc.Sk)

		// Doubling then squaring grows the noise magnitude at every step
		// regardless of the sampled signs, so the estimate is
		// non-decreasing and the budget non-increasing along the chain.
		for i, op := range []func(op0, op1 *Ciphertext) *Ciphertext{
			tc.Evl.AddNew,
			tc.Evl.MulNew,
			tc.Evl.AddNew,
		} {
			ct = op(ct, ct)

			noise := Noise(ct, tc.Sk)
			budget := NoiseBudget(ct, tc.Sk)

			require.True(t, noise.Cmp(noisePrev) >= 0, "step %d: noise decreased", i)
			require.True(t, budget <= budgetPrev+1e-9, "step %d: budget increased", i)

			noisePrev = noise
			budgetPrev = budget
		}
	})

	t.Run(name("Noise/BudgetPredictsDecryption", tc), func(t *testing.T) {

		// noise well inside the bound: the budget is positive and the
		// ciphertext decrypts correctly
		inside := newTestCiphertext(big.NewInt(1), 0)
		require.True(t, NoiseBudget(inside, tc.Sk) > 0)
		require.Equal(t, uint64(0), tc.Dec.Decrypt(inside))

		// noise just above p/2: the budget is negative and the decrypted
		// bit silently flips, with no error raised anywhere
		r := new(big.Int).Rsh(tc.Sk.Value, 2)
		r.Add(r, big.NewInt(1))
		outside := newTestCiphertext(r, 0)
		require.True(t, NoiseBudget(outside, tc.Sk) < 0)
		require.Equal(t, uint64(1), tc.Dec.Decrypt(outside))
	})

	t.Run(name("Noise/Stats", tc), func(t *testing.T) {

		cts := make([]*Ciphertext, 8)
		for i := range cts {
			ct, err := tc.Enc.EncryptNew(uint64(i & 1))
			require.Nil(t, err)
			cts[i] = ct
		}

		mean, median, std := NoiseStats(cts, tc.Sk)

		// fresh noise magnitudes are below 2^(Eta+1), so the log2 domain
		// statistics stay within [0, Eta+1]
		maxLog := float64(tc.Params.Eta() + 1)
		require.True(t, mean >= 0 && mean <= maxLog)
		require.True(t, median >= 0 && median <= maxLog)
		require.True(t, std >= 0)
	})
}
