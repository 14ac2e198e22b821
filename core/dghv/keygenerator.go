package dghv

import (
	"github.com/alvin21mfmlai/toy-fhe-gentry/utils/sampling"
)

// KeyGenerator is a structure that stores the elements required to create
// new keys.
type KeyGenerator struct {
	params  Parameters
	sampler *UniformSampler
}

// NewKeyGenerator creates a new KeyGenerator, from which the secret key of
// the scheme can be generated.
func NewKeyGenerator(params Parameters) *KeyGenerator {

	prng, err := sampling.NewPRNG()
	if err != nil {
		// Sanity check, this error should not happen.
		panic(err)
	}

	return &KeyGenerator{
		params:  params,
		sampler: NewUniformSampler(prng, params.SecretBits()),
	}
}

// GenSecretKeyNew generates a new SecretKey: an odd integer p of exactly
// SecretBits bits. The top bit is forced to 1 so that the bit-length is
// exact and the low bit is forced to 1 so that p is odd.
func (kgen KeyGenerator) GenSecretKeyNew() (sk *SecretKey) {
	sk = NewSecretKey(kgen.params)
	kgen.GenSecretKey(sk)
	return
}

// GenSecretKey generates a SecretKey on the input sk.
func (kgen KeyGenerator) GenSecretKey(sk *SecretKey) {
	p := sk.Value
	kgen.sampler.Read(p)
	p.SetBit(p, kgen.params.SecretBits()-1, 1)
	p.SetBit(p, 0, 1)
}

// WithPRNG returns this KeyGenerator with prng as its source of randomness.
// This allows deterministic key generation from a seeded PRNG.
func (kgen KeyGenerator) WithPRNG(prng sampling.PRNG) *KeyGenerator {
	kgen.sampler = kgen.sampler.WithPRNG(prng)
	return &kgen
}
