package dghv

import (
	"fmt"
	"math/big"

	"github.com/alvin21mfmlai/toy-fhe-gentry/utils/sampling"
)

// Encryptor encrypts plaintext bits under a DGHV secret key. The scheme has
// no public-key material, so encryption requires the secret key itself.
type Encryptor struct {
	params Parameters
	*encryptorBuffers
	prng           sampling.PRNG
	uniformSampler *UniformSampler
	noiseSampler   *NoiseSampler
	sk             *SecretKey
}

type encryptorBuffers struct {
	buffR *big.Int
}

// NewEncryptor creates a new Encryptor from the given parameters and
// secret key.
func NewEncryptor(params Parameters, sk *SecretKey) *Encryptor {

	if err := checkSecretKey(params, sk); err != nil {
		// Sanity check, this error should not happen.
		panic(fmt.Errorf("cannot NewEncryptor: %w", err))
	}

	prng, err := sampling.NewPRNG()
	if err != nil {
		// Sanity check, this error should not happen.
		panic(err)
	}

	return &Encryptor{
		params:           params,
		encryptorBuffers: &encryptorBuffers{buffR: new(big.Int)},
		prng:             prng,
		uniformSampler:   NewUniformSampler(prng, params.Gamma()),
		noiseSampler:     NewNoiseSampler(prng, params.Eta()),
		sk:               sk,
	}
}

func checkSecretKey(params Parameters, sk *SecretKey) error {

	if sk == nil || sk.Value == nil {
		return fmt.Errorf("no secret key provided")
	}

	if sk.Value.BitLen() != params.SecretBits() {
		return fmt.Errorf("secret key bit-length does not match parameters secret modulus bit-length")
	}

	if sk.Value.Bit(0) != 1 {
		return fmt.Errorf("secret key must be odd")
	}

	return nil
}

// GetParameters returns the underlying Parameters.
func (enc Encryptor) GetParameters() Parameters {
	return enc.params
}

// EncryptNew encrypts the input bit and returns the result in a new
// Ciphertext. It returns an error if the plaintext is not a bit in {0, 1}.
func (enc Encryptor) EncryptNew(bit uint64) (ct *Ciphertext, err error) {
	ct = NewCiphertext(enc.params)
	if err = enc.Encrypt(bit, ct); err != nil {
		return nil, err
	}
	return
}

// Encrypt encrypts the input bit and writes the result on ct as
//
//	c = bit + 2*r + p*q
//
// with a fresh noise term r and a fresh large multiplier q per call, so
// repeated encryptions of the same bit differ with overwhelming
// probability. It returns an error if the plaintext is not a bit in {0, 1}.
func (enc Encryptor) Encrypt(bit uint64, ct *Ciphertext) error {

	if bit > 1 {
		return fmt.Errorf("cannot Encrypt: plaintext must be a bit in {0, 1} but is %d", bit)
	}

	c := ct.Value
	r := enc.buffR

	enc.uniformSampler.Read(c)
	c.Mul(c, enc.sk.Value)

	enc.noiseSampler.Read(r)
	c.Add(c, r.Lsh(r, 1))

	if bit == 1 {
		c.Add(c, intOne)
	}

	return nil
}

// ShallowCopy creates a shallow copy of this Encryptor in which all the
// read-only data-structures are shared with the receiver and the temporary
// buffers and samplers are reallocated. The receiver and the returned
// Encryptor can be used concurrently.
func (enc Encryptor) ShallowCopy() *Encryptor {
	return NewEncryptor(enc.params, enc.sk)
}

// WithPRNG returns this encryptor with prng as its source of randomness for
// both the multiplier and the noise samplers. This allows deterministic
// encryption from a seeded PRNG.
func (enc Encryptor) WithPRNG(prng sampling.PRNG) *Encryptor {
	enc.prng = prng
	enc.uniformSampler = enc.uniformSampler.WithPRNG(prng)
	enc.noiseSampler = enc.noiseSampler.WithPRNG(prng)
	return &enc
}

var intOne = big.NewInt(1)
