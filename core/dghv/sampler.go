package dghv

import (
	"fmt"
	"math/big"

	"github.com/alvin21mfmlai/toy-fhe-gentry/utils/sampling"
)

// Sampler is an interface for samplers of random integers.
// It has a single Read method which takes as argument the integer to be
// populated according to the Sampler's distribution.
type Sampler interface {
	Read(x *big.Int)
	ReadNew() (x *big.Int)
}

type baseSampler struct {
	prng sampling.PRNG
	buff []byte
}

// readUniform populates x with a uniform integer in [0, 2^bits), consuming
// ceil(bits/8) bytes of the sampler buffer.
func (b *baseSampler) readUniform(x *big.Int, bits int) {

	buff := b.buff[:(bits+7)>>3]

	if _, err := b.prng.Read(buff); err != nil {
		// Sanity check, this error should not happen.
		panic(err)
	}

	// Masks the top byte so that exactly bits bits remain.
	buff[0] &= byte(0xFF >> (8*len(buff) - bits))

	x.SetBytes(buff)
}

// readSign returns a uniform sign bit, consuming one byte of the PRNG stream.
func (b *baseSampler) readSign() uint8 {

	var sign [1]byte

	if _, err := b.prng.Read(sign[:]); err != nil {
		// Sanity check, this error should not happen.
		panic(err)
	}

	return sign[0] & 1
}

// UniformSampler wraps a sampling.PRNG and represents the state of a sampler
// of uniform integers in [0, 2^bits). It is used to sample the large
// multiplier q during encryption and the secret modulus during key
// generation.
type UniformSampler struct {
	baseSampler
	bits int
}

// NewUniformSampler creates a new instance of UniformSampler from a PRNG and
// a bit-length. The returned sampler cannot be used concurrently.
func NewUniformSampler(prng sampling.PRNG, bits int) *UniformSampler {

	if bits < 1 {
		// Sanity check, checked parameters enforce positive bit-lengths.
		panic(fmt.Errorf("cannot NewUniformSampler: bits=%d should be at least 1", bits))
	}

	return &UniformSampler{
		baseSampler: baseSampler{
			prng: prng,
			buff: make([]byte, (bits+7)>>3),
		},
		bits: bits,
	}
}

// Read populates x with a uniform integer in [0, 2^bits).
func (s *UniformSampler) Read(x *big.Int) {
	s.readUniform(x, s.bits)
}

// ReadNew samples a new uniform integer in [0, 2^bits).
func (s *UniformSampler) ReadNew() (x *big.Int) {
	x = new(big.Int)
	s.Read(x)
	return
}

// WithPRNG returns a new UniformSampler with the same bit-length but reading
// from the given PRNG.
func (s *UniformSampler) WithPRNG(prng sampling.PRNG) *UniformSampler {
	return NewUniformSampler(prng, s.bits)
}

// NoiseSampler wraps a sampling.PRNG and represents the state of a sampler
// of signed noise terms r with |r| < 2^eta. Both signs are supported since
// the correctness bound of the scheme is on the magnitude of 2r.
type NoiseSampler struct {
	baseSampler
	eta int
}

// NewNoiseSampler creates a new instance of NoiseSampler from a PRNG and the
// noise bit-length eta. The returned sampler cannot be used concurrently.
func NewNoiseSampler(prng sampling.PRNG, eta int) *NoiseSampler {

	if eta < 1 {
		// Sanity check, checked parameters enforce positive bit-lengths.
		panic(fmt.Errorf("cannot NewNoiseSampler: eta=%d should be at least 1", eta))
	}

	return &NoiseSampler{
		baseSampler: baseSampler{
			prng: prng,
			buff: make([]byte, (eta+7)>>3),
		},
		eta: eta,
	}
}

// Read populates x with a signed integer of magnitude smaller than 2^eta,
// sampled as a uniform magnitude and an independent uniform sign.
func (s *NoiseSampler) Read(x *big.Int) {
	s.readUniform(x, s.eta)
	if s.readSign() == 1 {
		x.Neg(x)
	}
}

// ReadNew samples a new signed integer of magnitude smaller than 2^eta.
func (s *NoiseSampler) ReadNew() (x *big.Int) {
	x = new(big.Int)
	s.Read(x)
	return
}

// WithPRNG returns a new NoiseSampler with the same noise bit-length but
// reading from the given PRNG.
func (s *NoiseSampler) WithPRNG(prng sampling.PRNG) *NoiseSampler {
	return NewNoiseSampler(prng, s.eta)
}
