// Package sampling implements the pseudo-random byte sources from which
// all key, multiplier and noise sampling in this module draws.
//
// Randomness is an explicit capability: every sampler and generator in
// this module takes a PRNG at construction time instead of reading from
// implicit global state. Passing a [KeyedPRNG] with a fixed key makes key
// generation and encryption fully reproducible; the default
// [ThreadSafePRNG] is backed by crypto/rand.
package sampling

import (
	"crypto/rand"
	"io"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// PRNG is an interface for the generation of random bytes.
type PRNG interface {
	io.Reader
}

// ThreadSafePRNG is a PRNG backed by crypto/rand. It is safe for
// concurrent use.
type ThreadSafePRNG struct {
}

// NewPRNG returns a new thread-safe PRNG seeded from the operating
// system's entropy source.
func NewPRNG() (*ThreadSafePRNG, error) {
	return &ThreadSafePRNG{}, nil
}

// Read fills sum with random bytes.
func (prng *ThreadSafePRNG) Read(sum []byte) (n int, err error) {
	return rand.Read(sum)
}

// KeyedPRNG is a deterministic PRNG expanding a key into an unbounded
// byte stream with the blake2b XOF. Two KeyedPRNG instances created with
// the same key produce the same stream, which is what makes seeded key
// generation and encryption reproducible in tests.
//
// A KeyedPRNG must not be read by multiple goroutines: the stream would
// no longer be deterministic for a given key. Use [ThreadSafePRNG] when
// determinism is not needed.
type KeyedPRNG struct {
	mutex sync.Mutex
	key   []byte
	xof   blake2b.XOF
}

// NewKeyedPRNG creates a new KeyedPRNG from the given key. A nil key is
// treated as an empty key and yields a fixed, publicly known stream.
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {
	var err error
	prng := new(KeyedPRNG)
	prng.key = make([]byte, len(key))
	copy(prng.key, key)
	prng.xof, err = blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	return prng, err
}

// Key returns a copy of the key used to seed the PRNG. The returned value
// can be passed to [NewKeyedPRNG] to replay the same stream.
func (prng *KeyedPRNG) Key() (key []byte) {
	key = make([]byte, len(prng.key))
	copy(key, prng.key)
	return
}

// Read fills sum with bytes from the key stream.
func (prng *KeyedPRNG) Read(sum []byte) (n int, err error) {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	return prng.xof.Read(sum)
}

// Reset rewinds the PRNG to the beginning of its stream.
func (prng *KeyedPRNG) Reset() {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	prng.xof.Reset()
}
