package dghv

import (
	"github.com/zeebo/blake3"
)

const prngKeySize = 32

// PRNGKey derives a deterministic 32-byte PRNG key from the secret key and a
// domain-separation label, by hashing both with BLAKE3. Feeding the result
// to sampling.NewKeyedPRNG and installing it with WithPRNG yields encryption
// and key-generation streams that are reproducible by the key holder, with
// distinct labels giving independent streams.
func PRNGKey(sk *SecretKey, label string) []byte {
	hasher := blake3.New()
	hasher.Write(sk.Value.Bytes())
	hasher.Write([]byte(label))

	skHash := hasher.Sum(nil)
	return skHash[:prngKeySize]
}
