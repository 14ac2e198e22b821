// Package dghv implements a didactic somewhat-homomorphic encryption scheme
// over the integers, in the spirit of the DGHV scheme (van Dijk, Gentry,
// Halevi and Vaikuntanathan, "Fully Homomorphic Encryption over the
// Integers", EUROCRYPT 2010).
//
// A ciphertext encrypts a single bit m as the integer
//
//	c = m + 2*r + p*q
//
// for a secret odd modulus p, a fresh small noise term r and a fresh large
// multiplier q. Adding two ciphertexts XORs the underlying bits and
// multiplying them ANDs the underlying bits, with the noise term growing
// additively under addition and roughly multiplicatively under
// multiplication. Decryption takes the centered remainder of c modulo p and
// reduces it modulo 2; it is correct exactly while |m + 2*r| < p/2 and
// becomes silently incorrect once the accumulated noise crosses that bound.
// The Noise and NoiseBudget functions expose the margin to callers.
//
// The scheme is NOT secure and NOT efficient: parameters are toy-sized, the
// secret key is used for encryption, and no public-key material exists. Its
// purpose is to expose the algebraic structure and the noise behaviour of
// integer-based homomorphic encryption.
package dghv

import (
	"math/big"
)

// SecretKey is a type for DGHV secret keys. Its value is an odd integer p of
// exactly the bit-length prescribed by the parameters.
type SecretKey struct {
	Value *big.Int
}

// NewSecretKey allocates a new zero SecretKey for the given parameters.
func NewSecretKey(params Parameters) *SecretKey {
	return &SecretKey{Value: new(big.Int)}
}

// CopyNew creates a deep copy of the receiver SecretKey and returns it.
func (sk *SecretKey) CopyNew() *SecretKey {
	if sk == nil || sk.Value == nil {
		return nil
	}
	return &SecretKey{Value: new(big.Int).Set(sk.Value)}
}

// Equal performs a deep equal.
func (sk *SecretKey) Equal(other *SecretKey) bool {
	return sk.Value.Cmp(other.Value) == 0
}

// Ciphertext is a type for DGHV ciphertexts: a single integer
// c = m + 2*r + p*q. The noise term 2*r is recoverable only with the secret
// key; the ciphertext is opaque otherwise.
type Ciphertext struct {
	Value *big.Int
}

// NewCiphertext allocates a new zero Ciphertext for the given parameters.
func NewCiphertext(params Parameters) *Ciphertext {
	return &Ciphertext{Value: new(big.Int)}
}

// CopyNew creates a deep copy of the receiver Ciphertext and returns it.
func (ct *Ciphertext) CopyNew() *Ciphertext {
	if ct == nil || ct.Value == nil {
		return nil
	}
	return &Ciphertext{Value: new(big.Int).Set(ct.Value)}
}

// Copy copies the input Ciphertext on the receiver Ciphertext.
func (ct *Ciphertext) Copy(ctCopy *Ciphertext) {
	if ct != ctCopy {
		ct.Value.Set(ctCopy.Value)
	}
}

// Equal performs a deep equal.
func (ct *Ciphertext) Equal(other *Ciphertext) bool {
	return ct.Value.Cmp(other.Value) == 0
}
