package dghv

import (
	"fmt"
	"math/big"
)

// Decryptor decrypts DGHV ciphertexts. It stores the secret key.
type Decryptor struct {
	params Parameters
	sk     *SecretKey
	halfP  *big.Int
	buffX  *big.Int
}

// NewDecryptor instantiates a new Decryptor from the given parameters and
// secret key.
func NewDecryptor(params Parameters, sk *SecretKey) *Decryptor {

	if err := checkSecretKey(params, sk); err != nil {
		// Sanity check, this error should not happen.
		panic(fmt.Errorf("cannot NewDecryptor: %w", err))
	}

	return &Decryptor{
		params: params,
		sk:     sk,
		halfP:  new(big.Int).Rsh(sk.Value, 1),
		buffX:  new(big.Int),
	}
}

// GetParameters returns the underlying Parameters.
func (d Decryptor) GetParameters() Parameters {
	return d.params
}

// Decrypt decrypts the input Ciphertext and returns the plaintext bit as
//
//	bit = (c cmod p) mod 2
//
// where cmod denotes the centered remainder in [-(p-1)/2, (p-1)/2]. The
// centering removes the p*q term and leaves the small value m + 2*r, whose
// parity is the plaintext.
//
// Decrypt never fails: once the accumulated noise satisfies
// |m + 2*r| >= p/2 the returned bit is silently incorrect. Callers bound
// this in advance with Noise or NoiseBudget.
func (d Decryptor) Decrypt(ct *Ciphertext) (bit uint64) {

	x := d.buffX

	x.Mod(ct.Value, d.sk.Value)

	if x.Cmp(d.halfP) > 0 {
		x.Sub(x, d.sk.Value)
	}

	return uint64(x.Bit(0))
}

// ShallowCopy creates a shallow copy of the Decryptor in which all the
// read-only data-structures are shared with the receiver and the temporary
// buffers are reallocated. The receiver and the returned Decryptor can be
// used concurrently.
func (d Decryptor) ShallowCopy() *Decryptor {
	return &Decryptor{
		params: d.params,
		sk:     d.sk,
		halfP:  d.halfP,
		buffX:  new(big.Int),
	}
}

// WithKey creates a shallow copy of the Decryptor with a new decryption key.
// The receiver and the returned Decryptor can be used concurrently.
func (d Decryptor) WithKey(sk *SecretKey) *Decryptor {
	return &Decryptor{
		params: d.params,
		sk:     sk,
		halfP:  new(big.Int).Rsh(sk.Value, 1),
		buffX:  new(big.Int),
	}
}
