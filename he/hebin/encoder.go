package hebin

import (
	"fmt"

	"github.com/alvin21mfmlai/toy-fhe-gentry/core/dghv"
	"github.com/alvin21mfmlai/toy-fhe-gentry/utils"
)

// Encoder encrypts unsigned integers into bit-vectors of ciphertexts and
// decrypts them back, using the binary decomposition with the least
// significant bit at index 0. It bundles an Encryptor and a Decryptor for
// the same secret key.
type Encoder struct {
	params dghv.Parameters
	enc    *dghv.Encryptor
	dec    *dghv.Decryptor
}

// NewEncoder instantiates a new Encoder for the given parameters and secret
// key. It panics if the key does not match the parameters.
func NewEncoder(params dghv.Parameters, sk *dghv.SecretKey) *Encoder {
	return &Encoder{
		params: params,
		enc:    dghv.NewEncryptor(params, sk),
		dec:    dghv.NewDecryptor(params, sk),
	}
}

// GetParameters returns the Parameters of the Encoder.
func (ecd Encoder) GetParameters() dghv.Parameters {
	return ecd.params
}

// EncryptUintNew encrypts x as a bit-vector of the given width, one fresh
// ciphertext per bit with the least significant bit at index 0. bits must
// lie in [1, 64] and x must fit in the requested width.
func (ecd Encoder) EncryptUintNew(x uint64, bits int) (cts []*dghv.Ciphertext, err error) {

	if bits < 1 || bits > 64 {
		return nil, fmt.Errorf("cannot EncryptUintNew: bits must be in [1, 64] but is %d", bits)
	}

	if bits < 64 && x>>bits != 0 {
		return nil, fmt.Errorf("cannot EncryptUintNew: x=%d does not fit in %d bits", x, bits)
	}

	cts = make([]*dghv.Ciphertext, bits)
	for i := range cts {
		if cts[i], err = ecd.enc.EncryptNew((x >> i) & 1); err != nil {
			return nil, fmt.Errorf("cannot EncryptUintNew: %w", err)
		}
	}

	return cts, nil
}

// DecryptUint decrypts a bit-vector produced by EncryptUintNew or by the
// circuits of this package back into the unsigned integer it encodes. Bits
// beyond the 64th are ignored. Like Decryptor.Decrypt it never fails: once
// the noise of a position has exceeded the correctness bound, the
// corresponding bit of the result is silently wrong.
func (ecd Encoder) DecryptUint(cts []*dghv.Ciphertext) (x uint64) {

	n := utils.Min(len(cts), 64)

	for i := 0; i < n; i++ {
		x |= ecd.dec.Decrypt(cts[i]) << i
	}

	return
}

// ShallowCopy creates a shallow copy of this Encoder in which all the
// read-only data structures are shared with the receiver and the temporary
// buffers are reallocated. The receiver and the returned Encoder can be
// used concurrently.
func (ecd Encoder) ShallowCopy() *Encoder {
	return &Encoder{
		params: ecd.params,
		enc:    ecd.enc.ShallowCopy(),
		dec:    ecd.dec.ShallowCopy(),
	}
}
