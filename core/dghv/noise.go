package dghv

import (
	"math/big"

	"github.com/alvin21mfmlai/toy-fhe-gentry/utils"
	"github.com/alvin21mfmlai/toy-fhe-gentry/utils/bignum"
	"github.com/montanaflynn/stats"
)

// Noise returns the magnitude |2r| of the noise term carried by ct under sk.
// It recomputes the centered remainder x = c cmod p, clears the plaintext
// parity and returns the absolute value of what remains. The input
// ciphertext is not modified.
//
// Decryption of ct is correct exactly while the returned value (plus the
// plaintext bit) is below p/2. Noise requires the secret key: it is a
// diagnostic for the key holder, not an observable of the ciphertext.
func Noise(ct *Ciphertext, sk *SecretKey) *big.Int {

	p := sk.Value

	x := new(big.Int).Mod(ct.Value, p)

	if x.Cmp(new(big.Int).Rsh(p, 1)) > 0 {
		x.Sub(x, p)
	}

	// x = m + 2*r; clears the parity bit m to isolate 2*r.
	if x.Bit(0) == 1 {
		x.Sub(x, intOne)
	}

	return x.Abs(x)
}

// NoiseBudget returns the remaining noise budget of ct under sk in bits:
//
//	log2( (p/2) / (|2r| + 1) )
//
// Decryption is guaranteed correct while the budget is positive. Each
// homomorphic addition consumes about one bit and each multiplication
// consumes about the noise bit-size of the smaller operand, so the budget is
// the quantity callers should track to bound circuit depth. The value is
// computed in multi-precision arithmetic, preserving fractional bits.
func NoiseBudget(ct *Ciphertext, sk *SecretKey) float64 {

	prec := uint(utils.Max(128, sk.Value.BitLen()))

	logP := bignum.Log(bignum.NewFloat(sk.Value, prec))
	logP.Quo(logP, bignum.Log2(prec))

	f64, _ := logP.Float64()

	return f64 - 1 - log2(Noise(ct, sk))
}

// NoiseStats returns the mean, median and standard deviation of the log2 of
// the noise magnitudes of the input ciphertexts under sk, with each
// magnitude measured as log2(|2r| + 1).
func NoiseStats(cts []*Ciphertext, sk *SecretKey) (mean, median, std float64) {

	values := make([]float64, len(cts))
	for i, ct := range cts {
		values[i] = log2(Noise(ct, sk))
	}

	mean, _ = stats.Mean(values)
	median, _ = stats.Median(values)
	std, _ = stats.StandardDeviation(values)

	return
}

// log2 returns log2(x + 1) as a float64, i.e. the bit-size of the
// non-negative integer x with its fractional part.
func log2(x *big.Int) float64 {

	prec := uint(utils.Max(128, x.BitLen()))

	f := bignum.Log(bignum.NewFloat(new(big.Int).Add(x, intOne), prec))
	f.Quo(f, bignum.Log2(prec))

	f64, _ := f.Float64()

	return f64
}
