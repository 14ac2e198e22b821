package dghv

var (
	// ExampleParametersEta3Secret32Gamma64 is an example parameter set with
	// 3-bit noise terms, a 32-bit secret modulus and 64-bit multipliers. It
	// leaves fresh ciphertexts with a budget of about 27 bits, enough for
	// small circuits with two to three multiplicative levels.
	//
	// Like every parameter set of this scheme it offers NO security and is
	// for demonstration only.
	ExampleParametersEta3Secret32Gamma64 = ParametersLiteral{
		Eta:        3,
		SecretBits: 32,
		Gamma:      64,
	}

	// ExampleParametersEta2Secret16Gamma32 is a smaller example parameter
	// set with 2-bit noise terms, a 16-bit secret modulus and 32-bit
	// multipliers. The reduced budget makes the effect of noise growth
	// visible after a handful of operations, which is useful when
	// demonstrating the correctness boundary.
	ExampleParametersEta2Secret16Gamma32 = ParametersLiteral{
		Eta:        2,
		SecretBits: 16,
		Gamma:      32,
	}

	// ExampleParametersEta2Secret64Gamma128 is a parameter set with a wide
	// correctness margin: fresh ciphertexts have a budget of about 60 bits.
	// The bit-vector circuits of he/hebin stay correct on it at small
	// widths even under worst-case noise growth, a 4-bit ripple-carry
	// addition peaking below 40 bits of noise.
	ExampleParametersEta2Secret64Gamma128 = ParametersLiteral{
		Eta:        2,
		SecretBits: 64,
		Gamma:      128,
	}
)
