package bitview

// Bias constants for the square-root initial guess. Halving a bit pattern
// halves its biased exponent, which also halves the bias; adding back half the
// bias (in mantissa-field units) restores a correctly biased exponent.
const (
	SqrtBias32 uint64 = 127 << 22
	SqrtBias64 uint64 = 1023 << 51
)

// invSqrtSigma shifts the inverse square root guess so that its maximum
// relative error is balanced across a binade.
const invSqrtSigma = 0.0450466

var (
	invSqrtMagic32 = Binary32.InvSqrtMagic()
	invSqrtMagic64 = Binary64.InvSqrtMagic()
)

// SqrtBias derives the square-root guess bias for l:
// (ExpBias+1)·2^(M-2) - 2^(M-2), which is ExpBias << (MantissaBits-1).
func (l Layout) SqrtBias() uint64 {
	return l.ExpBias << (l.MantissaBits() - 1)
}

// InvSqrtMagic derives the inverse square root magic number for l:
// round(1.5 · 2^MantissaBits · (ExpBias - σ)). For binary32 this is 0x5f3759df.
func (l Layout) InvSqrtMagic() uint64 {
	scale := float64(uint64(1) << l.MantissaBits())
	// The explicit conversion keeps the product from being fused with the
	// rounding addend.
	return uint64(float64(1.5*scale*(float64(l.ExpBias)-invSqrtSigma)) + 0.5)
}

// SqrtBias returns the square-root guess bias for F.
func SqrtBias[F Float]() uint64 {
	if Width[F]() == 32 {
		return SqrtBias32
	}
	return SqrtBias64
}

// InvSqrtMagic returns the inverse square root magic number for F.
func InvSqrtMagic[F Float]() uint64 {
	if Width[F]() == 32 {
		return invSqrtMagic32
	}
	return invSqrtMagic64
}

// SqrtGuess approximates sqrt(x) for positive normal x to within about 6.1%
// relative error by halving the bit pattern and re-biasing the exponent.
func SqrtGuess[F Float](x F) F {
	return FromBits[F](ToBits(x)>>1 + SqrtBias[F]())
}

// InvSqrtGuess approximates 1/sqrt(x) for positive normal x to within about
// 3.5% relative error.
func InvSqrtGuess[F Float](x F) F {
	return FromBits[F](InvSqrtMagic[F]() - ToBits(x)>>1)
}
