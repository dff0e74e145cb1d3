package approx

import "github.com/cwbudde/algo-constmath/bitview"

// Default Newton-Raphson step counts. The bit-level guess is good to about four
// bits and every step roughly doubles that.
const (
	SqrtIterations32 = 3
	SqrtIterations64 = 4
)

// SqrtIterations returns the default step count for F.
func SqrtIterations[F bitview.Float]() int {
	if bitview.Width[F]() == 32 {
		return SqrtIterations32
	}
	return SqrtIterations64
}

// Sqrt approximates the square root of x with the default number of
// refinement steps for F.
func Sqrt[F bitview.Float](x F) F {
	return SqrtN(x, SqrtIterations[F]())
}

// SqrtN approximates the square root of x with exactly iterations
// Newton-Raphson steps g = (g + x/g)/2 after the bit-level guess. A negative
// count behaves like zero.
//
// Zero of either sign, NaN and +Inf are returned unchanged. Negative x returns
// NaN.
func SqrtN[F bitview.Float](x F, iterations int) F {
	switch {
	case x == 0 || bitview.IsNaN(x) || bitview.IsInf(x, 1):
		return x
	case x < 0:
		return nan[F]()
	}

	g := bitview.SqrtGuess(x)
	for i := 0; i < iterations; i++ {
		g = (g + x/g) * 0.5
	}

	return g
}

// InvSqrt approximates 1/sqrt(x) with the default number of refinement steps
// for F.
func InvSqrt[F bitview.Float](x F) F {
	return InvSqrtN(x, SqrtIterations[F]())
}

// InvSqrtN approximates 1/sqrt(x) starting from the magic-constant guess and
// applying iterations steps of y = y·(1.5 - x/2·y²).
//
// x <= 0 and NaN return NaN; +Inf returns 0.
func InvSqrtN[F bitview.Float](x F, iterations int) F {
	switch {
	case bitview.IsNaN(x) || x <= 0:
		return nan[F]()
	case bitview.IsInf(x, 1):
		return 0
	}

	return InvSqrtUncheckedN(x, iterations)
}

// InvSqrtUncheckedN is InvSqrtN without the domain checks. The result is
// meaningless unless x is positive, finite and normal.
func InvSqrtUncheckedN[F bitview.Float](x F, iterations int) F {
	y := bitview.InvSqrtGuess(x)
	half := x * 0.5
	for i := 0; i < iterations; i++ {
		y *= 1.5 - half*y*y
	}

	return y
}

// nan returns the default quiet NaN of F.
func nan[F bitview.Float]() F {
	l := bitview.LayoutOf[F]()
	return bitview.Compose[F](false, l.MaxBiasedExponent(), uint64(1)<<(l.MantissaBits()-1))
}
