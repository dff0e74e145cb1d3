package testutil

import (
	"math"
	"math/rand"
)

// Linspace returns n evenly spaced points from lo to hi inclusive.
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}

	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}

	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + step*float64(i)
	}
	out[n-1] = hi

	return out
}

// Logspace returns n points from 2^loExp to 2^hiExp, evenly spaced in the
// exponent.
func Logspace(loExp, hiExp float64, n int) []float64 {
	out := Linspace(loExp, hiExp, n)
	for i, e := range out {
		out[i] = math.Exp2(e)
	}
	return out
}

// DeterministicUniform returns n values uniformly drawn from [lo, hi) with a
// fixed seed for reproducibility.
func DeterministicUniform(seed int64, lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = lo + rng.Float64()*(hi-lo)
	}
	return out
}
