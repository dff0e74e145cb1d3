// Package approx provides fast, allocation-free approximations of the square
// root, inverse square root, sine and cosine for float32 and float64.
//
// Every function is generic over [bitview.Float] and uses a fixed amount of
// work: a bit-level initial guess followed by a fixed number of Newton-Raphson
// steps for the roots, and an octant range reduction followed by a fixed-degree
// polynomial for the trigonometric functions. No function branches on a
// convergence test, so results are deterministic and the functions are safe to
// evaluate from any number of goroutines or at build time through
// cmd/approxgen.
//
// Accuracy on the default settings:
//
//	Sqrt     float32 ~1 ulp, float64 ~1 ulp (x normal)
//	InvSqrt  float32 ~1e-7, float64 ~2e-16 relative
//	Sin/Cos  float32 ≤ 2.5e-7, float64 ≤ 1e-15 absolute on [-4π, 4π]
//	SinZX    float32 ≤ 4e-6, float64 ≤ 2e-9 absolute
//
// Special values: NaN and infinite arguments to Sin and Cos return NaN, as do
// arguments so large that one unit in the last place exceeds a radian.
// Sqrt of a negative number returns NaN.
package approx
