// Package poly evaluates and converts polynomials given as ordered coefficient
// sequences.
//
// Coefficients are stored in ascending power order: coeffs[0] is the constant
// term and coeffs[i] multiplies x^i. Evaluation never allocates.
package poly

import "golang.org/x/exp/constraints"

// Number is any type supporting addition and multiplication.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Horner evaluates sum(coeffs[i] * x^i) by nested multiply-add, starting from
// the highest-degree coefficient. An empty slice evaluates to zero.
func Horner[T Number](coeffs []T, x T) T {
	if len(coeffs) == 0 {
		var zero T
		return zero
	}

	acc := coeffs[len(coeffs)-1]
	for i := len(coeffs) - 2; i >= 0; i-- {
		acc = acc*x + coeffs[i]
	}

	return acc
}

// Clenshaw evaluates the Chebyshev series sum(c[k] * T_k(x)) without
// converting it to the power basis.
func Clenshaw[T Number](c []T, x T) T {
	if len(c) == 0 {
		var zero T
		return zero
	}

	var b1, b2 T
	for k := len(c) - 1; k >= 1; k-- {
		b1, b2 = 2*x*b1-b2+c[k], b1
	}

	return x*b1 - b2 + c[0]
}

// ChebyshevT returns the power-basis coefficients of the Chebyshev polynomial
// of the first kind T_n, using T_{n+1} = 2x·T_n - T_{n-1}. The result has
// length n+1; a negative n yields nil.
func ChebyshevT[T Number](n int) []T {
	if n < 0 {
		return nil
	}

	prev := make([]T, n+1)
	cur := make([]T, n+1)
	prev[0] = 1
	if n == 0 {
		return prev
	}
	cur[1] = 1

	for k := 1; k < n; k++ {
		next := make([]T, n+1)
		for i := 0; i < k+1; i++ {
			next[i+1] += 2 * cur[i]
		}
		for i := 0; i < k; i++ {
			next[i] -= prev[i]
		}
		prev, cur = cur, next
	}

	return cur
}

// FromChebyshev converts the Chebyshev series sum(c[k] * T_k(x)) into
// power-basis coefficients of the same length.
func FromChebyshev[T Number](c []T) []T {
	out := make([]T, len(c))
	for n, cn := range c {
		for i, tn := range ChebyshevT[T](n) {
			out[i] += cn * tn
		}
	}
	return out
}
