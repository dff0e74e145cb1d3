package approx

import (
	"github.com/cwbudde/algo-constmath/bitview"
	"github.com/cwbudde/algo-constmath/poly"
)

// trigTable holds the width-specific constants of the octant kernel.
type trigTable[G float32 | float64] struct {
	fourOverPi G
	// pi4 is π/4 split into three parts so that j·pi4[0] and j·pi4[1] are
	// exact for every j below the loss-of-significance limit.
	pi4 [3]G
	// sin and cos are ascending coefficients in z²; the sine result is
	// additionally multiplied by z.
	sin []G
	cos []G
}

// Cephes minimax coefficients on [-π/4, π/4].
var (
	sinCoeffs64 = [...]float64{
		1,
		-1.66666666666666307295e-1,
		8.33333333332211858878e-3,
		-1.98412698295895385996e-4,
		2.75573136213857245213e-6,
		-2.50507477628578072866e-8,
		1.58962301576546568060e-10,
	}
	cosCoeffs64 = [...]float64{
		1,
		-0.5,
		4.16666666666665929218e-2,
		-1.38888888888730564116e-3,
		2.48015872888517045348e-5,
		-2.75573141792967388112e-7,
		2.08757008419747316778e-9,
		-1.13585365213876817300e-11,
	}

	sinCoeffs32 = [...]float32{
		1,
		-0.16666666641626524,
		0.008333329385889463,
		-0.00019839334836096632,
		2.718311493989822e-6,
	}
	cosCoeffs32 = [...]float32{
		1,
		-0.4999999963229337,
		0.04166662453689337,
		-0.001388731625493765,
		2.443315711809948e-5,
	}
)

var trig64 = trigTable[float64]{
	fourOverPi: 1.273239544735162542821171882678754627704620361328125,
	pi4: [3]float64{
		7.85398125648498535156e-1,
		3.77489470793079817668e-8,
		2.69515142907905952645e-15,
	},
	sin: sinCoeffs64[:],
	cos: cosCoeffs64[:],
}

var trig32 = trigTable[float32]{
	fourOverPi: 1.273239544735162542821171882678754627704620361328125,
	pi4: [3]float32{
		0.78515625,
		2.4187564849853515625e-4,
		3.77489497744594108e-8,
	},
	sin: sinCoeffs32[:],
	cos: cosCoeffs32[:],
}

// Sin approximates the sine of x (radians).
func Sin[F bitview.Float](x F) F {
	if bitview.Width[F]() == 32 {
		return F(trigKernel(float32(x), &trig32, false))
	}
	return F(trigKernel(float64(x), &trig64, false))
}

// Cos approximates the cosine of x (radians).
func Cos[F bitview.Float](x F) F {
	if bitview.Width[F]() == 32 {
		return F(trigKernel(float32(x), &trig32, true))
	}
	return F(trigKernel(float64(x), &trig64, true))
}

// SinCos returns Sin(x) and Cos(x) from a single range reduction. The results
// are bit-identical to separate calls.
func SinCos[F bitview.Float](x F) (sin, cos F) {
	if bitview.Width[F]() == 32 {
		s, c := sinCosKernel(float32(x), &trig32)
		return F(s), F(c)
	}
	s, c := sinCosKernel(float64(x), &trig64)
	return F(s), F(c)
}

// reducible reports whether x is finite and small enough that its distance to
// the nearest multiple of π/4 is still meaningful.
func reducible[G float32 | float64](x G) bool {
	return bitview.IsFinite(x) && bitview.Exponent(x) < int(bitview.LayoutOf[G]().MantissaBits())
}

// reduce maps ax >= 0 to z in [-π/4, π/4] and the octant j in [0, 8) such
// that ax = j·π/4 + z modulo 2π. j is always even.
func reduce[G float32 | float64](ax G, t *trigTable[G]) (z G, j uint64) {
	j = uint64(ax * t.fourOverPi)
	y := G(j)
	if j&1 == 1 {
		j++
		y++
	}
	j &= 7

	z = ((ax - y*t.pi4[0]) - y*t.pi4[1]) - y*t.pi4[2]
	return z, j
}

func trigKernel[G float32 | float64](x G, t *trigTable[G], cosine bool) G {
	if !reducible(x) {
		return nan[G]()
	}

	negate := false
	ax := x
	if x < 0 {
		ax = -x
		negate = !cosine
	}

	z, j := reduce(ax, t)
	if j > 3 {
		j -= 4
		negate = !negate
	}
	if cosine && j > 1 {
		negate = !negate
	}

	zz := z * z
	var r G
	if (j == 1 || j == 2) != cosine {
		r = poly.Horner(t.cos, zz)
	} else {
		r = z * poly.Horner(t.sin, zz)
	}

	if negate {
		return -r
	}
	return r
}

func sinCosKernel[G float32 | float64](x G, t *trigTable[G]) (sin, cos G) {
	if !reducible(x) {
		return nan[G](), nan[G]()
	}

	negSin, negCos := false, false
	ax := x
	if x < 0 {
		ax = -x
		negSin = true
	}

	z, j := reduce(ax, t)
	if j > 3 {
		j -= 4
		negSin = !negSin
		negCos = !negCos
	}
	if j > 1 {
		negCos = !negCos
	}

	zz := z * z
	s := z * poly.Horner(t.sin, zz)
	c := poly.Horner(t.cos, zz)
	if j == 1 || j == 2 {
		s, c = c, s
	}

	if negSin {
		s = -s
	}
	if negCos {
		c = -c
	}
	return s, c
}
