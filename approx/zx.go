package approx

import (
	"github.com/cwbudde/algo-constmath/bitview"
	"github.com/cwbudde/algo-constmath/poly"
)

// zxPoly64 and zxPoly32 are the power-basis form of the ZX Spectrum ROM
// series sin(πw/2) ≈ w·Σ c[k]·T_k(2w²-1), w in [-1, 1], with
// c = {1.276278962, -0.285261569, 0.009118016, -0.000136587, 0.000001185,
// -0.000000007}.
var (
	zxPoly64 = [...]float64{
		1.2671621309999999,
		-0.284851843,
		0.018226552,
		-0.000546208,
		9.48e-06,
		-1.12e-07,
	}
	zxPoly32 = [...]float32{
		1.2671622,
		-0.28485185,
		0.01822655,
		-0.000546208,
		9.48e-06,
		-1.12e-07,
	}
)

const twoOverPi = 0.636619772367581343075535053490057448137838582961825794990

// zxFoldSteps is the fixed number of subtract/reflect/wrap steps that move the
// scaled argument into [-1, 1].
const zxFoldSteps = 4

// SinZX approximates sin(x) with the ZX Spectrum algorithm: a Chebyshev
// series of degree five after folding x·2/π into [-1, 1]. It is less accurate
// than Sin but has no argument-size limit other than finiteness.
func SinZX[F bitview.Float](x F) F {
	if bitview.Width[F]() == 32 {
		return F(zxKernel(float32(x), 0, zxPoly32[:]))
	}
	return F(zxKernel(float64(x), 0, zxPoly64[:]))
}

// CosZX approximates cos(x) as SinZX shifted by a quarter period.
func CosZX[F bitview.Float](x F) F {
	if bitview.Width[F]() == 32 {
		return F(zxKernel(float32(x), 1, zxPoly32[:]))
	}
	return F(zxKernel(float64(x), 1, zxPoly64[:]))
}

func zxKernel[G float32 | float64](x, shift G, p []G) G {
	if !bitview.IsFinite(x) {
		return nan[G]()
	}

	w := x * twoOverPi
	if shift != 0 {
		w += shift
	}

	for i := 0; i < zxFoldSteps; i++ {
		w--
		if i%2 == 0 && w < 0 {
			w = -w
		}
		w = mod4(w)
	}

	if w > 1 {
		w = 2 - w
	} else if w < -1 {
		w = -2 - w
	}

	z := 2*w*w - 1
	return poly.Horner(p, z) * w
}

// mod4 returns w - 4·trunc(w/4), which carries the sign of w and is exact.
func mod4[G float32 | float64](w G) G {
	return w - 4*bitview.Trunc(w/4)
}
