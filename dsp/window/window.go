// Package window generates cosine-sum analysis windows.
//
// Coefficients are evaluated with approx.Cos, so a window computed here is
// bit-identical wherever the package runs.
package window

import (
	"math"

	"github.com/cwbudde/algo-constmath/approx"
	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
	TypeBlackmanHarris4Term
)

// Metadata holds spectral properties of a window type.
type Metadata struct {
	Name            string
	ENBW            float64
	HighestSidelobe float64
	CoherentGain    float64
}

// Option configures window generation.
type Option func(*config)

type config struct {
	periodic bool
}

// WithPeriodic configures periodic form (FFT framing) instead of symmetric form.
func WithPeriodic() Option {
	return func(c *config) {
		c.periodic = true
	}
}

// Cosine-sum terms: w(x) = Σ c[k]·cos(2πkx) for x in [0, 1].
var (
	rectangularCoeffs     = []float64{1}
	hannCoeffs            = []float64{0.5, -0.5}
	hammingCoeffs         = []float64{0.54, -0.46}
	blackmanCoeffs        = []float64{0.42, -0.5, 0.08}
	blackmanHarris4Coeffs = []float64{0.35875, -0.48829, 0.14128, -0.01168}
)

var metadataByType = map[Type]Metadata{
	TypeRectangular:         {Name: "Rectangular", HighestSidelobe: -13.3},
	TypeHann:                {Name: "Hann", HighestSidelobe: -31.5},
	TypeHamming:             {Name: "Hamming", HighestSidelobe: -42.7},
	TypeBlackman:            {Name: "Blackman", HighestSidelobe: -58.1},
	TypeBlackmanHarris4Term: {Name: "Blackman-Harris 4-term", HighestSidelobe: -92.0},
}

func init() {
	// Coherent gain and ENBW of a cosine-sum window follow from its terms.
	for t, m := range metadataByType {
		c := Coefficients(t)
		sumSq := c[0] * c[0]
		for _, v := range c[1:] {
			sumSq += v * v / 2
		}
		m.CoherentGain = c[0]
		m.ENBW = sumSq / (c[0] * c[0])
		metadataByType[t] = m
	}
}

// Coefficients returns a copy of the cosine-sum terms of t. Unknown types
// yield the rectangular window.
func Coefficients(t Type) []float64 {
	return append([]float64(nil), coeffsOf(t)...)
}

func coeffsOf(t Type) []float64 {
	switch t {
	case TypeHann:
		return hannCoeffs
	case TypeHamming:
		return hammingCoeffs
	case TypeBlackman:
		return blackmanCoeffs
	case TypeBlackmanHarris4Term:
		return blackmanHarris4Coeffs
	default:
		return rectangularCoeffs
	}
}

// Generate returns window coefficients of the given length.
func Generate(t Type, length int, opts ...Option) []float64 {
	if length <= 0 {
		return nil
	}

	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	coeffs := coeffsOf(t)

	out := make([]float64, length)
	for i := range out {
		out[i] = cosineFromCoeffs(samplePosition(i, length, cfg.periodic), coeffs)
	}

	return out
}

// New is Generate with validation of the type and length.
func New(t Type, size int, opts ...Option) ([]float64, error) {
	if err := validateType(t); err != nil {
		return nil, err
	}
	if err := validateLength(size); err != nil {
		return nil, err
	}
	return Generate(t, size, opts...), nil
}

// Apply multiplies buf in-place by the selected window.
func Apply(t Type, buf []float64, opts ...Option) {
	if len(buf) == 0 {
		return
	}

	vecmath.MulBlockInPlace(buf, Generate(t, len(buf), opts...))
}

// ApplyCoefficientsInPlace multiplies samples with coefficients in place.
func ApplyCoefficientsInPlace(samples, coeffs []float64) error {
	if len(samples) != len(coeffs) {
		return errMismatchedLength
	}

	vecmath.MulBlockInPlace(samples, coeffs)

	return nil
}

// Info returns static metadata for a window type.
func Info(t Type) Metadata {
	if m, ok := metadataByType[t]; ok {
		return m
	}

	return Metadata{}
}

// EquivalentNoiseBandwidth returns the ENBW in bins for a window.
func EquivalentNoiseBandwidth(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}

	sum := 0.0
	sumSquares := 0.0

	for _, c := range coeffs {
		sum += c
		sumSquares += c * c
	}

	if sum == 0 {
		return 0, errZeroCoherentGain
	}

	return float64(len(coeffs)) * sumSquares / (sum * sum), nil
}

func cosineFromCoeffs(x float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x

	sum := coeffs[0]
	for k := 1; k < len(coeffs); k++ {
		sum += coeffs[k] * approx.Cos(float64(k)*phase)
	}

	return sum
}

func samplePosition(n, size int, periodic bool) float64 {
	if size <= 1 {
		return 0
	}

	den := float64(size - 1)
	if periodic {
		den = float64(size)
	}

	return float64(n) / den
}
