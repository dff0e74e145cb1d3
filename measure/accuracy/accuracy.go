// Package accuracy measures how closely an approximation follows a reference
// function over a sampled interval.
package accuracy

import (
	"math"

	"github.com/cwbudde/algo-constmath/bitview"
	"github.com/cwbudde/algo-vecmath"
)

const defaultSamples = 4096

// Report summarises the error of an approximation against its reference.
type Report struct {
	Name    string
	Samples int
	// MaxAbsErr is the largest |approx(x) - ref(x)| and WorstX the input
	// where it occurred.
	MaxAbsErr float64
	WorstX    float64
	// MaxRelErr only considers inputs where |ref(x)| is at least the relative
	// floor.
	MaxRelErr  float64
	MeanAbsErr float64
	RMSErr     float64
}

// Option configures Compare.
type Option func(*config)

type config struct {
	samples    int
	logSpacing bool
	relFloor   float64
	round      func(float64) float64
}

// WithSamples sets the number of sample points (default 4096).
func WithSamples(n int) Option {
	return func(c *config) {
		c.samples = n
	}
}

// WithLogSpacing spaces the sample points evenly in log2(x) instead of x.
func WithLogSpacing() Option {
	return func(c *config) {
		c.logSpacing = true
	}
}

// WithRelativeFloor excludes inputs with |ref(x)| below floor from the
// relative error. The default floor is zero, which only skips exact zeros.
func WithRelativeFloor(floor float64) Option {
	return func(c *config) {
		c.relFloor = math.Abs(floor)
	}
}

// RoundInputs rounds every sample point to F before it is passed to either
// function, so that a narrow approximation is judged against the reference at
// the input it actually sees.
func RoundInputs[F bitview.Float]() Option {
	return func(c *config) {
		c.round = func(x float64) float64 { return float64(F(x)) }
	}
}

// Adapt turns an approximation over F into a float64 function by converting
// its argument and result.
func Adapt[F bitview.Float](f func(F) F) func(float64) float64 {
	return func(x float64) float64 {
		return float64(f(F(x)))
	}
}

// Compare samples approxFn and refFn on [lo, hi] and reports the error of
// approxFn. Non-finite differences propagate into the report.
func Compare(name string, approxFn, refFn func(float64) float64, lo, hi float64, opts ...Option) (Report, error) {
	cfg := config{samples: defaultSamples}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := validateSamples(cfg.samples); err != nil {
		return Report{}, err
	}
	if err := validateRange(lo, hi, cfg.logSpacing); err != nil {
		return Report{}, err
	}

	xs := grid(lo, hi, cfg.samples, cfg.logSpacing)
	if cfg.round != nil {
		for i, x := range xs {
			xs[i] = cfg.round(x)
		}
	}

	got := make([]float64, len(xs))
	want := make([]float64, len(xs))
	for i, x := range xs {
		got[i] = approxFn(x)
		want[i] = refFn(x)
	}

	// diff = got - want, sq = diff²
	diff := make([]float64, len(xs))
	vecmath.ScaleBlock(diff, want, -1)
	vecmath.AddBlockInPlace(diff, got)

	sq := make([]float64, len(xs))
	vecmath.MulBlock(sq, diff, diff)

	rep := Report{Name: name, Samples: len(xs), WorstX: xs[0]}

	var sumAbs, sumSq float64
	for i, d := range diff {
		ad := math.Abs(d)
		sumAbs += ad
		sumSq += sq[i]

		if ad > rep.MaxAbsErr || (math.IsNaN(ad) && !math.IsNaN(rep.MaxAbsErr)) {
			rep.MaxAbsErr = ad
			rep.WorstX = xs[i]
		}

		r := math.Abs(want[i])
		if r == 0 || r < cfg.relFloor {
			continue
		}
		if rel := ad / r; rel > rep.MaxRelErr || math.IsNaN(rel) {
			rep.MaxRelErr = rel
		}
	}

	n := float64(len(xs))
	rep.MeanAbsErr = sumAbs / n
	rep.RMSErr = math.Sqrt(sumSq / n)

	return rep, nil
}

func grid(lo, hi float64, n int, logSpacing bool) []float64 {
	a, b := lo, hi
	if logSpacing {
		a, b = math.Log2(lo), math.Log2(hi)
	}

	out := make([]float64, n)
	step := (b - a) / float64(n-1)
	for i := range out {
		v := a + step*float64(i)
		if logSpacing {
			v = math.Exp2(v)
		}
		out[i] = v
	}

	// Pin the endpoints so that rounding never moves them off the interval.
	out[0], out[n-1] = lo, hi

	return out
}
