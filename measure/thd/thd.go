// Package thd measures the spectral purity of a sine approximation: how much
// of the energy of a generated test tone lands outside its fundamental bin.
//
// The tone runs an integer number of cycles over the frame, so with the
// default rectangular window every harmonic falls exactly on a bin.
package thd

import (
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-constmath/dsp/window"
	"github.com/cwbudde/algo-vecmath"
)

const (
	minSize             = 8
	defaultSize         = 4096
	defaultCycles       = 31
	defaultMaxHarmonics = 9
)

// Config holds purity analysis parameters. Zero fields take their defaults.
type Config struct {
	// Size is the frame length (default 4096).
	Size int
	// Cycles is the number of whole tone periods per frame (default 31).
	Cycles int
	// MaxHarmonics is the number of harmonics, starting at the second,
	// included in THD (default 9).
	MaxHarmonics int
	// Window is applied before the FFT (default rectangular).
	Window window.Type
}

// Result holds spectral purity metrics. Ratios are power ratios; the dB
// fields are 10·log10 of them.
//
//nolint:revive
type Result struct {
	FundamentalBin   int
	FundamentalPower float64
	// THD is sqrt(Σ harmonic power / fundamental power).
	THD    float64
	THD_dB float64
	// SFDR_dB is the fundamental bin over the strongest other bin, DC
	// excluded.
	SFDR_dB float64
	// SINAD_dB is the fundamental over everything else except DC.
	SINAD_dB float64
	// Harmonics holds the amplitude ratio of harmonics 2, 3, ... to the
	// fundamental. Harmonics beyond Nyquist are folded back.
	Harmonics []float64
}

// Analyzer reuses an FFT plan and scratch buffers across frames of one size.
// It is not safe for concurrent use.
type Analyzer struct {
	cfg   Config
	plan  *algofft.Plan[complex128]
	win   []float64
	lobe  int
	frame []float64
	in    []complex128
	out   []complex128
	re    []float64
	im    []float64
	power []float64
}

// NewAnalyzer validates cfg and prepares an analyzer for frames of cfg.Size
// samples.
func NewAnalyzer(cfg Config) (*Analyzer, error) {
	cfg = normalizeConfig(cfg)
	if err := validateSize(cfg.Size); err != nil {
		return nil, err
	}
	if err := validateCycles(cfg.Cycles, cfg.Size); err != nil {
		return nil, err
	}

	plan, err := algofft.NewPlan64(cfg.Size)
	if err != nil {
		return nil, err
	}

	n := cfg.Size
	bins := n/2 + 1

	return &Analyzer{
		cfg:   cfg,
		plan:  plan,
		win:   window.Generate(cfg.Window, n, window.WithPeriodic()),
		lobe:  len(window.Coefficients(cfg.Window)) - 1,
		frame: make([]float64, n),
		in:    make([]complex128, n),
		out:   make([]complex128, n),
		re:    make([]float64, bins),
		im:    make([]float64, bins),
		power: make([]float64, bins),
	}, nil
}

// Config returns the normalised configuration.
func (a *Analyzer) Config() Config {
	return a.cfg
}

// Generate returns one frame of the test tone produced by sine. The phase
// passed to sine is reduced to [0, 2π) exactly, so only the approximation
// itself contributes distortion.
func Generate(sine func(float64) float64, cfg Config) ([]float64, error) {
	cfg = normalizeConfig(cfg)
	if err := validateSize(cfg.Size); err != nil {
		return nil, err
	}
	if err := validateCycles(cfg.Cycles, cfg.Size); err != nil {
		return nil, err
	}

	n := cfg.Size
	out := make([]float64, n)
	for i := range out {
		m := (cfg.Cycles * i) % n
		out[i] = sine(2 * math.Pi * float64(m) / float64(n))
	}

	return out, nil
}

// Analyze is a one-shot purity analysis of signal; cfg.Size is taken from the
// signal length.
func Analyze(signal []float64, cfg Config) (Result, error) {
	cfg.Size = len(signal)

	a, err := NewAnalyzer(cfg)
	if err != nil {
		return Result{}, err
	}

	return a.Analyze(signal)
}

// AnalyzeSine generates a test tone with sine and analyzes it.
func AnalyzeSine(sine func(float64) float64, cfg Config) (Result, error) {
	signal, err := Generate(sine, cfg)
	if err != nil {
		return Result{}, err
	}

	return Analyze(signal, cfg)
}

// Analyze windows signal, transforms it and evaluates the purity metrics.
// The signal length must equal the configured size.
func (a *Analyzer) Analyze(signal []float64) (Result, error) {
	if err := validateFrame(len(signal), a.cfg.Size); err != nil {
		return Result{}, err
	}

	vecmath.MulBlock(a.frame, signal, a.win)
	for i, v := range a.frame {
		a.in[i] = complex(v, 0)
	}

	if err := a.plan.Forward(a.out, a.in); err != nil {
		return Result{}, err
	}

	for i := range a.re {
		a.re[i] = real(a.out[i])
		a.im[i] = imag(a.out[i])
	}
	vecmath.Power(a.power, a.re, a.im)

	return a.CalculateFromPower(a.power), nil
}

// CalculateFromPower evaluates the purity metrics from a single-sided power
// spectrum with bins [0..Size/2].
//
//nolint:cyclop
func (a *Analyzer) CalculateFromPower(power []float64) Result {
	last := len(power) - 1
	fund := a.cfg.Cycles
	if fund > last {
		return Result{}
	}

	fundPower := lobePower(power, fund, a.lobe)
	if fundPower <= 0 {
		return Result{FundamentalBin: fund}
	}

	harmonicPower := 0.0
	harmonics := make([]float64, 0, a.cfg.MaxHarmonics)
	for k := 2; k < 2+a.cfg.MaxHarmonics; k++ {
		bin := foldBin(k*fund, a.cfg.Size)
		p := 0.0
		if bin > a.lobe {
			p = lobePower(power, bin, a.lobe)
		}
		harmonicPower += p
		harmonics = append(harmonics, math.Sqrt(p/fundPower))
	}

	total := 0.0
	spur := 0.0
	for i := a.lobe + 1; i <= last; i++ {
		total += power[i]
		if i >= fund-a.lobe && i <= fund+a.lobe {
			continue
		}
		spur = math.Max(spur, power[i])
	}

	noise := math.Max(total-fundPower, 0)
	thd := harmonicPower / fundPower

	return Result{
		FundamentalBin:   fund,
		FundamentalPower: fundPower,
		THD:              math.Sqrt(thd),
		THD_dB:           powerToDB(thd),
		SFDR_dB:          -powerToDB(spur / power[fund]),
		SINAD_dB:         -powerToDB(noise / fundPower),
		Harmonics:        harmonics,
	}
}

func normalizeConfig(cfg Config) Config {
	if cfg.Size == 0 {
		cfg.Size = defaultSize
	}

	if cfg.Cycles == 0 {
		cfg.Cycles = defaultCycles
	}

	if cfg.MaxHarmonics <= 0 {
		cfg.MaxHarmonics = defaultMaxHarmonics
	}

	return cfg
}

// lobePower sums the bins within lobe of bin, clamped to the spectrum.
func lobePower(power []float64, bin, lobe int) float64 {
	lo := max(bin-lobe, 0)
	hi := min(bin+lobe, len(power)-1)

	sum := 0.0
	for i := lo; i <= hi; i++ {
		sum += power[i]
	}

	return sum
}

// foldBin maps a bin index of a real signal into [0, size/2].
func foldBin(bin, size int) int {
	bin %= size
	if bin > size/2 {
		bin = size - bin
	}
	return bin
}

func powerToDB(v float64) float64 {
	if v <= 0 {
		return math.Inf(-1)
	}

	return 10 * math.Log10(v)
}
