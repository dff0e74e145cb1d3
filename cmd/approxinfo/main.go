// Command approxinfo prints accuracy, spectral purity and speed of the
// approximations in package approx.
//
// Usage:
//
//	approxinfo [flags] [name ...]
//
// Without arguments it reports every approximation.
//
// Examples:
//
//	approxinfo
//	approxinfo -samples 100000 sin64 cos64
//	approxinfo -purity -size 16384
//	approxinfo -bench sqrt32 sqrt64 fastsqrt
//	approxinfo -list
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
	"testing"
	"text/tabwriter"

	"github.com/cwbudde/algo-constmath/approx"
	"github.com/cwbudde/algo-constmath/measure/accuracy"
	"github.com/cwbudde/algo-constmath/measure/thd"
	"github.com/cwbudde/algo-vecmath/cpu"
	fastapprox "github.com/meko-christian/algo-approx"
)

type entry struct {
	name   string
	width  int
	f      func(float64) float64
	ref    func(float64) float64
	lo, hi float64
	log    bool
	sine   bool
}

func invSqrt(x float64) float64 { return 1 / math.Sqrt(x) }

func fastSqrt(x float64) float64 { return fastapprox.FastSqrt(x) }

var registry = []entry{
	{"sqrt32", 32, accuracy.Adapt(approx.Sqrt[float32]), math.Sqrt, 1.0 / 1024, 1024, true, false},
	{"sqrt64", 64, approx.Sqrt[float64], math.Sqrt, 1.0 / 1024, 1024, true, false},
	{"invsqrt32", 32, accuracy.Adapt(approx.InvSqrt[float32]), invSqrt, 1.0 / 1024, 1024, true, false},
	{"invsqrt64", 64, approx.InvSqrt[float64], invSqrt, 1.0 / 1024, 1024, true, false},
	{"sin32", 32, accuracy.Adapt(approx.Sin[float32]), math.Sin, -4 * math.Pi, 4 * math.Pi, false, true},
	{"sin64", 64, approx.Sin[float64], math.Sin, -4 * math.Pi, 4 * math.Pi, false, true},
	{"cos32", 32, accuracy.Adapt(approx.Cos[float32]), math.Cos, -4 * math.Pi, 4 * math.Pi, false, false},
	{"cos64", 64, approx.Cos[float64], math.Cos, -4 * math.Pi, 4 * math.Pi, false, false},
	{"sinzx32", 32, accuracy.Adapt(approx.SinZX[float32]), math.Sin, -4 * math.Pi, 4 * math.Pi, false, true},
	{"sinzx64", 64, approx.SinZX[float64], math.Sin, -4 * math.Pi, 4 * math.Pi, false, true},
	{"coszx32", 32, accuracy.Adapt(approx.CosZX[float32]), math.Cos, -4 * math.Pi, 4 * math.Pi, false, false},
	{"coszx64", 64, approx.CosZX[float64], math.Cos, -4 * math.Pi, 4 * math.Pi, false, false},
	// Baselines.
	{"fastsqrt", 64, fastSqrt, math.Sqrt, 1.0 / 1024, 1024, true, false},
	{"math.sin", 64, math.Sin, math.Sin, -4 * math.Pi, 4 * math.Pi, false, true},
}

func main() {
	samples := flag.Int("samples", 4096, "number of sample points per accuracy measurement")
	width := flag.Int("width", 0, "only show approximations of this float width (32 or 64)")
	purity := flag.Bool("purity", false, "also measure spectral purity of the sine approximations")
	size := flag.Int("size", 4096, "frame size for -purity (power of two)")
	bench := flag.Bool("bench", false, "also time each approximation")
	list := flag.Bool("list", false, "list available approximation names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: approxinfo [flags] [name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints accuracy, spectral purity and speed of the approximations.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, reports every approximation.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  approxinfo sin64 cos64\n")
		fmt.Fprintf(os.Stderr, "  approxinfo -purity -size 16384\n")
		fmt.Fprintf(os.Stderr, "  approxinfo -bench -width 32\n")
		fmt.Fprintf(os.Stderr, "  approxinfo -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	entries := resolveEntries(flag.Args(), *width)
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching approximations\n")
		os.Exit(1)
	}

	if !printAccuracy(entries, *samples) {
		os.Exit(1)
	}

	if *purity {
		fmt.Println()
		if !printPurity(entries, *size) {
			os.Exit(1)
		}
	}

	if *bench {
		fmt.Println()
		printBench(entries)
	}
}

func printList() {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

func resolveEntries(names []string, width int) []entry {
	byName := make(map[string]entry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	if len(names) == 0 {
		for _, e := range registry {
			names = append(names, e.name)
		}
	}

	var result []entry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown approximation %q (use -list to see available)\n", name)
			continue
		}
		if width != 0 && e.width != width {
			continue
		}
		result = append(result, e)
	}
	return result
}

func printAccuracy(entries []entry, samples int) bool {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Name\tWidth\tRange\tMax Abs\tMax Rel\tRMS\tWorst x\n")
	fmt.Fprintf(tw, "----\t-----\t-----\t-------\t-------\t---\t-------\n")

	for _, e := range entries {
		opts := []accuracy.Option{accuracy.WithSamples(samples), accuracy.WithRelativeFloor(1e-3)}
		if e.log {
			opts = append(opts, accuracy.WithLogSpacing())
		}
		if e.width == 32 {
			opts = append(opts, accuracy.RoundInputs[float32]())
		}

		rep, err := accuracy.Compare(e.name, e.f, e.ref, e.lo, e.hi, opts...)
		if err != nil {
			_ = tw.Flush()
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", e.name, err)
			return false
		}

		fmt.Fprintf(tw, "%s\t%d\t[%.4g, %.4g]\t%.3e\t%.3e\t%.3e\t%.6g\n",
			rep.Name, e.width, e.lo, e.hi, rep.MaxAbsErr, rep.MaxRelErr, rep.RMSErr, rep.WorstX)
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
		return false
	}
	return true
}

func printPurity(entries []entry, size int) bool {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Name\tSize\tSFDR [dB]\tTHD [dB]\tSINAD [dB]\n")
	fmt.Fprintf(tw, "----\t----\t---------\t--------\t----------\n")

	for _, e := range entries {
		if !e.sine {
			continue
		}

		res, err := thd.AnalyzeSine(e.f, thd.Config{Size: size})
		if err != nil {
			_ = tw.Flush()
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", e.name, err)
			return false
		}

		fmt.Fprintf(tw, "%s\t%d\t%.1f\t%.1f\t%.1f\n", e.name, size, res.SFDR_dB, res.THD_dB, res.SINAD_dB)
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
		return false
	}
	return true
}

func printBench(entries []entry) {
	f := cpu.DetectFeatures()
	fmt.Printf("CPU: %s  SSE2=%t AVX=%t AVX2=%t AVX512=%t NEON=%t generic=%t\n",
		f.Architecture, f.HasSSE2, f.HasAVX, f.HasAVX2, f.HasAVX512, f.HasNEON, f.ForceGeneric)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Name\tns/op\tallocs/op\n")
	fmt.Fprintf(tw, "----\t-----\t---------\n")

	for _, e := range entries {
		fn := e.f
		span := e.hi - e.lo
		r := testing.Benchmark(func(b *testing.B) {
			b.ReportAllocs()
			var sink float64
			for i := 0; i < b.N; i++ {
				sink += fn(e.lo + span*float64(i&1023)/1024)
			}
			_ = sink
		})
		fmt.Fprintf(tw, "%s\t%.2f\t%d\n", e.name, float64(r.T.Nanoseconds())/float64(max(r.N, 1)), r.AllocsPerOp())
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
