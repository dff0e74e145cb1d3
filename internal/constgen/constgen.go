// Package constgen renders approximation results as Go source, so that values
// computed by package approx can be baked into a program as constants or
// lookup tables at build time.
package constgen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"math"
	"sort"
	"strconv"

	"github.com/cwbudde/algo-constmath/approx"
)

var (
	ErrUnknownFunc    = errors.New("constgen: unknown function")
	ErrInvalidWidth   = errors.New("constgen: width must be 32 or 64")
	ErrEmptyInputs    = errors.New("constgen: no inputs")
	ErrInvalidTable   = errors.New("constgen: invalid table")
	ErrInvalidName    = errors.New("constgen: invalid identifier")
	ErrNotRepresented = errors.New("constgen: value is not a finite number")
)

type function struct {
	f32 func(float32) float32
	f64 func(float64) float64
}

var functions = map[string]function{
	"sqrt":    {approx.Sqrt[float32], approx.Sqrt[float64]},
	"invsqrt": {approx.InvSqrt[float32], approx.InvSqrt[float64]},
	"sin":     {approx.Sin[float32], approx.Sin[float64]},
	"cos":     {approx.Cos[float32], approx.Cos[float64]},
	"sinzx":   {approx.SinZX[float32], approx.SinZX[float64]},
	"coszx":   {approx.CosZX[float32], approx.CosZX[float64]},
}

// Funcs returns the names accepted by Config.Func in sorted order.
func Funcs() []string {
	names := make([]string, 0, len(functions))
	for name := range functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Table describes N evenly spaced inputs from Lo to Hi inclusive.
type Table struct {
	N      int
	Lo, Hi float64
}

// Inputs returns the sample points of t.
func (t Table) Inputs() []float64 {
	out := make([]float64, t.N)
	step := (t.Hi - t.Lo) / float64(t.N-1)
	for i := range out {
		out[i] = t.Lo + step*float64(i)
	}
	out[t.N-1] = t.Hi
	return out
}

// Config selects what Generate renders. Exactly one of Inputs and Table is
// used; a non-nil Table wins.
type Config struct {
	Package string
	// Width is the float width of the generated values, 32 or 64.
	Width int
	Func  string
	// Name is the table variable name, or the prefix of the constant names
	// (Name0, Name1, ...). Defaults to the function name.
	Name   string
	Inputs []float64
	Table  *Table
	// Generator appears in the "Code generated" header (default "approxgen").
	Generator string
}

// Evaluate runs the named approximation at the given width. The result of a
// 32-bit evaluation is exactly representable as float32.
func Evaluate(fn string, width int, x float64) (float64, error) {
	f, ok := functions[fn]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownFunc, fn)
	}

	switch width {
	case 32:
		return float64(f.f32(float32(x))), nil
	case 64:
		return f.f64(x), nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrInvalidWidth, width)
	}
}

// Generate renders cfg as a gofmt'ed Go source file.
func Generate(cfg Config) ([]byte, error) {
	if cfg.Name == "" {
		cfg.Name = cfg.Func
	}
	if cfg.Generator == "" {
		cfg.Generator = "approxgen"
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	inputs := cfg.Inputs
	if cfg.Table != nil {
		inputs = cfg.Table.Inputs()
	}

	values := make([]float64, len(inputs))
	for i, x := range inputs {
		v, err := Evaluate(cfg.Func, cfg.Width, x)
		if err != nil {
			return nil, err
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: %s(%g) = %v", ErrNotRepresented, cfg.Func, x, v)
		}
		values[i] = v
	}

	typ := fmt.Sprintf("float%d", cfg.Width)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by %s. DO NOT EDIT.\n\n", cfg.Generator)
	fmt.Fprintf(&buf, "package %s\n\n", cfg.Package)

	if cfg.Table != nil {
		t := cfg.Table
		fmt.Fprintf(&buf, "// %s[i] = %s(%s + i*%s) for i in [0, %d).\n",
			cfg.Name, cfg.Func, formatFloat(t.Lo, 64), formatFloat((t.Hi-t.Lo)/float64(t.N-1), 64), t.N)
		fmt.Fprintf(&buf, "var %s = [%d]%s{\n", cfg.Name, t.N, typ)
		for _, v := range values {
			fmt.Fprintf(&buf, "%s,\n", formatFloat(v, cfg.Width))
		}
		fmt.Fprintf(&buf, "}\n")
	} else {
		fmt.Fprintf(&buf, "const (\n")
		for i, v := range values {
			fmt.Fprintf(&buf, "%s%d %s = %s // %s(%s)\n",
				cfg.Name, i, typ, formatFloat(v, cfg.Width), cfg.Func, formatFloat(inputs[i], 64))
		}
		fmt.Fprintf(&buf, ")\n")
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("constgen: format: %w", err)
	}

	return formatted, nil
}

func validate(cfg Config) error {
	if !token.IsIdentifier(cfg.Package) {
		return fmt.Errorf("%w: package %q", ErrInvalidName, cfg.Package)
	}
	if !token.IsIdentifier(cfg.Name) {
		return fmt.Errorf("%w: name %q", ErrInvalidName, cfg.Name)
	}
	if _, ok := functions[cfg.Func]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownFunc, cfg.Func)
	}
	if cfg.Width != 32 && cfg.Width != 64 {
		return fmt.Errorf("%w: %d", ErrInvalidWidth, cfg.Width)
	}

	if t := cfg.Table; t != nil {
		if t.N < 2 || math.IsNaN(t.Lo) || math.IsNaN(t.Hi) || math.IsInf(t.Lo, 0) || math.IsInf(t.Hi, 0) || t.Lo >= t.Hi {
			return fmt.Errorf("%w: n=%d lo=%g hi=%g", ErrInvalidTable, t.N, t.Lo, t.Hi)
		}
		return nil
	}

	if len(cfg.Inputs) == 0 {
		return ErrEmptyInputs
	}
	return nil
}

// formatFloat prints v with the fewest digits that read back exactly at the
// given width. Integral values keep a decimal point so they stay floats in
// untyped contexts.
func formatFloat(v float64, width int) string {
	s := strconv.FormatFloat(v, 'g', -1, width)
	if _, err := strconv.Atoi(s); err == nil {
		s += ".0"
	}
	return s
}
