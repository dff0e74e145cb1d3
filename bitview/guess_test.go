package bitview

import (
	"math"
	"testing"
)

func TestSqrtBiasDerivation(t *testing.T) {
	for _, l := range []Layout{Binary32, Binary64} {
		quarter := uint64(1) << (l.MantissaDigits - 2)
		want := (l.ExpBias+1)*quarter - quarter
		if got := l.SqrtBias(); got != want {
			t.Fatalf("%d-bit SqrtBias=%#x, want %#x", l.Bits, got, want)
		}
	}

	if Binary32.SqrtBias() != SqrtBias32 || SqrtBias[float32]() != 0x1FC00000 {
		t.Fatalf("binary32 sqrt bias mismatch: %#x", Binary32.SqrtBias())
	}
	if Binary64.SqrtBias() != SqrtBias64 || SqrtBias[float64]() != 0x1FF8000000000000 {
		t.Fatalf("binary64 sqrt bias mismatch: %#x", Binary64.SqrtBias())
	}
}

func TestInvSqrtMagic(t *testing.T) {
	if got := InvSqrtMagic[float32](); got != 0x5f3759df {
		t.Fatalf("InvSqrtMagic[float32]=%#x, want 0x5f3759df", got)
	}
	if got := InvSqrtMagic[float64](); got != 0x5fe6eb3bd314e800 {
		t.Fatalf("InvSqrtMagic[float64]=%#x, want 0x5fe6eb3bd314e800", got)
	}
}

func TestSqrtGuess(t *testing.T) {
	exact := []struct {
		x, want float64
	}{
		{1, 1},
		{4, 2},
		{16, 4},
		{0.25, 0.5},
		{2, 1.5},
	}

	for _, tt := range exact {
		if got := SqrtGuess(tt.x); got != tt.want {
			t.Errorf("SqrtGuess(%v)=%v, want %v", tt.x, got, tt.want)
		}
		if got := SqrtGuess(float32(tt.x)); got != float32(tt.want) {
			t.Errorf("SqrtGuess(float32 %v)=%v, want %v", tt.x, got, tt.want)
		}
	}

	for i := 0; i <= 2000; i++ {
		x := math.Exp2(-10 + 20*float64(i)/2000)
		ref := math.Sqrt(x)

		if rel := math.Abs(SqrtGuess(x)-ref) / ref; rel > 0.0607 {
			t.Fatalf("SqrtGuess(%v) relative error %v > 0.0607", x, rel)
		}

		if rel := math.Abs(InvSqrtGuess(x)*ref - 1); rel > 0.035 {
			t.Fatalf("InvSqrtGuess(%v) relative error %v > 0.035", x, rel)
		}
	}
}
