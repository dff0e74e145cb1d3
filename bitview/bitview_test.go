package bitview

import (
	"math"
	"testing"
)

type myFloat32 float32

func TestWidthAndLayout(t *testing.T) {
	if got := Width[float32](); got != 32 {
		t.Fatalf("Width[float32]=%d, want 32", got)
	}
	if got := Width[float64](); got != 64 {
		t.Fatalf("Width[float64]=%d, want 64", got)
	}
	if got := Width[myFloat32](); got != 32 {
		t.Fatalf("Width[myFloat32]=%d, want 32", got)
	}

	tests := []struct {
		name         string
		l            Layout
		expBits      uint
		mantBits     uint
		signMask     uint64
		expMask      uint64
		mantMask     uint64
		maxBiasedExp uint64
	}{
		{"binary32", LayoutOf[float32](), 8, 23, 0x80000000, 0x7F800000, 0x007FFFFF, 0xFF},
		{"binary64", LayoutOf[float64](), 11, 52, 0x8000000000000000, 0x7FF0000000000000, 0x000FFFFFFFFFFFFF, 0x7FF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.l.ExponentBits(); got != tt.expBits {
				t.Errorf("ExponentBits=%d, want %d", got, tt.expBits)
			}
			if got := tt.l.MantissaBits(); got != tt.mantBits {
				t.Errorf("MantissaBits=%d, want %d", got, tt.mantBits)
			}
			if got := tt.l.SignMask(); got != tt.signMask {
				t.Errorf("SignMask=%#x, want %#x", got, tt.signMask)
			}
			if got := tt.l.ExponentMask(); got != tt.expMask {
				t.Errorf("ExponentMask=%#x, want %#x", got, tt.expMask)
			}
			if got := tt.l.MantissaMask(); got != tt.mantMask {
				t.Errorf("MantissaMask=%#x, want %#x", got, tt.mantMask)
			}
			if got := tt.l.MaxBiasedExponent(); got != tt.maxBiasedExp {
				t.Errorf("MaxBiasedExponent=%#x, want %#x", got, tt.maxBiasedExp)
			}
			if 1+tt.l.ExponentBits()+tt.l.MantissaBits() != tt.l.Bits {
				t.Errorf("fields do not add up to %d bits", tt.l.Bits)
			}
		})
	}
}

func TestToBitsMatchesMath(t *testing.T) {
	for _, v := range []float64{0, 1, -1, 0.1, 2, math.Pi, 1e-300, math.MaxFloat64, math.Inf(1), math.Inf(-1)} {
		if got, want := ToBits(v), math.Float64bits(v); got != want {
			t.Fatalf("ToBits(%v)=%#x, want %#x", v, got, want)
		}
		if got := FromBits[float64](ToBits(v)); got != v {
			t.Fatalf("FromBits(ToBits(%v))=%v", v, got)
		}

		f := float32(v)
		if got, want := ToBits(f), uint64(math.Float32bits(f)); got != want {
			t.Fatalf("ToBits(float32 %v)=%#x, want %#x", f, got, want)
		}
		if got := FromBits[float32](ToBits(f)); got != f {
			t.Fatalf("FromBits(ToBits(float32 %v))=%v", f, got)
		}
	}

	if got := ToBits(myFloat32(1)); got != 0x3F800000 {
		t.Fatalf("ToBits(myFloat32(1))=%#x, want 0x3f800000", got)
	}
}

func TestFromBitsIgnoresHighBits(t *testing.T) {
	if got := FromBits[float32](0xFFFFFFFF_3F800000); got != 1 {
		t.Fatalf("FromBits[float32] with high garbage=%v, want 1", got)
	}
}

func TestNaNPayloadRoundTrip(t *testing.T) {
	const quiet64 = 0x7FF8000000000123
	if got := ToBits(FromBits[float64](quiet64)); got != quiet64 {
		t.Fatalf("float64 NaN payload changed: %#x -> %#x", uint64(quiet64), got)
	}

	const quiet32 = 0x7FC00123
	if got := ToBits(FromBits[float32](quiet32)); got != quiet32 {
		t.Fatalf("float32 NaN payload changed: %#x -> %#x", uint64(quiet32), got)
	}
}

func TestFields(t *testing.T) {
	tests := []struct {
		x        float64
		sign     bool
		exponent int
		mantissa uint64
	}{
		{1, false, 0, 0},
		{-2, true, 1, 0},
		{1.5, false, 0, 1 << 51},
		{0.375, false, -2, 1 << 51},
		{0, false, -1023, 0},
		{math.Copysign(0, -1), true, -1023, 0},
	}

	for _, tt := range tests {
		if got := Sign(tt.x); got != tt.sign {
			t.Errorf("Sign(%v)=%v, want %v", tt.x, got, tt.sign)
		}
		if got := Exponent(tt.x); got != tt.exponent {
			t.Errorf("Exponent(%v)=%d, want %d", tt.x, got, tt.exponent)
		}
		if got := Mantissa(tt.x); got != tt.mantissa {
			t.Errorf("Mantissa(%v)=%#x, want %#x", tt.x, got, tt.mantissa)
		}
		back := Compose[float64](Sign(tt.x), BiasedExponent(tt.x), Mantissa(tt.x))
		if ToBits(back) != ToBits(tt.x) {
			t.Errorf("Compose round trip of %v gave %v", tt.x, back)
		}
	}

	if got := Exponent(float32(8)); got != 3 {
		t.Fatalf("Exponent(float32 8)=%d, want 3", got)
	}
	if got := Compose[float32](true, 128, 1<<22); got != -3 {
		t.Fatalf("Compose[float32](-, 128, 1<<22)=%v, want -3", got)
	}
}

func TestClassification(t *testing.T) {
	nan := math.NaN()
	inf := math.Inf(1)

	if !IsNaN(nan) || IsNaN(inf) || IsNaN(1.0) {
		t.Fatal("IsNaN misclassifies float64 values")
	}
	if !IsNaN(float32(nan)) || IsNaN(float32(inf)) {
		t.Fatal("IsNaN misclassifies float32 values")
	}
	if !IsInf(inf, 1) || IsInf(inf, -1) || !IsInf(-inf, -1) || !IsInf(-inf, 0) || IsInf(nan, 0) {
		t.Fatal("IsInf misclassifies infinities")
	}
	if !IsInf(float32(-inf), -1) || IsInf(float32(math.MaxFloat32), 0) {
		t.Fatal("IsInf misclassifies float32 values")
	}
	if !IsFinite(math.MaxFloat64) || IsFinite(inf) || IsFinite(nan) || !IsFinite(float32(0)) {
		t.Fatal("IsFinite misclassifies values")
	}
}

func TestTrunc(t *testing.T) {
	inputs := []float64{0, 0.25, 0.999, 1, 1.5, 2.75, -2.75, 7.999999, 1e10 + 0.5, 1 << 53, -0.5, math.Inf(1)}
	for _, x := range inputs {
		want := math.Trunc(x)
		if got := Trunc(x); got != want || math.Signbit(got) != math.Signbit(want) {
			t.Errorf("Trunc(%v)=%v, want %v", x, got, want)
		}

		f := float32(x)
		want32 := float32(math.Trunc(float64(f)))
		if got := Trunc(f); got != want32 {
			t.Errorf("Trunc(float32 %v)=%v, want %v", f, got, want32)
		}
	}

	if got := Trunc(math.NaN()); !math.IsNaN(got) {
		t.Fatalf("Trunc(NaN)=%v, want NaN", got)
	}
}
