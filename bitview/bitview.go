// Package bitview reinterprets IEEE-754 binary floating-point values as raw
// bit patterns and back, and exposes the sign, exponent and mantissa fields.
//
// Every function is generic over [Float] and reduces to register moves plus
// integer shifts and masks, so results are a pure function of the input bits.
// Bit patterns are carried as uint64 for both widths; for float32 only the low
// 32 bits are meaningful and [FromBits] ignores the rest.
//
// NaN payloads survive a ToBits/FromBits round trip of the same width
// unchanged. Which payload a NaN produced by arithmetic carries is left to the
// platform.
package bitview

import (
	"math"
	"unsafe"
)

// Float is the set of binary floating-point types with a native IEEE-754 layout.
type Float interface {
	~float32 | ~float64
}

// Layout describes how a binary floating-point format splits its storage into
// one sign bit, an exponent field and a stored mantissa field.
type Layout struct {
	Bits           uint   // total storage width W
	MantissaDigits uint   // significand precision including the implicit leading bit
	ExpBias        uint64 // exponent bias
}

var (
	// Binary32 is the IEEE-754 single precision layout.
	Binary32 = Layout{Bits: 32, MantissaDigits: 24, ExpBias: 127}

	// Binary64 is the IEEE-754 double precision layout.
	Binary64 = Layout{Bits: 64, MantissaDigits: 53, ExpBias: 1023}
)

// MantissaBits returns the width of the stored mantissa field.
func (l Layout) MantissaBits() uint { return l.MantissaDigits - 1 }

// ExponentBits returns the width of the exponent field.
func (l Layout) ExponentBits() uint { return l.Bits - l.MantissaDigits }

// SignMask selects the sign bit.
func (l Layout) SignMask() uint64 { return uint64(1) << (l.Bits - 1) }

// ExponentMask selects the exponent field in place.
func (l Layout) ExponentMask() uint64 {
	return (uint64(1)<<l.ExponentBits() - 1) << l.MantissaBits()
}

// MantissaMask selects the stored mantissa field.
func (l Layout) MantissaMask() uint64 { return uint64(1)<<l.MantissaBits() - 1 }

// MaxBiasedExponent is the all-ones exponent reserved for infinities and NaNs.
func (l Layout) MaxBiasedExponent() uint64 { return uint64(1)<<l.ExponentBits() - 1 }

// Width returns the storage width of F in bits (32 or 64).
func Width[F Float]() int {
	var zero F
	return int(unsafe.Sizeof(zero)) * 8
}

// LayoutOf returns the field layout of F.
func LayoutOf[F Float]() Layout {
	if Width[F]() == 32 {
		return Binary32
	}
	return Binary64
}

// ToBits returns the raw bit pattern of x, zero-extended to 64 bits.
func ToBits[F Float](x F) uint64 {
	if Width[F]() == 32 {
		return uint64(math.Float32bits(float32(x)))
	}
	return math.Float64bits(float64(x))
}

// FromBits returns the value of F whose bit pattern is the low Width[F] bits of b.
func FromBits[F Float](b uint64) F {
	if Width[F]() == 32 {
		return F(math.Float32frombits(uint32(b)))
	}
	return F(math.Float64frombits(b))
}

// Sign reports whether the sign bit of x is set. It is true for -0 and for
// NaNs with the sign bit set.
func Sign[F Float](x F) bool {
	return ToBits(x)&LayoutOf[F]().SignMask() != 0
}

// BiasedExponent returns the raw exponent field of x.
func BiasedExponent[F Float](x F) uint64 {
	l := LayoutOf[F]()
	return (ToBits(x) & l.ExponentMask()) >> l.MantissaBits()
}

// Exponent returns the unbiased exponent of x. Zeros and subnormals report
// -ExpBias, infinities and NaNs report ExpBias+1.
func Exponent[F Float](x F) int {
	return int(BiasedExponent(x)) - int(LayoutOf[F]().ExpBias)
}

// Mantissa returns the stored mantissa field of x, without the implicit bit.
func Mantissa[F Float](x F) uint64 {
	return ToBits(x) & LayoutOf[F]().MantissaMask()
}

// Compose builds a value of F from its three fields. Bits outside each field's
// width are discarded.
func Compose[F Float](sign bool, biasedExp, mantissa uint64) F {
	l := LayoutOf[F]()

	b := (biasedExp<<l.MantissaBits())&l.ExponentMask() | mantissa&l.MantissaMask()
	if sign {
		b |= l.SignMask()
	}

	return FromBits[F](b)
}

// IsNaN reports whether x is a NaN.
func IsNaN[F Float](x F) bool {
	return BiasedExponent(x) == LayoutOf[F]().MaxBiasedExponent() && Mantissa(x) != 0
}

// IsInf reports whether x is an infinity of the given sign: sign > 0 matches
// +Inf, sign < 0 matches -Inf and sign == 0 matches either.
func IsInf[F Float](x F, sign int) bool {
	if BiasedExponent(x) != LayoutOf[F]().MaxBiasedExponent() || Mantissa(x) != 0 {
		return false
	}

	neg := Sign(x)

	return sign == 0 || (sign > 0 && !neg) || (sign < 0 && neg)
}

// IsFinite reports whether x is neither infinite nor NaN.
func IsFinite[F Float](x F) bool {
	return BiasedExponent(x) != LayoutOf[F]().MaxBiasedExponent()
}

// Trunc rounds x toward zero by clearing its fraction bits. Integral values,
// infinities and NaNs are returned unchanged; |x| < 1 yields a zero with the
// sign of x.
func Trunc[F Float](x F) F {
	l := LayoutOf[F]()

	e := Exponent(x)
	if e >= int(l.MantissaBits()) {
		return x
	}

	if e < 0 {
		return FromBits[F](ToBits(x) & l.SignMask())
	}

	return FromBits[F](ToBits(x) &^ (l.MantissaMask() >> uint(e)))
}
