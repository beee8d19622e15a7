// Package fastpath implements the exact single-multiply conversion tier
// (spec.md §4.3): when the decimal mantissa and the power of ten it scales
// by are both exactly representable in binary64, IEEE-754 guarantees that a
// single hardware multiply or divide already produces the correctly rounded
// result, so there is no need to fall through to Eisel-Lemire or the
// big-decimal path at all.
package fastpath

import (
	"math"

	"github.com/shogo82148/fastfloat/floatinfo"
	"github.com/shogo82148/fastfloat/internal/lexer"
)

// powersOfTen holds 10^0..10^22, the largest contiguous run of powers of
// ten exactly representable in a float64 mantissa.
var powersOfTen = [23]float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7,
	1e8, 1e9, 1e10, 1e11, 1e12, 1e13, 1e14, 1e15,
	1e16, 1e17, 1e18, 1e19, 1e20, 1e21, 1e22,
}

// TryDouble attempts the fast path for binary64. ok is false whenever the
// input falls outside the range IEEE-754 guarantees a single rounding for;
// the facade must then try Eisel-Lemire.
func TryDouble(n lexer.Number) (bits uint64, ok bool) {
	f, ok := tryFloat64(n, floatinfo.Double)
	if !ok {
		return 0, false
	}
	return math.Float64bits(f), true
}

// TryFloat attempts the fast path for binary32, narrowing the float64
// result to float32 with one round-to-nearest-even conversion.
func TryFloat(n lexer.Number) (bits uint32, ok bool) {
	f, ok := tryFloat64(n, floatinfo.Single)
	if !ok {
		return 0, false
	}
	return math.Float32bits(float32(f)), true
}

// tryFloat64 computes mantissa * 10^exponent (or / 10^-exponent) in float64
// with a single rounding, valid for any target whose fast-path bounds (info)
// are satisfied.
// The caller narrows the float64 result to the target precision itself,
// which for binary32/16 is a single additional correctly-rounded step.
func tryFloat64(n lexer.Number, info floatinfo.Info) (float64, bool) {
	if n.ManyDigits {
		return 0, false
	}
	if n.Mantissa > info.MaxMantissaFastPath {
		return 0, false
	}
	exp := int(n.Exponent)
	if exp < info.MinExponentFastPath || exp > info.MaxExponentFastPathDisguised {
		return 0, false
	}

	var f float64
	if exp <= info.MaxExponentFastPath {
		f = float64(n.Mantissa)
		if exp >= 0 {
			f *= powersOfTen[exp]
		} else {
			f /= powersOfTen[-exp]
		}
	} else {
		// Disguised fast path: shift the excess decimal digits into
		// the integer mantissa via a checked multiply before doing
		// the single float64 multiply.
		shift := exp - info.MaxExponentFastPath
		mantissa, overflow := checkedMulPow10(n.Mantissa, shift)
		if overflow || mantissa > info.MaxMantissaFastPath {
			return 0, false
		}
		f = float64(mantissa) * powersOfTen[info.MaxExponentFastPath]
	}

	if n.Negative {
		f = -f
	}
	return f, true
}

// checkedMulPow10 multiplies m by 10^shift, reporting overflow if the
// product would not fit in a uint64.
func checkedMulPow10(m uint64, shift int) (product uint64, overflow bool) {
	const maxUint64 = ^uint64(0)
	for i := 0; i < shift; i++ {
		if m > maxUint64/10 {
			return 0, true
		}
		m *= 10
	}
	return m, false
}

// TryFloat64Value is a convenience wrapper returning the float64 value
// directly, used by the facade for binary16, binary32 and binary64, which
// narrows it to the target format itself.
func TryFloat64Value(n lexer.Number, info floatinfo.Info) (float64, bool) {
	return tryFloat64(n, info)
}
