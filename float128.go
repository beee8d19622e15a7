package fastfloat

import "github.com/shogo82148/int128"

// Float128 holds an IEEE 754 binary128 bit pattern split into high and low
// 64-bit halves (Hi carries the sign, the 15-bit exponent, and the top 48
// bits of the 112-bit significand; Lo carries the rest), the same split
// github.com/shogo82148/int128.Uint128 uses. Formatting Float128 back to
// text is out of scope (spec.md's Non-goals cover text formatting for
// every precision alike); Bits is the only conversion offered, for callers
// that want to hand the pattern to math/big or their own binary128
// arithmetic.
type Float128 struct {
	Hi, Lo uint64
}

// Bits returns f's 128-bit pattern as a Uint128, matching the layout
// int128.Uint128{H, L} already uses elsewhere in this module.
func (f Float128) Bits() int128.Uint128 {
	return int128.Uint128{H: f.Hi, L: f.Lo}
}

// IsInf reports whether f is positive or negative infinity.
func (f Float128) IsInf() bool {
	return f.Hi&0x7fff000000000000 == 0x7fff000000000000 && f.Hi&0x0000ffffffffffff == 0 && f.Lo == 0
}

// IsNaN reports whether f is NaN.
func (f Float128) IsNaN() bool {
	return f.Hi&0x7fff000000000000 == 0x7fff000000000000 && (f.Hi&0x0000ffffffffffff != 0 || f.Lo != 0)
}

// Signbit reports whether f is negative or negative zero.
func (f Float128) Signbit() bool {
	return f.Hi&0x8000000000000000 != 0
}

func assembleFloat128(mantissa int128.Uint128, power2 int32, negative bool) Float128 {
	hi := mantissa.H | uint64(power2)<<48
	if negative {
		hi |= 0x8000000000000000
	}
	return Float128{Hi: hi, Lo: mantissa.L}
}
