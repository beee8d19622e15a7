package bignum

import "github.com/shogo82148/fastfloat/floatinfo"

// ToBinary converts d to the nearest representable value of the format
// described by info, rounding to nearest with ties to even. The returned
// mantissa holds only the explicit bits (the hidden bit is implied and
// already cleared); power2 is the format's biased exponent. overflow is
// true when the magnitude is too large to represent even as infinity's
// neighbor — callers should report +/-Inf in that case using power2.
//
// The algorithm normalizes d one bit at a time until its leading digit
// represents a value in [1, 2), counting the bits shifted to recover the
// true binary exponent, then shifts MantissaExplicitBits further (fewer,
// if the result would be subnormal) and reads off the rounded integer
// mantissa. It is the arithmetic heart of spec.md §4.5, generalized across
// binary16/32/64/128 by taking info instead of one format's constants.
func ToBinary(d *Decimal, info floatinfo.Info) (mantissa uint64, power2 int32, overflow bool) {
	if d.NumDigits == 0 {
		return 0, 0, false
	}

	// A decimal this small underflows to zero well before its exact
	// binary exponent could be computed bit by bit; this large a
	// decimal overflows to infinity just as unconditionally. The
	// bounds are generous relative to any supported format's range.
	if d.DecimalPoint < -4970 {
		return 0, 0, false
	}
	if d.DecimalPoint > 4933 {
		return 0, int32(info.InfinitePower), true
	}

	exp := 0
	for !(d.DecimalPoint == 1 && d.Digits[0] == 1) {
		if d.DecimalPoint > 1 || (d.DecimalPoint == 1 && d.Digits[0] >= 2) {
			d.halve()
			exp++
		} else {
			d.double()
			exp--
		}
	}

	subnormalShift := 0
	if exp < info.MinimumExponent+1 {
		subnormalShift = (info.MinimumExponent + 1) - exp
	}

	shift := info.MantissaExplicitBits - subnormalShift
	d.Shift(shift)
	mantissa = d.RoundedInteger()

	if subnormalShift == 0 {
		power2 = int32(exp - info.MinimumExponent)
		if mantissa >= uint64(1)<<uint(info.MantissaExplicitBits+1) {
			mantissa >>= 1
			power2++
		}
	} else {
		power2 = 0
		if mantissa >= uint64(1)<<uint(info.MantissaExplicitBits) {
			power2 = 1
		}
	}

	if int(power2) >= info.InfinitePower {
		return 0, int32(info.InfinitePower), true
	}

	mantissa &^= uint64(1) << uint(info.MantissaExplicitBits)
	return mantissa, power2, false
}
