package bignum

import (
	"github.com/shogo82148/fastfloat/floatinfo"
	"github.com/shogo82148/int128"
)

// RoundedInteger128 is RoundedInteger widened to 128 bits, for binary128's
// 113-bit (hidden + 112 explicit) mantissa, which a uint64 cannot hold.
func (d *Decimal) RoundedInteger128() int128.Uint128 {
	if d.DecimalPoint > 39 {
		return int128.Uint128{H: ^uint64(0), L: ^uint64(0)}
	}
	ten := int128.Uint128{L: 10}
	var n int128.Uint128
	i := 0
	for ; i < d.DecimalPoint && i < d.NumDigits; i++ {
		n = n.Mul(ten).Add(int128.Uint128{L: uint64(d.Digits[i])})
	}
	for ; i < d.DecimalPoint; i++ {
		n = n.Mul(ten)
	}
	if d.roundsUp() {
		n = n.Add(int128.Uint128{L: 1})
	}
	return n
}

// ToBinary128 is ToBinary for binary128: the only format whose 112 explicit
// mantissa bits do not fit a uint64, so it is carried as a
// github.com/shogo82148/int128.Uint128 pair instead. The normalization loop
// that locates the leading bit is identical to ToBinary's (it operates on
// the decimal digit array, not on the mantissa width); only the final
// integer readout and carry/overflow arithmetic need the wider type.
func ToBinary128(d *Decimal, info floatinfo.Info) (mantissa int128.Uint128, power2 int32, overflow bool) {
	if d.NumDigits == 0 {
		return int128.Uint128{}, 0, false
	}
	if d.DecimalPoint < -4970 {
		return int128.Uint128{}, 0, false
	}
	if d.DecimalPoint > 4933 {
		return int128.Uint128{}, int32(info.InfinitePower), true
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
	mantissa = d.RoundedInteger128()

	// 2^113, the boundary a correctly-rounded mantissa must stay under.
	topBit := int128.Uint128{H: uint64(1) << 49, L: 0}

	if subnormalShift == 0 {
		power2 = int32(exp - info.MinimumExponent)
		if mantissa.Cmp(topBit) >= 0 {
			mantissa = mantissa.Rsh(1)
			power2++
		}
	} else {
		power2 = 0
		if mantissa.Cmp(int128.Uint128{H: uint64(1) << 48}) >= 0 {
			power2 = 1
		}
	}

	if int(power2) >= info.InfinitePower {
		return int128.Uint128{}, int32(info.InfinitePower), true
	}

	mantissa.H &^= uint64(1) << 48
	return mantissa, power2, false
}
