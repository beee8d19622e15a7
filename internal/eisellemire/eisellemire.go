// Package eisellemire implements the second conversion tier of spec.md §4.4:
// an approximate but almost-always-sufficient 128-bit multiplication against
// a precomputed power-of-five table, falling back to "declined" whenever the
// approximation cannot prove its own correctness. It is never asked to
// handle binary128 (see Compute's doc comment) since the big-decimal tier
// alone carries that format.
package eisellemire

import (
	"math/bits"

	"github.com/shogo82148/fastfloat/floatinfo"
)

// BiasedFp is the shared intermediate result of the approximate and exact
// conversion tiers: an explicit-bits-only mantissa (the hidden bit is
// implied, not stored) and the binary format's biased exponent.
type BiasedFp struct {
	Mantissa uint64
	Power2   int32
}

// Compute attempts the Eisel-Lemire approximation for the decimal value
// mantissa * 10^exp10 against info. ok is false whenever the 128-bit
// approximation cannot rule out a rounding error on its own (the input sits
// exactly, or suspiciously close to, a representable-value boundary); the
// caller must then fall back to the big-decimal tier. Compute is not used
// for binary128: info.MantissaExplicitBits=112 leaves no slack in a 64-bit
// mantissa word for the "+3" guard bits the approximation relies on, so the
// facade routes binary128 straight to the big-decimal tier instead.
func Compute(mantissa uint64, exp10 int32, info floatinfo.Info) (fp BiasedFp, ok bool) {
	q := int(exp10)

	if mantissa == 0 || q < SmallestPowerOfFive {
		return BiasedFp{Mantissa: 0, Power2: 0}, true
	}
	if q > LargestPowerOfFive {
		return BiasedFp{Mantissa: 0, Power2: int32(info.InfinitePower)}, true
	}

	lz := bits.LeadingZeros64(mantissa)
	w := mantissa << uint(lz)

	entry := pow5(q)
	hi, lo := bits.Mul64(w, entry.Hi)

	// If the bits of the high word below the mantissa and round bits are
	// all set, a carry out of the lower-order product could still reach
	// them: fold the high word of the second product into lo for more
	// precision before deciding anything.
	precision := info.MantissaExplicitBits + 3
	mask := ^uint64(0) >> uint(precision)
	if hi&mask == mask {
		hi2, _ := bits.Mul64(w, entry.Lo)
		newLo := lo + hi2
		if newLo < lo {
			hi++
		}
		lo = newLo
	}

	// Even after the refinement, the bits straddling the rounding
	// boundary may still be fully ambiguous. Outside the safe exponent
	// window fast_float's analysis guarantees, decline rather than guess.
	if lo == ^uint64(0) && (q < -27 || q > 55) {
		return BiasedFp{}, false
	}

	upperBit := int(hi >> 63)
	shift := upperBit + 64 - info.MantissaExplicitBits - 3
	mant := hi >> uint(shift)

	// power2 is the biased binary exponent of w*5^q*2^(q-lz),
	// computed exactly from the table's own e=floor(log2(5^q)) rather
	// than through a floating-point log2(10) estimate: since q is an
	// integer, floor(q*log2(5)) + q == floor(q*log2(10)) exactly, so
	// entry.E + q already equals that term with no approximation error.
	power2 := 63 + upperBit + int(entry.E) + q - lz - info.MinimumExponent

	if power2 <= 0 {
		extraShift := 2 - power2
		if extraShift >= 64 {
			return BiasedFp{Mantissa: 0, Power2: 0}, true
		}
		sticky := lo != 0 || (mant&((uint64(1)<<uint(extraShift-1))-1)) != 0
		roundBit := (mant >> uint(extraShift-1)) & 1
		mant >>= uint(extraShift)
		if roundBit == 1 && (sticky || mant&1 == 1) {
			mant++
		}
		power2 = 0
		if mant >= uint64(1)<<uint(info.MantissaExplicitBits) {
			// Rounded up across the subnormal/normal boundary.
			power2 = 1
		}
		return BiasedFp{Mantissa: mant &^ (uint64(1) << uint(info.MantissaExplicitBits)), Power2: int32(power2)}, true
	}

	// Standard path: mant currently holds explicitBits+2 bits: the hidden
	// bit, the explicit bits and one trailing round bit. The sticky test
	// below looks at lo only; the bits of hi below the round bit are not
	// consulted.
	//
	// For q < 0 the table entry is truncated, so the product sits just
	// below the true value and an exact halfway case shows up as a clear
	// round bit, every lower bit of hi set and lo within 2 of wrapping.
	// Inside the round-to-even window that pattern is declined as well.
	lowMask := uint64(1)<<uint(shift) - 1
	if q < 0 && q >= info.MinExponentRoundToEven && mant&1 == 0 && hi&lowMask == lowMask && lo >= ^uint64(0)-1 {
		return BiasedFp{}, false
	}
	roundBit := mant & 1
	mant >>= 1
	sticky := lo != 0
	if roundBit == 1 {
		if !sticky && q >= info.MinExponentRoundToEven && q <= info.MaxExponentRoundToEven {
			// Exactly halfway as far as this approximation can tell,
			// inside the window where that can be a genuine tie rather
			// than an artifact of truncation: only the exact decimal
			// value can settle it.
			return BiasedFp{}, false
		}
		// Outside that window, or with any sticky bit set, the 128-bit
		// product's own error bound guarantees the true value sits
		// strictly above the half-ULP boundary: the round-up is
		// unconditional here, not re-gated on parity or stickiness.
		mant++
	}

	if mant >= uint64(1)<<uint(info.MantissaExplicitBits+1) {
		mant >>= 1
		power2++
	}

	if power2 >= info.InfinitePower {
		return BiasedFp{Mantissa: 0, Power2: int32(info.InfinitePower)}, true
	}

	return BiasedFp{Mantissa: mant &^ (uint64(1) << uint(info.MantissaExplicitBits)), Power2: int32(power2)}, true
}
