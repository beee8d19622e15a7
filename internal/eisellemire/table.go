package eisellemire

import "math/big"

// SmallestPowerOfFive and LargestPowerOfFive bound the q values the table
// below covers; they match binary64's smallest/largest power of ten (spec.md
// §4.4), which is wide enough for the narrower binary16/binary32 ranges too
// — one shared table serves all three Eisel-Lemire targets, exactly as
// fast_float's reference implementation does.
const (
	SmallestPowerOfFive = -342
	LargestPowerOfFive  = 308
)

// pow5Entry is a 128-bit approximation of 5^q, split into high and low
// 64-bit halves, normalized so the top bit of Hi is always set, plus the
// exact base-2 exponent E = floor(log2(5^q)) that normalization used. E
// lets the assemble step (eisellemire.go) compute the result's binary
// exponent exactly instead of through the fixed-point log2(10) estimate
// spec.md §4.4 describes as a fallback for when an exact E isn't at hand.
type pow5Entry struct {
	Hi, Lo uint64
	E      int32
}

var pow5Table [LargestPowerOfFive - SmallestPowerOfFive + 1]pow5Entry

// table is computed once, at package init, by exact arbitrary-precision
// arithmetic (math/big) rather than hand-transcribed as ~650 128-bit
// literals: five_to_the_q for a 650-wide exponent range is easy to get
// exactly right this way and impossible to safely retype by hand. The
// result is immutable after init and read-only for the lifetime of the
// program, matching spec.md §5's "read-only data, safe for concurrent
// read" requirement even though it is not a compiled-in literal table.
func init() {
	for q := SmallestPowerOfFive; q <= LargestPowerOfFive; q++ {
		hi, lo, e := computePow5(q)
		pow5Table[q-SmallestPowerOfFive] = pow5Entry{Hi: hi, Lo: lo, E: int32(e)}
	}
}

// pow5 returns the table entry for 5^q. q must be within
// [SmallestPowerOfFive, LargestPowerOfFive].
func pow5(q int) pow5Entry {
	return pow5Table[q-SmallestPowerOfFive]
}

// computePow5 returns floor(5^q * 2^(127-e)) split into (hi, lo), where e =
// floor(log2(5^q)) is chosen so the 128-bit result's top bit is set (i.e.
// the result lies in [2^127, 2^128)). For q < 0, 5^q is the exact rational
// 1/5^(-q).
func computePow5(q int) (hi, lo uint64, e int) {
	five := big.NewInt(5)
	pow := new(big.Int).Exp(five, big.NewInt(int64(abs(q))), nil)

	var num, den big.Int
	if q >= 0 {
		num.Set(pow)
		den.SetInt64(1)
	} else {
		num.SetInt64(1)
		den.Set(pow)
	}

	// Initial guess at the shift that normalizes num/den into 128 bits;
	// corrected below by exact comparison since BitLen()-based estimates
	// can be off by one.
	shift := 127 - (num.BitLen() - den.BitLen())

	var scaled, rem big.Int
	for {
		if shift >= 0 {
			scaled.Lsh(&num, uint(shift))
			scaled.QuoRem(&scaled, &den, &rem)
		} else {
			var shiftedDen big.Int
			shiftedDen.Lsh(&den, uint(-shift))
			scaled.QuoRem(&num, &shiftedDen, &rem)
		}
		switch {
		case scaled.BitLen() > 128:
			shift--
		case scaled.BitLen() < 128:
			shift++
		default:
			hiBig := new(big.Int).Rsh(&scaled, 64)
			loBig := new(big.Int).Sub(&scaled, new(big.Int).Lsh(hiBig, 64))
			return hiBig.Uint64(), loBig.Uint64(), 127 - shift
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
