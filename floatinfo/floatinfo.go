// Package floatinfo holds the compile-time constants that parameterize the
// decimal-to-binary conversion pipeline for each IEEE 754 binary format the
// module supports (16, 32, 64 and 128 bits).
//
// Every value here is derived once, by hand, from the format's bit layout;
// nothing is computed at init time so the inner loops of the fast path and
// Eisel-Lemire tiers can treat them as constants.
package floatinfo

// Info describes one IEEE 754 binary format.
type Info struct {
	// Name is the format's conventional name, used only in error messages
	// and benchmarks.
	Name string

	// MantissaExplicitBits is the number of explicitly stored mantissa
	// bits (i.e. excluding the implicit leading 1 of a normal number).
	MantissaExplicitBits int

	// ExponentBits is the width of the biased exponent field.
	ExponentBits int

	// Bias is added to the true binary exponent to produce the stored,
	// biased exponent.
	Bias int

	// MinimumExponent is the true (unbiased) exponent of the smallest
	// normal value, i.e. -Bias+1, restated as -Bias since Eisel-Lemire's
	// power2 computation already accounts for the +1.
	MinimumExponent int

	// InfinitePower is the biased exponent value reserved for
	// infinities and NaNs (all-ones in the exponent field).
	InfinitePower int

	// MinExponentRoundToEven and MaxExponentRoundToEven bound the range
	// of decimal exponents q for which Eisel-Lemire must worry about
	// exact halfway cases.
	MinExponentRoundToEven int
	MaxExponentRoundToEven int

	// MinExponentFastPath and MaxExponentFastPath bound the decimal
	// exponents for which mantissa * 10^e (or mantissa / 10^-e) is
	// exactly representable using the fast path's multiply table.
	MinExponentFastPath int
	MaxExponentFastPath int

	// MaxExponentFastPathDisguised extends MaxExponentFastPath for the
	// "disguised" case, where excess decimal digits are absorbed into
	// the integer mantissa before the final multiply.
	MaxExponentFastPathDisguised int

	// MaxMantissaFastPath is the largest mantissa for which the fast
	// path's single multiply/divide is guaranteed exact.
	MaxMantissaFastPath uint64

	// SmallestPowerOfTen is the decimal exponent below which the value
	// is unconditionally zero (half of the smallest subnormal or
	// smaller).
	SmallestPowerOfTen int

	// LargestPowerOfTen is the decimal exponent above which the value
	// unconditionally overflows to infinity.
	LargestPowerOfTen int
}

// SignIndex is the bit position of the sign bit: MantissaExplicitBits +
// ExponentBits.
func (info Info) SignIndex() int {
	return info.MantissaExplicitBits + info.ExponentBits
}

// Half describes IEEE 754 binary16.
var Half = Info{
	Name:                         "float16",
	MantissaExplicitBits:         10,
	ExponentBits:                 5,
	Bias:                         15,
	MinimumExponent:              -15,
	InfinitePower:                31,
	MinExponentRoundToEven:       -22,
	MaxExponentRoundToEven:       5,
	MinExponentFastPath:          -4,
	MaxExponentFastPath:          4,
	MaxExponentFastPathDisguised: 8,
	MaxMantissaFastPath:          1 << (10 + 1),
	SmallestPowerOfTen:           -27,
	LargestPowerOfTen:            9,
}

// Single describes IEEE 754 binary32.
var Single = Info{
	Name:                         "float32",
	MantissaExplicitBits:         23,
	ExponentBits:                 8,
	Bias:                         127,
	MinimumExponent:              -127,
	InfinitePower:                255,
	MinExponentRoundToEven:       -17,
	MaxExponentRoundToEven:       10,
	MinExponentFastPath:          -10,
	MaxExponentFastPath:          10,
	MaxExponentFastPathDisguised: 17,
	MaxMantissaFastPath:          1 << (23 + 1),
	SmallestPowerOfTen:           -65,
	LargestPowerOfTen:            38,
}

// Double describes IEEE 754 binary64.
var Double = Info{
	Name:                         "float64",
	MantissaExplicitBits:         52,
	ExponentBits:                 11,
	Bias:                         1023,
	MinimumExponent:              -1023,
	InfinitePower:                2047,
	MinExponentRoundToEven:       -4,
	MaxExponentRoundToEven:       23,
	MinExponentFastPath:          -22,
	MaxExponentFastPath:          22,
	MaxExponentFastPathDisguised: 37,
	MaxMantissaFastPath:          1 << (52 + 1),
	SmallestPowerOfTen:           -342,
	LargestPowerOfTen:            308,
}

// Quad describes IEEE 754 binary128. Neither Eisel-Lemire (see package
// eisellemire's doc comment) nor the fast path is used for this format;
// only MantissaExplicitBits, MinimumExponent and InfinitePower are
// consulted, by the hex-float path and the big-decimal fallback.
var Quad = Info{
	Name:                         "float128",
	MantissaExplicitBits:         112,
	ExponentBits:                 15,
	Bias:                         16383,
	MinimumExponent:              -16383,
	InfinitePower:                32767,
	MinExponentFastPath:          -55,
	MaxExponentFastPath:          27,
	MaxExponentFastPathDisguised: 48,
	SmallestPowerOfTen:           -4966,
	LargestPowerOfTen:            4932,
}
