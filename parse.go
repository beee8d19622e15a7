// Package fastfloat parses decimal and hexadecimal floating-point literals
// into correctly-rounded IEEE 754 binary16, binary32, binary64 and
// binary128 values.
//
// Parsing runs a three-tier pipeline (spec.md §2): an exact fast path for
// the common case where a single hardware multiply is already correctly
// rounded, the Eisel-Lemire 128-bit approximation for almost everything
// else, and an arbitrary-precision big-decimal conversion as the tier of
// last resort. Callers never see which tier produced a result; they only
// ever see the correctly-rounded value or a *NumError.
package fastfloat

import (
	"math"

	"github.com/shogo82148/fastfloat/float16"
	"github.com/shogo82148/fastfloat/floatinfo"
	"github.com/shogo82148/fastfloat/internal/bignum"
	"github.com/shogo82148/fastfloat/internal/eisellemire"
	"github.com/shogo82148/fastfloat/internal/fastpath"
	"github.com/shogo82148/fastfloat/internal/hexfloat"
	"github.com/shogo82148/fastfloat/internal/lexer"
	"github.com/shogo82148/int128"
)

// ParseFloat64 parses s as an IEEE 754 binary64 value.
func ParseFloat64(s string) (float64, error) {
	mantissa, power2, negative, err := parse64(s, floatinfo.Double)
	if err != nil {
		return 0, numErr("ParseFloat64", s, err)
	}
	bits := assembleBits(mantissa, power2, negative, floatinfo.Double)
	return math.Float64frombits(bits), nil
}

// ParseFloat32 parses s as an IEEE 754 binary32 value.
func ParseFloat32(s string) (float32, error) {
	mantissa, power2, negative, err := parse64(s, floatinfo.Single)
	if err != nil {
		return 0, numErr("ParseFloat32", s, err)
	}
	bits := uint32(assembleBits(mantissa, power2, negative, floatinfo.Single))
	return math.Float32frombits(bits), nil
}

// ParseFloat16 parses s as an IEEE 754 binary16 value.
func ParseFloat16(s string) (float16.Float16, error) {
	mantissa, power2, negative, err := parse64(s, floatinfo.Half)
	if err != nil {
		return 0, numErr("ParseFloat16", s, err)
	}
	bits := uint16(assembleBits(mantissa, power2, negative, floatinfo.Half))
	return float16.Float16frombits(bits), nil
}

// ParseFloat128 parses s as an IEEE 754 binary128 value. Eisel-Lemire is
// never used for this precision (floatinfo.Quad's doc comment explains
// why); decimal input goes straight to the big-decimal tier and hex-float
// input to the hex path, both exact by construction regardless of speed.
func ParseFloat128(s string) (Float128, error) {
	negative, rest, special, err := parsePrelude(s)
	if err != nil {
		return Float128{}, numErr("ParseFloat128", s, err)
	}
	if special != nil {
		if special.mantissa == 0 {
			return assembleFloat128(int128.Uint128{}, int32(floatinfo.Quad.InfinitePower), negative), nil
		}
		nanMantissa := int128.Uint128{H: uint64(1) << uint(floatinfo.Quad.MantissaExplicitBits-1-64), L: 0}
		return assembleFloat128(nanMantissa, int32(floatinfo.Quad.InfinitePower), negative), nil
	}

	if lexer.IsHexPrefix(rest) {
		m, p, _, herr := hexfloat.Parse128(rest, floatinfo.Quad)
		if herr != nil {
			return Float128{}, numErr("ParseFloat128", s, herr)
		}
		return assembleFloat128(m, p, negative), nil
	}

	d, derr := bignum.Parse(rest)
	if derr != nil {
		return Float128{}, numErr("ParseFloat128", s, derr)
	}
	mantissa, power2, _ := bignum.ToBinary128(d, floatinfo.Quad)
	return assembleFloat128(mantissa, power2, negative), nil
}

// specialValue is the mantissa/power2 pair for infinities and the module's
// one canonical quiet NaN (spec.md's Open Questions resolve sNaN payloads
// and signed NaN as out of scope: every NaN this package ever produces is
// the same bit pattern, sign following the literal's own sign if present).
type specialValue struct {
	mantissa uint64
	power2   int32
}

// parsePrelude strips the sign and recognizes empty input and the
// "inf"/"infinity"/"nan" literals, shared by every ParseFloat* entry point.
// special.mantissa is 0 for infinities and 1 (a sentinel, not a bit
// pattern) for NaN; callers translate it into their own format's
// canonical quiet-NaN mantissa.
func parsePrelude(s string) (negative bool, rest []byte, special *specialValue, err error) {
	b := []byte(s)
	if len(b) == 0 {
		return false, nil, nil, ErrEmpty
	}
	negative, rest = lexer.StripSign(b)
	if len(rest) == 0 {
		return negative, rest, nil, ErrInvalid
	}
	if isInf, isNaN, ok := lexer.Special(rest); ok {
		switch {
		case isInf:
			return negative, rest, &specialValue{mantissa: 0}, nil
		case isNaN:
			return negative, rest, &specialValue{mantissa: 1}, nil
		}
	}
	return negative, rest, nil, nil
}

// parse64 runs the three-tier pipeline for any format whose explicit
// mantissa bits fit in a uint64 (binary16, binary32, binary64).
func parse64(s string, info floatinfo.Info) (mantissa uint64, power2 int32, negative bool, err error) {
	negative, rest, special, perr := parsePrelude(s)
	if perr != nil {
		return 0, 0, negative, perr
	}
	if special != nil {
		if special.mantissa == 0 {
			return 0, int32(info.InfinitePower), negative, nil
		}
		return uint64(1) << uint(info.MantissaExplicitBits-1), int32(info.InfinitePower), negative, nil
	}

	if lexer.IsHexPrefix(rest) {
		m, p, _, herr := hexfloat.Parse(rest, info)
		if herr != nil {
			return 0, 0, negative, herr
		}
		return m, p, negative, nil
	}

	n, terr := lexer.ParseDecimal(rest, negative)
	if terr != nil {
		return 0, 0, negative, terr
	}

	if f, ok := fastpath.TryFloat64Value(n, info); ok {
		m, p := splitExactFloat64(f, info)
		return m, p, negative, nil
	}

	fp, ok := eisellemire.Compute(n.Mantissa, n.Exponent, info)
	if ok {
		if !n.ManyDigits {
			return fp.Mantissa, fp.Power2, negative, nil
		}
		// The mantissa was truncated to its 19 leading digits; confirm the
		// decision is insensitive to what was dropped by retrying with the
		// mantissa nudged up by one and requiring agreement (spec.md
		// §4.4's robustness guard).
		fp2, ok2 := eisellemire.Compute(n.Mantissa+1, n.Exponent, info)
		if ok2 && fp2 == fp {
			return fp.Mantissa, fp.Power2, negative, nil
		}
	}

	d, derr := bignum.Parse(rest)
	if derr != nil {
		return 0, 0, negative, derr
	}
	m, p, _ := bignum.ToBinary(d, info)
	return m, p, negative, nil
}

// splitExactFloat64 rounds f, the fast path's float64 result, to info's
// format (binary32 through a float32 conversion, binary16 through
// float16.FromFloat64, both round-to-nearest-even; binary64 needs no
// rounding) and decomposes the rounded value into info's mantissa/power2
// pair. A value that rounds to infinity returns InfinitePower.
func splitExactFloat64(f float64, info floatinfo.Info) (mantissa uint64, power2 int32) {
	switch info.MantissaExplicitBits {
	case floatinfo.Half.MantissaExplicitBits:
		f = float16.FromFloat64(f).Float64()
	case floatinfo.Single.MantissaExplicitBits:
		f = float64(float32(f))
	}
	bits := math.Float64bits(f)
	exp64 := int32(bits>>52) & 0x7ff
	frac64 := bits & (1<<52 - 1)
	if exp64 == 0 && frac64 == 0 {
		return 0, 0
	}
	trueExp := exp64 - 1023
	mantissa = frac64 >> uint(52-info.MantissaExplicitBits)
	power2 = trueExp - int32(info.MinimumExponent)
	if power2 >= int32(info.InfinitePower) {
		return 0, int32(info.InfinitePower)
	}
	return mantissa, power2
}

func assembleBits(mantissa uint64, power2 int32, negative bool, info floatinfo.Info) uint64 {
	bits := mantissa | uint64(power2)<<uint(info.MantissaExplicitBits)
	if negative {
		bits |= uint64(1) << uint(info.SignIndex())
	}
	return bits
}
