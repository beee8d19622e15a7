// Package hexfloat implements the hexadecimal floating-point literal path
// of spec.md §4.7: "0x" + hex digits (optionally with a single '.') +
// a required binary exponent introduced by 'p' or 'P'. Because every hex
// digit maps onto exactly four mantissa bits, the conversion assembles the
// result directly from the bit pattern instead of going through any of the
// decimal tiers — there is no approximation step to decline here, only
// rounding the excess low bits to nearest-even once the leading 1 bit and
// the requested precision's bit budget are known.
package hexfloat

import (
	"github.com/shogo82148/fastfloat/floatinfo"
	"github.com/shogo82148/fastfloat/internal/lexer"
)

// Parse converts the hex-float literal s (which must begin with "0x" or
// "0X", sign already stripped by the caller) into info's binary format.
// mantissa holds info.MantissaExplicitBits explicit bits with the hidden
// bit cleared; power2 is the biased exponent. overflow reports that the
// magnitude rounds to infinity.
func Parse(s []byte, info floatinfo.Info) (mantissa uint64, power2 int32, overflow bool, err error) {
	if !lexer.IsHexPrefix(s) {
		return 0, 0, false, lexer.ErrInvalid
	}
	body := s[2:]

	pIdx := -1
	for i := 0; i < len(body); i++ {
		if body[i] == 'p' || body[i] == 'P' {
			pIdx = i
			break
		}
	}
	if pIdx == -1 {
		return 0, 0, false, lexer.ErrInvalid
	}
	mantPart := body[:pIdx]
	expPart := body[pIdx+1:]

	if !lexer.UnderscoreOK(s) {
		return 0, 0, false, lexer.ErrInvalid
	}

	intDigits, fracDigits, err := scanMantissaShape(mantPart)
	if err != nil {
		return 0, 0, false, err
	}
	totalIntBits := intDigits * 4
	_ = fracDigits

	haveLeading := false
	var mant uint64
	haveBits := 0
	sticky := false
	var lead int
	weight := totalIntBits
	sawDot := false
	for i := 0; i < len(mantPart); i++ {
		c := mantPart[i]
		switch {
		case c == '_':
			continue
		case c == '.':
			sawDot = true
			continue
		}
		_ = sawDot
		v := hexVal(c)
		for bit := 3; bit >= 0; bit-- {
			weight--
			b := (v >> uint(bit)) & 1
			if !haveLeading {
				if b == 0 {
					continue
				}
				haveLeading = true
				lead = weight
			}
			if haveBits < 64 {
				mant = mant<<1 | uint64(b)
				haveBits++
			} else if b != 0 {
				sticky = true
			}
		}
	}
	if !haveLeading {
		return 0, 0, false, nil
	}

	pExp, err := parseBinaryExponent(expPart)
	if err != nil {
		return 0, 0, false, err
	}

	trueExp := lead + pExp
	explicitBits := info.MantissaExplicitBits

	subnormalShift := 0
	if trueExp < info.MinimumExponent+1 {
		subnormalShift = (info.MinimumExponent + 1) - trueExp
	}
	keep := explicitBits + 1 - subnormalShift
	if keep <= 0 {
		return 0, 0, false, nil
	}

	switch {
	case haveBits > keep:
		dropped := uint(haveBits - keep)
		roundBit := (mant >> (dropped - 1)) & 1
		stickyBits := sticky
		if dropped > 1 {
			stickyBits = stickyBits || mant&((uint64(1)<<(dropped-1))-1) != 0
		}
		mant >>= dropped
		if roundBit == 1 && (stickyBits || mant&1 == 1) {
			mant++
		}
	case haveBits < keep:
		mant <<= uint(keep - haveBits)
	}

	if subnormalShift == 0 {
		power2 = int32(trueExp - info.MinimumExponent)
		if mant >= uint64(1)<<uint(explicitBits+1) {
			mant >>= 1
			power2++
		}
	} else {
		power2 = 0
		if mant >= uint64(1)<<uint(explicitBits) {
			power2 = 1
		}
	}

	if int(power2) >= info.InfinitePower {
		return 0, int32(info.InfinitePower), true, nil
	}

	mant &^= uint64(1) << uint(explicitBits)
	return mant, power2, false, nil
}

func scanMantissaShape(mantPart []byte) (intDigits, fracDigits int, err error) {
	sawDot := false
	sawDigit := false
	for i := 0; i < len(mantPart); i++ {
		c := mantPart[i]
		switch {
		case c == '_':
		case c == '.':
			if sawDot {
				return 0, 0, lexer.ErrInvalid
			}
			sawDot = true
		case isHexDigit(c):
			sawDigit = true
			if sawDot {
				fracDigits++
			} else {
				intDigits++
			}
		default:
			return 0, 0, lexer.ErrInvalid
		}
	}
	if !sawDigit {
		return 0, 0, lexer.ErrInvalid
	}
	return intDigits, fracDigits, nil
}

func parseBinaryExponent(expPart []byte) (int, error) {
	i := 0
	sign := 1
	if i < len(expPart) {
		switch expPart[i] {
		case '+':
			i++
		case '-':
			sign = -1
			i++
		}
	}
	sawDigit := false
	v := 0
	for ; i < len(expPart); i++ {
		c := expPart[i]
		if c == '_' {
			continue
		}
		if c < '0' || c > '9' {
			return 0, lexer.ErrInvalid
		}
		sawDigit = true
		if v < 1<<24 {
			v = v*10 + int(c-'0')
		}
	}
	if !sawDigit {
		return 0, lexer.ErrInvalid
	}
	if v > 1<<20 {
		v = 1 << 20
	}
	return sign * v, nil
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func hexVal(c byte) uint64 {
	switch {
	case c >= '0' && c <= '9':
		return uint64(c - '0')
	case c >= 'a' && c <= 'f':
		return uint64(c-'a') + 10
	default:
		return uint64(c-'A') + 10
	}
}
