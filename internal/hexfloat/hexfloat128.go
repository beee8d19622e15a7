package hexfloat

import (
	"github.com/shogo82148/fastfloat/floatinfo"
	"github.com/shogo82148/fastfloat/internal/lexer"
	"github.com/shogo82148/int128"
)

// Parse128 is Parse widened to binary128: its 112 explicit mantissa bits
// need more than the 64 bits Parse accumulates into, so the bit stream is
// built up in a github.com/shogo82148/int128.Uint128 instead (doubling via
// Add(self) in place of a left shift, since Uint128's exported surface
// covers Add/Sub/Mul/DivMod/Cmp/Rsh but not a shift-by-one helper).
func Parse128(s []byte, info floatinfo.Info) (mantissa int128.Uint128, power2 int32, overflow bool, err error) {
	if !lexer.IsHexPrefix(s) {
		return int128.Uint128{}, 0, false, lexer.ErrInvalid
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
		return int128.Uint128{}, 0, false, lexer.ErrInvalid
	}
	mantPart := body[:pIdx]
	expPart := body[pIdx+1:]

	if !lexer.UnderscoreOK(s) {
		return int128.Uint128{}, 0, false, lexer.ErrInvalid
	}

	intDigits, _, err := scanMantissaShape(mantPart)
	if err != nil {
		return int128.Uint128{}, 0, false, err
	}
	totalIntBits := intDigits * 4

	haveLeading := false
	var mant int128.Uint128
	haveBits := 0
	sticky := false
	var lead int
	weight := totalIntBits
	const maxBits = 128
	for i := 0; i < len(mantPart); i++ {
		c := mantPart[i]
		if c == '_' || c == '.' {
			continue
		}
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
			if haveBits < maxBits {
				mant = mant.Add(mant)
				if b != 0 {
					mant = mant.Add(int128.Uint128{L: 1})
				}
				haveBits++
			} else if b != 0 {
				sticky = true
			}
		}
	}
	if !haveLeading {
		return int128.Uint128{}, 0, false, nil
	}

	pExp, err := parseBinaryExponent(expPart)
	if err != nil {
		return int128.Uint128{}, 0, false, err
	}

	trueExp := lead + pExp
	explicitBits := info.MantissaExplicitBits

	subnormalShift := 0
	if trueExp < info.MinimumExponent+1 {
		subnormalShift = (info.MinimumExponent + 1) - trueExp
	}
	keep := explicitBits + 1 - subnormalShift
	if keep <= 0 {
		return int128.Uint128{}, 0, false, nil
	}

	if haveBits > keep {
		dropped := uint(haveBits - keep)
		divisor := pow2(dropped)
		half := pow2(dropped - 1)
		q, r := mant.DivMod(divisor)
		mant = q
		cmp := r.Cmp(half)
		if cmp > 0 || (cmp == 0 && (sticky || mant.L&1 == 1)) {
			mant = mant.Add(int128.Uint128{L: 1})
		}
	} else if haveBits < keep {
		n := uint(keep - haveBits)
		mant = mant.Mul(pow2(n))
	}

	topBit := pow2(uint(explicitBits + 1))
	if subnormalShift == 0 {
		power2 = int32(trueExp - info.MinimumExponent)
		if mant.Cmp(topBit) >= 0 {
			mant = mant.Rsh(1)
			power2++
		}
	} else {
		power2 = 0
		if mant.Cmp(pow2(uint(explicitBits))) >= 0 {
			power2 = 1
		}
	}

	if int(power2) >= info.InfinitePower {
		return int128.Uint128{}, int32(info.InfinitePower), true, nil
	}

	// explicitBits is always >= 64 here (binary128's 112), so the hidden
	// bit always falls in the high word.
	mant.H &^= uint64(1) << uint(explicitBits-64)
	return mant, power2, false, nil
}

// pow2 returns 2^n as a Uint128 via repeated doubling; n is always small
// (at most a handful more than binary128's 113-bit mantissa budget).
func pow2(n uint) int128.Uint128 {
	v := int128.Uint128{L: 1}
	for i := uint(0); i < n; i++ {
		v = v.Add(v)
	}
	return v
}
