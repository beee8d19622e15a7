// Package bignum implements the third and final conversion tier (spec.md
// §3/§4.5): an exact, arbitrary-precision base-10 digit array that the fast
// path and Eisel-Lemire both decline to handle, converted to the nearest
// representable binary value by scaling in single powers of two until the
// leading digit sits in [1, 2), then rounding to nearest-even. It trades
// speed for exactness — it is the tier of last resort, never the common
// case — and is the only tier binary128 ever uses (see floatinfo.Quad's
// comment in package floatinfo).
package bignum

import "github.com/shogo82148/fastfloat/internal/lexer"

// maxDigits bounds how many significant digits are stored exactly; spec.md
// §3 sets this at 768, comfortably more than any finite decimal literal
// needs to pin down the nearest binary128 value (the longest such literal
// is a good deal shorter, but 768 leaves slack for pathological inputs with
// long runs of zeros between significant digits).
const maxDigits = 768

// Decimal is an exact (until capacity is exceeded) base-10 value: digits
// holds significant digits 0-9 (not ASCII), and the value equals
// 0.d1d2...dn * 10^DecimalPoint. Truncated records whether any nonzero
// digit was dropped for lack of room, which matters only for round-to-even
// on an exact-tie boundary.
type Decimal struct {
	Digits       [maxDigits]byte
	NumDigits    int
	DecimalPoint int
	Negative     bool
	Truncated    bool
}

// Parse scans a decimal-grammar literal (digits, at most one '.', an
// optional 'e'/'E' exponent, optional underscores already known to be
// legal) into a Decimal.
func Parse(s []byte) (*Decimal, error) {
	d := &Decimal{}
	sawDot := false
	sawDigits := false
	seen := 0
	dotAt := 0
	adj := 0

	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == '_':
			i++
			continue
		case c == '.':
			if sawDot {
				return nil, lexer.ErrInvalid
			}
			sawDot = true
			dotAt = seen
			i++
			continue
		case c >= '0' && c <= '9':
			sawDigits = true
			if c == '0' && seen == 0 {
				if sawDot {
					adj--
				}
				i++
				continue
			}
			if d.NumDigits < maxDigits {
				d.Digits[d.NumDigits] = c - '0'
				d.NumDigits++
			} else if c != '0' {
				d.Truncated = true
			}
			seen++
			i++
			continue
		case c == 'e' || c == 'E':
			if !sawDigits {
				return nil, lexer.ErrInvalid
			}
			exp, err := parseExponent(s[i+1:])
			if err != nil {
				return nil, err
			}
			if sawDot {
				d.DecimalPoint = dotAt + adj
			} else {
				d.DecimalPoint = seen + adj
			}
			d.DecimalPoint += exp
			d.trim()
			return d, nil
		default:
			return nil, lexer.ErrInvalid
		}
	}
	if !sawDigits {
		return nil, lexer.ErrInvalid
	}
	if sawDot {
		d.DecimalPoint = dotAt + adj
	} else {
		d.DecimalPoint = seen + adj
	}
	d.trim()
	return d, nil
}

// parseExponent parses the decimal digits (with sign and underscores)
// following 'e'/'E', clamping to a generous bound well beyond any format's
// range since the caller only needs "very large" or "very small", not the
// precise magnitude.
func parseExponent(s []byte) (int, error) {
	i := 0
	sign := 1
	if i < len(s) {
		switch s[i] {
		case '+':
			i++
		case '-':
			sign = -1
			i++
		}
	}
	sawDigit := false
	v := 0
	for ; i < len(s); i++ {
		c := s[i]
		if c == '_' {
			continue
		}
		if c < '0' || c > '9' {
			return 0, lexer.ErrInvalid
		}
		sawDigit = true
		if v < 1<<20 {
			v = v*10 + int(c-'0')
		}
	}
	if !sawDigit {
		return 0, lexer.ErrInvalid
	}
	if v > 1<<19 {
		v = 1 << 19
	}
	return sign * v, nil
}

func (d *Decimal) trim() {
	for d.NumDigits > 0 && d.Digits[d.NumDigits-1] == 0 {
		d.NumDigits--
	}
	if d.NumDigits == 0 {
		d.DecimalPoint = 0
	}
}

// double multiplies d by 2 in place, digit by digit, growing NumDigits and
// DecimalPoint by one carry digit when the product overflows the leading
// position.
func (d *Decimal) double() {
	if d.NumDigits == 0 {
		return
	}
	carry := 0
	for i := d.NumDigits - 1; i >= 0; i-- {
		v := int(d.Digits[i])*2 + carry
		if v >= 10 {
			v -= 10
			carry = 1
		} else {
			carry = 0
		}
		d.Digits[i] = byte(v)
	}
	if carry > 0 {
		if d.NumDigits < maxDigits {
			copy(d.Digits[1:d.NumDigits+1], d.Digits[:d.NumDigits])
			d.Digits[0] = byte(carry)
			d.NumDigits++
			d.DecimalPoint++
		} else {
			// The overflow digit falls off the end of a budget already
			// exhausted by 768 significant digits; its loss cannot
			// affect round-to-even at that point, but mark it anyway
			// for consistency.
			d.Truncated = true
			d.DecimalPoint++
		}
	}
}

// halve divides d by 2 in place, digit by digit (classic long division by a
// small constant), trimming a leading zero digit it produces and adjusting
// DecimalPoint to match.
func (d *Decimal) halve() {
	if d.NumDigits == 0 {
		return
	}
	remainder := 0
	for i := 0; i < d.NumDigits; i++ {
		v := remainder*10 + int(d.Digits[i])
		d.Digits[i] = byte(v / 2)
		remainder = v % 2
	}
	if d.Digits[0] == 0 {
		copy(d.Digits[:d.NumDigits-1], d.Digits[1:d.NumDigits])
		d.NumDigits--
		d.DecimalPoint--
	}
	if remainder != 0 {
		if d.NumDigits < maxDigits {
			d.Digits[d.NumDigits] = 5
			d.NumDigits++
		} else {
			d.Truncated = true
		}
	}
	d.trim()
}

// Shift multiplies d by 2^n (n > 0) or divides it by 2^(-n) (n < 0), one bit
// at a time. The big-decimal tier is the deliberately-slow path of last
// resort (spec.md §3), so simplicity here matters more than the
// larger-than-one-bit "cheat" shifts a performance-sensitive decimal type
// would use.
func (d *Decimal) Shift(n int) {
	for ; n > 0; n-- {
		d.double()
	}
	for ; n < 0; n++ {
		d.halve()
	}
}

// roundsUp reports whether the digit at DecimalPoint (and beyond) rounds
// the truncated integer part up, using round-half-to-even on an exact tie.
func (d *Decimal) roundsUp() bool {
	p := d.DecimalPoint
	if p < 0 || p >= d.NumDigits {
		return false
	}
	if d.Digits[p] == 5 {
		for _, c := range d.Digits[p+1 : d.NumDigits] {
			if c != 0 {
				return true
			}
		}
		if d.Truncated {
			return true
		}
		return p > 0 && d.Digits[p-1]%2 == 1
	}
	return d.Digits[p] >= 5
}

// RoundedInteger returns the integer part of d (the digits before
// DecimalPoint, zero-extended if DecimalPoint exceeds NumDigits), rounded
// to nearest with ties to even.
func (d *Decimal) RoundedInteger() uint64 {
	if d.DecimalPoint > 20 {
		return ^uint64(0)
	}
	var n uint64
	i := 0
	for ; i < d.DecimalPoint && i < d.NumDigits; i++ {
		n = n*10 + uint64(d.Digits[i])
	}
	for ; i < d.DecimalPoint; i++ {
		n *= 10
	}
	if d.roundsUp() {
		n++
	}
	return n
}
