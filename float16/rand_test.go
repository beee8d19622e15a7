package float16

import "math"

// xorshift32/xorshift64 are small, seed-fixed PRNGs used only to drive the
// benchmarks with varied-but-reproducible inputs; no cryptographic or
// statistical quality is required here.
type xorshift32 struct {
	state uint32
}

func newXorshift32() *xorshift32 {
	return &xorshift32{state: 2463534242}
}

func (x *xorshift32) next() uint32 {
	s := x.state
	s ^= s << 13
	s ^= s >> 17
	s ^= s << 5
	x.state = s
	return s
}

func (x *xorshift32) Float32() float32 {
	return math.Float32frombits(x.next())
}

func (x *xorshift32) Float16Pair() (Float16, Float16) {
	v := x.next()
	return Float16(uint16(v)), Float16(uint16(v >> 16))
}

type xorshift64 struct {
	state uint64
}

func newXorshift64() *xorshift64 {
	return &xorshift64{state: 88172645463325252}
}

func (x *xorshift64) next() uint64 {
	s := x.state
	s ^= s << 13
	s ^= s >> 7
	s ^= s << 17
	x.state = s
	return s
}

func (x *xorshift64) Float64() float64 {
	return math.Float64frombits(x.next())
}
