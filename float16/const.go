package float16

// Bit layout constants for IEEE 754 binary16, shared by the conversion
// (float16.go, convert.go) and arithmetic (math.go, sqrt.go) methods.
const (
	shift16    = 10
	bias16     = 15
	mask16     = 0x1f
	fracMask16 = 1<<shift16 - 1
	signMask16 = 1 << 15

	uvnan    = 0x7e00
	uvinf    = 0x7c00
	uvneginf = 0xfc00
)
