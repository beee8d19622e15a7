package fastpath

import (
	"math"
	"testing"

	"github.com/shogo82148/fastfloat/floatinfo"
	"github.com/shogo82148/fastfloat/internal/lexer"
)

func TestTryDoubleAccepts(t *testing.T) {
	tests := []struct {
		n    lexer.Number
		want float64
	}{
		{lexer.Number{Mantissa: 1, Exponent: 0}, 1},
		{lexer.Number{Mantissa: 5, Exponent: -1}, 0.5},
		{lexer.Number{Mantissa: 1, Exponent: 22}, 1e22},
		{lexer.Number{Mantissa: 1, Exponent: 22, Negative: true}, -1e22},
		{lexer.Number{Mantissa: 1, Exponent: 30}, 1e30}, // disguised fast path
	}
	for _, tt := range tests {
		bits, ok := TryDouble(tt.n)
		if !ok {
			t.Errorf("%+v: declined", tt.n)
			continue
		}
		if got := math.Float64frombits(bits); got != tt.want {
			t.Errorf("%+v: expected %v, got %v", tt.n, tt.want, got)
		}
	}
}

func TestTryDoubleDeclines(t *testing.T) {
	tests := []lexer.Number{
		{Mantissa: 1, Exponent: 0, ManyDigits: true},
		{Mantissa: 1 << 54, Exponent: 0},
		{Mantissa: 1, Exponent: -23},
		{Mantissa: 1, Exponent: 100},
	}
	for _, n := range tests {
		if _, ok := TryDouble(n); ok {
			t.Errorf("%+v: expected decline", n)
		}
	}
}

func TestTryFloat(t *testing.T) {
	bits, ok := TryFloat(lexer.Number{Mantissa: 1, Exponent: 0})
	if !ok {
		t.Fatal("declined")
	}
	if got := math.Float32frombits(bits); got != 1 {
		t.Errorf("expected 1, got %v", got)
	}
}

func TestTryFloat64ValueDeclinesOutsideRange(t *testing.T) {
	if _, ok := TryFloat64Value(lexer.Number{Mantissa: 1, Exponent: -60}, floatinfo.Double); ok {
		t.Errorf("expected decline for an exponent far below the fast-path range")
	}
}
