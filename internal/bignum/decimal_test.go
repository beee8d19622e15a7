package bignum

import "testing"

func digits(d *Decimal) string {
	b := make([]byte, d.NumDigits)
	for i, v := range d.Digits[:d.NumDigits] {
		b[i] = '0' + v
	}
	return string(b)
}

func TestParseBasic(t *testing.T) {
	tests := []struct {
		s            string
		digits       string
		decimalPoint int
	}{
		{"0", "", 0},
		{"1", "1", 1},
		{"123", "123", 3},
		{"0.5", "5", 0},
		{"1.5", "15", 1},
		{"100", "1", 3},
		{"0.001", "1", -2},
		{"1e3", "1", 4},
		{"1.5e2", "15", 3},
		{"1_000.5", "10005", 4},
	}
	for _, tt := range tests {
		d, err := Parse([]byte(tt.s))
		if err != nil {
			t.Errorf("%q: unexpected error: %v", tt.s, err)
			continue
		}
		if got := digits(d); got != tt.digits || d.DecimalPoint != tt.decimalPoint {
			t.Errorf("%q: expected digits=%q point=%d, got digits=%q point=%d",
				tt.s, tt.digits, tt.decimalPoint, got, d.DecimalPoint)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{"", ".", "1.2.3", "1e", "e5", "abc"}
	for _, s := range tests {
		if _, err := Parse([]byte(s)); err == nil {
			t.Errorf("%q: expected an error", s)
		}
	}
}

func TestDoubleHalve(t *testing.T) {
	d, err := Parse([]byte("1"))
	if err != nil {
		t.Fatal(err)
	}
	d.Shift(1) // 1 * 2 = 2
	if got := d.RoundedInteger(); got != 2 {
		t.Errorf("expected 2, got %d", got)
	}
	d.Shift(-1) // back to 1
	if got := d.RoundedInteger(); got != 1 {
		t.Errorf("expected 1, got %d", got)
	}
}

func TestShiftPowersOfTwo(t *testing.T) {
	d, err := Parse([]byte("1"))
	if err != nil {
		t.Fatal(err)
	}
	d.Shift(10) // 1 * 2^10 = 1024
	if got := d.RoundedInteger(); got != 1024 {
		t.Errorf("expected 1024, got %d", got)
	}
}

func TestRoundedIntegerTiesToEven(t *testing.T) {
	// 2.5 rounds to 2 (down, to even); 3.5 rounds to 4 (up, to even).
	tests := []struct {
		s    string
		want uint64
	}{
		{"2.5", 2},
		{"3.5", 4},
		{"0.5", 0},
		{"1.5", 2},
	}
	for _, tt := range tests {
		d, err := Parse([]byte(tt.s))
		if err != nil {
			t.Fatal(err)
		}
		if got := d.RoundedInteger(); got != tt.want {
			t.Errorf("%q: expected %d, got %d", tt.s, tt.want, got)
		}
	}
}
