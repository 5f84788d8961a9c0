package conv

import (
	"math"
	"testing"
)

func TestFloatToInt(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want int
		ok   bool
	}{
		{"zero", 0, 0, true},
		{"positive", 42, 42, true},
		{"negative", -7, -7, true},
		{"fraction", 1.5, 0, false},
		{"nan", math.NaN(), 0, false},
		{"inf", math.Inf(1), 0, false},
		{"neg inf", math.Inf(-1), 0, false},
		{"too large", 1e300, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FloatToInt(tt.in)
			if got != tt.want || ok != tt.ok {
				t.Errorf("FloatToInt(%v) = %d, %v, want %d, %v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestIntToFloat(t *testing.T) {
	if got := IntToFloat(12); got != 12 {
		t.Errorf("IntToFloat(12) = %v", got)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("IntToFloat(1<<60) did not panic")
		}
	}()
	IntToFloat(1 << 60)
}
