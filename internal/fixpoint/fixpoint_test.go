package fixpoint

import (
	"testing"

	"github.com/belavarga1117/xg27-sensor-dashboard/internal/sense"
)

func TestCenti(t *testing.T) {
	tests := []struct {
		name string
		v    sense.Value
		want int16
	}{
		{"whole and tenth", sense.Value{Int: 26, Frac: 100_000}, 2610},
		{"end to end literal", sense.Value{Int: 22, Frac: 500_000}, 2250},
		{"negative truncates toward zero", sense.Value{Int: -1, Frac: -50_000}, -105},
		{"negative unit boundary", sense.Value{Int: 0, Frac: -10_000}, -1},
		{"negative whole at boundary", sense.Value{Int: -1, Frac: -10_000}, -101},
		{"just below a hundredth", sense.Value{Int: 0, Frac: -9_999}, 0},
		{"zero", sense.Value{}, 0},
		{"saturates high", sense.Value{Int: 400, Frac: 0}, 32767},
		{"saturates low", sense.Value{Int: -400, Frac: 0}, -32768},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Centi(tt.v); got != tt.want {
				t.Errorf("Centi(%+v) = %d; want %d", tt.v, got, tt.want)
			}
		})
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		name string
		v    sense.Value
		want uint8
	}{
		{"in range", sense.Value{Int: 45, Frac: 230_000}, 45},
		{"clamps high", sense.Value{Int: 150}, 100},
		{"clamps low", sense.Value{Int: -5}, 0},
		{"exact bounds", sense.Value{Int: 100}, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Percent(tt.v); got != tt.want {
				t.Errorf("Percent(%+v) = %d; want %d", tt.v, got, tt.want)
			}
		})
	}
}

func TestLux(t *testing.T) {
	tests := []struct {
		name string
		v    sense.Value
		want uint16
	}{
		{"in range", sense.Value{Int: 300}, 300},
		{"clamps overflow", sense.Value{Int: 70_000}, 65535},
		{"clamps negative", sense.Value{Int: -3}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lux(tt.v); got != tt.want {
				t.Errorf("Lux(%+v) = %d; want %d", tt.v, got, tt.want)
			}
		})
	}
}

func TestMicroTesla(t *testing.T) {
	tests := []struct {
		name string
		v    sense.Value
		want int16
	}{
		// Earth's field is ~0.44 G; the driver reports val1=0, val2≈440000.
		{"earth field", sense.Value{Int: 0, Frac: 440_000}, 44},
		{"one gauss", sense.Value{Int: 1, Frac: 0}, 100},
		{"negative truncates toward zero", sense.Value{Int: 0, Frac: -15_000}, -1},
		{"saturates high", sense.Value{Int: 330, Frac: 0}, 32767},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MicroTesla(tt.v); got != tt.want {
				t.Errorf("MicroTesla(%+v) = %d; want %d", tt.v, got, tt.want)
			}
		})
	}
}
