// Package fixpoint converts raw sensor values to the fixed-point
// integer encodings used in the broadcast payload.
package fixpoint

import "github.com/belavarga1117/xg27-sensor-dashboard/internal/sense"

// Centi scales a value by 100 (°C to centi-°C). The fractional part is
// truncated toward zero so a reading just below zero never rounds away
// from it: {-1, -50000} becomes -105, not -106. Results outside the
// int16 range saturate instead of wrapping.
func Centi(v sense.Value) int16 {
	return sat16(int64(v.Int)*100 + int64(v.Frac)/10_000)
}

// Percent keeps the integer part only, clamped to [0, 100].
func Percent(v sense.Value) uint8 {
	switch {
	case v.Int < 0:
		return 0
	case v.Int > 100:
		return 100
	default:
		return uint8(v.Int)
	}
}

// Lux keeps the integer part only, clamped to the uint16 range.
func Lux(v sense.Value) uint16 {
	switch {
	case v.Int < 0:
		return 0
	case v.Int > 0xFFFF:
		return 0xFFFF
	default:
		return uint16(v.Int)
	}
}

// MicroTesla converts a gauss value to µT (1 G = 100 µT). Same ×100
// scaling, truncation and saturation rules as Centi.
func MicroTesla(v sense.Value) int16 {
	return sat16(int64(v.Int)*100 + int64(v.Frac)/10_000)
}

func sat16(n int64) int16 {
	if n > 32767 {
		return 32767
	}
	if n < -32768 {
		return -32768
	}
	return int16(n)
}
