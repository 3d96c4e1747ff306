// Package sense defines the raw reading model shared by the sensor
// drivers and the conversion layer.
package sense

// Value is one raw sensor measurement split into an integer part and a
// signed fractional part in millionths, the way the drivers report it.
// A temperature of 26.1 °C is {Int: 26, Frac: 100000}; for negative
// measurements both parts carry the sign ({-1, -500000} is -1.5).
type Value struct {
	Int  int32
	Frac int32
}

// ClimateSource reads the combined temperature/humidity channel in a
// single device transaction. Temperature is in °C, humidity in %RH.
type ClimateSource interface {
	ReadClimate() (temp, humidity Value, err error)
}

// LightSource reads ambient light in lux.
type LightSource interface {
	ReadLight() (Value, error)
}

// MagneticSource reads magnetic flux density in gauss (1 G = 100 µT).
type MagneticSource interface {
	ReadMagnetic() (Value, error)
}
