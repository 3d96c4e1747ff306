// Package payload implements the fixed-layout manufacturer-data codec
// shared by the beacon firmware and the host scanner.
package payload

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var (
	ErrShortPayload = errors.New("payload too short")
	ErrCompanyID    = errors.New("unexpected company id")
)

// Fields holds one cycle's converted channel values.
type Fields struct {
	Temperature int16  // centi-°C
	Humidity    uint8  // %RH
	Illuminance uint16 // lux
	Magnetic    int16  // µT
	Flags       Flags
}

// NewBuffer allocates a payload buffer with the company ID prefix set
// and all channel bytes zero. This is the exact byte sequence a scanner
// sees before the first successful cycle.
func NewBuffer() []byte {
	b := make([]byte, Size)
	binary.LittleEndian.PutUint16(b[0:2], CompanyID)
	return b
}

// Encode writes f into b at the fixed offsets. It rewrites every field,
// so encoding the same inputs twice yields identical bytes and nothing
// from a previous cycle survives. b must be at least Size bytes.
func Encode(b []byte, f Fields) {
	_ = b[Size-1]
	binary.LittleEndian.PutUint16(b[0:2], CompanyID)
	binary.LittleEndian.PutUint16(b[offTemperature:], uint16(f.Temperature))
	b[offHumidity] = f.Humidity
	binary.LittleEndian.PutUint16(b[offIlluminance:], f.Illuminance)
	binary.LittleEndian.PutUint16(b[offMagnetic:], uint16(f.Magnetic))
	b[offFlags] = byte(f.Flags)
}

// Decode parses a full payload buffer, company ID prefix included.
func Decode(b []byte) (Fields, error) {
	if len(b) < Size {
		return Fields{}, fmt.Errorf("%w: %d bytes", ErrShortPayload, len(b))
	}
	return DecodeManufacturerData(binary.LittleEndian.Uint16(b[0:2]), b[2:])
}

// DecodeManufacturerData parses the post-company-ID data bytes as they
// arrive in a scan result, where the BLE stack has already split off
// the company ID.
func DecodeManufacturerData(companyID uint16, data []byte) (Fields, error) {
	if companyID != CompanyID {
		return Fields{}, fmt.Errorf("%w: 0x%04X", ErrCompanyID, companyID)
	}
	if len(data) < Size-2 {
		return Fields{}, fmt.Errorf("%w: %d data bytes", ErrShortPayload, len(data))
	}
	return Fields{
		Temperature: int16(binary.LittleEndian.Uint16(data[offTemperature-2:])),
		Humidity:    data[offHumidity-2],
		Illuminance: binary.LittleEndian.Uint16(data[offIlluminance-2:]),
		Magnetic:    int16(binary.LittleEndian.Uint16(data[offMagnetic-2:])),
		Flags:       Flags(data[offFlags-2]),
	}, nil
}
