package payload

// Broadcast payload layout (little-endian), offsets from payload start:
//
//	[0-1]  company ID (0xFFFF = test range)
//	[2-3]  int16  temperature, centi-°C
//	[4]    uint8  humidity, %RH
//	[5-6]  uint16 illuminance, lux
//	[7-8]  int16  magnetic field, µT
//	[9]    uint8  channel flags
//
// The layout is fixed for the life of the firmware; scanners decode it
// by offset, so only byte contents may ever change.
const (
	// CompanyID is the manufacturer-data identifier the payload is
	// advertised under (and stored at offsets 0-1).
	CompanyID uint16 = 0xFFFF

	// Size is the total payload length in bytes, company ID included.
	Size = 10

	offTemperature = 2
	offHumidity    = 4
	offIlluminance = 5
	offMagnetic    = 7
	offFlags       = 9
)

// Flags marks which channels were read successfully this cycle. A clear
// bit means the corresponding value bytes are zero placeholders.
type Flags uint8

const (
	FlagClimate  Flags = 1 << 0 // temperature + humidity
	FlagLight    Flags = 1 << 1
	FlagMagnetic Flags = 1 << 2
)
