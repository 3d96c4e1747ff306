package scan

// hex4 formats a company ID as a 4-character hexadecimal string
// (e.g. "FFFF") for log attributes without pulling in fmt.
func hex4(v uint16) string {
	const hexd = "0123456789ABCDEF"
	return string([]byte{
		hexd[(v>>12)&0xF],
		hexd[(v>>8)&0xF],
		hexd[(v>>4)&0xF],
		hexd[v&0xF],
	})
}

// bytesToHex renders a manufacturer data frame as an uppercase hex
// string for log attributes.
func bytesToHex(b []byte) string {
	const hexd = "0123456789ABCDEF"
	out := make([]byte, 0, len(b)*2)
	for _, x := range b {
		out = append(out, hexd[x>>4], hexd[x&0x0F])
	}
	return string(out)
}
