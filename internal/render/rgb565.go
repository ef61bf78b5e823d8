package render

// Pack565 packs 8-bit channels into RGB565: 5 bits red, 6 green, 5 blue.
// The low bits of each channel truncate; that is the native format of the
// panel, not a quality choice.
func Pack565(r, g, b uint8) uint16 {
	return uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
}

// Unpack565 expands an RGB565 value back to 8-bit channels with the low
// bits zero. Used by the simulator and tests to inspect frames.
func Unpack565(v uint16) (r, g, b uint8) {
	r = uint8(v>>11) << 3
	g = uint8(v>>5&0x3f) << 2
	b = uint8(v&0x1f) << 3
	return r, g, b
}
