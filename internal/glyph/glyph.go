package glyph

// Shaped is one glyph of a shaped string: which rune to draw and where the
// pen sits when drawing it, in pixels from the string origin. The origin is
// the first glyph's pen position on the baseline; Y increases downward.
type Shaped struct {
	Rune rune
	Size float64 // point size the string was shaped at
	PenX int
	PenY int
}

// Raster is the rasterized ink of a single glyph. Left/Top locate the
// ink box relative to the pen position (Top is negative for ink above
// the baseline). Coverage holds Width*Height bytes, row-major, where 0 is
// fully transparent and 255 fully opaque.
type Raster struct {
	Left, Top     int
	Width, Height int
	Coverage      []byte
}

// Source shapes text and rasterizes individual glyphs. It is the only
// seam between the layout/compositing core and the font machinery, so
// tests can substitute a deterministic fake.
type Source interface {
	// Shape lays the string out left to right with kerning and returns
	// the positioned glyphs. An empty string returns nil.
	Shape(text string, size float64) []Shaped

	// Rasterize returns the coverage bitmap for one shaped glyph. ok is
	// false when the face has no usable glyph for the rune; zero-ink
	// glyphs (spaces) return ok with a zero-sized Raster.
	Rasterize(g Shaped) (Raster, bool)
}
