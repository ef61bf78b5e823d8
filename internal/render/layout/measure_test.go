package layout

import (
	"testing"

	"github.com/nightdial/nightdial/internal/glyph"
)

// fakeSource shapes every rune as a fixed-size box on the baseline with a
// fixed advance. A few runes get special ink offsets to exercise the
// union logic; spaces shape but produce no ink.
type fakeSource struct {
	w, h, adv int
}

func (f fakeSource) Shape(text string, size float64) []glyph.Shaped {
	var out []glyph.Shaped
	pen := 0
	for _, r := range text {
		out = append(out, glyph.Shaped{Rune: r, Size: size, PenX: pen})
		pen += f.adv
	}
	return out
}

func (f fakeSource) Rasterize(g glyph.Shaped) (glyph.Raster, bool) {
	switch g.Rune {
	case ' ':
		return glyph.Raster{}, true
	case 'j':
		// Ink that starts left of the pen, like an italic descender.
		return f.box(-2, -f.h)
	case 'O':
		// Overshoot: one pixel above the common top and below the baseline.
		return glyph.Raster{Left: 0, Top: -f.h - 1, Width: f.w, Height: f.h + 2,
			Coverage: full(f.w * (f.h + 2))}, true
	default:
		return f.box(0, -f.h)
	}
}

func (f fakeSource) box(left, top int) (glyph.Raster, bool) {
	return glyph.Raster{Left: left, Top: top, Width: f.w, Height: f.h,
		Coverage: full(f.w * f.h)}, true
}

func full(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = 255
	}
	return b
}

func TestMeasureEmpty(t *testing.T) {
	src := fakeSource{w: 2, h: 3, adv: 3}
	for _, text := range []string{"", " ", "   "} {
		m := Measure(src, text, 24)
		if !m.Empty() {
			t.Errorf("Measure(%q) not empty: %+v", text, m)
		}
		if len(m.Glyphs) != 0 {
			t.Errorf("Measure(%q) has %d instructions, want 0", text, len(m.Glyphs))
		}
	}
}

func TestMeasureSingleGlyph(t *testing.T) {
	src := fakeSource{w: 2, h: 3, adv: 3}
	m := Measure(src, "a", 24)
	if m.Width != 2 || m.Height != 3 {
		t.Fatalf("ink box = %dx%d, want 2x3", m.Width, m.Height)
	}
	if len(m.Glyphs) != 1 {
		t.Fatalf("got %d instructions, want 1", len(m.Glyphs))
	}
	if m.Glyphs[0].DX != 0 || m.Glyphs[0].DY != 0 {
		t.Errorf("single glyph offset = (%d,%d), want (0,0)", m.Glyphs[0].DX, m.Glyphs[0].DY)
	}
}

func TestMeasureUnionNotAdvanceBox(t *testing.T) {
	src := fakeSource{w: 2, h: 3, adv: 3}

	// 'j' extends 2px left of its pen: the box must include that ink
	// even though the advance-based box would not.
	m := Measure(src, "ja", 24)
	// pens at 0 and 3; ink spans x in [-2,0)∪[3,5) => width 7
	if m.Width != 7 {
		t.Errorf("width = %d, want 7", m.Width)
	}
	// The leftmost glyph lands at DX 0, the second is shifted right by
	// the same 2px the box grew.
	if m.Glyphs[0].DX != 0 || m.Glyphs[1].DX != 5 {
		t.Errorf("offsets = %d,%d, want 0,5", m.Glyphs[0].DX, m.Glyphs[1].DX)
	}

	// 'O' overshoots one pixel above and below the plain glyphs.
	m = Measure(src, "aO", 24)
	if m.Height != 5 {
		t.Errorf("height = %d, want 5", m.Height)
	}
	// 'a' top sits 1px below the box top.
	if m.Glyphs[0].DY != 1 || m.Glyphs[1].DY != 0 {
		t.Errorf("vertical offsets = %d,%d, want 1,0", m.Glyphs[0].DY, m.Glyphs[1].DY)
	}
}

func TestMeasureSkipsInklessGlyphs(t *testing.T) {
	src := fakeSource{w: 2, h: 3, adv: 3}
	m := Measure(src, "a b", 24)
	if len(m.Glyphs) != 2 {
		t.Fatalf("got %d instructions, want 2 (space contributes none)", len(m.Glyphs))
	}
	// pens at 0, 3, 6: box covers [0,8)
	if m.Width != 8 {
		t.Errorf("width = %d, want 8", m.Width)
	}
}

func TestMeasureAlwaysPositive(t *testing.T) {
	src := fakeSource{w: 4, h: 6, adv: 5}
	for _, text := range []string{"x", "10:30", "jjj", "OOO", "a b c"} {
		m := Measure(src, text, 120)
		if m.Width < 1 || m.Height < 1 {
			t.Errorf("Measure(%q) = %dx%d, want >= 1x1", text, m.Width, m.Height)
		}
	}
}
