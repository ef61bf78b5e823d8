package glyph

import (
	"testing"

	"golang.org/x/image/font/gofont/gobold"
)

func newTestSource(t *testing.T) *TrueTypeSource {
	t.Helper()
	src, err := NewTrueTypeSource(gobold.TTF)
	if err != nil {
		t.Fatalf("parse embedded font: %v", err)
	}
	return src
}

func TestNewTrueTypeSourceRejectsGarbage(t *testing.T) {
	if _, err := NewTrueTypeSource([]byte("not a font")); err == nil {
		t.Fatal("expected error for garbage font bytes")
	}
}

func TestShapeEmpty(t *testing.T) {
	src := newTestSource(t)
	if got := src.Shape("", 48); got != nil {
		t.Errorf("Shape(\"\") = %v, want nil", got)
	}
}

func TestShapeAdvancesLeftToRight(t *testing.T) {
	src := newTestSource(t)
	shaped := src.Shape("10:30", 48)
	if len(shaped) != 5 {
		t.Fatalf("got %d glyphs, want 5", len(shaped))
	}
	for i := 1; i < len(shaped); i++ {
		if shaped[i].PenX <= shaped[i-1].PenX {
			t.Errorf("pen not advancing: glyph %d at %d, glyph %d at %d",
				i-1, shaped[i-1].PenX, i, shaped[i].PenX)
		}
	}
	for i, g := range shaped {
		if g.PenY != 0 {
			t.Errorf("glyph %d PenY = %d, want 0 (single baseline)", i, g.PenY)
		}
	}
}

func TestShapeScalesWithSize(t *testing.T) {
	src := newTestSource(t)
	small := src.Shape("88", 24)
	large := src.Shape("88", 96)
	if large[1].PenX <= small[1].PenX {
		t.Errorf("advance at 96pt (%d) not larger than at 24pt (%d)",
			large[1].PenX, small[1].PenX)
	}
}

func TestRasterizeDigit(t *testing.T) {
	src := newTestSource(t)
	shaped := src.Shape("8", 48)
	ras, ok := src.Rasterize(shaped[0])
	if !ok {
		t.Fatal("Rasterize failed for '8'")
	}
	if ras.Width <= 0 || ras.Height <= 0 {
		t.Fatalf("ink = %dx%d, want positive", ras.Width, ras.Height)
	}
	if ras.Top >= 0 {
		t.Errorf("Top = %d, want negative (ink above the baseline)", ras.Top)
	}
	if len(ras.Coverage) != ras.Width*ras.Height {
		t.Fatalf("coverage length %d, want %d", len(ras.Coverage), ras.Width*ras.Height)
	}
	var opaque int
	for _, c := range ras.Coverage {
		if c == 255 {
			opaque++
		}
	}
	if opaque == 0 {
		t.Error("no fully opaque pixels in a 48pt digit")
	}
}

func TestRasterizeSpaceHasNoInk(t *testing.T) {
	src := newTestSource(t)
	shaped := src.Shape(" ", 48)
	ras, ok := src.Rasterize(shaped[0])
	if !ok {
		t.Fatal("Rasterize failed for space")
	}
	if ras.Width*ras.Height != 0 {
		t.Errorf("space ink = %dx%d, want zero area", ras.Width, ras.Height)
	}
}
