package glyph

import (
	"fmt"
	"image"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// TrueTypeSource is the production Source, backed by a parsed TrueType
// font. Faces are built lazily per point size and cached for the process
// lifetime; the clock only ever uses two sizes.
type TrueTypeSource struct {
	font  *truetype.Font
	faces map[float64]font.Face
}

// NewTrueTypeSource parses TTF bytes into a Source. A font that does not
// parse is a startup-fatal condition for callers.
func NewTrueTypeSource(data []byte) (*TrueTypeSource, error) {
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &TrueTypeSource{font: f, faces: make(map[float64]font.Face)}, nil
}

// face returns the cached face for size, creating it on first use.
// DPI 72 makes the point size equal to the pixel em size.
func (s *TrueTypeSource) face(size float64) font.Face {
	if f, ok := s.faces[size]; ok {
		return f
	}
	f := truetype.NewFace(s.font, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	s.faces[size] = f
	return f
}

func (s *TrueTypeSource) Shape(text string, size float64) []Shaped {
	if text == "" {
		return nil
	}
	face := s.face(size)
	var (
		out  []Shaped
		pen  fixed.Int26_6
		prev rune
		has  bool
	)
	for _, r := range text {
		if has {
			pen += face.Kern(prev, r)
		}
		out = append(out, Shaped{Rune: r, Size: size, PenX: pen.Floor(), PenY: 0})
		adv, ok := face.GlyphAdvance(r)
		if !ok {
			// Unknown rune: the face substitutes its missing-glyph box
			// at draw time, advance by that box's width as well.
			adv, _ = face.GlyphAdvance('�')
		}
		pen += adv
		prev, has = r, true
	}
	return out
}

func (s *TrueTypeSource) Rasterize(g Shaped) (Raster, bool) {
	face := s.face(g.Size)
	dot := fixed.P(g.PenX, g.PenY)
	dr, mask, maskp, _, ok := face.Glyph(dot, g.Rune)
	if !ok {
		return Raster{}, false
	}
	w, h := dr.Dx(), dr.Dy()
	ras := Raster{
		Left:   dr.Min.X - g.PenX,
		Top:    dr.Min.Y - g.PenY,
		Width:  w,
		Height: h,
	}
	if w <= 0 || h <= 0 {
		return ras, true
	}
	ras.Coverage = make([]byte, w*h)
	if alpha, isAlpha := mask.(*image.Alpha); isAlpha {
		for y := 0; y < h; y++ {
			src := alpha.PixOffset(maskp.X, maskp.Y+y)
			copy(ras.Coverage[y*w:(y+1)*w], alpha.Pix[src:src+w])
		}
		return ras, true
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			_, _, _, a := mask.At(maskp.X+x, maskp.Y+y).RGBA()
			ras.Coverage[y*w+x] = uint8(a >> 8)
		}
	}
	return ras, true
}
