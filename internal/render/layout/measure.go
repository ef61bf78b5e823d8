package layout

import "github.com/nightdial/nightdial/internal/glyph"

// Instruction places one rasterized glyph inside a measured block.
// DX/DY are the glyph's ink origin relative to the block's ink box
// top-left corner.
type Instruction struct {
	DX, DY int
	Ink    glyph.Raster
}

// Metrics is the tight ink bounding box of a shaped string plus the draw
// instructions needed to paint it. A zero Metrics (Width and Height 0)
// means the string produced no ink and the block must be skipped.
type Metrics struct {
	Width  int
	Height int
	Glyphs []Instruction
}

// Empty reports whether the block has nothing to draw.
func (m Metrics) Empty() bool { return m.Width <= 0 || m.Height <= 0 }

// Measure shapes text at the given point size and unions every glyph's
// ink rectangle into the block's bounding box. The union is taken over
// ink, not advances: italic overhang and overshoot can extend outside
// the nominal advance cell, and clipping them would chop glyph edges.
func Measure(src glyph.Source, text string, size float64) Metrics {
	shaped := src.Shape(text, size)
	if len(shaped) == 0 {
		return Metrics{}
	}

	type inked struct {
		x, y int
		ras  glyph.Raster
	}
	var (
		boxes                  []inked
		minX, minY, maxX, maxY int
		first                  = true
	)
	for _, g := range shaped {
		ras, ok := src.Rasterize(g)
		if !ok || ras.Width <= 0 || ras.Height <= 0 {
			continue
		}
		x := g.PenX + ras.Left
		y := g.PenY + ras.Top
		if first {
			minX, minY = x, y
			maxX, maxY = x+ras.Width, y+ras.Height
			first = false
		} else {
			if x < minX {
				minX = x
			}
			if y < minY {
				minY = y
			}
			if x+ras.Width > maxX {
				maxX = x + ras.Width
			}
			if y+ras.Height > maxY {
				maxY = y + ras.Height
			}
		}
		boxes = append(boxes, inked{x: x, y: y, ras: ras})
	}
	if first {
		// Whitespace-only strings shape fine but leave no ink.
		return Metrics{}
	}

	m := Metrics{Width: maxX - minX, Height: maxY - minY}
	m.Glyphs = make([]Instruction, 0, len(boxes))
	for _, b := range boxes {
		m.Glyphs = append(m.Glyphs, Instruction{DX: b.x - minX, DY: b.y - minY, Ink: b.ras})
	}
	return m
}
