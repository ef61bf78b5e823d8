package layout

import "math"

// Constraints are the inputs to Place beyond the measured block itself.
type Constraints struct {
	ScreenW int
	ScreenH int
	ShiftX  int
	ShiftY  int
	Margin  int

	// BiasY moves the block's nominal center off the screen center;
	// negative is up. The time block biases up, the date block down.
	BiasY int

	// MinTop, when >= 0, is the lowest Y the canvas top may take. The
	// date block sets it from the time block's bottom edge plus a gap,
	// which is the only coupling between the two blocks.
	MinTop int
}

// Unconstrained is the MinTop value for a block with no sibling above it.
const Unconstrained = -1

// Placement is a resolved block position: the canvas top-left anchor,
// the padded canvas size, and the padding that was applied.
type Placement struct {
	X, Y             int
	CanvasW, CanvasH int
	PadLR, PadTB     int
}

// Bottom returns the first Y row below the canvas.
func (p Placement) Bottom() int { return p.Y + p.CanvasH }

// Pad returns the canvas padding for a point size. Padding grows with the
// size so that overshoot on large glyphs never clips at the canvas edge,
// with floors matching the smallest sizes in use.
func Pad(size float64) (lr, tb int) {
	lr = int(math.Ceil(size / 12))
	if lr < 16 {
		lr = 16
	}
	tb = int(math.Ceil(size / 28))
	if tb < 6 {
		tb = 6
	}
	return lr, tb
}

// Place computes the clamped anchor and padded canvas for a measured
// block. The anchor saturates rather than erroring: it is floored at the
// margin, pulled back so the far edge sits at screen-margin when the
// canvas would cross it, and never goes negative even when the canvas is
// larger than the screen (the compositor bounds-checks each pixel).
func Place(m Metrics, size float64, c Constraints) Placement {
	lr, tb := Pad(size)
	p := Placement{
		CanvasW: m.Width + 2*lr,
		CanvasH: m.Height + 2*tb,
		PadLR:   lr,
		PadTB:   tb,
	}

	centerX := c.ScreenW/2 + c.ShiftX
	centerY := c.ScreenH/2 + c.ShiftY + c.BiasY
	p.X = centerX - p.CanvasW/2
	p.Y = centerY - p.CanvasH/2

	if c.MinTop >= 0 && p.Y < c.MinTop {
		p.Y = c.MinTop
	}
	if p.X < c.Margin {
		p.X = c.Margin
	}
	if p.Y < c.Margin {
		p.Y = c.Margin
	}
	if p.X+p.CanvasW+c.Margin > c.ScreenW {
		p.X = c.ScreenW - p.CanvasW - c.Margin
		if p.X < 0 {
			p.X = 0
		}
	}
	if p.Y+p.CanvasH+c.Margin > c.ScreenH {
		p.Y = c.ScreenH - p.CanvasH - c.Margin
		if p.Y < 0 {
			p.Y = 0
		}
	}
	return p
}
