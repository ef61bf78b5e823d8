// Package render runs the frame cycle: measure and place the text blocks,
// composite them into an off-screen RGB565 buffer, and publish the buffer
// to the device in one pass. The visible surface only ever shows a
// completed frame.
package render

import (
	"github.com/nightdial/nightdial/internal/fbdev"
	"github.com/nightdial/nightdial/internal/glyph"
	"github.com/nightdial/nightdial/internal/render/layout"
	"github.com/nightdial/nightdial/internal/state"
)

// Vertical biases off the screen center give the stacked clock layout:
// time above, date below. BlockGap keeps the date's canvas from riding
// up into the time's canvas whatever the shifts and sizes are.
const (
	TimeBiasY = -60
	DateBiasY = 100
	BlockGap  = 8
)

// Renderer owns the off-screen buffer and the output device.
type Renderer struct {
	Width  int
	Height int
	Stride int

	Glyphs glyph.Source

	dev  fbdev.Device
	back []byte

	Logger interface {
		Infof(string, string, ...interface{})
		Errorf(string, string, ...interface{})
	}
}

// New builds a Renderer for a width x height RGB565 device.
func New(dev fbdev.Device, glyphs glyph.Source, width, height int) *Renderer {
	return &Renderer{
		Width:  width,
		Height: height,
		Stride: width * 2,
		Glyphs: glyphs,
		dev:    dev,
		back:   make([]byte, width*height*2),
	}
}

// block is one laid-out text block, ready for compositing.
type block struct {
	metrics layout.Metrics
	place   layout.Placement
}

// Render draws the full frame for the current state and publishes it.
// Empty text blocks are skipped entirely; rendering with both texts empty
// publishes a black frame.
func (r *Renderer) Render(st *state.RenderState) {
	blocks := r.layOut(st)
	r.compose(blocks, st)
	r.publish()
	if r.Logger != nil {
		r.Logger.Infof("render", "frame published, blocks=%d", len(blocks))
	}
}

// layOut measures and places the non-empty blocks. The date block's
// placement is constrained below the time block's resolved bottom edge;
// that is the only coupling between the two.
func (r *Renderer) layOut(st *state.RenderState) []block {
	cons := layout.Constraints{
		ScreenW: r.Width,
		ScreenH: r.Height,
		ShiftX:  st.ShiftX,
		ShiftY:  st.ShiftY,
		Margin:  st.Margin,
		BiasY:   TimeBiasY,
		MinTop:  layout.Unconstrained,
	}

	var blocks []block
	minTop := layout.Unconstrained
	if m := layout.Measure(r.Glyphs, st.TimeText, st.TimeSize); !m.Empty() {
		p := layout.Place(m, st.TimeSize, cons)
		blocks = append(blocks, block{metrics: m, place: p})
		minTop = p.Bottom() + BlockGap
	}
	if m := layout.Measure(r.Glyphs, st.DateText, st.DateSize); !m.Empty() {
		cons.BiasY = DateBiasY
		cons.MinTop = minTop
		p := layout.Place(m, st.DateSize, cons)
		blocks = append(blocks, block{metrics: m, place: p})
	}
	return blocks
}

// compose clears the whole off-screen buffer and paints every block into
// it. The full clear makes stale pixels impossible without tracking dirty
// rectangles; the publish that follows keeps it tear-free.
func (r *Renderer) compose(blocks []block, st *state.RenderState) {
	for i := range r.back {
		r.back[i] = 0
	}

	baseR := scale(st.Color.R, st.Brightness)
	baseG := scale(st.Color.G, st.Brightness)
	baseB := scale(st.Color.B, st.Brightness)

	for _, b := range blocks {
		originX := b.place.X + b.place.PadLR
		originY := b.place.Y + b.place.PadTB
		for _, ins := range b.metrics.Glyphs {
			r.paintGlyph(originX+ins.DX, originY+ins.DY, ins.Ink, baseR, baseG, baseB)
		}
	}
}

// paintGlyph blends one coverage bitmap at (ox, oy). Every destination
// pixel is bounds-checked; a miscomputed anchor can waste ink off-screen
// but can never write outside the buffer.
func (r *Renderer) paintGlyph(ox, oy int, ink glyph.Raster, baseR, baseG, baseB uint32) {
	for row := 0; row < ink.Height; row++ {
		dy := oy + row
		if dy < 0 || dy >= r.Height {
			continue
		}
		rowOff := dy * r.Stride
		for col := 0; col < ink.Width; col++ {
			dx := ox + col
			if dx < 0 || dx >= r.Width {
				continue
			}
			cov := uint32(ink.Coverage[row*ink.Width+col])
			if cov == 0 {
				continue
			}
			v := Pack565(
				uint8(baseR*cov/255),
				uint8(baseG*cov/255),
				uint8(baseB*cov/255),
			)
			off := rowOff + dx*2
			r.back[off] = byte(v)
			r.back[off+1] = byte(v >> 8)
		}
	}
}

// publish blits the completed frame to the device in a single copy. This
// is the only code that touches the visible surface.
func (r *Renderer) publish() {
	copy(r.dev.Pixels(), r.back)
}

// scale applies brightness to one channel, clamped to 8 bits.
func scale(c uint8, brightness float64) uint32 {
	v := float64(c) * brightness
	if v > 255 {
		v = 255
	}
	if v < 0 {
		v = 0
	}
	return uint32(v)
}
