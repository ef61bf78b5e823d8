package state

import "strconv"

// MaxShift bounds the SHIFT offsets in pixels, either direction.
const MaxShift = 10

// DefaultMargin is the minimum distance in pixels kept between a text
// canvas and any screen edge.
const DefaultMargin = 30

// RGB is an 8-bit-per-channel color before brightness scaling and
// RGB565 packing.
type RGB struct {
	R, G, B uint8
}

// Green is the fallback color used when a COLOR argument cannot be parsed.
var Green = RGB{R: 0, G: 255, B: 0}

// RenderState holds everything the render cycle needs to draw a frame.
// There is exactly one instance, owned by the command loop and passed by
// pointer; it is only mutated between renders, never during one.
type RenderState struct {
	TimeText string
	DateText string

	Color      RGB
	Brightness float64 // [0,1]

	TimeSize float64 // point size of the time block
	DateSize float64 // point size of the date block

	ShiftX int // [-MaxShift, MaxShift]
	ShiftY int
	Margin int
}

// New returns a RenderState with the stock defaults. Callers normally
// override Color and the point sizes from config afterwards.
func New() *RenderState {
	return &RenderState{
		Color:      Green,
		Brightness: 1.0,
		TimeSize:   280,
		DateSize:   90,
		Margin:     DefaultMargin,
	}
}

// ParseHexColor parses "#rrggbb" (leading '#' optional). Anything that is
// not six hex digits falls back to pure green rather than erroring, so a
// garbled COLOR command can never take the display down.
func ParseHexColor(s string) RGB {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return Green
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Green
	}
	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}

// ClampBrightness restricts v to [0,1].
func ClampBrightness(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ClampShift restricts v to [-MaxShift, MaxShift].
func ClampShift(v int) int {
	if v < -MaxShift {
		return -MaxShift
	}
	if v > MaxShift {
		return MaxShift
	}
	return v
}
