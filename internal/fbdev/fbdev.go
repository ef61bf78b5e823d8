// Package fbdev owns the physical output surface: probing its geometry
// from sysfs and holding the memory-mapped pixel region for the process
// lifetime. The mapping is acquired once at startup and released on exit.
package fbdev

import (
	"os"
	"strconv"
	"strings"
)

// Fallback geometry when the sysfs descriptor is missing or malformed.
const (
	DefaultWidth  = 1920
	DefaultHeight = 1200
)

// DefaultSizePath is the conventional sysfs descriptor exposing the
// framebuffer's virtual size as "<width>,<height>".
const DefaultSizePath = "/sys/class/graphics/fb0/virtual_size"

// DefaultBPPPath exposes the framebuffer's bits per pixel.
const DefaultBPPPath = "/sys/class/graphics/fb0/bits_per_pixel"

// Device is a write target of Width*Height RGB565 pixels. Pixels returns
// the live on-screen buffer; whoever writes it is mutating the display.
type Device interface {
	Pixels() []byte
	Close() error
}

// Geometry reads "<width>,<height>" from the sysfs descriptor at path.
// Absent or malformed content substitutes the defaults instead of
// failing: a clock with guessed geometry beats no clock at all.
func Geometry(path string) (width, height int) {
	width, height = DefaultWidth, DefaultHeight
	raw, err := os.ReadFile(path)
	if err != nil {
		return width, height
	}
	parts := strings.Split(strings.TrimSpace(string(raw)), ",")
	if len(parts) != 2 {
		return width, height
	}
	if w, err := strconv.Atoi(strings.TrimSpace(parts[0])); err == nil && w > 0 {
		width = w
	}
	if h, err := strconv.Atoi(strings.TrimSpace(parts[1])); err == nil && h > 0 {
		height = h
	}
	return width, height
}

// BitsPerPixel reads the framebuffer depth from sysfs, defaulting to 16
// when the descriptor is absent.
func BitsPerPixel(path string) int {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 16
	}
	bpp, err := strconv.Atoi(strings.TrimSpace(string(raw)))
	if err != nil {
		return 16
	}
	return bpp
}

// MemoryDevice is an in-RAM surface with the same contract as the mapped
// framebuffer, for tests and the simulator.
type MemoryDevice struct {
	pix []byte
}

// NewMemory returns a zeroed width x height RGB565 memory surface.
func NewMemory(width, height int) *MemoryDevice {
	return &MemoryDevice{pix: make([]byte, width*height*2)}
}

func (m *MemoryDevice) Pixels() []byte { return m.pix }
func (m *MemoryDevice) Close() error   { return nil }
