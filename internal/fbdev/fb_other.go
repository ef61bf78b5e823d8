//go:build !linux

package fbdev

import "fmt"

// FB exists on non-Linux targets only so the tree builds; there is no
// framebuffer to map. Use NewMemory (or the simulator) instead.
type FB struct{}

func Open(path string, width, height int) (*FB, error) {
	return nil, fmt.Errorf("framebuffer device %s: not supported on this platform", path)
}

func (fb *FB) Pixels() []byte { return nil }
func (fb *FB) Close() error   { return nil }
