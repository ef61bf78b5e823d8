//go:build linux

package fbdev

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// FB is the memory-mapped hardware framebuffer.
type FB struct {
	file *os.File
	mmap []byte
}

// Open maps width*height*2 bytes of the framebuffer device read-write.
// Any failure here (device missing, mapping shorter than the surface)
// is fatal to the caller: there is nothing to serve without a surface.
func Open(path string, width, height int) (*FB, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	size := width * height * 2
	mem, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("mmap %s (%d bytes): %w", path, size, err)
	}
	if len(mem) < size {
		unix.Munmap(mem)
		f.Close()
		return nil, fmt.Errorf("mmap %s: mapped %d bytes, surface needs %d", path, len(mem), size)
	}
	return &FB{file: f, mmap: mem[:size]}, nil
}

func (fb *FB) Pixels() []byte { return fb.mmap }

func (fb *FB) Close() error {
	var first error
	if fb.mmap != nil {
		if err := unix.Munmap(fb.mmap); err != nil {
			first = err
		}
		fb.mmap = nil
	}
	if fb.file != nil {
		if err := fb.file.Close(); err != nil && first == nil {
			first = err
		}
		fb.file = nil
	}
	return first
}
