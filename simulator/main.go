// The simulator runs the full render pipeline against an in-memory
// surface instead of a framebuffer device, dumping every published frame
// as a PNG. It speaks the same command protocol on stdin, so a command
// script can be inspected frame by frame without hardware:
//
//	printf 'TIME 10:30\nDATE Mon 24 Aug\nQUIT\n' | simulator -out /tmp/frames
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/nightdial/nightdial/internal/control"
	"github.com/nightdial/nightdial/internal/fbdev"
	"github.com/nightdial/nightdial/internal/glyph"
	"github.com/nightdial/nightdial/internal/render"
	"github.com/nightdial/nightdial/internal/state"

	"golang.org/x/image/font/gofont/gobold"
)

func main() {
	fontPath := flag.String("font", "", "TTF font file; empty uses the embedded Go Bold font")
	width := flag.Int("width", 800, "surface width in pixels")
	height := flag.Int("height", 480, "surface height in pixels")
	outDir := flag.String("out", "frames", "directory for PNG frame dumps")
	timeSize := flag.Float64("time-size", 160, "time block point size")
	dateSize := flag.Float64("date-size", 48, "date block point size")
	flag.Parse()

	fontData := gobold.TTF
	if *fontPath != "" {
		data, err := os.ReadFile(*fontPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "read font:", err)
			os.Exit(1)
		}
		fontData = data
	}
	glyphs, err := glyph.NewTrueTypeSource(fontData)
	if err != nil {
		fmt.Fprintln(os.Stderr, "font:", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		fmt.Fprintln(os.Stderr, "out dir:", err)
		os.Exit(1)
	}

	dev := fbdev.NewMemory(*width, *height)
	dumper := &frameDumper{
		renderer: render.New(dev, glyphs, *width, *height),
		dev:      dev,
		width:    *width,
		height:   *height,
		dir:      *outDir,
	}

	st := state.New()
	st.TimeSize = *timeSize
	st.DateSize = *dateSize

	interp := &control.Interpreter{State: st, Render: dumper}
	if err := interp.Run(os.Stdin); err != nil {
		fmt.Fprintln(os.Stderr, "simulator:", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d frames to %s\n", dumper.frames, *outDir)
}

// frameDumper renders like the real pipeline and then snapshots the
// published surface to frame-NNNN.png.
type frameDumper struct {
	renderer *render.Renderer
	dev      *fbdev.MemoryDevice
	width    int
	height   int
	dir      string
	frames   int
}

func (d *frameDumper) Render(st *state.RenderState) {
	d.renderer.Render(st)
	d.frames++
	name := filepath.Join(d.dir, fmt.Sprintf("frame-%04d.png", d.frames))
	if err := writePNG(name, d.dev.Pixels(), d.width, d.height); err != nil {
		fmt.Fprintln(os.Stderr, "frame dump:", err)
	}
}

func writePNG(path string, pix []byte, width, height int) error {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := binary.LittleEndian.Uint16(pix[(y*width+x)*2:])
			r, g, b := render.Unpack565(v)
			off := img.PixOffset(x, y)
			img.Pix[off] = r
			img.Pix[off+1] = g
			img.Pix[off+2] = b
			img.Pix[off+3] = 0xFF
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
