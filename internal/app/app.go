package app

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/nightdial/nightdial/internal/config"
	"github.com/nightdial/nightdial/internal/control"
	"github.com/nightdial/nightdial/internal/fbdev"
	"github.com/nightdial/nightdial/internal/glyph"
	"github.com/nightdial/nightdial/internal/render"
	"github.com/nightdial/nightdial/internal/state"
	"github.com/nightdial/nightdial/internal/system"
)

// App acquires the process-lifetime resources (surface mapping, font),
// wires the render pipeline to the command interpreter, and runs the
// blocking command loop until QUIT or end of input.
type App struct {
	Config config.Config
	Logger Logger

	// SizePath/BPPPath override the sysfs descriptors in tests.
	SizePath string
	BPPPath  string
}

func New(cfg config.Config) *App {
	return &App{
		Config:   cfg,
		Logger:   NoopLogger{},
		SizePath: fbdev.DefaultSizePath,
		BPPPath:  fbdev.DefaultBPPPath,
	}
}

// Run blocks until the command stream ends. Startup failures (device,
// mapping, font) return an error with nothing on screen; once the loop
// is running, no command input can bring it back here with an error
// other than a failed read on input itself.
func (app *App) Run(input io.Reader) error {
	width, height := fbdev.Geometry(app.SizePath)
	app.Logger.Infof("app", "surface %dx%d", width, height)

	if bpp := fbdev.BitsPerPixel(app.BPPPath); bpp != 16 {
		return fmt.Errorf("framebuffer reports %d bpp, need 16 (RGB565)", bpp)
	}

	dev, err := fbdev.Open(app.Config.DevicePath, width, height)
	if err != nil {
		return err
	}
	defer dev.Close()

	fontData, err := os.ReadFile(app.Config.FontPath)
	if err != nil {
		return fmt.Errorf("read font: %w", err)
	}
	glyphs, err := glyph.NewTrueTypeSource(fontData)
	if err != nil {
		return err
	}
	app.Logger.Infof("app", "font loaded from %s", app.Config.FontPath)

	st := state.New()
	st.Color = state.ParseHexColor(app.Config.Color)
	st.TimeSize = app.Config.TimeSize
	st.DateSize = app.Config.DateSize

	renderer := render.New(dev, glyphs, width, height)
	renderer.Logger = app.Logger

	// Suppress the console cursor while we own the surface. Best effort:
	// headless test rigs have no VT and the clock still works there.
	if err := system.SetGraphicsMode(); err != nil {
		app.Logger.Errorf("tty", "set graphics mode failed: %v", err)
	}
	if err := system.HideCursor(); err != nil {
		app.Logger.Errorf("tty", "hide cursor failed: %v", err)
	}
	defer func() {
		if err := system.ShowCursor(); err != nil {
			app.Logger.Errorf("tty", "show cursor failed: %v", err)
		}
		if err := system.RestoreTextMode(); err != nil {
			app.Logger.Errorf("tty", "restore text mode failed: %v", err)
		}
	}()

	// Publish an initial black frame so whatever the console left on the
	// framebuffer is gone before the first command arrives.
	renderer.Render(st)

	interp := &control.Interpreter{State: st, Render: renderer, Logger: app.Logger}
	return interp.Run(input)
}

// Logger interface and implementations.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

type FileLogger struct{ w io.Writer }

func NewFileLogger(w io.Writer) FileLogger { return FileLogger{w: w} }
func (l FileLogger) Infof(component string, format string, args ...interface{}) {
	writeLog(l.w, "INFO", component, format, args...)
}
func (l FileLogger) Errorf(component string, format string, args ...interface{}) {
	writeLog(l.w, "ERROR", component, format, args...)
}

func writeLog(w io.Writer, level, component, format string, args ...interface{}) {
	timestamp := time.Now().Format(time.RFC3339)
	msg := fmt.Sprintf(format, args...)
	_, _ = io.WriteString(w, timestamp+" ["+level+"] "+component+": "+msg+"\n")
}
