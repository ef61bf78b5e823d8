package config

import (
	"os"
	"strconv"
)

// Environment variables read once at startup. There are no CLI flags for
// these: the clock is driven over its command stream, and the host
// environment decides where the surface and the font live.
const (
	EnvDevice   = "FB_DEVICE"
	EnvFontPath = "FONT_PATH"
	EnvColor    = "COLOR"
	EnvTimeSize = "TIME_SIZE"
	EnvDateSize = "DATE_SIZE"
)

const (
	DefaultDevice   = "/dev/fb0"
	DefaultFontPath = "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf"
	DefaultColor    = "#00FF00"
	DefaultTimeSize = 280.0
	DefaultDateSize = 90.0
)

// Config is the startup configuration. Color stays a raw hex string here;
// parsing (with its green fallback) is the render state's business.
type Config struct {
	DevicePath string
	FontPath   string
	Color      string
	TimeSize   float64
	DateSize   float64
}

// FromEnv returns the defaults overridden by whatever environment
// variables are set. Malformed sizes silently keep the default; config
// problems must never stop the clock from coming up.
func FromEnv() Config {
	cfg := Config{
		DevicePath: DefaultDevice,
		FontPath:   DefaultFontPath,
		Color:      DefaultColor,
		TimeSize:   DefaultTimeSize,
		DateSize:   DefaultDateSize,
	}
	if v := os.Getenv(EnvDevice); v != "" {
		cfg.DevicePath = v
	}
	if v := os.Getenv(EnvFontPath); v != "" {
		cfg.FontPath = v
	}
	if v := os.Getenv(EnvColor); v != "" {
		cfg.Color = v
	}
	if v := os.Getenv(EnvTimeSize); v != "" {
		if size, err := strconv.ParseFloat(v, 64); err == nil && size > 0 {
			cfg.TimeSize = size
		}
	}
	if v := os.Getenv(EnvDateSize); v != "" {
		if size, err := strconv.ParseFloat(v, 64); err == nil && size > 0 {
			cfg.DateSize = size
		}
	}
	return cfg
}
