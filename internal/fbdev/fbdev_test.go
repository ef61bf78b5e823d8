package fbdev

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "descriptor")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestGeometry(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantW   int
		wantH   int
	}{
		{"plain", "1024,600", 1024, 600},
		{"trailing newline", "800,480\n", 800, 480},
		{"spaces around fields", " 640 , 480 ", 640, 480},
		{"missing comma falls back", "1024x600", DefaultWidth, DefaultHeight},
		{"garbage width keeps default", "abc,600", DefaultWidth, 600},
		{"zero height keeps default", "1024,0", 1024, DefaultHeight},
		{"empty file falls back", "", DefaultWidth, DefaultHeight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := Geometry(writeTemp(t, tt.content))
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("Geometry = %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
		})
	}

	t.Run("missing file falls back", func(t *testing.T) {
		w, h := Geometry(filepath.Join(t.TempDir(), "nope"))
		if w != DefaultWidth || h != DefaultHeight {
			t.Errorf("Geometry = %dx%d, want defaults", w, h)
		}
	})
}

func TestBitsPerPixel(t *testing.T) {
	if got := BitsPerPixel(writeTemp(t, "16\n")); got != 16 {
		t.Errorf("got %d, want 16", got)
	}
	if got := BitsPerPixel(writeTemp(t, "32")); got != 32 {
		t.Errorf("got %d, want 32", got)
	}
	if got := BitsPerPixel(filepath.Join(t.TempDir(), "nope")); got != 16 {
		t.Errorf("missing file: got %d, want default 16", got)
	}
	if got := BitsPerPixel(writeTemp(t, "lots")); got != 16 {
		t.Errorf("garbage: got %d, want default 16", got)
	}
}

func TestMemoryDevice(t *testing.T) {
	dev := NewMemory(320, 240)
	pix := dev.Pixels()
	if len(pix) != 320*240*2 {
		t.Fatalf("buffer = %d bytes, want %d", len(pix), 320*240*2)
	}
	for i, b := range pix {
		if b != 0 {
			t.Fatalf("byte %d = %#02x, want zeroed buffer", i, b)
		}
	}
	if err := dev.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestOpenMissingDeviceFails(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "fb9"), 64, 64); err == nil {
		t.Fatal("expected error for missing device node")
	}
}
