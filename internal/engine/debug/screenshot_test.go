package debug

import (
	"os"
	"strings"
	"testing"
)

func TestCaptureFromPixels(t *testing.T) {
	dir := t.TempDir()
	sc := NewScreenshotCapture(dir, "view")

	// 2x2 RGBA frame, bottom row red, top row blue (GL order).
	pixels := []byte{
		255, 0, 0, 255, 255, 0, 0, 255, // GL row 0 (bottom)
		0, 0, 255, 255, 0, 0, 255, 255, // GL row 1 (top)
	}

	path, err := sc.CaptureFromPixels(pixels, 2, 2)
	if err != nil {
		t.Fatalf("capture: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat %s: %v", path, err)
	}
	if info.Size() == 0 {
		t.Error("screenshot file is empty")
	}
	if !strings.HasSuffix(path, ".webp") {
		t.Errorf("expected .webp filename, got %s", path)
	}
	if !strings.Contains(path, "view_") {
		t.Errorf("expected prefix in filename, got %s", path)
	}
}

func TestCaptureFromPixelsSizeMismatch(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "view")
	if _, err := sc.CaptureFromPixels(make([]byte, 7), 2, 2); err == nil {
		t.Error("expected error for short pixel buffer")
	}
}
