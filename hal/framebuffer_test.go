package hal

import (
	"errors"
	"testing"
)

func TestMemFramebuffer_PresentPublishesFrame(t *testing.T) {
	fb := NewMemFramebuffer(4, 2)
	fb.ClearRGB(255, 255, 255)

	if r, g, b := fb.RGBAt(0, 0); r != 0 || g != 0 || b != 0 {
		t.Fatalf("RGBAt before Present = %d,%d,%d, want 0,0,0", r, g, b)
	}
	if err := fb.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}
	if r, g, b := fb.RGBAt(3, 1); r != 255 || g != 255 || b != 255 {
		t.Fatalf("RGBAt after Present = %d,%d,%d, want 255,255,255", r, g, b)
	}
	if fb.Presents() != 1 {
		t.Fatalf("Presents() = %d, want 1", fb.Presents())
	}

	// Drawing after Present does not leak into the published frame.
	fb.ClearRGB(0, 0, 0)
	if r, _, _ := fb.RGBAt(0, 0); r != 255 {
		t.Fatalf("RGBAt after redraw = %d, want 255", r)
	}
	if r, g, b := fb.RGBAt(4, 0); r != 0 || g != 0 || b != 0 {
		t.Fatalf("RGBAt(out of range) = %d,%d,%d, want 0,0,0", r, g, b)
	}
}

func TestMemFramebuffer_Flush(t *testing.T) {
	fb := NewMemFramebuffer(2, 2)
	want := errors.New("spi")
	var gotW, gotH int
	fb.flush = func(frame []byte, w, h int) error {
		gotW, gotH = w, h
		return want
	}
	if err := fb.Present(); !errors.Is(err, want) {
		t.Fatalf("Present() = %v, want %v", err, want)
	}
	if gotW != 2 || gotH != 2 {
		t.Fatalf("flush size = %dx%d, want 2x2", gotW, gotH)
	}
}

func TestRGB565(t *testing.T) {
	tests := []struct {
		r, g, b uint8
		want    uint16
	}{
		{0, 0, 0, 0x0000},
		{255, 255, 255, 0xFFFF},
		{255, 0, 0, 0xF800},
		{0, 255, 0, 0x07E0},
		{0, 0, 255, 0x001F},
	}
	for _, tt := range tests {
		if got := RGB565(tt.r, tt.g, tt.b); got != tt.want {
			t.Fatalf("RGB565(%d,%d,%d) = %#04x, want %#04x", tt.r, tt.g, tt.b, got, tt.want)
		}
	}
}

func TestSwap565(t *testing.T) {
	src := []byte{0x1F, 0xF8, 0xE0, 0x07, 0xAA}
	dst := make([]byte, 4)
	n := swap565(dst, src)
	if n != 4 {
		t.Fatalf("swap565() = %d, want 4", n)
	}
	want := []byte{0xF8, 0x1F, 0x07, 0xE0}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst = % x, want % x", dst, want)
		}
	}
}
