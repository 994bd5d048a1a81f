package gui

import (
	"image/color"

	"airmouse/hal"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Font selects one of the two system faces.
type Font uint8

const (
	// FontPrimary is the bold face used for titles.
	FontPrimary Font = iota
	// FontSecondary is the regular face used for body text.
	FontSecondary
)

// Align positions text relative to an anchor point.
type Align uint8

const (
	AlignLeft Align = iota
	AlignRight
	AlignTop
	AlignBottom
	AlignCenter
)

var (
	colorBlack = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	colorWhite = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

var face tinyfont.Fonter = &proggy.TinySZ8pt7b

var _ drivers.Displayer = (*Canvas)(nil)

// Canvas draws text onto a framebuffer. The GUI hands one to draw callbacks;
// code that paints outside the GUI, such as a crash screen, makes its own.
type Canvas struct {
	fb   hal.Framebuffer
	font Font
	fg   color.RGBA
	bg   color.RGBA

	ascent     int
	lineHeight int
}

// NewCanvas returns a canvas drawing black text on white into fb.
func NewCanvas(fb hal.Framebuffer) *Canvas {
	c := &Canvas{fb: fb, fg: colorBlack, bg: colorWhite}
	c.ascent, c.lineHeight = faceMetrics(face)
	return c
}

// faceMetrics returns the distance from the top of a line to the baseline
// and the line advance.
func faceMetrics(f tinyfont.Fonter) (ascent, lineHeight int) {
	for _, r := range "AHbdfhklt|" {
		info := f.GetGlyph(r).Info()
		if a := -int(info.YOffset); a > ascent {
			ascent = a
		}
	}
	lineHeight = int(f.GetYAdvance())
	if lineHeight < ascent {
		lineHeight = ascent
	}
	return ascent, lineHeight
}

func (c *Canvas) Width() int  { return c.fb.Width() }
func (c *Canvas) Height() int { return c.fb.Height() }

// Clear fills the canvas with the background colour and resets the font.
func (c *Canvas) Clear() {
	c.font = FontSecondary
	c.fb.ClearRGB(c.bg.R, c.bg.G, c.bg.B)
}

func (c *Canvas) SetFont(f Font) { c.font = f }

// LineHeight returns the vertical advance between text lines.
func (c *Canvas) LineHeight() int { return c.lineHeight }

// StringWidth returns the width in pixels of s in the current font.
func (c *Canvas) StringWidth(s string) int {
	_, w := tinyfont.LineWidth(face, s)
	if c.font == FontPrimary && w > 0 {
		w++
	}
	return int(w)
}

// DrawStr draws s with its baseline at y.
func (c *Canvas) DrawStr(x, y int, s string) {
	tinyfont.WriteLine(c, face, int16(x), int16(y), s, c.fg)
	if c.font == FontPrimary {
		tinyfont.WriteLine(c, face, int16(x+1), int16(y), s, c.fg)
	}
}

// DrawStrAligned draws a single line of text anchored at (x, y).
func (c *Canvas) DrawStrAligned(x, y int, h, v Align, s string) {
	switch h {
	case AlignCenter:
		x -= c.StringWidth(s) / 2
	case AlignRight:
		x -= c.StringWidth(s)
	}

	switch v {
	case AlignTop:
		y += c.ascent
	case AlignCenter:
		y += c.ascent / 2
	}
	c.DrawStr(x, y, s)
}

// Size implements drivers.Displayer.
func (c *Canvas) Size() (x, y int16) {
	return int16(c.fb.Width()), int16(c.fb.Height())
}

// SetPixel implements drivers.Displayer. Pixels outside the framebuffer are
// dropped.
func (c *Canvas) SetPixel(x, y int16, col color.RGBA) {
	if c.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := c.fb.Buffer()
	if buf == nil {
		return
	}

	ix, iy := int(x), int(y)
	if ix < 0 || ix >= c.fb.Width() || iy < 0 || iy >= c.fb.Height() {
		return
	}

	pixel := hal.RGB565(col.R, col.G, col.B)
	off := iy*c.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

// Display implements drivers.Displayer.
func (c *Canvas) Display() error { return c.fb.Present() }
