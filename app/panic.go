package app

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"airmouse/gui"
	"airmouse/hal"
)

// ReportPanic logs a recovered panic and paints it on the screen. It is meant
// for targets without a console, where the process cannot simply die.
func ReportPanic(h hal.HAL, v any) {
	msg := fmt.Sprintf("AirMouse panic: %v", v)
	if l := h.Logger(); l != nil {
		l.WriteLineString(msg)
	}

	disp := h.Display()
	if disp == nil {
		return
	}
	fb := disp.Framebuffer()
	if fb == nil {
		return
	}

	c := gui.NewCanvas(fb)
	c.Clear()
	cols := 1
	if w := c.StringWidth("0"); w > 0 && c.Width()/w > 1 {
		cols = c.Width() / w
	}

	y := 2
	for len(msg) > 0 && y+c.LineHeight() <= c.Height() {
		line, rest := takeRunes(msg, cols)
		c.DrawStrAligned(0, y, gui.AlignLeft, gui.AlignTop, line)
		y += c.LineHeight()
		msg = strings.TrimLeft(rest, " ")
	}
	_ = c.Display()
}

// takeRunes splits s after at most n runes.
func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	i, count := 0, 0
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}
