package app

import (
	"airmouse/gui"
	"airmouse/hal"
)

// Clicker maps button events onto the two click output lines.
type Clicker struct {
	right hal.GPIOPin
	left  hal.GPIOPin
}

// NewClicker returns a Clicker driving the click pins of g. Missing pins are
// skipped silently.
func NewClicker(g hal.GPIO) *Clicker {
	c := &Clicker{}
	if g == nil {
		return c
	}
	if hal.PinRightClick < g.PinCount() {
		c.right = g.Pin(hal.PinRightClick)
	}
	if hal.PinLeftClick < g.PinCount() {
		c.left = g.Pin(hal.PinLeftClick)
	}
	return c
}

// Apply updates st for ev and mirrors the change onto the output pins. The
// caller must hold st's lock. It reports false once the user asked to quit.
func (c *Clicker) Apply(ev Event, st *State) (keepRunning bool) {
	if ev.Type != EventTypeKey {
		return true
	}

	in := ev.Input
	switch in.Key {
	case hal.KeyRight:
		switch in.Type {
		case gui.InputTypePress:
			st.rightClickActive = true
			drive(c.right, true)
		case gui.InputTypeRelease:
			st.rightClickActive = false
			drive(c.right, false)
		}
	case hal.KeyLeft:
		switch in.Type {
		case gui.InputTypePress:
			st.leftClickActive = true
			drive(c.left, true)
		case gui.InputTypeRelease:
			st.leftClickActive = false
			drive(c.left, false)
		}
	case hal.KeyBack:
		if in.Type == gui.InputTypePress {
			return false
		}
	}
	return true
}

// drive reconfigures pin as a fast push-pull output and sets its level.
// Errors are dropped: a stuck line is not worth stopping the loop for.
func drive(pin hal.GPIOPin, level bool) {
	if pin == nil {
		return
	}
	_ = pin.Configure(hal.GPIOModeOutputPushPull, hal.GPIOPullNone, hal.GPIOSpeedVeryHigh)
	_ = pin.Write(level)
}
