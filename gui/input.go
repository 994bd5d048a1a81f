package gui

import "airmouse/hal"

// InputType is the phase of a button event.
type InputType uint8

const (
	InputTypePress InputType = iota
	InputTypeRelease
)

func (t InputType) String() string {
	switch t {
	case InputTypePress:
		return "Press"
	case InputTypeRelease:
		return "Release"
	default:
		return "Unknown"
	}
}

// InputEvent is a button event as delivered to a ViewPort input callback.
type InputEvent struct {
	Key  hal.KeyCode
	Type InputType
}

func inputFromKey(ev hal.KeyEvent) InputEvent {
	t := InputTypeRelease
	if ev.Press {
		t = InputTypePress
	}
	return InputEvent{Key: ev.Code, Type: t}
}
