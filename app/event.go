package app

import "airmouse/gui"

// EventType tags what put an Event on the queue.
type EventType uint8

const (
	EventTypeTick EventType = iota
	EventTypeKey
)

func (t EventType) String() string {
	switch t {
	case EventTypeTick:
		return "tick"
	case EventTypeKey:
		return "key"
	default:
		return "unknown"
	}
}

// Event is a queued message for the event loop.
type Event struct {
	Type  EventType
	Input gui.InputEvent
}

func keyEvent(ev gui.InputEvent) Event {
	return Event{Type: EventTypeKey, Input: ev}
}
