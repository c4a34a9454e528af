// Package input polls SDL2 events and turns them into logical control
// events using the configured key bindings.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/woodland/internal/controls"
)

// EventType classifies an Event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventFocusLost
	EventAction
	EventMouseMove
	EventMouseButton
)

// Event is one processed input event.
type Event struct {
	Type    EventType
	Action  controls.Action
	Pressed bool // key or button went down
	Left    bool // left mouse button
	X, Y    float32
	Width   int
	Height  int
}

// Input translates SDL events.
type Input struct {
	bindings controls.Bindings
	events   []Event
}

// New creates an input handler for the given bindings.
func New(b controls.Bindings) *Input {
	return &Input{
		bindings: b,
		events:   make([]Event, 0, 16),
	}
}

// Poll drains the SDL queue. The returned slice is reused by the next call.
func (i *Input) Poll() []Event {
	i.events = i.events[:0]
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		if e, ok := i.translate(ev); ok {
			i.events = append(i.events, e)
		}
	}
	return i.events
}

func (i *Input) translate(ev sdl.Event) (Event, bool) {
	switch e := ev.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}, true

	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_SIZE_CHANGED:
			return Event{Type: EventWindowResize, Width: int(e.Data1), Height: int(e.Data2)}, true
		case sdl.WINDOWEVENT_FOCUS_LOST:
			return Event{Type: EventFocusLost}, true
		}

	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return Event{}, false
		}
		a := i.bindings.Lookup(sdl.GetScancodeName(e.Keysym.Scancode))
		if a == controls.None {
			return Event{}, false
		}
		return Event{Type: EventAction, Action: a, Pressed: e.Type == sdl.KEYDOWN}, true

	case *sdl.MouseMotionEvent:
		return Event{Type: EventMouseMove, X: float32(e.X), Y: float32(e.Y)}, true

	case *sdl.MouseButtonEvent:
		return Event{
			Type:    EventMouseButton,
			Pressed: e.Type == sdl.MOUSEBUTTONDOWN,
			Left:    e.Button == sdl.BUTTON_LEFT,
			X:       float32(e.X),
			Y:       float32(e.Y),
		}, true
	}
	return Event{}, false
}
