// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Event types for game use
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMotion
	EventFingerDown
	EventFingerMotion
	EventFingerUp
)

// Event represents a processed input event. Mouse motion carries
// relative deltas (the cursor is grabbed); finger events carry
// normalized [0,1] screen coordinates plus normalized deltas.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int

	XRel int
	YRel int

	FingerID int64
	X        float32
	Y        float32
	DX       float32
	DY       float32
}

// Input handles all input processing.
type Input struct {
	events []Event
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events and converts them to game events.
// Returns true if the game should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0] // Clear previous events

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			return true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Repeat != 0 {
				break
			}
			if e.Type == sdl.KEYDOWN {
				i.events = append(i.events, Event{
					Type: EventKeyDown,
					Key:  e.Keysym.Scancode,
				})
			} else if e.Type == sdl.KEYUP {
				i.events = append(i.events, Event{
					Type: EventKeyUp,
					Key:  e.Keysym.Scancode,
				})
			}

		case *sdl.MouseMotionEvent:
			i.events = append(i.events, Event{
				Type: EventMouseMotion,
				XRel: int(e.XRel),
				YRel: int(e.YRel),
			})

		case *sdl.TouchFingerEvent:
			var t EventType
			switch e.Type {
			case sdl.FINGERDOWN:
				t = EventFingerDown
			case sdl.FINGERMOTION:
				t = EventFingerMotion
			case sdl.FINGERUP:
				t = EventFingerUp
			default:
				continue
			}
			i.events = append(i.events, Event{
				Type:     t,
				FingerID: int64(e.FingerID),
				X:        e.X,
				Y:        e.Y,
				DX:       e.DX,
				DY:       e.DY,
			})
		}
	}

	return false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// IsKeyPressed checks if a specific key was pressed this frame.
func (i *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == scancode {
			return true
		}
	}
	return false
}
