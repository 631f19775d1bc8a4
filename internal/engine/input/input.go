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
	EventMouseMove
	EventMouseDown
	EventMouseUp
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
	MouseX int
	MouseY int
	DX     int
	DY     int
	Button uint8
}

// Input handles all input processing.
//
// Held keys come from the SDL keyboard state. Key presses are edges seen
// during the last Update. Relative mouse motion accumulates into a virtual
// cursor that is not bounded by the window.
type Input struct {
	events  []Event
	keys    []uint8
	pressed map[sdl.Scancode]bool

	cursorX float32
	cursorY float32
	moved   bool
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events:  make([]Event, 0, 16),
		pressed: make(map[sdl.Scancode]bool),
	}
}

// Update polls SDL events and converts them to game events.
// Returns true if the game should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0] // Clear previous events
	clear(i.pressed)
	i.moved = false
	quit := false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN {
				if e.Repeat == 0 {
					i.pressed[e.Keysym.Scancode] = true
				}
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
			i.Move(float32(e.XRel), float32(e.YRel))
			i.events = append(i.events, Event{
				Type:   EventMouseMove,
				MouseX: int(e.X),
				MouseY: int(e.Y),
				DX:     int(e.XRel),
				DY:     int(e.YRel),
			})

		case *sdl.MouseButtonEvent:
			if e.Type == sdl.MOUSEBUTTONDOWN {
				i.events = append(i.events, Event{
					Type:   EventMouseDown,
					MouseX: int(e.X),
					MouseY: int(e.Y),
					Button: e.Button,
				})
			} else if e.Type == sdl.MOUSEBUTTONUP {
				i.events = append(i.events, Event{
					Type:   EventMouseUp,
					MouseX: int(e.X),
					MouseY: int(e.Y),
					Button: e.Button,
				})
			}
		}
	}

	i.keys = sdl.GetKeyboardState()
	return quit
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// KeyDown reports whether a key is held.
func (i *Input) KeyDown(code int) bool {
	return code > 0 && code < len(i.keys) && i.keys[code] != 0
}

// KeyPressed reports whether a key went down during the last Update.
func (i *Input) KeyPressed(code int) bool {
	return i.pressed[sdl.Scancode(code)]
}

// Move shifts the virtual cursor by a relative motion.
func (i *Input) Move(dx, dy float32) {
	i.cursorX += dx
	i.cursorY += dy
	i.moved = true
}

// Cursor returns the virtual cursor and whether it moved since the last
// Update.
func (i *Input) Cursor() (x, y float32, moved bool) {
	return i.cursorX, i.cursorY, i.moved
}

// Scancode resolves an SDL key name such as "W", "Up" or "Escape".
func Scancode(name string) (int, bool) {
	code := sdl.GetScancodeFromName(name)
	return int(code), code != sdl.SCANCODE_UNKNOWN
}
