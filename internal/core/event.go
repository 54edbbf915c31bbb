package core

import "time"

// EventType classifies an Event.
type EventType int

const (
	EventKey EventType = iota
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventQuit
)

// Event is a single discrete input delivered to the active scene.
// Key events carry the terminal key name (e.g. "esc", "left", "a") and the
// Action it maps to; mouse events carry render-space coordinates.
type Event struct {
	Type   EventType
	Key    string
	Action Action
	X, Y   int
}

// KeyEvent builds a key press event.
func KeyEvent(key string, a Action) Event {
	return Event{Type: EventKey, Key: key, Action: a}
}

// MouseEvent builds a mouse event at (x, y).
func MouseEvent(t EventType, x, y int) Event {
	return Event{Type: t, X: x, Y: y}
}

// String returns the key name, so events can be matched against key bindings.
func (e Event) String() string {
	return e.Key
}

// IsKey reports whether e is a key press.
func (e Event) IsKey() bool {
	return e.Type == EventKey
}

// Pos returns the mouse position of e.
func (e Event) Pos() Point {
	return Point{X: e.X, Y: e.Y}
}

// Frame is everything a scene needs for one update.
type Frame struct {
	// Now is the time elapsed since the program started.
	Now time.Duration
	// Dt is the time since the previous update.
	Dt time.Duration
	// Held contains the actions currently held down.
	Held InputFrame
	// Mouse is the last known pointer position in render space.
	Mouse Point
}

// Holding reports whether a is held this frame.
func (f Frame) Holding(a Action) bool {
	return f.Held.Has(a)
}

// Seconds returns Dt in seconds.
func (f Frame) Seconds() float64 {
	return f.Dt.Seconds()
}

// StyledView is implemented by scenes that render themselves as a styled
// string instead of drawing cells.
type StyledView interface {
	View(width, height int) string
}
