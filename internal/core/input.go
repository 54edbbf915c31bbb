package core

import "time"

// Action represents a semantic input action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionConfirm        // Enter, Space
	ActionBack           // Escape
	ActionQuit           // Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is a set of actions active during one update.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// HeldKeys approximates key-held state for terminals, which only report
// presses and auto-repeat. An action counts as held until no press for it
// has arrived within the hold window.
type HeldKeys struct {
	window time.Duration
	last   map[Action]time.Duration
}

// NewHeldKeys creates a tracker with the given hold window.
func NewHeldKeys(window time.Duration) *HeldKeys {
	return &HeldKeys{
		window: window,
		last:   make(map[Action]time.Duration),
	}
}

// Press records a press of a at time now.
func (h *HeldKeys) Press(a Action, now time.Duration) {
	if a == ActionNone {
		return
	}
	h.last[a] = now
}

// Reset releases every action.
func (h *HeldKeys) Reset() {
	clear(h.last)
}

// Frame returns the actions still held at time now.
func (h *HeldKeys) Frame(now time.Duration) InputFrame {
	f := NewInputFrame()
	for a, t := range h.last {
		if now-t <= h.window {
			f.Set(a)
		}
	}
	return f
}
