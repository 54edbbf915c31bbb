// Package statemachine drives program flow as a set of named states
// (scenes). Exactly one state is active at a time; when it reports Done the
// machine cleans it up and starts the state it names as Next, handing over
// whatever it chose to persist.
package statemachine

import (
	"time"

	"github.com/vovakirdan/arcade-collab/internal/core"
)

// Persist carries data from a finishing state to the next one.
type Persist map[string]any

// State is one scene managed by a Machine.
type State interface {
	// Startup is called each time the state becomes active.
	Startup(now time.Duration, persist Persist)
	// Cleanup is called when the state is left. It must reset Done and
	// returns the data to hand to the next state.
	Cleanup() Persist

	// HandleEvent receives discrete input while the state is active.
	HandleEvent(ev core.Event)
	// Update advances the state by one frame.
	Update(f core.Frame)
	// Render draws the state into dst.
	Render(dst *core.Screen)

	Done() bool
	Quit() bool
	Next() string
	Previous() string
	SetPrevious(name string)
}

// Base implements the bookkeeping half of State. Embed it and override
// what the scene needs.
type Base struct {
	done      bool
	quit      bool
	next      string
	previous  string
	persist   Persist
	startTime time.Duration
}

// Startup records the start time and the handed-over data.
func (b *Base) Startup(now time.Duration, persist Persist) {
	b.persist = persist
	b.startTime = now
}

// Cleanup resets Done and hands the persisted data on.
func (b *Base) Cleanup() Persist {
	b.done = false
	return b.persist
}

func (b *Base) HandleEvent(core.Event) {}
func (b *Base) Update(core.Frame)      {}
func (b *Base) Render(*core.Screen)    {}

func (b *Base) Done() bool               { return b.done }
func (b *Base) Quit() bool               { return b.quit }
func (b *Base) Next() string             { return b.next }
func (b *Base) Previous() string         { return b.previous }
func (b *Base) SetPrevious(name string)  { b.previous = name }
func (b *Base) StartTime() time.Duration { return b.startTime }

// SetNext sets the state to switch to once done, without finishing.
func (b *Base) SetNext(name string) {
	b.next = name
}

// Finish marks the state done and names its successor.
func (b *Base) Finish(next string) {
	b.next = next
	b.done = true
}

// Exit marks the state done and asks the machine to stop.
func (b *Base) Exit() {
	b.done = true
	b.quit = true
}

// Persisted returns the data handed to Startup, never nil.
func (b *Base) Persisted() Persist {
	if b.persist == nil {
		b.persist = Persist{}
	}
	return b.persist
}
