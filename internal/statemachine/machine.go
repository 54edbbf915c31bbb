package statemachine

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-collab/internal/core"
)

var (
	// ErrUnknownState is returned when starting a state that was never set up.
	ErrUnknownState = errors.New("statemachine: unknown state")
	// ErrNoNext is returned when a state finishes without naming a successor.
	ErrNoNext = errors.New("statemachine: state finished without next")
	// ErrNotStarted is returned by Update before the first Start.
	ErrNotStarted = errors.New("statemachine: not started")
)

// Factory creates a fresh instance of a state.
type Factory func() State

// Option configures a Machine.
type Option func(*Machine)

// WithHoldInstances makes the machine build every state once during Setup
// and reuse that instance on every entry, so a state resumes where it was left.
func WithHoldInstances() Option {
	return func(m *Machine) {
		m.hold = true
	}
}

// WithLogger sets the logger used for state transitions.
func WithLogger(l *log.Logger) Option {
	return func(m *Machine) {
		if l != nil {
			m.logger = l
		}
	}
}

// Machine is a generic state machine.
type Machine struct {
	factories map[string]Factory
	instances map[string]State
	hold      bool

	name  string
	state State
	done  bool
	now   time.Duration

	logger *log.Logger
}

// New creates an empty machine.
func New(opts ...Option) *Machine {
	m := &Machine{
		factories: make(map[string]Factory),
		instances: make(map[string]State),
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Setup replaces the state table.
func (m *Machine) Setup(states map[string]Factory) {
	m.factories = make(map[string]Factory, len(states))
	m.instances = make(map[string]State)
	for name, f := range states {
		m.factories[name] = f
		if m.hold {
			m.instances[name] = f()
		}
	}
}

// Start makes name the current state, at the machine's current time.
func (m *Machine) Start(name string, persist Persist) error {
	return m.StartAt(m.now, name, persist)
}

// StartAt makes name the current state as of now.
func (m *Machine) StartAt(now time.Duration, name string, persist Persist) error {
	m.now = now
	f, ok := m.factories[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownState, name)
	}
	if persist == nil {
		persist = Persist{}
	}

	var st State
	if m.hold {
		st = m.instances[name]
	} else {
		st = f()
	}
	st.Startup(now, persist)

	m.state = st
	m.name = name
	return nil
}

// Update checks whether the current state quit or finished, flips if
// needed, then updates whichever state is current.
func (m *Machine) Update(f core.Frame) error {
	if m.state == nil {
		return ErrNotStarted
	}
	m.now = f.Now

	switch {
	case m.state.Quit():
		m.done = true
	case m.state.Done():
		if err := m.flip(); err != nil {
			return err
		}
	}
	m.state.Update(f)
	return nil
}

func (m *Machine) flip() error {
	previous := m.name
	next := m.state.Next()
	if next == "" {
		return fmt.Errorf("%w: %q", ErrNoNext, previous)
	}

	persist := m.state.Cleanup()
	if err := m.Start(next, persist); err != nil {
		return err
	}
	m.state.SetPrevious(previous)

	m.logger.Debug("state flip", "from", previous, "to", next)
	return nil
}

// HandleEvent passes ev to the current state.
func (m *Machine) HandleEvent(ev core.Event) {
	if m.state != nil {
		m.state.HandleEvent(ev)
	}
}

// Render draws the current state.
func (m *Machine) Render(dst *core.Screen) {
	if m.state != nil {
		m.state.Render(dst)
	}
}

// Done reports whether the current state asked to quit.
func (m *Machine) Done() bool {
	return m.done
}

// Current returns the active state, or nil before Start.
func (m *Machine) Current() State {
	return m.state
}

// CurrentName returns the name of the active state.
func (m *Machine) CurrentName() string {
	return m.name
}

// Names returns the registered state names, sorted.
func (m *Machine) Names() []string {
	names := make([]string, 0, len(m.factories))
	for name := range m.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
