// Package snake is the example game: a snake on a walled board that grows
// by eating apples. The scene runs its own state machine through a start
// screen, the game and a death screen.
package snake

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/arcade-collab/internal/core"
	"github.com/vovakirdan/arcade-collab/internal/registry"
	"github.com/vovakirdan/arcade-collab/internal/statemachine"
)

// ID is the scene name of the game.
const ID = "snake"

//go:embed thumb.txt
var thumb string

func init() {
	registry.Register(registry.Info{
		ID:    ID,
		Title: "Snake",
		Kind:  registry.KindGame,
		Thumb: registry.ParseThumb(thumb),
	}, func(env *registry.Env) statemachine.State {
		return New(env)
	})
}

// Scene hosts the nested start, game and death states.
type Scene struct {
	statemachine.Base
	env     *registry.Env
	machine *statemachine.Machine
	play    *play
}

// New creates the snake scene.
func New(env *registry.Env) *Scene {
	cfg := env.Cfg()
	s := &Scene{
		env:     env,
		machine: statemachine.New(statemachine.WithHoldInstances(), statemachine.WithLogger(env.Log())),
		play:    newPlay(env),
	}
	s.machine.Setup(map[string]statemachine.Factory{
		stateStartup: func() statemachine.State { return newAnyKey("Start!", false, cfg) },
		stateGame:    func() statemachine.State { return s.play },
		stateDead:    func() statemachine.State { return newAnyKey("Dead.", true, cfg) },
	})
	return s
}

// Startup begins at the start screen.
func (s *Scene) Startup(now time.Duration, persist statemachine.Persist) {
	s.Base.Startup(now, persist)
	if err := s.machine.StartAt(now, stateStartup, nil); err != nil {
		s.env.Log().Error("snake: cannot start", "error", err)
		s.Finish("lobby")
	}
}

// HandleEvent forwards input to the active nested state.
func (s *Scene) HandleEvent(ev core.Event) {
	if ev.Type == core.EventQuit {
		s.Exit()
		return
	}
	s.machine.HandleEvent(ev)
}

// Update runs the nested machine and returns to the lobby once it is done.
func (s *Scene) Update(f core.Frame) {
	if s.machine.Done() {
		s.Finish("lobby")
		return
	}
	if err := s.machine.Update(f); err != nil {
		s.env.Log().Error("snake: state machine failed", "error", err)
		s.Finish("lobby")
	}
}

// Render draws the active nested state.
func (s *Scene) Render(dst *core.Screen) {
	s.machine.Render(dst)
}

// Phase returns the name of the active nested state.
func (s *Scene) Phase() string {
	return s.machine.CurrentName()
}
