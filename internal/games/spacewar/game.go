// Package spacewar is a space flight demo: a ship that turns, thrusts and
// drifts across a star field larger than the screen, with parallax layers
// scrolling behind it.
package spacewar

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/arcade-collab/internal/core"
	"github.com/vovakirdan/arcade-collab/internal/registry"
	"github.com/vovakirdan/arcade-collab/internal/sprite"
	"github.com/vovakirdan/arcade-collab/internal/statemachine"
)

// ID is the scene name of the demo.
const ID = "space_war"

// Ship sheet layout: one row per hull design, one column per heading.
const (
	shipW   = 3
	shipH   = 3
	designs = 3
)

var (
	//go:embed ships.txt
	shipSheet string
	//go:embed thumb.txt
	thumb string
)

func init() {
	registry.Register(registry.Info{
		ID:    ID,
		Kind:  registry.KindGame,
		Thumb: registry.ParseThumb(thumb),
	}, func(env *registry.Env) statemachine.State {
		return New(env)
	})
}

// KeyMap defines the keys handled as discrete presses. Flight controls are
// read from the held actions of each frame.
type KeyMap struct {
	Back key.Binding
}

// DefaultKeyMap returns to the lobby on escape.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Back: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "lobby")),
	}
}

// ShipFrames slices the heading frames of one hull design from the sheet.
func ShipFrames(design int) []sprite.Image {
	sheet := sprite.FromString(shipSheet)
	return sprite.StripFromSheet(sheet, core.Point{Y: design * shipH}, shipW, shipH, headings, 1)
}

// Scene runs the flight demo.
type Scene struct {
	statemachine.Base
	env   *registry.Env
	keys  KeyMap
	level *Level
}

// New creates the demo with a randomly chosen hull.
func New(env *registry.Env) *Scene {
	cfg := env.Cfg()
	sw := cfg.SpaceWar
	design := env.Rand().Intn(designs)
	ship := NewShip(ShipFrames(design), sw.TopSpeed, sw.AngularSpeed)

	world := core.NewRect(0, 0, sw.WorldWidth, sw.WorldHeight)
	view := core.NewRect(0, 0, cfg.Display.Width, cfg.Display.Height)
	env.Log().Debug("space war: new flight", "design", design, "world", fmt.Sprintf("%dx%d", world.W, world.H))

	return &Scene{
		env:   env,
		keys:  DefaultKeyMap(),
		level: NewLevel(world, view, ship, sw.StartOffset, sw.MidParallax, sw.BaseParallax),
	}
}

// HandleEvent leaves for the lobby on escape.
func (s *Scene) HandleEvent(ev core.Event) {
	switch {
	case ev.Type == core.EventQuit:
		s.Exit()
	case key.Matches(ev, s.keys.Back):
		s.Finish("lobby")
	}
}

// Update flies the ship with the held direction keys.
func (s *Scene) Update(f core.Frame) {
	c := Controls{
		Left:   f.Holding(core.ActionLeft),
		Right:  f.Holding(core.ActionRight),
		Thrust: f.Holding(core.ActionUp),
	}
	s.level.Update(c, f.Seconds())
}

func (s *Scene) Render(dst *core.Screen) {
	dst.Clear()
	s.level.Draw(dst)
}

// Level returns the flight state.
func (s *Scene) Level() *Level {
	return s.level
}
