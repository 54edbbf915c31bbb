// Package asteroids is a placeholder game showing how a new game plugs into
// the lobby: register a scene in init and return to the lobby when done.
package asteroids

import (
	"github.com/vovakirdan/arcade-collab/internal/core"
	"github.com/vovakirdan/arcade-collab/internal/registry"
	"github.com/vovakirdan/arcade-collab/internal/statemachine"
	"github.com/vovakirdan/arcade-collab/internal/ui"
)

// ID is the scene name of the game.
const ID = "asteroids"

const description = "Copy this package, rename it and register your own scene " +
	"from init. It appears in the lobby with a default thumbnail until " +
	"you give it one."

func init() {
	registry.Register(registry.Info{ID: ID, Kind: registry.KindGame}, func(env *registry.Env) statemachine.State {
		return New(env)
	})
}

// Scene shows a placeholder message until any key is pressed.
type Scene struct {
	statemachine.Base
	title  *ui.Label
	text   *ui.MultiLineLabel
	anykey *ui.FlashingText
}

// New creates the placeholder scene.
func New(env *registry.Env) *Scene {
	cfg := env.Cfg()
	w, h := cfg.Display.Width, cfg.Display.Height
	cx := w / 2
	return &Scene{
		title: ui.NewLabel("Your game here!", ui.Center, core.Point{X: cx, Y: h/2 - 4}, core.ColorWhite),
		text: ui.NewMultiLineLabel(description, ui.MidTop, core.Point{X: cx, Y: h/2 - 1}, core.ColorGray,
			ui.MultiLineOptions{CharLimit: w / 2, Align: ui.AlignCenter}),
		anykey: ui.NewFlashingText(cfg.Credits.Prompt, ui.Center, core.Point{X: cx, Y: h - 3}, core.ColorGold, cfg.Title.BlinkInterval),
	}
}

// HandleEvent returns to the lobby on any key.
func (s *Scene) HandleEvent(ev core.Event) {
	switch {
	case ev.Type == core.EventQuit:
		s.Exit()
	case ev.IsKey():
		s.Finish("lobby")
	}
}

func (s *Scene) Update(f core.Frame) {
	s.anykey.Update(f.Now)
}

func (s *Scene) Render(dst *core.Screen) {
	dst.Clear()
	s.title.Draw(dst)
	s.text.Draw(dst)
	s.anykey.Draw(dst)
}
