package screens

import (
	"github.com/vovakirdan/arcade-collab/internal/core"
	"github.com/vovakirdan/arcade-collab/internal/registry"
	"github.com/vovakirdan/arcade-collab/internal/sprite"
	"github.com/vovakirdan/arcade-collab/internal/statemachine"
	"github.com/vovakirdan/arcade-collab/internal/ui"
)

// Title shows the arcade logo until a key is pressed.
type Title struct {
	statemachine.Base
	title  sprite.Image
	anykey *ui.FlashingText
	width  int
}

// NewTitle creates the title scene.
func NewTitle(env *registry.Env) *Title {
	cfg := env.Cfg()
	w, h := cfg.Display.Width, cfg.Display.Height
	t := &Title{
		title: artImage(titleArt),
		anykey: ui.NewFlashingText(cfg.Title.Prompt, ui.Center,
			core.Point{X: w / 2, Y: h - 4}, core.ColorGold, cfg.Title.BlinkInterval),
		width: w,
	}
	t.SetNext(LobbyID)
	return t
}

// HandleEvent goes to the lobby on any key; Esc quits.
func (t *Title) HandleEvent(ev core.Event) {
	switch ev.Type {
	case core.EventQuit:
		t.Exit()
	case core.EventKey:
		if ev.Key == "esc" {
			t.Exit()
			return
		}
		t.Finish(LobbyID)
	}
}

// Update blinks the prompt.
func (t *Title) Update(f core.Frame) {
	t.anykey.Update(f.Now)
}

// Render draws the logo and prompt.
func (t *Title) Render(dst *core.Screen) {
	dst.Clear()
	x := (dst.Width() - t.title.Width()) / 2
	t.title.Draw(dst, x, 3, core.ColorLimeGreen)
	t.anykey.Draw(dst)
}
