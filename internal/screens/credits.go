package screens

import (
	"fmt"

	"github.com/vovakirdan/arcade-collab/internal/core"
	"github.com/vovakirdan/arcade-collab/internal/registry"
	"github.com/vovakirdan/arcade-collab/internal/statemachine"
	"github.com/vovakirdan/arcade-collab/internal/ui"
)

const creditsSpacing = 3

// Credits lists the contributors.
type Credits struct {
	statemachine.Base
	titles []*ui.Label
	anykey *ui.FlashingText
}

// NewCredits creates the credits scene.
func NewCredits(env *registry.Env) *Credits {
	cfg := env.Cfg()
	cx, cy := cfg.Display.Width/2, cfg.Display.Height/2

	c := &Credits{
		anykey: ui.NewFlashingText(cfg.Credits.Prompt, ui.Center,
			core.Point{X: cx, Y: cfg.Display.Height - 3}, core.ColorGold, cfg.Title.BlinkInterval),
	}

	lines := make([]string, 0, len(cfg.Credits.Names)+1)
	for _, name := range cfg.Credits.Names {
		lines = append(lines, fmt.Sprintf("Some stuff by %s", name))
	}
	lines = append(lines, "Your Name Here")

	for i, text := range lines {
		y := cy + (i-2)*creditsSpacing
		c.titles = append(c.titles, ui.NewLabel(text, ui.Center, core.Point{X: cx, Y: y}, core.ColorWhite))
	}
	return c
}

// HandleEvent returns to the lobby on any key.
func (c *Credits) HandleEvent(ev core.Event) {
	switch ev.Type {
	case core.EventQuit:
		c.Exit()
	case core.EventKey:
		c.Finish(LobbyID)
	}
}

// Update blinks the prompt.
func (c *Credits) Update(f core.Frame) {
	c.anykey.Update(f.Now)
}

// Render draws the credits.
func (c *Credits) Render(dst *core.Screen) {
	dst.Clear()
	for _, t := range c.titles {
		t.Draw(dst)
	}
	c.anykey.Draw(dst)
}
