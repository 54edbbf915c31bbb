package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arcade-collab/internal/core"
)

// KeyMap holds the keys the host handles itself. They never reach scenes.
type KeyMap struct {
	Quit       key.Binding
	ToggleFPS  key.Binding
	Screenshot key.Binding
}

// DefaultKeyMap returns the global bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		ToggleFPS:  key.NewBinding(key.WithKeys("f5"), key.WithHelp("f5", "show fps")),
		Screenshot: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "screenshot")),
	}
}

// MapKey translates a key message to a game action.
// Scenes match on the key name; the action drives held input.
func MapKey(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case "w", "up":
		return core.ActionUp
	case "s", "down":
		return core.ActionDown
	case "a", "left":
		return core.ActionLeft
	case "d", "right":
		return core.ActionRight
	case "enter", " ", "space":
		return core.ActionConfirm
	case "esc":
		return core.ActionBack
	case "ctrl+c":
		return core.ActionQuit
	}
	return core.ActionNone
}

// KeyEvent converts a key message to a scene event.
func KeyEvent(msg tea.KeyMsg) core.Event {
	return core.KeyEvent(msg.String(), MapKey(msg))
}

// MouseEvent converts a mouse message to a scene event, shifting it by
// the letterbox offset into render space. Wheel and other button presses
// report false.
func MouseEvent(msg tea.MouseMsg, offset core.Point) (core.Event, bool) {
	x, y := msg.X-offset.X, msg.Y-offset.Y
	switch msg.Action {
	case tea.MouseActionMotion:
		return core.MouseEvent(core.EventMouseMove, x, y), true
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			return core.MouseEvent(core.EventMouseDown, x, y), true
		}
	case tea.MouseActionRelease:
		return core.MouseEvent(core.EventMouseUp, x, y), true
	}
	return core.Event{}, false
}
