package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/arcade-collab/internal/core"
	"github.com/vovakirdan/arcade-collab/internal/sprite"
)

// Look is how a button is drawn in one of its states.
type Look struct {
	Image sprite.Image
	Color core.Color
	// Text is drawn centered over the image when set.
	Text      string
	TextColor core.Color
	// TextRow is the row of the button the text sits on.
	TextRow int
}

// Button is a clickable rect with idle, hover and disabled looks.
// Mouse clicks fire on release after a press inside the rect; key bindings
// fire as soon as the key arrives.
type Button struct {
	Rect     core.Rect
	Idle     Look
	Hover    Look
	Disabled Look
	Keys     key.Binding
	// Call receives Arg when the button is clicked.
	Call func(arg string)
	Arg  string

	Visible bool
	Active  bool

	hover   bool
	focused bool
	clicked bool
}

// NewButton creates a visible, active button.
func NewButton(r core.Rect, idle, hover Look, call func(string), arg string) *Button {
	return &Button{
		Rect:     r,
		Idle:     idle,
		Hover:    hover,
		Disabled: idle,
		Call:     call,
		Arg:      arg,
		Visible:  true,
		Active:   true,
	}
}

// HandleEvent processes one event. It reports whether the button fired.
func (b *Button) HandleEvent(ev core.Event) bool {
	if !b.Active || !b.Visible {
		return false
	}

	switch ev.Type {
	case core.EventMouseMove:
		b.hover = b.Rect.ContainsPoint(ev.Pos())
	case core.EventMouseDown:
		b.hover = b.Rect.ContainsPoint(ev.Pos())
		if b.hover {
			b.clicked = true
		}
	case core.EventMouseUp:
		fire := b.clicked && b.Rect.ContainsPoint(ev.Pos())
		b.clicked = false
		if fire {
			b.Click()
			return true
		}
	case core.EventKey:
		if key.Matches(ev, b.Keys) {
			b.Click()
			return true
		}
	}
	return false
}

// Update refreshes hover state from the pointer position.
func (b *Button) Update(mouse core.Point) {
	b.hover = b.Rect.ContainsPoint(mouse)
}

// Click invokes the callback.
func (b *Button) Click() {
	if b.Call != nil {
		b.Call(b.Arg)
	}
}

// SetFocus marks the button as keyboard-focused. Focus looks like hover.
func (b *Button) SetFocus(f bool) {
	b.focused = f
}

// Focused reports whether the button has keyboard focus.
func (b *Button) Focused() bool {
	return b.focused
}

// Highlighted reports whether the button is drawn with its hover look.
func (b *Button) Highlighted() bool {
	return b.Active && (b.hover || b.focused)
}

// Draw renders the button in its current look.
func (b *Button) Draw(dst *core.Screen) {
	if !b.Visible {
		return
	}
	look := b.Idle
	switch {
	case !b.Active:
		look = b.Disabled
	case b.Highlighted():
		look = b.Hover
	}

	look.Image.Draw(dst, b.Rect.X, b.Rect.Y, look.Color)
	if look.Text != "" {
		lbl := NewLabel(look.Text, MidTop, core.Point{X: b.Rect.X + b.Rect.W/2, Y: b.Rect.Y + look.TextRow}, look.TextColor)
		lbl.Draw(dst)
	}
}

// GroupKeys are the bindings a ButtonGroup uses for keyboard focus.
type GroupKeys struct {
	Next  key.Binding
	Prev  key.Binding
	Press key.Binding
}

// DefaultGroupKeys moves focus with Up/Down/Tab and presses with Enter.
func DefaultGroupKeys() GroupKeys {
	return GroupKeys{
		Next: key.NewBinding(
			key.WithKeys("down", "tab"),
			key.WithHelp("↓/tab", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("up", "shift+tab"),
			key.WithHelp("↑", "previous"),
		),
		Press: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
	}
}

// ButtonGroup holds buttons that share input. Events only reach buttons
// that are both active and visible.
type ButtonGroup struct {
	Buttons []*Button
	Keys    GroupKeys
	focus   int
}

// NewButtonGroup creates a group with default focus keys and no focus.
func NewButtonGroup(buttons ...*Button) *ButtonGroup {
	return &ButtonGroup{Buttons: buttons, Keys: DefaultGroupKeys(), focus: -1}
}

// Add appends buttons to the group.
func (g *ButtonGroup) Add(buttons ...*Button) {
	g.Buttons = append(g.Buttons, buttons...)
}

func (g *ButtonGroup) usable(b *Button) bool {
	return b.Active && b.Visible
}

// HandleEvent routes focus keys and forwards the event to usable buttons.
// It reports whether any button fired.
func (g *ButtonGroup) HandleEvent(ev core.Event) bool {
	if ev.IsKey() {
		switch {
		case key.Matches(ev, g.Keys.Next):
			g.moveFocus(1)
			return false
		case key.Matches(ev, g.Keys.Prev):
			g.moveFocus(-1)
			return false
		case key.Matches(ev, g.Keys.Press):
			if b := g.Focused(); b != nil {
				b.Click()
				return true
			}
		}
	}

	fired := false
	for _, b := range g.Buttons {
		if g.usable(b) && b.HandleEvent(ev) {
			fired = true
		}
	}
	return fired
}

// Update refreshes hover state and drops focus from unusable buttons.
func (g *ButtonGroup) Update(mouse core.Point) {
	for _, b := range g.Buttons {
		if g.usable(b) {
			b.Update(mouse)
		}
	}
	if f := g.Focused(); f != nil && !g.usable(f) {
		g.SetFocus(-1)
	}
}

// Focused returns the focused button, or nil.
func (g *ButtonGroup) Focused() *Button {
	if g.focus < 0 || g.focus >= len(g.Buttons) {
		return nil
	}
	return g.Buttons[g.focus]
}

// SetFocus focuses the button at index i; -1 clears focus.
func (g *ButtonGroup) SetFocus(i int) {
	if f := g.Focused(); f != nil {
		f.SetFocus(false)
	}
	g.focus = -1
	if i >= 0 && i < len(g.Buttons) {
		g.focus = i
		g.Buttons[i].SetFocus(true)
	}
}

func (g *ButtonGroup) moveFocus(step int) {
	n := len(g.Buttons)
	if n == 0 {
		return
	}
	i := g.focus
	if i < 0 && step < 0 {
		i = 0
	}
	for range n {
		i = ((i+step)%n + n) % n
		if g.usable(g.Buttons[i]) {
			g.SetFocus(i)
			return
		}
	}
}

// Draw renders every button.
func (g *ButtonGroup) Draw(dst *core.Screen) {
	for _, b := range g.Buttons {
		b.Draw(dst)
	}
}
