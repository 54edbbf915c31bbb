package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/arcade-collab/internal/core"
)

func TestPlace(t *testing.T) {
	p := core.Point{X: 40, Y: 12}
	tests := []struct {
		anchor Anchor
		want   core.Rect
	}{
		{TopLeft, core.NewRect(40, 12, 10, 4)},
		{MidTop, core.NewRect(35, 12, 10, 4)},
		{Center, core.NewRect(35, 10, 10, 4)},
		{BottomRight, core.NewRect(30, 8, 10, 4)},
		{MidLeft, core.NewRect(40, 10, 10, 4)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Place(tt.anchor, p, 10, 4), "anchor %d", tt.anchor)
	}
}

func TestLabelDrawAndSetText(t *testing.T) {
	scr := core.NewScreen(20, 3)
	l := NewLabel("hello", Center, core.Point{X: 10, Y: 1}, core.ColorGreen)
	l.Draw(scr)
	assert.Equal(t, "        hello       ", scr.Row(1))
	assert.Equal(t, core.ColorGreen, scr.GetCell(8, 1).Color)

	l.SetText("hi")
	assert.Equal(t, 9, l.Rect.X, "anchor point stays put")
}

func TestMultiLineLabelWraps(t *testing.T) {
	text := "This is where your game should be. Make your own!"
	m := NewMultiLineLabel(text, MidTop, core.Point{X: 40, Y: 2}, core.ColorWhite,
		MultiLineOptions{CharLimit: 20, Align: AlignCenter, VerticalSpace: 1})

	require.Greater(t, len(m.Lines), 1)
	for _, l := range m.Lines {
		assert.LessOrEqual(t, len(l.Text), 20)
	}
	assert.Equal(t, m.Lines[0].Rect.Y+2, m.Lines[1].Rect.Y, "vertical space between lines")
	assert.Equal(t, 2, m.Rect.Y)

	scr := core.NewScreen(80, 24)
	m.Draw(scr)
	assert.Contains(t, scr.String(), "This is where")
}

func TestMultiLineLabelAlign(t *testing.T) {
	m := NewMultiLineLabel("aaaa\nbb", TopLeft, core.Point{}, core.ColorWhite,
		MultiLineOptions{Align: AlignRight})
	assert.Equal(t, 2, m.Lines[1].Rect.X)

	m = NewMultiLineLabel("aaaa\nbb", TopLeft, core.Point{}, core.ColorWhite,
		MultiLineOptions{Align: AlignLeft})
	assert.Equal(t, 0, m.Lines[1].Rect.X)
}

func TestFlashingText(t *testing.T) {
	f := NewFlashingText("[Please Insert Coin]", Center, core.Point{X: 40, Y: 20}, core.ColorWhite, 350*time.Millisecond)
	assert.False(t, f.Visible())

	f.Update(0)
	assert.True(t, f.Visible(), "first update shows the text")
	f.Update(100 * time.Millisecond)
	assert.True(t, f.Visible())
	f.Update(400 * time.Millisecond)
	assert.False(t, f.Visible())

	scr := core.NewScreen(80, 24)
	f.Draw(scr)
	assert.NotContains(t, scr.String(), "Insert")
}

func newTestButton(calls *[]string) *Button {
	b := NewNeonButton(core.Point{X: 10, Y: 5}, "High_Scores", func(arg string) {
		*calls = append(*calls, arg)
	}, "high_scores")
	return b
}

func TestButtonMouseClick(t *testing.T) {
	var calls []string
	b := newTestButton(&calls)

	// Release without a press inside does nothing.
	assert.False(t, b.HandleEvent(core.MouseEvent(core.EventMouseUp, 12, 6)))

	b.HandleEvent(core.MouseEvent(core.EventMouseDown, 12, 6))
	assert.Empty(t, calls, "press alone does not fire")
	assert.True(t, b.HandleEvent(core.MouseEvent(core.EventMouseUp, 13, 6)))
	assert.Equal(t, []string{"high_scores"}, calls)

	// Press inside, release outside.
	b.HandleEvent(core.MouseEvent(core.EventMouseDown, 12, 6))
	assert.False(t, b.HandleEvent(core.MouseEvent(core.EventMouseUp, 0, 0)))
	assert.Len(t, calls, 1)
}

func TestButtonKeysAndFlags(t *testing.T) {
	var calls []string
	b := newTestButton(&calls)
	b.Keys = key.NewBinding(key.WithKeys("esc"))

	assert.False(t, b.HandleEvent(core.KeyEvent("enter", core.ActionConfirm)))
	assert.True(t, b.HandleEvent(core.KeyEvent("esc", core.ActionBack)))
	assert.Len(t, calls, 1)

	b.Active = false
	assert.False(t, b.HandleEvent(core.KeyEvent("esc", core.ActionBack)))
	b.Active, b.Visible = true, false
	assert.False(t, b.HandleEvent(core.KeyEvent("esc", core.ActionBack)))
	assert.Len(t, calls, 1)
}

func TestButtonLooks(t *testing.T) {
	b := NewNeonButton(core.Point{X: 0, Y: 0}, "Exit", nil, "")
	scr := core.NewScreen(NeonWidth, NeonHeight)
	b.Draw(scr)
	assert.Equal(t, '┌', scr.Get(0, 0))
	assert.Equal(t, core.ColorLowLight, scr.GetCell(0, 0).Color)
	assert.Contains(t, scr.Row(1), "Exit")

	b.Update(core.Point{X: 1, Y: 1})
	assert.True(t, b.Highlighted())
	scr.Clear()
	b.Draw(scr)
	assert.Equal(t, '╔', scr.Get(0, 0))
	assert.Equal(t, core.ColorHighLight, scr.GetCell(4, 0).Color)

	b.Update(core.Point{X: 50, Y: 50})
	b.SetFocus(true)
	assert.True(t, b.Highlighted(), "focus acts as hover")

	b.Active = false
	scr.Clear()
	b.Draw(scr)
	assert.Equal(t, core.ColorGray, scr.GetCell(0, 0).Color)
}

func TestGameButton(t *testing.T) {
	var picked string
	thumb := []string{"  /\\  ", " /  \\ ", "/____\\"}
	b := NewGameButton(core.Point{X: 2, Y: 1}, "space_war", thumb, func(arg string) { picked = arg })

	assert.Equal(t, core.NewRect(2, 1, GameButtonWidth, GameButtonHeight), b.Rect)

	scr := core.NewScreen(30, 10)
	b.Draw(scr)
	assert.Equal(t, '│', scr.Get(2, 2))
	assert.Equal(t, '/', scr.Get(5, 2), "thumbnail sits inside the frame")
	assert.Equal(t, '\\', scr.Get(6, 2))
	assert.True(t, strings.HasPrefix(strings.TrimSpace(scr.Row(6)), "Space war"))

	b.Click()
	assert.Equal(t, "space_war", picked)
}

func TestGameLabel(t *testing.T) {
	assert.Equal(t, "Space war", GameLabel("space_war"))
	assert.Equal(t, "Snake", GameLabel("SNAKE"))
	assert.Equal(t, "", GameLabel(""))
}

func TestButtonGroupFocusAndForwarding(t *testing.T) {
	var calls []string
	call := func(arg string) { calls = append(calls, arg) }
	a := NewNeonButton(core.Point{X: 0, Y: 0}, "A", call, "a")
	b := NewNeonButton(core.Point{X: 0, Y: 4}, "B", call, "b")
	c := NewNeonButton(core.Point{X: 0, Y: 8}, "C", call, "c")
	b.Active = false
	g := NewButtonGroup(a, b, c)

	assert.Nil(t, g.Focused())
	g.HandleEvent(core.KeyEvent("down", core.ActionDown))
	assert.Same(t, a, g.Focused())
	g.HandleEvent(core.KeyEvent("tab", core.ActionNone))
	assert.Same(t, c, g.Focused(), "inactive buttons are skipped")
	g.HandleEvent(core.KeyEvent("down", core.ActionDown))
	assert.Same(t, a, g.Focused(), "focus wraps")
	g.HandleEvent(core.KeyEvent("up", core.ActionUp))
	assert.Same(t, c, g.Focused())
	assert.False(t, a.Focused())

	assert.True(t, g.HandleEvent(core.KeyEvent("enter", core.ActionConfirm)))
	assert.Equal(t, []string{"c"}, calls)

	// Mouse clicks on an inactive button are not forwarded.
	g.HandleEvent(core.MouseEvent(core.EventMouseDown, 1, 5))
	g.HandleEvent(core.MouseEvent(core.EventMouseUp, 1, 5))
	assert.Equal(t, []string{"c"}, calls)

	c.Visible = false
	g.Update(core.Point{})
	assert.Nil(t, g.Focused(), "focus dropped from hidden button")
}
