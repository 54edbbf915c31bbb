// Package ui holds the widgets scenes are built from: labels, blinking
// prompts and buttons. Widgets draw onto a core.Screen and take input as
// core.Event values.
package ui

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/muesli/reflow/wordwrap"

	"github.com/vovakirdan/arcade-collab/internal/anim"
	"github.com/vovakirdan/arcade-collab/internal/core"
)

// Anchor names the point of a widget's rect that is pinned to its position.
type Anchor int

const (
	TopLeft Anchor = iota
	MidTop
	TopRight
	MidLeft
	Center
	MidRight
	BottomLeft
	MidBottom
	BottomRight
)

// Place returns a w x h rect whose anchor point sits at p.
func Place(a Anchor, p core.Point, w, h int) core.Rect {
	x, y := p.X, p.Y
	switch a {
	case MidTop, Center, MidBottom:
		x -= w / 2
	case TopRight, MidRight, BottomRight:
		x -= w
	}
	switch a {
	case MidLeft, Center, MidRight:
		y -= h / 2
	case BottomLeft, MidBottom, BottomRight:
		y -= h
	}
	return core.NewRect(x, y, w, h)
}

// Label is a single line of colored text.
type Label struct {
	Text   string
	Color  core.Color
	Rect   core.Rect
	anchor Anchor
	at     core.Point
}

// NewLabel creates a label with its anchor point at p.
func NewLabel(text string, a Anchor, p core.Point, c core.Color) *Label {
	l := &Label{Color: c, anchor: a, at: p}
	l.SetText(text)
	return l
}

// SetText replaces the text, keeping the anchor point fixed.
func (l *Label) SetText(text string) {
	l.Text = text
	l.Rect = Place(l.anchor, l.at, utf8.RuneCountInString(text), 1)
}

// Draw renders the label.
func (l *Label) Draw(dst *core.Screen) {
	dst.DrawTextColor(l.Rect.X, l.Rect.Y, l.Text, l.Color)
}

// Align controls how MultiLineLabel lines sit inside the block.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// MultiLineOptions configures a MultiLineLabel.
type MultiLineOptions struct {
	CharLimit     int // wrap width in runes, 0 disables wrapping
	Align         Align
	VerticalSpace int // blank rows between lines
}

// MultiLineLabel is word-wrapped text laid out as a block of Labels.
type MultiLineLabel struct {
	Lines []*Label
	Rect  core.Rect
}

// NewMultiLineLabel wraps text and positions the block by its anchor.
func NewMultiLineLabel(text string, a Anchor, p core.Point, c core.Color, opts MultiLineOptions) *MultiLineLabel {
	if opts.CharLimit > 0 {
		text = wordwrap.String(text, opts.CharLimit)
	}
	lines := strings.Split(text, "\n")

	w := 0
	for _, line := range lines {
		w = max(w, utf8.RuneCountInString(line))
	}
	h := len(lines) + (len(lines)-1)*opts.VerticalSpace
	block := Place(a, p, w, h)

	m := &MultiLineLabel{Rect: block}
	for i, line := range lines {
		y := block.Y + i*(1+opts.VerticalSpace)
		var lbl *Label
		switch opts.Align {
		case AlignCenter:
			lbl = NewLabel(line, MidTop, core.Point{X: block.X + w/2, Y: y}, c)
		case AlignRight:
			lbl = NewLabel(line, TopRight, core.Point{X: block.Right(), Y: y}, c)
		default:
			lbl = NewLabel(line, TopLeft, core.Point{X: block.X, Y: y}, c)
		}
		m.Lines = append(m.Lines, lbl)
	}
	return m
}

// Draw renders every line.
func (m *MultiLineLabel) Draw(dst *core.Screen) {
	for _, l := range m.Lines {
		l.Draw(dst)
	}
}

// FlashingText is a label that blinks on a fixed interval.
type FlashingText struct {
	*Label
	timer   *anim.Timer
	visible bool
}

// NewFlashingText creates a blinking label. It appears on the first update.
func NewFlashingText(text string, a Anchor, p core.Point, c core.Color, blink time.Duration) *FlashingText {
	return &FlashingText{
		Label: NewLabel(text, a, p, c),
		timer: anim.NewTimer(blink, -1),
	}
}

// Update toggles visibility each time the blink interval passes.
func (f *FlashingText) Update(now time.Duration) {
	if f.timer.CheckTick(now) {
		f.visible = !f.visible
	}
}

// Visible reports whether the text is currently shown.
func (f *FlashingText) Visible() bool {
	return f.visible
}

// Draw renders the text while it is visible.
func (f *FlashingText) Draw(dst *core.Screen) {
	if f.visible {
		f.Label.Draw(dst)
	}
}
