package ui

import (
	"strings"
	"unicode/utf8"

	"github.com/muesli/reflow/truncate"

	"github.com/vovakirdan/arcade-collab/internal/core"
	"github.com/vovakirdan/arcade-collab/internal/sprite"
)

// Neon button size in cells.
const (
	NeonWidth  = 18
	NeonHeight = 3
)

// Game button size in cells: a framed thumbnail with the name underneath.
const (
	GameButtonWidth  = 16
	GameButtonHeight = 6
	thumbW           = GameButtonWidth - 2
	thumbH           = 3
)

type frameRunes struct {
	tl, tr, bl, br, h, v rune
}

var (
	thinFrame  = frameRunes{'┌', '┐', '└', '┘', '─', '│'}
	thickFrame = frameRunes{'╔', '╗', '╚', '╝', '═', '║'}
)

func frameLines(w, h int, f frameRunes) []string {
	inner := w - 2
	lines := make([]string, h)
	lines[0] = string(f.tl) + strings.Repeat(string(f.h), inner) + string(f.tr)
	for y := 1; y < h-1; y++ {
		lines[y] = string(f.v) + strings.Repeat(" ", inner) + string(f.v)
	}
	lines[h-1] = string(f.bl) + strings.Repeat(string(f.h), inner) + string(f.br)
	return lines
}

// NewNeonButton creates a fixed-size button that glows when hovered.
func NewNeonButton(pos core.Point, text string, call func(string), arg string) *Button {
	text = strings.ReplaceAll(text, "_", " ")
	text = truncate.String(text, NeonWidth-2)

	idle := Look{
		Image:     sprite.FromLines(frameLines(NeonWidth, NeonHeight, thinFrame)),
		Color:     core.ColorLowLight,
		Text:      text,
		TextColor: core.ColorLowLight,
		TextRow:   1,
	}
	hover := Look{
		Image:     sprite.FromLines(frameLines(NeonWidth, NeonHeight, thickFrame)),
		Color:     core.ColorHighLight,
		Text:      text,
		TextColor: core.ColorHighLight,
		TextRow:   1,
	}
	b := NewButton(core.NewRect(pos.X, pos.Y, NeonWidth, NeonHeight), idle, hover, call, arg)
	b.Disabled = Look{Image: idle.Image, Color: core.ColorGray, Text: text, TextColor: core.ColorGray, TextRow: 1}
	return b
}

// GameLabel is the display name of a game ID: "space_war" -> "Space war".
func GameLabel(id string) string {
	s := strings.ToLower(strings.ReplaceAll(id, "_", " "))
	if s == "" {
		return s
	}
	r, n := utf8.DecodeRuneInString(s)
	return strings.ToUpper(string(r)) + s[n:]
}

// NewGameButton creates a lobby button for a game. Clicking it calls call
// with the game ID.
func NewGameButton(pos core.Point, id string, thumb []string, call func(string)) *Button {
	name := truncate.String(GameLabel(id), GameButtonWidth)

	idle := Look{
		Image:     gameImage(thumb, thinFrame),
		Color:     core.ColorLowLight,
		Text:      name,
		TextColor: core.ColorLowLight,
		TextRow:   GameButtonHeight - 1,
	}
	hover := Look{
		Image:     gameImage(thumb, thickFrame),
		Color:     core.ColorHighLight,
		Text:      name,
		TextColor: core.ColorWhite,
		TextRow:   GameButtonHeight - 1,
	}
	return NewButton(core.NewRect(pos.X, pos.Y, GameButtonWidth, GameButtonHeight), idle, hover, call, id)
}

func gameImage(thumb []string, f frameRunes) sprite.Image {
	lines := frameLines(GameButtonWidth, GameButtonHeight-1, f)
	lines = append(lines, "")
	img := sprite.FromLines(lines)

	icon := sprite.FromLines(thumb).Sub(core.NewRect(0, 0, thumbW, thumbH))
	return overlay(img, icon, 1, 1)
}

// overlay draws src over dst at (x, y) and returns the result.
func overlay(dst, src sprite.Image, x, y int) sprite.Image {
	lines := dst.Lines()
	rows := make([][]rune, len(lines))
	for i, l := range lines {
		rows[i] = []rune(l)
	}
	for sy := 0; sy < src.Height(); sy++ {
		for sx := 0; sx < src.Width(); sx++ {
			r := src.At(sx, sy)
			ty, tx := y+sy, x+sx
			if r == ' ' || ty < 0 || ty >= len(rows) || tx < 0 || tx >= len(rows[ty]) {
				continue
			}
			rows[ty][tx] = r
		}
	}
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = string(r)
	}
	return sprite.FromLines(out)
}
