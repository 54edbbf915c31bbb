// Package sprite holds text images: blocks of runes that scenes slice from
// sheets, tile into backgrounds and draw onto a core.Screen.
// Spaces are transparent when drawing.
package sprite

import (
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/arcade-collab/internal/core"
)

// Image is a rectangular block of runes.
type Image struct {
	rows [][]rune
	w, h int
}

// New creates a blank (fully transparent) image.
func New(w, h int) Image {
	rows := make([][]rune, h)
	for y := range rows {
		rows[y] = []rune(strings.Repeat(" ", w))
	}
	return Image{rows: rows, w: w, h: h}
}

// FromString builds an image from text. A single leading newline is
// dropped so raw string literals can start on their own line; short lines
// are padded with spaces.
func FromString(s string) Image {
	s = strings.TrimPrefix(s, "\n")
	s = strings.TrimSuffix(s, "\n")
	return FromLines(strings.Split(s, "\n"))
}

// FromLines builds an image from rows of text.
func FromLines(lines []string) Image {
	w := 0
	for _, l := range lines {
		w = max(w, utf8.RuneCountInString(l))
	}
	img := New(w, len(lines))
	for y, l := range lines {
		copy(img.rows[y], []rune(l))
	}
	return img
}

// Width returns the image width in cells.
func (i Image) Width() int { return i.w }

// Height returns the image height in cells.
func (i Image) Height() int { return i.h }

// At returns the rune at (x, y), or space outside the image.
func (i Image) At(x, y int) rune {
	if x < 0 || y < 0 || x >= i.w || y >= i.h {
		return ' '
	}
	return i.rows[y][x]
}

// Lines returns the image as text rows.
func (i Image) Lines() []string {
	out := make([]string, i.h)
	for y, r := range i.rows {
		out[y] = string(r)
	}
	return out
}

// Sub returns a copy of the region r. Parts of r outside the image are blank.
func (i Image) Sub(r core.Rect) Image {
	out := New(r.W, r.H)
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			out.rows[y][x] = i.At(r.X+x, r.Y+y)
		}
	}
	return out
}

// Draw blits the image onto dst with its top-left corner at (x, y).
func (i Image) Draw(dst *core.Screen, x, y int, c core.Color) {
	for iy, row := range i.rows {
		for ix, r := range row {
			if r == ' ' {
				continue
			}
			dst.SetColor(x+ix, y+iy, r, c)
		}
	}
}

// DrawView blits the region view of the image onto dst at the origin,
// the way a scrolling camera shows part of a larger world.
func (i Image) DrawView(dst *core.Screen, view core.Rect, c core.Color) {
	for dy := 0; dy < view.H; dy++ {
		for dx := 0; dx < view.W; dx++ {
			r := i.At(view.X+dx, view.Y+dy)
			if r == ' ' {
				continue
			}
			dst.SetColor(dx, dy, r, c)
		}
	}
}
