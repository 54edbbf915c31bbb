package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arcade-collab/internal/core"
)

// Renderer turns screen buffers into styled strings for one output.
// SSH sessions each get their own so color support follows the client.
type Renderer struct {
	plain  lipgloss.Style
	styles [256]lipgloss.Style
}

// NewRenderer creates a renderer for r, or for stdout when r is nil.
func NewRenderer(r *lipgloss.Renderer) *Renderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	out := &Renderer{plain: r.NewStyle()}
	for i := range out.styles {
		out.styles[i] = r.NewStyle().Foreground(lipgloss.Color(strconv.Itoa(i)))
	}
	return out
}

func (r *Renderer) style(c core.Color) lipgloss.Style {
	if c < 0 || int(c) >= len(r.styles) {
		return r.plain
	}
	return r.styles[c]
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (r *Renderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(r.style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}

// Letterbox offsets content of size w x h to the center of a term-sized
// area. Content larger than the area is not shifted.
func Letterbox(content string, w, h, termW, termH int) string {
	off := letterboxOffset(w, h, termW, termH)
	if off.X == 0 && off.Y == 0 {
		return content
	}
	return lipgloss.NewStyle().MarginLeft(off.X).MarginTop(off.Y).Render(content)
}

func letterboxOffset(w, h, termW, termH int) core.Point {
	return core.Point{X: max(0, (termW-w)/2), Y: max(0, (termH-h)/2)}
}
