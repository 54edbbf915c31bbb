package snake

import "github.com/vovakirdan/arcade-collab/internal/core"

// LevelCount is the number of wall layouts a board can get.
const LevelCount = 3

// MakeWalls returns the border ring around a w x h board plus the walls of
// the given level.
func MakeWalls(w, h, level int) map[core.Point]bool {
	walls := make(map[core.Point]bool)
	for x := -1; x <= w; x++ {
		walls[core.Point{X: x, Y: -1}] = true
		walls[core.Point{X: x, Y: h}] = true
	}
	for y := -1; y <= h; y++ {
		walls[core.Point{X: -1, Y: y}] = true
		walls[core.Point{X: w, Y: y}] = true
	}
	for p := range levelWalls(w, h, level) {
		walls[p] = true
	}
	return walls
}

func levelWalls(w, h, level int) map[core.Point]bool {
	walls := make(map[core.Point]bool)
	vertical := func(x, from, to int) {
		for y := from; y < to; y++ {
			walls[core.Point{X: x, Y: y}] = true
		}
	}
	horizontal := func(y, from, to int) {
		for x := from; x < to; x++ {
			walls[core.Point{X: x, Y: y}] = true
		}
	}

	switch level {
	case 0:
		// Split wall down the middle with a gap in the center.
		vertical(w/2, 0, h/2-3)
		vertical(w/2, h/2+3, h)
	case 1:
		// Two offset half walls.
		vertical(w/4, 0, 3*h/5)
		vertical(3*w/4, 2*h/5, h)
	case 2:
		// A cross of one vertical and two horizontal bars.
		vertical(w/2, 5, h-5)
		horizontal(h/2, 3, w/2-3)
		horizontal(h/2, w/2+6, w/2+w/2)
	}
	return walls
}
