package sprite

import "github.com/vovakirdan/arcade-collab/internal/core"

// StripFromSheet cuts frames of size w x h from sheet, starting at start
// and reading columns frames per row for rows rows, left to right.
func StripFromSheet(sheet Image, start core.Point, w, h, columns, rows int) []Image {
	frames := make([]Image, 0, columns*rows)
	for j := 0; j < rows; j++ {
		for i := 0; i < columns; i++ {
			frames = append(frames, sheet.Sub(core.NewRect(start.X+w*i, start.Y+h*j, w, h)))
		}
	}
	return frames
}

// StripCoords cuts frames at the given cell coordinates of a sheet laid
// out on a w x h grid.
func StripCoords(sheet Image, coords []core.Point, w, h int) []Image {
	frames := make([]Image, 0, len(coords))
	for _, c := range coords {
		frames = append(frames, sheet.Sub(core.NewRect(c.X*w, c.Y*h, w, h)))
	}
	return frames
}

// CellCoordinates returns the top-left corner, relative to r, of the
// w x h grid cell that p falls in.
func CellCoordinates(r core.Rect, p core.Point, w, h int) core.Point {
	px, py := p.X-r.X, p.Y-r.Y
	return core.Point{X: floorDiv(px, w) * w, Y: floorDiv(py, h) * h}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Tile fills a w x h image by repeating tile from the origin.
func Tile(w, h int, tile Image) Image {
	out := New(w, h)
	if tile.w == 0 || tile.h == 0 {
		return out
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out.rows[y][x] = tile.rows[y%tile.h][x%tile.w]
		}
	}
	return out
}
