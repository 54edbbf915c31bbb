package sprite

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/arcade-collab/internal/core"
)

const sheetText = `
ab12
cd34
efXY
`

func linesOf(frames []Image) [][]string {
	out := make([][]string, len(frames))
	for i, f := range frames {
		out[i] = f.Lines()
	}
	return out
}

func TestFromStringPadsRows(t *testing.T) {
	img := FromString("\nab\nc\n")
	assert.Equal(t, 2, img.Width())
	assert.Equal(t, 2, img.Height())
	if diff := cmp.Diff([]string{"ab", "c "}, img.Lines()); diff != "" {
		t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
	}
}

func TestStripFromSheet(t *testing.T) {
	sheet := FromString(sheetText)

	frames := StripFromSheet(sheet, core.Point{}, 2, 1, 2, 3)
	want := [][]string{
		{"ab"}, {"12"},
		{"cd"}, {"34"},
		{"ef"}, {"XY"},
	}
	if diff := cmp.Diff(want, linesOf(frames)); diff != "" {
		t.Errorf("StripFromSheet mismatch (-want +got):\n%s", diff)
	}
}

func TestStripFromSheetOffsetStart(t *testing.T) {
	sheet := FromString(sheetText)

	frames := StripFromSheet(sheet, core.Point{X: 2, Y: 1}, 2, 2, 1, 1)
	if diff := cmp.Diff([][]string{{"34", "XY"}}, linesOf(frames)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestStripCoords(t *testing.T) {
	sheet := FromString(sheetText)

	frames := StripCoords(sheet, []core.Point{{X: 1, Y: 2}, {X: 0, Y: 0}}, 2, 1)
	if diff := cmp.Diff([][]string{{"XY"}, {"ab"}}, linesOf(frames)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestCellCoordinates(t *testing.T) {
	r := core.NewRect(10, 4, 40, 20)

	tests := []struct {
		p    core.Point
		want core.Point
	}{
		{core.Point{X: 10, Y: 4}, core.Point{X: 0, Y: 0}},
		{core.Point{X: 17, Y: 9}, core.Point{X: 6, Y: 4}},
		{core.Point{X: 8, Y: 3}, core.Point{X: -3, Y: -2}},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, CellCoordinates(r, tc.p, 3, 2), "point %v", tc.p)
	}
}

func TestTile(t *testing.T) {
	img := Tile(5, 3, FromString("ab\ncd"))
	want := []string{"ababa", "cdcdc", "ababa"}
	if diff := cmp.Diff(want, img.Lines()); diff != "" {
		t.Errorf("Tile mismatch (-want +got):\n%s", diff)
	}
}

func TestDrawTransparentAndView(t *testing.T) {
	dst := core.NewScreen(4, 2)
	dst.Fill('.')

	FromString("x y").Draw(dst, 0, 0, core.ColorGold)
	assert.Equal(t, "x.y.", dst.Row(0))
	assert.Equal(t, core.ColorGold, dst.GetCell(0, 0).Color)

	dst.Clear()
	FromString(sheetText).DrawView(dst, core.NewRect(1, 1, 4, 2), core.ColorDefault)
	assert.Equal(t, "d34 ", dst.Row(0))
	assert.Equal(t, "fXY ", dst.Row(1))
}
