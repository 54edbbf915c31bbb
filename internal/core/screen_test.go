package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Fatalf("new screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetGetCell(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColor(5, 5, 'X', ColorGold)
	if c := s.GetCell(5, 5); c.Rune != 'X' || c.Color != ColorGold {
		t.Errorf("GetCell(5, 5) = %+v, expected gold X", c)
	}

	// Out of bounds writes are ignored, reads return blank
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')
	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
	if s.GetCell(0, 100).Color != ColorDefault {
		t.Error("out of bounds GetCell should have default color")
	}
}

func TestScreenDrawTextClipsAndCountsRunes(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColor(2, 1, "Héllo", ColorTomato)

	for i, ch := range []rune("Héllo") {
		c := s.GetCell(2+i, 1)
		if c.Rune != ch || c.Color != ColorTomato {
			t.Errorf("expected %q at (%d, 1), got %+v", ch, 2+i, c)
		}
	}

	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi", ColorDefault)

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered: row = %q", s.Row(2))
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(2, 2, 3, 3), '#', ColorRed)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if s.Get(x, y) != '#' {
				t.Errorf("expected '#' at (%d, %d), got %q", x, y, s.Get(x, y))
			}
		}
	}
	if s.Get(1, 1) != ' ' || s.Get(5, 5) != ' ' {
		t.Error("DrawRect should not affect outside area")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorLowLight)

	corners := map[Point]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for p, want := range corners {
		if got := s.Get(p.X, p.Y); got != want {
			t.Errorf("corner at %v = %q, expected %q", p, got, want)
		}
	}
	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if s.Get(1, y) != '│' || s.Get(5, y) != '│' {
			t.Errorf("vertical edge missing at y=%d", y)
		}
	}
	if s.GetCell(1, 1).Color != ColorLowLight {
		t.Error("box should carry its color")
	}
}

func TestScreenLines(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawHLine(2, 2, 5, '-', ColorDefault)
	s.DrawVLine(3, 4, 4, '|', ColorDefault)

	for x := 2; x < 7; x++ {
		if s.Get(x, 2) != '-' {
			t.Errorf("DrawHLine: expected '-' at (%d, 2)", x)
		}
	}
	for y := 4; y < 8; y++ {
		if s.Get(3, y) != '|' {
			t.Errorf("DrawVLine: expected '|' at (3, %d)", y)
		}
	}
}

func TestScreenBlitTransparentSpaces(t *testing.T) {
	dst := NewScreen(6, 3)
	dst.Fill('.')

	src := NewScreen(3, 1)
	src.DrawText(0, 0, "A B")

	dst.Blit(src, 1, 1)

	if got := dst.Row(1); got != ".A.B.." {
		t.Errorf("Row(1) = %q, expected %q", got, ".A.B..")
	}
}

func TestScreenCloneIsIndependent(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "abcd")

	c := s.Clone()
	s.Set(0, 0, 'Z')

	if c.Get(0, 0) != 'a' {
		t.Error("clone should not see later writes to the original")
	}
	if c.String() != "abcd\n    " {
		t.Errorf("clone String() = %q", c.String())
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	if got := s.String(); got != "AAAAA\nBBBBB\nCCCCC" {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("after resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content should be preserved, row 0 = %q", s.Row(0))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content should be preserved after enlarging, row 0 = %q", s.Row(0))
	}
	if s.Row(-1) != strings.Repeat(" ", 15) {
		t.Error("out of bounds row should be spaces")
	}
}

func TestGrayAlphaRamp(t *testing.T) {
	if GrayAlpha(0) != Gray(0) {
		t.Errorf("GrayAlpha(0) = %d, expected %d", GrayAlpha(0), Gray(0))
	}
	if GrayAlpha(255) != Color(255) {
		t.Errorf("GrayAlpha(255) = %d, expected 255", GrayAlpha(255))
	}
	if GrayAlpha(999) != Color(255) || Gray(-3) != Color(232) {
		t.Error("ramp should clamp out of range input")
	}
}
