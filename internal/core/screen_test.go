package core

import (
	"strings"
	"testing"
)

// testImage is a fixed-size image for blit tests.
type testImage struct {
	rows  []string
	color Color
}

func (i testImage) Size() (int, int) {
	return len([]rune(i.rows[0])), len(i.rows)
}

func (i testImage) At(x, y int) (rune, Color) {
	return []rune(i.rows[y])[x], i.color
}

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(5, 5, 'X', ColorRed)
	if cell := s.GetCell(5, 5); cell.Rune != 'X' || cell.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red 'X'", cell)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenFillAndClearRect(t *testing.T) {
	s := NewScreen(10, 10)
	r := NewRect(2, 2, 3, 3)
	s.FillRect(r, '#', ColorBlue)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if s.Get(x, y) != '#' {
				t.Errorf("FillRect: expected '#' at (%d, %d), got %q", x, y, s.Get(x, y))
			}
		}
	}
	if s.Get(1, 1) != ' ' || s.Get(5, 5) != ' ' {
		t.Error("FillRect should not affect outside area")
	}

	s.ClearRect(NewRect(2, 2, 2, 2))
	if s.Get(2, 2) != ' ' || s.Get(3, 3) != ' ' {
		t.Error("ClearRect should blank the region")
	}
	if s.Get(4, 4) != '#' {
		t.Error("ClearRect should not touch cells outside the region")
	}
}

func TestScreenDrawImage(t *testing.T) {
	s := NewScreen(10, 5)
	img := testImage{rows: []string{"/-\\", "\\ /"}, color: ColorOrange}

	s.FillRect(s.Bounds(), '.', ColorDefault)
	s.DrawImage(img, NewRect(1, 1, 3, 2))

	if s.Get(1, 1) != '/' || s.Get(2, 1) != '-' || s.Get(3, 1) != '\\' {
		t.Errorf("DrawImage top row = %q", s.Row(1))
	}
	// Spaces in the image are transparent
	if s.Get(2, 2) != '.' {
		t.Errorf("transparent cell should keep background, got %q", s.Get(2, 2))
	}
	if s.GetCell(1, 1).Color != ColorOrange {
		t.Error("DrawImage should keep the image color")
	}

	// Clipped to the target rect
	s.Clear()
	s.DrawImage(img, NewRect(0, 0, 2, 1))
	if s.Get(2, 0) != ' ' || s.Get(0, 1) != ' ' {
		t.Error("DrawImage should clip to the target rect")
	}

	// Nil image is a no-op
	s.DrawImage(nil, NewRect(0, 0, 5, 5))
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello", ColorDefault)

	if !strings.HasPrefix(s.Row(1)[2:], "Hello") {
		t.Errorf("DrawText: row 1 = %q", s.Row(1))
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello", ColorDefault)
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi", ColorDefault)

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, text not at expected position")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorDefault)

	if s.Get(1, 1) != '┌' || s.Get(5, 1) != '┐' || s.Get(1, 4) != '└' || s.Get(5, 4) != '┘' {
		t.Error("DrawBox corners are wrong")
	}
	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("horizontal edge wrong at x=%d", x)
		}
	}
}

func TestScreenCopyFrom(t *testing.T) {
	src := NewScreen(4, 2)
	src.DrawText(0, 0, "abcd", ColorGreen)
	dst := NewScreen(3, 3)
	dst.CopyFrom(src)

	if dst.Row(0) != "abc" {
		t.Errorf("CopyFrom row 0 = %q, expected %q", dst.Row(0), "abc")
	}
	if dst.GetCell(0, 0).Color != ColorGreen {
		t.Error("CopyFrom should copy colors")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA", ColorDefault)
	s.DrawText(0, 1, "BBBBB", ColorDefault)
	s.DrawText(0, 2, "CCCCC", ColorDefault)

	expected := "AAAAA\nBBBBB\nCCCCC"
	if result := s.String(); result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello", ColorDefault)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("Content should be preserved, row 0 = %q", s.Row(0))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("Content should be preserved after enlarging, row 0 = %q", s.Row(0))
	}
	if s.Row(-1) != strings.Repeat(" ", 15) {
		t.Error("Out of bounds row should be spaces")
	}
}
