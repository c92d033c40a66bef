package core

import (
	"strings"
	"testing"
)

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

	s.Set(5, 5, '@', ColorActor)
	if cell := s.GetCell(5, 5); cell.Rune != '@' || cell.Color != ColorActor {
		t.Errorf("GetCell(5, 5) = %+v, expected '@' in actor color", cell)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A', ColorDefault)
	s.Set(100, 0, 'A', ColorDefault)
	s.Set(0, -1, 'A', ColorDefault)
	s.Set(0, 100, 'A', ColorDefault)

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(1, 1, 'X', ColorDefault)

	s.Resize(20, 8)
	if s.Width() != 20 || s.Height() != 8 {
		t.Fatalf("Resize() = %dx%d, expected 20x8", s.Width(), s.Height())
	}
	if s.Get(1, 1) != ' ' {
		t.Errorf("Resize should clear content, got %q", s.Get(1, 1))
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawText(2, 1, "Mesa", ColorStationLabel)

	if row := s.Row(1); !strings.HasPrefix(row, "  Mesa") {
		t.Errorf("Row(1) = %q, expected prefix %q", row, "  Mesa")
	}

	// Multi-byte runes occupy one cell each
	s.DrawText(0, 2, "Fogão!", ColorStationLabel)
	if s.Get(3, 2) != 'ã' || s.Get(4, 2) != 'o' {
		t.Errorf("DrawText should place one rune per cell, got row %q", s.Row(2))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(5, 0, "abc", ColorDefault)

	if row := s.Row(0); row != "    abc    " {
		t.Errorf("Row(0) = %q, expected %q", row, "    abc    ")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawBox(NewRect(0, 0, 5, 4), ColorStation)

	expected := []string{
		"┌───┐",
		"│   │",
		"│   │",
		"└───┘",
	}
	for y, want := range expected {
		if got := s.Row(y); got != want {
			t.Errorf("Row(%d) = %q, expected %q", y, got, want)
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Fill('.', ColorFloor)

	if got := s.String(); got != "...\n..." {
		t.Errorf("String() = %q, expected %q", got, "...\n...")
	}
}
