package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '@')
	if got := s.Get(3, 2); got != '@' {
		t.Errorf("Expected '@' at (3,2), got %q", got)
	}

	// Out of bounds is silently ignored / returns space
	s.Set(-1, 0, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, 5, 'x')
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("Expected space for out-of-bounds get, got %q", got)
	}
}

func TestScreenCellColor(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetCell(1, 1, 'M', ColorRed)
	cell := s.GetCell(1, 1)
	if cell.Rune != 'M' || cell.Color != ColorRed {
		t.Errorf("Expected {M, ColorRed}, got %+v", cell)
	}

	// Plain Set uses the default color
	s.Set(2, 1, '.')
	if c := s.GetCell(2, 1).Color; c != ColorDefault {
		t.Errorf("Expected default color, got %v", c)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.SetCell(0, 0, '#', ColorGray)
	s.Clear()

	cell := s.GetCell(0, 0)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("Expected cleared cell, got %+v", cell)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "hello")
	if got := s.Row(1); got != "  hello   " {
		t.Errorf("Expected %q, got %q", "  hello   ", got)
	}

	// Text extending past the edge is clipped
	s.DrawText(7, 0, "world")
	if got := s.Row(0); got != "       wor" {
		t.Errorf("Expected clipped text, got %q", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4))

	if s.Get(0, 0) != '┌' || s.Get(5, 0) != '┐' || s.Get(0, 3) != '└' || s.Get(5, 3) != '┘' {
		t.Errorf("Box corners wrong:\n%s", s.String())
	}
	if s.Get(2, 0) != '─' || s.Get(0, 2) != '│' {
		t.Errorf("Box edges wrong:\n%s", s.String())
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(8, 4)
	s.Set(1, 1, '@')
	s.Resize(12, 6)

	if s.Width() != 12 || s.Height() != 6 {
		t.Fatalf("Expected 12x6 after resize, got %dx%d", s.Width(), s.Height())
	}
	if got := s.Get(1, 1); got != '@' {
		t.Errorf("Expected content preserved at (1,1), got %q", got)
	}

	// Shrinking clips
	s.Resize(2, 2)
	if got := s.Get(1, 1); got != '@' {
		t.Errorf("Expected (1,1) to survive shrink, got %q", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	got := s.String()
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "a  " || lines[1] != "  b" {
		t.Errorf("Unexpected render:\n%s", got)
	}
}

func TestRectIntersects(t *testing.T) {
	a := NewRect(0, 0, 4, 4)
	b := NewRect(3, 3, 4, 4)
	c := NewRect(4, 0, 2, 2)

	if !a.Intersects(b) {
		t.Error("Expected a and b to intersect")
	}
	if a.Intersects(c) {
		t.Error("Expected a and c (edge-adjacent) not to intersect")
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()

	f.Set(ActionLeft)
	f.Set(ActionConfirm)
	if !f.Has(ActionLeft) || !f.Has(ActionConfirm) {
		t.Error("Expected set actions to be present")
	}
	if f.Has(ActionRight) {
		t.Error("Expected unset action to be absent")
	}

	f.Clear()
	if f.Has(ActionLeft) {
		t.Error("Expected frame to be empty after Clear")
	}
}
