package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)

	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, want 12x4", s.Width(), s.Height())
	}
	want := strings.Repeat(strings.Repeat(" ", 12)+"\n", 3) + strings.Repeat(" ", 12)
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want blank", got)
	}
}

func TestNewScreenNegativeSize(t *testing.T) {
	s := NewScreen(-3, 5)
	if s.Width() != 0 || s.Height() != 5 {
		t.Errorf("size = %dx%d, want 0x5", s.Width(), s.Height())
	}
	s.Set(0, 0, 'x') // must not panic
}

func TestScreenSetOutOfBounds(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(5, 5, '@')

	for _, p := range [][2]int{{-1, 0}, {10, 0}, {0, -1}, {0, 10}} {
		s.Set(p[0], p[1], '!')
		if c := s.GetCell(p[0], p[1]); c != blank {
			t.Errorf("GetCell(%d, %d) = %+v, want blank", p[0], p[1], c)
		}
	}
	if c := s.GetCell(5, 5); c.Rune != '@' || c.Color != ColorDefault {
		t.Errorf("GetCell(5, 5) = %+v", c)
	}
	if strings.Contains(s.String(), "!") {
		t.Error("out-of-bounds writes leaked onto the screen")
	}
}

func TestScreenDrawTextClips(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextColor(2, 1, "Score: 300", ColorBrightWhite)
	s.DrawText(17, 0, "Lives")
	s.DrawText(-2, 2, "♥♥♥")

	if got := s.Row(1); got != "  Score: 300        " {
		t.Errorf("Row(1) = %q", got)
	}
	if c := s.GetCell(2, 1); c.Color != ColorBrightWhite {
		t.Errorf("text color = %v, want bright white", c.Color)
	}
	if got := s.Row(0); !strings.HasSuffix(got, "Liv") {
		t.Errorf("Row(0) = %q, want clipped at the right edge", got)
	}
	if got := s.Row(2); !strings.HasPrefix(got, "♥ ") {
		t.Errorf("Row(2) = %q, want clipped at the left edge", got)
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(10, 6)
	s.FillRect(2, 4, 5, 1, '=', ColorBrown)

	if got := s.Row(4); got != "  =====   " {
		t.Errorf("Row(4) = %q", got)
	}
	if c := s.GetCell(3, 4); c.Color != ColorBrown {
		t.Errorf("fill color = %v, want brown", c.Color)
	}

	// A ledge hanging off both sides is clipped.
	s.FillRect(-4, 5, 20, 3, '=', ColorBrown)
	if got := s.Row(5); got != "==========" {
		t.Errorf("Row(5) = %q", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(8, 5)
	s.DrawBox(1, 1, 5, 3)

	want := []string{
		"        ",
		" ┌───┐  ",
		" │   │  ",
		" └───┘  ",
		"        ",
	}
	for y, row := range want {
		if got := s.Row(y); got != row {
			t.Errorf("Row(%d) = %q, want %q", y, got, row)
		}
	}

	s.Clear()
	s.DrawBox(0, 0, 1, 1)
	if s.GetCell(0, 0) != blank {
		t.Error("degenerate box should draw nothing")
	}
}

func TestScreenClearResetsColors(t *testing.T) {
	s := NewScreen(4, 1)
	s.DrawTextColor(0, 0, "◆◆", ColorBrightBlue)
	s.Clear()

	if c := s.GetCell(0, 0); c != blank {
		t.Errorf("GetCell(0, 0) = %+v after Clear", c)
	}
}

func TestScreenResizeBlanks(t *testing.T) {
	s := NewScreen(10, 4)
	s.DrawText(0, 0, "apple")

	s.Resize(6, 2)
	if s.Width() != 6 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, want 6x2", s.Width(), s.Height())
	}
	if got := s.String(); got != "      \n      " {
		t.Errorf("String() = %q, want blank", got)
	}

	s.Resize(12, 3)
	s.Set(11, 2, '@')
	if c := s.GetCell(11, 2); c.Rune != '@' {
		t.Errorf("GetCell(11, 2) = %+v after growing", c)
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(5, 2)
	if got := s.Row(-1); got != "     " {
		t.Errorf("Row(-1) = %q", got)
	}
	if got := s.Row(2); got != "     " {
		t.Errorf("Row(2) = %q", got)
	}
}
