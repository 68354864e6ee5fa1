package core

import (
	"strings"
	"testing"
)

// rows renders the screen and splits it into lines.
func rows(s *Screen) []string {
	return strings.Split(s.String(), "\n")
}

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 3)
	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, want 6x3", s.Width(), s.Height())
	}
	for i, row := range rows(s) {
		if row != "      " {
			t.Errorf("row %d = %q, want blanks", i, row)
		}
	}

	if z := NewScreen(-2, -1); z.Width() != 0 || z.Height() != 0 {
		t.Errorf("negative size should clamp to 0x0, got %dx%d", z.Width(), z.Height())
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(4, 4)

	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 4}} {
		s.SetColored(p[0], p[1], '#', ColorRed)
		if got := s.GetCell(p[0], p[1]); got.Rune != ' ' || got.Color != ColorDefault {
			t.Errorf("GetCell(%d, %d) = %+v, want blank", p[0], p[1], got)
		}
	}
	if strings.Contains(s.String(), "#") {
		t.Error("out-of-bounds writes must be dropped")
	}
	if got := s.Row(9); got != "    " {
		t.Errorf("Row(9) = %q, want blank row", got)
	}
}

func TestScreenText(t *testing.T) {
	tests := []struct {
		name string
		draw func(s *Screen)
		want string
	}{
		{"plain", func(s *Screen) { s.DrawText(1, 0, "Moves") }, " Moves    "},
		{"clipped right", func(s *Screen) { s.DrawText(7, 0, "Level 3") }, "       Lev"},
		{"clipped left", func(s *Screen) { s.DrawText(-2, 0, "xxWon") }, "Won       "},
		{"centered", func(s *Screen) { s.DrawTextCentered(0, "WIN") }, "   WIN    "},
		{"centered runes", func(s *Screen) { s.DrawTextCentered(0, "1 → 3") }, "  1 → 3   "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(10, 1)
			tc.draw(s)
			if got := s.Row(0); got != tc.want {
				t.Errorf("row = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestScreenShapes(t *testing.T) {
	s := NewScreen(7, 5)
	s.DrawBox(NewRect(0, 0, 5, 5))
	s.DrawRect(NewRect(1, 1, 3, 3), '█', ColorBlue)
	s.DrawVLine(6, 0, 5, '|', ColorGray)
	s.DrawHLine(1, 2, 3, '=', ColorRed)

	want := []string{
		"┌───┐ |",
		"│███│ |",
		"│===│ |",
		"│███│ |",
		"└───┘ |",
	}
	got := rows(s)
	for y := range want {
		if got[y] != want[y] {
			t.Errorf("row %d = %q, want %q", y, got[y], want[y])
		}
	}

	if c := s.GetCell(2, 1); c.Color != ColorBlue {
		t.Errorf("fill color = %v, want blue", c.Color)
	}
	if c := s.GetCell(2, 2); c.Rune != '=' || c.Color != ColorRed {
		t.Errorf("line cell = %+v, want red '='", c)
	}
	if c := s.GetCell(0, 0); c.Color != ColorDefault {
		t.Errorf("box outline should use the default color, got %v", c.Color)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawRect(NewRect(0, 0, 3, 2), 'R', ColorRed)
	s.Clear()

	if s.String() != "   \n   " {
		t.Errorf("Clear left %q", s.String())
	}
	if s.GetCell(1, 1).Color != ColorDefault {
		t.Error("Clear should reset colors")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawTextColored(0, 0, "ABCD", ColorPink)
	s.DrawText(0, 1, "efgh")

	s.Resize(2, 3)
	if got := rows(s); len(got) != 3 || got[0] != "AB" || got[1] != "ef" || got[2] != "  " {
		t.Errorf("after shrink = %q", got)
	}
	if s.GetCell(1, 0).Color != ColorPink {
		t.Error("Resize should keep colors")
	}

	s.Resize(5, 1)
	if got := s.Row(0); got != "AB   " {
		t.Errorf("after grow = %q, want %q", got, "AB   ")
	}

	s.Resize(5, 1)
	if s.Row(0) != "AB   " {
		t.Error("same-size Resize should be a no-op")
	}
}
