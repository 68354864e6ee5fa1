package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tubesort/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key    string
		want   core.Action
		isQuit bool
	}{
		{"left", core.ActionLeft, false},
		{"h", core.ActionLeft, false},
		{"right", core.ActionRight, false},
		{"d", core.ActionRight, false},
		{" ", core.ActionSelect, false},
		{"enter", core.ActionConfirm, false},
		{"H", core.ActionHint, false},
		{"?", core.ActionHint, false},
		{"r", core.ActionRestart, false},
		{"n", core.ActionNextLevel, false},
		{"p", core.ActionPause, false},
		{"esc", core.ActionBack, false},
		{"q", core.ActionQuit, true},
		{"z", core.ActionNone, false},
	}

	for _, tc := range tests {
		got, isQuit := km.MapKey(keyMsg(tc.key))
		if got != tc.want || isQuit != tc.isQuit {
			t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tc.key, got, isQuit, tc.want, tc.isQuit)
		}
	}
}

func TestMapKeyToFramePicksTubes(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key  string
		want int // 0-based
	}{
		{"1", 0},
		{"9", 8},
		{"0", 9},
	}
	for _, tc := range tests {
		frame := core.NewInputFrame()
		km.MapKeyToFrame(keyMsg(tc.key), &frame)
		got, ok := frame.Pick()
		if !ok || got != tc.want {
			t.Errorf("key %q: Pick() = %d, %v; want %d", tc.key, got, ok, tc.want)
		}
	}
}

func TestMapMouseToFrame(t *testing.T) {
	km := NewKeyMapper()

	frame := core.NewInputFrame()
	press := tea.MouseMsg{X: 12, Y: 7, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	if !km.MapMouseToFrame(press, &frame) {
		t.Fatal("left press should register a click")
	}
	if x, y, ok := frame.Click(); !ok || x != 12 || y != 7 {
		t.Errorf("Click() = %d, %d, %v; want 12, 7, true", x, y, ok)
	}

	frame = core.NewInputFrame()
	release := tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
	if km.MapMouseToFrame(release, &frame) {
		t.Error("release should be ignored")
	}
	if _, _, ok := frame.Click(); ok {
		t.Error("frame should have no click")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := map[string]MenuAction{
		"k":     MenuActionUp,
		"j":     MenuActionDown,
		"enter": MenuActionSelect,
		"esc":   MenuActionBack,
		"tab":   MenuActionScoreboard,
		"q":     MenuActionQuit,
		"x":     MenuActionNone,
	}
	for key, want := range tests {
		if got := km.MapKeyToMenuAction(keyMsg(key)); got != want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", key, got, want)
		}
	}
}
