package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tubesort/internal/core"
	"github.com/vovakirdan/tubesort/internal/storage"
)

func newTestSession(t *testing.T) (SessionModel, *storage.Store) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 5}
	return NewSessionModel(store, cfg, "alice", nil), store
}

func sendSession(t *testing.T, m SessionModel, msgs ...tea.Msg) SessionModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(SessionModel)
	}
	return m
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m, store := newTestSession(t)

	m = sendSession(t, m, keyMsg("enter"))
	if m.view != viewMode {
		t.Fatalf("enter on the menu should open the mode selector, view = %d", m.view)
	}

	m = sendSession(t, m, keyMsg("enter"))
	if m.view != viewGame || m.game == nil {
		t.Fatalf("enter on campaign should start a game, view = %d", m.view)
	}

	m = sendSession(t, m, TickMsg{})
	if level, _ := store.Progress("alice", "tubesort"); level != 1 {
		t.Errorf("progress is recorded under the SSH user, got level %d", level)
	}

	m = sendSession(t, m, keyMsg("b"))
	if m.view != viewMenu || m.game != nil {
		t.Errorf("back from the game should return to the menu, view = %d", m.view)
	}
	if m.quitting {
		t.Error("back must not end the SSH session")
	}
}

func TestSessionScoreboard(t *testing.T) {
	m, _ := newTestSession(t)

	m = sendSession(t, m, keyMsg("tab"))
	if m.view != viewScores {
		t.Fatalf("tab should open the scoreboard, view = %d", m.view)
	}

	m = sendSession(t, m, keyMsg("esc"))
	if m.view != viewMenu {
		t.Errorf("esc should return to the menu, view = %d", m.view)
	}
}

func TestSessionQuit(t *testing.T) {
	m, _ := newTestSession(t)

	next, cmd := m.Update(keyMsg("q"))
	if !next.(SessionModel).quitting || cmd == nil {
		t.Error("q on the menu should end the session")
	}
}

func TestSessionTracksWindowSize(t *testing.T) {
	m, _ := newTestSession(t)

	m = sendSession(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.config.ScreenW != 120 || m.config.ScreenH != 40 {
		t.Errorf("config = %dx%d, want 120x40", m.config.ScreenW, m.config.ScreenH)
	}
}
