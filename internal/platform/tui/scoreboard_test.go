package tui

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tubesort/internal/storage"
)

func seededStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	for _, s := range []struct {
		player       string
		score, level int
	}{
		{"alice", 410, 3},
		{"bob", 120, 1},
	} {
		if _, err := store.SaveScore("tubesort", s.player, s.score, s.level); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
		if err := store.SaveProgress(s.player, "tubesort", s.level+1); err != nil {
			t.Fatalf("SaveProgress() failed: %v", err)
		}
	}
	return store
}

func TestScoreboardShowsScoresAndProgress(t *testing.T) {
	m := NewScoreboardModel(seededStore(t), 100, 30, "tubesort")
	view := m.View()

	for _, want := range []string{"HIGH SCORES", "alice", "410", "Progress", "lvl  4", "furthest level 3"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if strings.Index(view, "alice") > strings.Index(view, "bob") {
		t.Error("best score should be listed first")
	}
}

func TestScoreboardSwitchesModes(t *testing.T) {
	var m tea.Model = NewScoreboardModel(seededStore(t), 100, 30, "tubesort")

	m, _ = m.Update(keyMsg("tab"))
	sb := m.(ScoreboardModel)
	if sb.modes[sb.mode].ID != "tubesort_endless" {
		t.Fatalf("tab should move to the endless scores, got %q", sb.modes[sb.mode].ID)
	}
	if !strings.Contains(sb.View(), "No scores recorded yet.") {
		t.Error("endless mode has no scores yet")
	}

	m, _ = m.Update(keyMsg("left"))
	sb = m.(ScoreboardModel)
	if sb.modes[sb.mode].ID != "tubesort" {
		t.Errorf("left should wrap back to campaign, got %q", sb.modes[sb.mode].ID)
	}
}

func TestScoreboardLogsReadErrors(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	store := seededStore(t)
	if err := store.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}
	m := NewScoreboardModel(store, 100, 30, "tubesort")

	if !strings.Contains(m.View(), "No scores recorded yet.") {
		t.Error("a failed read should leave the score panel empty")
	}
	for _, want := range []string{"could not load scores", "could not load stats", "could not load progress", "game=tubesort"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("log missing %q:\n%s", want, buf.String())
		}
	}
}

func TestScoreboardNarrowHidesProgress(t *testing.T) {
	m := NewScoreboardModel(seededStore(t), 60, 24, "tubesort")
	if strings.Contains(m.View(), "Progress") {
		t.Error("narrow layout should not show the progress panel")
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24, "")

	next, cmd := m.Update(keyMsg("esc"))
	if !next.(ScoreboardModel).IsGoingBack() || cmd == nil {
		t.Error("esc should go back")
	}

	next, _ = m.Update(keyMsg("q"))
	if !next.(ScoreboardModel).IsQuitting() {
		t.Error("q should quit")
	}
}
