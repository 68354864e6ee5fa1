package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tubesort/internal/core"
	"github.com/vovakirdan/tubesort/internal/games/tubesort"
	"github.com/vovakirdan/tubesort/internal/storage"
)

func newTestModel(t *testing.T, game *tubesort.Game) (Model, *storage.Store) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	m := NewModel(game, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 3}, "")
	m.Init()
	return m, store
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func pairBoard(t *testing.T) tubesort.Board {
	t.Helper()
	b, err := tubesort.NewBoard([][]string{{"red", "blue"}, {"blue"}, {}})
	if err != nil {
		t.Fatalf("NewBoard() failed: %v", err)
	}
	return b
}

func TestModelRecordsProgressAndScore(t *testing.T) {
	game := tubesort.New()
	game.UseBoard("pair", pairBoard(t))
	m, store := newTestModel(t, game)

	m = send(t, m, TickMsg{})
	if level, _ := store.Progress(storage.LocalPlayer, "tubesort"); level != 1 {
		t.Errorf("progress after first tick = %d, want 1", level)
	}

	// Pick tube 1, then pour into tube 2.
	m = send(t, m, keyMsg("1"), TickMsg{}, keyMsg("2"), TickMsg{})
	if !m.State().Won {
		t.Fatalf("expected a win, state %+v", m.State())
	}

	next, cmd := m.Update(keyMsg("q"))
	m = next.(Model)
	if !m.IsQuitting() || cmd == nil {
		t.Fatal("q should quit")
	}

	scores, err := store.TopScores("tubesort", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 110 {
		t.Errorf("scores = %+v, want one score of 110", scores)
	}
}

func TestModelBackToMenu(t *testing.T) {
	m, _ := newTestModel(t, tubesort.New())

	m.embedded = true
	next, cmd := m.Update(keyMsg("esc"))
	m = next.(Model)
	if !m.BackToMenu() {
		t.Error("esc should request the menu")
	}
	if cmd != nil {
		t.Error("an embedded game must not quit the program")
	}
}

func TestModelMouseClickSelects(t *testing.T) {
	game := tubesort.New()
	game.UseBoard("pair", pairBoard(t))
	m, _ := newTestModel(t, game)

	// Find the first tube's label row on screen and click above it.
	m = send(t, m, TickMsg{})
	screen := core.NewScreen(80, 24)
	game.Render(screen)
	x, y := -1, -1
	for row := 0; row < screen.Height() && x < 0; row++ {
		if i := strings.Index(screen.Row(row), "└"); i >= 0 {
			x, y = len([]rune(screen.Row(row)[:i]))+2, row-1
		}
	}
	if x < 0 {
		t.Fatal("tube not found on screen")
	}

	m = send(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, TickMsg{})
	if got := game.Session().Selected(); got != 0 {
		t.Errorf("Selected() = %d, want 0", got)
	}
}

func TestModelResizeKeepsBoard(t *testing.T) {
	game := tubesort.New()
	m, _ := newTestModel(t, game)
	m = send(t, m, TickMsg{})
	before := game.Session().Board().String()

	send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if after := game.Session().Board().String(); after != before {
		t.Errorf("board changed on resize: %s -> %s", before, after)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(2, 0, '█', core.ColorRed)
	s.DrawTextColored(0, 1, "pink", core.ColorPink)

	out := RenderScreen(s)
	if !strings.Contains(out, "ab") || !strings.Contains(out, "█") || !strings.Contains(out, "pink") {
		t.Errorf("RenderScreen lost text: %q", out)
	}
	if lines := strings.Count(out, "\n"); lines != 1 {
		t.Errorf("expected 2 lines, got %d newlines", lines)
	}
}
