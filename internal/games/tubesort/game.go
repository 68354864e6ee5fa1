package tubesort

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tubesort/internal/config"
	"github.com/vovakirdan/tubesort/internal/core"
	"github.com/vovakirdan/tubesort/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
)

// hintTicks is how long a hint stays highlighted.
const hintTicks = 90

// Game adapts a Session to the platform's registry.Game interface:
// it owns the tube cursor, pause state and hint display.
type Game struct {
	mode    Mode
	cfg     config.TubeSortConfig
	session *Session
	tick    uint64

	cursor   int
	paused   bool
	tooSmall bool
	hint     *Move
	hintLeft int
	message  string

	screenW int
	screenH int
	layout  layout

	// Per-instance start settings, preferred over the package-level ones.
	startLevel int
	board      Board
	boardName  string
}

// Package-level settings applied on the next Reset, set by the CLI and menus.
var (
	selectedStartLevel int
	configPath         string
	difficultyPreset   config.DifficultyPreset
	customBoard        Board
	customBoardName    string
)

// SetStartLevel sets the starting level. 0 means use the config default.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// SetConfigPath sets a custom YAML config path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset name.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.DifficultyPreset(preset)
}

// SetCustomBoard makes the next Reset start on a hand-authored board.
func SetCustomBoard(name string, b Board) {
	customBoardName = name
	customBoard = b.Clone()
}

// StartAt makes every Reset of this game start on level. 0 means use the config default.
func (g *Game) StartAt(level int) {
	g.startLevel = level
}

// UseBoard makes every Reset of this game start on a hand-authored board.
func (g *Game) UseBoard(name string, b Board) {
	g.boardName = name
	g.board = b.Clone()
}

// New creates a new campaign game.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates a game without a level cap.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

func init() {
	registry.Register("tubesort", func() registry.Game {
		return New()
	})
	registry.Register("tubesort_endless", func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "tubesort_endless"
	}
	return "tubesort"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Tube Sort (Endless)"
	}
	return "Tube Sort"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = loadConfig()
	opts := g.options()

	g.tick = 0
	g.cursor = 0
	g.paused = false
	g.hint = nil
	g.hintLeft = 0
	g.message = ""
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	if customBoard != nil {
		g.UseBoard(customBoardName, customBoard)
		customBoard, customBoardName = nil, "" // Reset after use
	}
	if selectedStartLevel > 0 {
		g.StartAt(selectedStartLevel)
		selectedStartLevel = 0 // Reset after use
	}

	if g.board != nil {
		g.session = NewCustomSession(opts, cfg.Seed, g.boardName, g.board)
	} else {
		start := g.cfg.Difficulty.StartLevel
		if g.startLevel > 0 {
			start = g.startLevel
		}
		g.session = NewSession(opts, cfg.Seed, start)
	}

	g.relayout()
}

// Resize adapts the layout to new screen dimensions without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.relayout()
}

func loadConfig() config.TubeSortConfig {
	cfg, err := config.LoadTubeSort(configPath)
	if err != nil {
		cfg = config.DefaultTubeSortConfig()
	}
	config.ApplyPreset(&cfg, difficultyPreset)
	return cfg
}

// options converts the YAML config to session options. Rule names are
// checked by config.Validate; the parse fallbacks only cover a config that
// failed to load.
func (g *Game) options() Options {
	opts := DefaultOptions()
	if mode, err := ParseShuffleMode(g.cfg.Rules.Shuffle); err == nil {
		opts.Shuffle = mode
	}
	if rule, err := ParseWinRule(g.cfg.Rules.WinRule); err == nil {
		opts.WinRule = rule
	}
	opts.MaxLevel = g.cfg.Rules.MaxLevel
	if g.mode == ModeEndless {
		opts.MaxLevel = 0
	}
	opts.EnsureSolvable = g.cfg.Rules.EnsureSolvable
	opts.LevelBonus = g.cfg.Scoring.LevelBonus
	opts.MoveBonus = g.cfg.Scoring.MoveBonus
	if g.cfg.Hints.Budget > 0 {
		opts.HintBudget = g.cfg.Hints.Budget
	}
	return opts
}

// Step applies one frame of input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	if g.hintLeft > 0 {
		g.hintLeft--
		if g.hintLeft == 0 {
			g.hint = nil
		}
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.session.Restart()
		g.afterBoardChange()
		return core.StepResult{State: g.State()}
	}

	if g.session.Won() {
		if in.Has(core.ActionNextLevel) || in.Has(core.ActionConfirm) || in.Has(core.ActionSelect) {
			if g.session.NextLevel() {
				g.afterBoardChange()
			}
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionHint) {
		g.showHint()
	}

	n := len(g.session.Board())
	if in.Has(core.ActionLeft) {
		g.cursor = (g.cursor - 1 + n) % n
	}
	if in.Has(core.ActionRight) {
		g.cursor = (g.cursor + 1) % n
	}

	moved := false
	if in.Has(core.ActionSelect) || in.Has(core.ActionConfirm) {
		moved = g.click(g.cursor) || moved
	}
	// Up lifts the tube under the cursor, Down puts the lifted one back.
	if in.Has(core.ActionUp) && g.session.Selected() == NoSelection {
		g.click(g.cursor)
	}
	if in.Has(core.ActionDown) && g.session.Selected() != NoSelection {
		g.click(g.session.Selected())
	}
	if idx, ok := in.Pick(); ok && idx < n {
		g.cursor = idx
		moved = g.click(idx) || moved
	}
	if x, y, ok := in.Click(); ok {
		if idx, hit := g.tubeAt(x, y); hit {
			g.cursor = idx
			moved = g.click(idx) || moved
		}
	}

	return core.StepResult{State: g.State(), Moved: moved}
}

func (g *Game) click(idx int) bool {
	poured := g.session.ClickTube(idx)
	if poured {
		g.hint = nil
		g.hintLeft = 0
		g.message = ""
	}
	return poured
}

func (g *Game) showHint() {
	if !g.cfg.Hints.Enabled {
		g.message = "Hints are disabled"
		return
	}
	move, err := g.session.Hint()
	switch {
	case err == nil:
		g.hint = &move
		g.hintLeft = hintTicks
		g.message = fmt.Sprintf("Try pouring %s", move)
	case errors.Is(err, ErrBudgetExceeded):
		g.message = "No hint found (search too large)"
	default:
		g.message = "No solution from here - press R to restart"
	}
}

// afterBoardChange resets per-board UI state after restart or level advance.
func (g *Game) afterBoardChange() {
	g.cursor = 0
	g.hint = nil
	g.hintLeft = 0
	g.message = ""
	g.relayout()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.session.Score(),
		Level:    g.session.Level(),
		Won:      g.session.Won(),
		GameOver: g.session.Complete(),
		Paused:   g.paused || g.tooSmall,
	}
}

// Session exposes the underlying session, mainly for tests and tools.
func (g *Game) Session() *Session {
	return g.session
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "←/→ move · ↑/↓ lift/drop · space pour · H hint · R restart · N next · Q quit"
}
