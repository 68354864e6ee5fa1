package tubesort

import (
	"errors"
	"math/rand"
)

// NoSelection marks that no tube is selected.
const NoSelection = -1

// Options configure the rules of a session.
type Options struct {
	Shuffle    ShuffleMode
	WinRule    WinRule
	MaxLevel   int // Last campaign level, 0 for endless
	LevelBonus int // Points per level number on a win
	MoveBonus  int // Points per move saved under par
	HintBudget int // Solver budget for hints

	// EnsureSolvable re-deals boards the solver proves unsolvable.
	EnsureSolvable bool
}

// DefaultOptions returns the classic campaign rules.
func DefaultOptions() Options {
	return Options{
		Shuffle:    ShuffleUniform,
		WinRule:    WinLoose,
		MaxLevel:   LevelCount(),
		LevelBonus: 100,
		MoveBonus:  5,
		HintBudget: DefaultSolveBudget,

		EnsureSolvable: true,
	}
}

// maxDeals bounds how many boards generate tries before accepting one.
const maxDeals = 20

// Verdict is what the solver established about a freshly dealt board.
type Verdict int

const (
	VerdictUnknown    Verdict = iota // Not checked, or too large to decide
	VerdictSolvable                  // A solution exists
	VerdictUnsolvable                // Proven to have no solution
)

// Session holds the state of one play-through: the current level, its
// board and the transient selection. All transitions go through its
// methods; nothing here is shared between sessions.
type Session struct {
	opts Options
	rng  *rand.Rand

	level    int
	board    Board
	selected int
	won      bool
	moves    int
	score    int
	verdict  Verdict

	// Hand-authored board replacing the generated one, if any.
	custom     Board
	customName string
}

// NewSession starts a session at the given level (clamped to >= 1).
func NewSession(opts Options, seed int64, level int) *Session {
	s := &Session{
		opts:     opts,
		rng:      rand.New(rand.NewSource(seed)),
		level:    max(level, 1),
		selected: NoSelection,
	}
	if s.opts.MaxLevel > 0 && s.level > s.opts.MaxLevel {
		s.level = s.opts.MaxLevel
	}
	s.board = s.generate()
	return s
}

// NewCustomSession starts a session on a hand-authored board.
// Restart returns to that board; NextLevel continues with generated levels.
func NewCustomSession(opts Options, seed int64, name string, board Board) *Session {
	s := &Session{
		opts:       opts,
		rng:        rand.New(rand.NewSource(seed)),
		level:      1,
		selected:   NoSelection,
		custom:     board.Clone(),
		customName: name,
	}
	s.board = board.Clone()
	return s
}

// ClickTube handles a click on tube index. The first click selects a tube,
// the second pours from the selected tube into the clicked one and clears
// the selection whatever the outcome. Returns true if a unit was poured.
func (s *Session) ClickTube(index int) bool {
	if s.won || index < 0 || index >= len(s.board) {
		return false
	}
	if s.selected == NoSelection {
		s.selected = index
		return false
	}

	from := s.selected
	s.selected = NoSelection
	if !Pour(s.board, from, index) {
		return false
	}

	s.moves++
	if s.solved() {
		s.won = true
		s.score += s.winBonus()
	}
	return true
}

// Restart regenerates the board of the current level.
func (s *Session) Restart() {
	if s.custom != nil {
		s.board = s.custom.Clone()
		s.verdict = VerdictUnknown
	} else {
		s.board = s.generate()
	}
	s.won = false
	s.selected = NoSelection
	s.moves = 0
}

// CanAdvance reports whether NextLevel would succeed.
func (s *Session) CanAdvance() bool {
	return s.won && !s.Complete()
}

// NextLevel moves to the next level after a win.
func (s *Session) NextLevel() bool {
	if !s.CanAdvance() {
		return false
	}
	if s.custom != nil {
		s.custom = nil
		s.customName = ""
	} else {
		s.level++
	}
	s.board = s.generate()
	s.won = false
	s.selected = NoSelection
	s.moves = 0
	return true
}

// Hint returns the first pour of a solution from the current position.
func (s *Session) Hint() (Move, error) {
	if s.won {
		return Move{}, ErrNoSolution
	}
	path, err := Solve(s.board, s.opts.WinRule.Goal(), s.opts.HintBudget)
	if err != nil {
		return Move{}, err
	}
	if len(path) == 0 {
		return Move{}, ErrNoSolution
	}
	return path[0], nil
}

// generate deals a board for the current level. With EnsureSolvable it
// re-deals while the solver proves the board has no solution. All deals
// share one hint budget, so a level costs at most one budget of search.
// The verdict on the returned board is kept for Verdict.
func (s *Session) generate() Board {
	s.verdict = VerdictUnknown
	board := GenerateBoard(s.level, s.rng, s.opts.Shuffle)
	if !s.opts.EnsureSolvable {
		return board
	}

	budget := s.opts.HintBudget
	if budget <= 0 {
		budget = DefaultSolveBudget
	}
	for deal := 1; ; deal++ {
		_, used, err := solve(board, s.opts.WinRule.Goal(), budget)
		switch {
		case err == nil:
			s.verdict = VerdictSolvable
			return board
		case !errors.Is(err, ErrNoSolution):
			return board
		}

		budget -= used
		if deal == maxDeals || budget <= 0 {
			s.verdict = VerdictUnsolvable
			return board
		}
		board = GenerateBoard(s.level, s.rng, s.opts.Shuffle)
	}
}

func (s *Session) solved() bool {
	return s.opts.WinRule.Goal()(s.board)
}

// winBonus scores a cleared level: a fixed bonus per level number plus
// a bonus for each move under par (par = units on the board).
func (s *Session) winBonus() int {
	par := s.board.TotalUnits()
	return s.level*s.opts.LevelBonus + max(0, par-s.moves)*s.opts.MoveBonus
}

// Level returns the current level (1-based).
func (s *Session) Level() int { return s.level }

// Board returns the live board. Callers must not modify it.
func (s *Session) Board() Board { return s.board }

// Selected returns the selected tube or NoSelection.
func (s *Session) Selected() int { return s.selected }

// Verdict reports whether the board as dealt is known to be solvable.
// Pours do not update it.
func (s *Session) Verdict() Verdict { return s.verdict }

// Won reports whether the current board is solved.
func (s *Session) Won() bool { return s.won }

// Complete reports whether the last campaign level has been won.
func (s *Session) Complete() bool {
	return s.won && s.custom == nil && s.opts.MaxLevel > 0 && s.level >= s.opts.MaxLevel
}

// Moves returns the pours made on the current board.
func (s *Session) Moves() int { return s.moves }

// Score returns the accumulated score.
func (s *Session) Score() int { return s.score }

// CustomName returns the name of the hand-authored board in play, if any.
func (s *Session) CustomName() string { return s.customName }
