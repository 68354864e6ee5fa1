package tubesort

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionLevelOne(t *testing.T) {
	s := NewSession(DefaultOptions(), 42, 1)

	assert.Equal(t, 1, s.Level())
	assert.Equal(t, NoSelection, s.Selected())
	assert.False(t, s.Won())
	assert.Zero(t, s.Moves())

	b := s.Board()
	require.Len(t, b, 3)
	assert.Len(t, b[0], 3)
	assert.Len(t, b[1], 3)
	assert.Empty(t, b[2])
}

func TestNewSessionClampsLevel(t *testing.T) {
	opts := DefaultOptions()
	opts.EnsureSolvable = false
	assert.Equal(t, 1, NewSession(opts, 1, -3).Level())
	assert.Equal(t, LevelCount(), NewSession(opts, 1, 99).Level())

	opts.MaxLevel = 0
	assert.Equal(t, 12, NewSession(opts, 1, 12).Level())
}

func TestClickTubeSelection(t *testing.T) {
	s := NewCustomSession(DefaultOptions(), 1, "pair", mustBoard(t, tube("red", "blue"), tube("blue"), tube()))

	assert.False(t, s.ClickTube(7), "out of range click is ignored")
	assert.Equal(t, NoSelection, s.Selected())

	assert.False(t, s.ClickTube(0))
	assert.Equal(t, 0, s.Selected())

	// Clicking the selected tube again is a rejected pour that deselects.
	assert.False(t, s.ClickTube(0))
	assert.Equal(t, NoSelection, s.Selected())
	assert.Zero(t, s.Moves())
}

func TestClickTubeRejectedPourClearsSelection(t *testing.T) {
	s := NewCustomSession(DefaultOptions(), 1, "", mustBoard(t, tube("blue", "red"), tube("blue"), tube()))

	s.ClickTube(0)
	assert.False(t, s.ClickTube(1), "red onto blue")
	assert.Equal(t, NoSelection, s.Selected())
	assert.Equal(t, [][]string{{"blue", "red"}, {"blue"}, {}}, s.Board().Names())
	assert.Zero(t, s.Moves())
}

func TestClickTubeWins(t *testing.T) {
	s := NewCustomSession(DefaultOptions(), 1, "pair", mustBoard(t, tube("red", "blue"), tube("blue"), tube()))

	s.ClickTube(0)
	require.True(t, s.ClickTube(1))

	assert.True(t, s.Won())
	assert.Equal(t, 1, s.Moves())
	// level 1 * 100 + (3 units - 1 move) * 5
	assert.Equal(t, 110, s.Score())

	// Clicks after a win do nothing.
	assert.False(t, s.ClickTube(2))
	assert.Equal(t, NoSelection, s.Selected())
}

func TestRestartCustomBoard(t *testing.T) {
	start := mustBoard(t, tube("red", "blue"), tube("blue"), tube())
	s := NewCustomSession(DefaultOptions(), 1, "pair", start)

	s.ClickTube(0)
	s.ClickTube(2)
	require.Equal(t, 1, s.Moves())

	s.Restart()
	assert.Equal(t, start.Names(), s.Board().Names())
	assert.Zero(t, s.Moves())
	assert.False(t, s.Won())
	assert.Equal(t, "pair", s.CustomName())
}

func TestRestartRegeneratesLevel(t *testing.T) {
	s := NewSession(DefaultOptions(), 5, 2)
	s.ClickTube(0)

	s.Restart()
	assert.Equal(t, 2, s.Level())
	assert.Equal(t, NoSelection, s.Selected())
	assert.Len(t, s.Board(), 4)
	assert.Equal(t, 1, s.Board().EmptyTubes())
}

func TestNextLevelRequiresWin(t *testing.T) {
	s := NewSession(DefaultOptions(), 5, 1)
	assert.False(t, s.CanAdvance())
	assert.False(t, s.NextLevel())
	assert.Equal(t, 1, s.Level())
}

func TestPlayLevelOneThenAdvance(t *testing.T) {
	s := NewSession(DefaultOptions(), 3, 1)
	require.Len(t, s.Board(), 3)

	solveSession(t, s)
	require.True(t, s.Won())
	assert.Positive(t, s.Score())

	require.True(t, s.NextLevel())
	assert.Equal(t, 2, s.Level())
	assert.False(t, s.Won())
	assert.Zero(t, s.Moves())

	b := s.Board()
	require.Len(t, b, 4)
	for i := 0; i < 3; i++ {
		assert.Len(t, b[i], 4)
	}
	assert.Empty(t, b[3])
}

func TestCampaignCompletes(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxLevel = 1
	s := NewSession(opts, 11, 1)

	solveSession(t, s)
	assert.True(t, s.Complete())
	assert.False(t, s.CanAdvance())
	assert.False(t, s.NextLevel())
}

func TestEndlessKeepsAdvancing(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxLevel = 0
	s := NewSession(opts, 11, 1)

	solveSession(t, s)
	assert.False(t, s.Complete())
	require.True(t, s.NextLevel())
	assert.Equal(t, 2, s.Level())
}

func TestNextLevelLeavesCustomBoard(t *testing.T) {
	s := NewCustomSession(DefaultOptions(), 1, "pair", mustBoard(t, tube("red", "blue"), tube("blue"), tube()))
	s.ClickTube(0)
	s.ClickTube(1)
	require.True(t, s.Won())
	assert.False(t, s.Complete(), "a custom board never completes the campaign")

	require.True(t, s.NextLevel())
	assert.Empty(t, s.CustomName())
	assert.Equal(t, 1, s.Level())
	assert.Len(t, s.Board(), 3)
}

func TestStrictSessionNeedsGatheredColors(t *testing.T) {
	opts := DefaultOptions()
	opts.WinRule = WinGathered
	s := NewCustomSession(opts, 1, "", mustBoard(t, tube("red", "blue"), tube("red"), tube()))

	s.ClickTube(0)
	require.True(t, s.ClickTube(2))
	assert.False(t, s.Won(), "red is still split over two tubes")

	s.ClickTube(0)
	require.True(t, s.ClickTube(1))
	assert.True(t, s.Won())
}

func TestHint(t *testing.T) {
	s := NewCustomSession(DefaultOptions(), 1, "", mustBoard(t, tube("red", "blue"), tube("blue", "red"), tube()))

	m, err := s.Hint()
	require.NoError(t, err)
	assert.True(t, CanPour(s.Board(), m.From, m.To))
	assert.Equal(t, 4, s.Board().TotalUnits(), "hint must not change the board")
}

func TestHintAfterWin(t *testing.T) {
	s := NewCustomSession(DefaultOptions(), 1, "", mustBoard(t, tube("red", "blue"), tube("blue"), tube()))
	s.ClickTube(0)
	s.ClickTube(1)

	_, err := s.Hint()
	assert.ErrorIs(t, err, ErrNoSolution)
}

func TestEnsureSolvableDealsSolvableBoards(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		s := NewSession(DefaultOptions(), seed, 1)
		_, err := Solve(s.Board(), IsSolved, 0)
		assert.NoError(t, err, "seed %d: %s", seed, s.Board())
	}
}

func TestDealVerdictMatchesSolver(t *testing.T) {
	opts := DefaultOptions()
	opts.HintBudget = 5_000

	for level := 2; level <= 5; level++ {
		for seed := int64(0); seed < 8; seed++ {
			s := NewSession(opts, seed, level)
			_, err := Solve(s.Board(), IsSolved, opts.HintBudget)

			switch s.Verdict() {
			case VerdictSolvable:
				assert.NoError(t, err, "level %d seed %d: %s", level, seed, s.Board())
			case VerdictUnsolvable:
				assert.ErrorIs(t, err, ErrNoSolution, "level %d seed %d: %s", level, seed, s.Board())
			default:
				// Undecided within the budget left after earlier deals.
				assert.Equal(t, VerdictUnknown, s.Verdict())
			}
		}
	}
}

func TestDealVerdictWithoutCheck(t *testing.T) {
	opts := DefaultOptions()
	opts.EnsureSolvable = false
	assert.Equal(t, VerdictUnknown, NewSession(opts, 1, 3).Verdict())

	s := NewCustomSession(DefaultOptions(), 1, "pair", mustBoard(t, tube("red", "blue"), tube("blue"), tube()))
	assert.Equal(t, VerdictUnknown, s.Verdict())
}

func TestLevelOneVerdictIsSolvable(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		assert.Equal(t, VerdictSolvable, NewSession(DefaultOptions(), seed, 1).Verdict(), "seed %d", seed)
	}
}

func TestMoveString(t *testing.T) {
	assert.Equal(t, "1 → 3", Move{From: 0, To: 2}.String())
}
