package tubesort

import (
	"slices"
	"strings"
)

// DefaultSolveBudget bounds the number of distinct positions the solver visits.
const DefaultSolveBudget = 50_000

// Goal reports whether a position is solved.
type Goal func(Board) bool

// Solve searches for a sequence of pours that takes board to a position
// accepted by goal. The board itself is not modified.
//
// The search is depth-first over distinct positions, where positions that
// differ only in tube order are considered equal. It gives up with
// ErrBudgetExceeded after budget positions (DefaultSolveBudget if budget <= 0).
func Solve(board Board, goal Goal, budget int) ([]Move, error) {
	path, _, err := solve(board, goal, budget)
	return path, err
}

// solve is Solve that also reports how many positions it visited.
func solve(board Board, goal Goal, budget int) ([]Move, int, error) {
	if budget <= 0 {
		budget = DefaultSolveBudget
	}
	if goal == nil {
		goal = IsSolved
	}

	s := &solver{
		goal:    goal,
		budget:  budget,
		visited: make(map[string]struct{}),
	}
	work := board.Clone()
	switch {
	case s.search(work):
		return s.path, len(s.visited), nil
	case s.exhausted:
		return nil, len(s.visited), ErrBudgetExceeded
	default:
		return nil, len(s.visited), ErrNoSolution
	}
}

type solver struct {
	goal      Goal
	budget    int
	visited   map[string]struct{}
	path      []Move
	exhausted bool
}

func (s *solver) search(b Board) bool {
	if s.goal(b) {
		return true
	}
	key := positionKey(b)
	if _, seen := s.visited[key]; seen {
		return false
	}
	if len(s.visited) >= s.budget {
		s.exhausted = true
		return false
	}
	s.visited[key] = struct{}{}

	for _, m := range candidateMoves(b) {
		Pour(b, m.From, m.To)
		s.path = append(s.path, m)
		if s.search(b) {
			return true
		}
		s.path = s.path[:len(s.path)-1]
		undoPour(b, m)
		if s.exhausted {
			return false
		}
	}
	return false
}

// candidateMoves lists legal pours, color matches before empty tubes.
// Moving a single-colored tube's top into an empty tube never helps and
// is skipped.
func candidateMoves(b Board) []Move {
	var onto, empty []Move
	for from := range b {
		if len(b[from]) == 0 {
			continue
		}
		for to := range b {
			if !CanPour(b, from, to) {
				continue
			}
			if len(b[to]) == 0 {
				if b[from].Monochrome() {
					continue
				}
				empty = append(empty, Move{From: from, To: to})
				continue
			}
			onto = append(onto, Move{From: from, To: to})
		}
	}
	return append(onto, empty...)
}

func undoPour(b Board, m Move) {
	dst := b[m.To]
	b[m.To] = dst[:len(dst)-1]
	b[m.From] = append(b[m.From], dst[len(dst)-1])
}

func positionKey(b Board) string {
	tubes := make([]string, len(b))
	for i, t := range b {
		raw := make([]byte, len(t))
		for j, u := range t {
			raw[j] = byte('a' + u)
		}
		tubes[i] = string(raw)
	}
	slices.Sort(tubes)
	return strings.Join(tubes, "|")
}
