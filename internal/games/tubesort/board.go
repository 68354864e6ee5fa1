package tubesort

import (
	"errors"
	"strings"
)

// Errors shared by the board parsers and the solver.
var (
	ErrUnknownColor   = errors.New("tubesort: unknown color")
	ErrEmptyBoard     = errors.New("tubesort: board has no tubes")
	ErrNoSolution     = errors.New("tubesort: no solution")
	ErrBudgetExceeded = errors.New("tubesort: search budget exceeded")
)

// Tube is a stack of units; index 0 is the bottom.
type Tube []Unit

// Top returns the top unit, or false if the tube is empty.
func (t Tube) Top() (Unit, bool) {
	if len(t) == 0 {
		return 0, false
	}
	return t[len(t)-1], true
}

// Monochrome reports whether every unit in the tube has the same color.
// Empty tubes are monochrome.
func (t Tube) Monochrome() bool {
	for _, u := range t {
		if u != t[0] {
			return false
		}
	}
	return true
}

// Board is the ordered set of tubes of one puzzle.
type Board []Tube

// NewBoard builds a board from color names, bottom to top per tube.
func NewBoard(tubes [][]string) (Board, error) {
	if len(tubes) == 0 {
		return nil, ErrEmptyBoard
	}
	b := make(Board, len(tubes))
	for i, names := range tubes {
		b[i] = make(Tube, 0, len(names))
		for _, name := range names {
			u, err := ParseUnit(name)
			if err != nil {
				return nil, err
			}
			b[i] = append(b[i], u)
		}
	}
	return b, nil
}

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	out := make(Board, len(b))
	for i, t := range b {
		out[i] = append(make(Tube, 0, cap(t)), t...)
	}
	return out
}

// TotalUnits returns the number of units across all tubes.
func (b Board) TotalUnits() int {
	n := 0
	for _, t := range b {
		n += len(t)
	}
	return n
}

// CountByColor returns how many units of each color are on the board.
func (b Board) CountByColor() map[Unit]int {
	counts := make(map[Unit]int)
	for _, t := range b {
		for _, u := range t {
			counts[u]++
		}
	}
	return counts
}

// EmptyTubes returns the number of empty tubes.
func (b Board) EmptyTubes() int {
	n := 0
	for _, t := range b {
		if len(t) == 0 {
			n++
		}
	}
	return n
}

// Tallest returns the length of the longest tube.
func (b Board) Tallest() int {
	h := 0
	for _, t := range b {
		h = max(h, len(t))
	}
	return h
}

// Names returns the board as color names, bottom to top per tube.
func (b Board) Names() [][]string {
	out := make([][]string, len(b))
	for i, t := range b {
		out[i] = make([]string, len(t))
		for j, u := range t {
			out[i][j] = u.String()
		}
	}
	return out
}

// String renders the board compactly, e.g. "[RRB] [BB] []".
func (b Board) String() string {
	var sb strings.Builder
	for i, t := range b {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte('[')
		for _, u := range t {
			sb.WriteRune(u.Char())
		}
		sb.WriteByte(']')
	}
	return sb.String()
}
