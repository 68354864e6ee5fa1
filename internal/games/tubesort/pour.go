package tubesort

import (
	"fmt"
	"strings"
)

// Move is a single pour from one tube to another.
type Move struct {
	From int
	To   int
}

// String formats the move with 1-based tube numbers.
func (m Move) String() string {
	return fmt.Sprintf("%d → %d", m.From+1, m.To+1)
}

// CanPour reports whether pouring from -> to is legal on the board.
func CanPour(b Board, from, to int) bool {
	if from == to || from < 0 || to < 0 || from >= len(b) || to >= len(b) {
		return false
	}
	color, ok := b[from].Top()
	if !ok {
		return false
	}
	target, ok := b[to].Top()
	return !ok || target == color
}

// Pour moves the top unit of tube from onto tube to, in place.
// Illegal pours leave the board untouched and return false.
func Pour(b Board, from, to int) bool {
	if !CanPour(b, from, to) {
		return false
	}
	src := b[from]
	color := src[len(src)-1]
	b[from] = src[:len(src)-1]
	b[to] = append(b[to], color)
	return true
}

// WinRule decides when a board counts as sorted.
type WinRule int

const (
	// WinLoose accepts any tube that is empty or single-colored, whatever its height.
	WinLoose WinRule = iota
	// WinGathered also requires each color to sit in exactly one tube.
	WinGathered
)

// String returns the config name of the rule.
func (r WinRule) String() string {
	if r == WinGathered {
		return "strict"
	}
	return "loose"
}

// ParseWinRule converts a config value to a WinRule.
func ParseWinRule(s string) (WinRule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "loose":
		return WinLoose, nil
	case "strict":
		return WinGathered, nil
	default:
		return WinLoose, fmt.Errorf("tubesort: unknown win rule %q", s)
	}
}

// IsSolved reports whether every tube is empty or single-colored.
// A tube holding a single unit counts as sorted.
func IsSolved(b Board) bool {
	for _, t := range b {
		if !t.Monochrome() {
			return false
		}
	}
	return true
}

// IsGathered reports whether the board is solved and no color is split
// across two tubes.
func IsGathered(b Board) bool {
	if !IsSolved(b) {
		return false
	}
	seen := make(map[Unit]bool)
	for _, t := range b {
		top, ok := t.Top()
		if !ok {
			continue
		}
		if seen[top] {
			return false
		}
		seen[top] = true
	}
	return true
}

// Goal returns the solver goal for the rule.
func (r WinRule) Goal() Goal {
	if r == WinGathered {
		return IsGathered
	}
	return IsSolved
}
