package tubesort

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
)

// ShuffleMode selects how the generated units are permuted.
type ShuffleMode int

const (
	// ShuffleUniform is a Fisher-Yates shuffle.
	ShuffleUniform ShuffleMode = iota
	// ShuffleBiased sorts with a coin-flip comparator. Permutations are not
	// equally likely; kept so boards match the classic browser version.
	ShuffleBiased
)

// String returns the config name of the mode.
func (m ShuffleMode) String() string {
	switch m {
	case ShuffleUniform:
		return "uniform"
	case ShuffleBiased:
		return "biased"
	default:
		return "unknown"
	}
}

// ParseShuffleMode converts a config value to a ShuffleMode.
// An empty string selects the uniform shuffle.
func ParseShuffleMode(s string) (ShuffleMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "uniform":
		return ShuffleUniform, nil
	case "biased":
		return ShuffleBiased, nil
	default:
		return ShuffleUniform, fmt.Errorf("tubesort: unknown shuffle mode %q", s)
	}
}

// TubesForLevel returns the tube count (and color count) of a level.
func TubesForLevel(level int) int {
	return max(level, 1) + 2
}

// GenerateBoard builds the starting board for a level.
//
// A level has n = level+2 tubes and n colors. Each color appears n-1 times;
// the shuffled units fill the first n-1 tubes with n units each and the
// last tube starts empty.
func GenerateBoard(level int, rng *rand.Rand, mode ShuffleMode) Board {
	total := TubesForLevel(level)
	perColor := total - 1

	units := make([]Unit, 0, total*perColor)
	for i := range total {
		c := PaletteColor(i)
		for range perColor {
			units = append(units, c)
		}
	}

	shuffleUnits(units, rng, mode)

	board := make(Board, 0, total)
	for i := range perColor {
		chunk := units[i*total : (i+1)*total]
		board = append(board, append(make(Tube, 0, total), chunk...))
	}
	board = append(board, make(Tube, 0, total))

	return board
}

func shuffleUnits(units []Unit, rng *rand.Rand, mode ShuffleMode) {
	switch mode {
	case ShuffleBiased:
		sort.SliceStable(units, func(_, _ int) bool {
			return rng.Float64() < 0.5
		})
	default:
		rng.Shuffle(len(units), func(i, j int) {
			units[i], units[j] = units[j], units[i]
		})
	}
}
