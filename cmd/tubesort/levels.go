package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tubesort/internal/games/tubesort"
	"github.com/vovakirdan/tubesort/internal/games/tubesort/levels"
)

var flagSolve bool

var levelsCmd = &cobra.Command{
	Use:   "levels <dir>",
	Short: "Inspect a directory of puzzle packs",
	Long: `List the puzzles found in a directory and report files that fail to load.

Puzzle files may be YAML (.yaml, .yml), JSON with comments (.json, .jsonc)
or HCL (.hcl). Each file holds one board:

  id: crossed
  name: Crossed Wires
  tubes:
    - [red, blue, red]
    - [blue, red, blue]
    - []

With --solve each board is run through the solver to check it can be won.

Examples:
  tubesort levels ./packs
  tubesort levels ./packs --solve`,
	Args: cobra.ExactArgs(1),
	RunE: runLevels,
}

func init() {
	levelsCmd.Flags().BoolVar(&flagSolve, "solve", false, "Check each board with the solver")
}

func runLevels(_ *cobra.Command, args []string) error {
	dir := args[0]

	pack, skipped, err := levels.NewLoader(dir).Scan()
	if err != nil {
		return err
	}

	if len(pack) == 0 {
		fmt.Printf("No puzzles found in %s.\n", dir)
	} else {
		fmt.Printf("Puzzles in %s:\n", dir)
		fmt.Println()
		fmt.Printf("  %-16s  %-20s  %-5s  %-5s", "ID", "Name", "Tubes", "Units")
		if flagSolve {
			fmt.Printf("  %s", "Moves")
		}
		fmt.Println()
		for _, lvl := range pack {
			fmt.Printf("  %-16s  %-20s  %-5d  %-5d", truncate(lvl.ID, 16), truncate(lvl.Name, 20), len(lvl.Board), lvl.Board.TotalUnits())
			if flagSolve {
				fmt.Printf("  %s", solveSummary(lvl.Board))
			}
			fmt.Println()
		}
	}

	if len(skipped) > 0 {
		fmt.Println()
		fmt.Println("Skipped:")
		for _, s := range skipped {
			fmt.Printf("  %s: %v\n", s.Path, s.Err)
		}
	}
	return nil
}

func solveSummary(b tubesort.Board) string {
	moves, err := tubesort.Solve(b, tubesort.IsSolved, tubesort.DefaultSolveBudget)
	switch {
	case err == nil:
		return fmt.Sprintf("%d", len(moves))
	case errors.Is(err, tubesort.ErrNoSolution):
		return "unsolvable"
	case errors.Is(err, tubesort.ErrBudgetExceeded):
		return "unknown"
	default:
		return err.Error()
	}
}
