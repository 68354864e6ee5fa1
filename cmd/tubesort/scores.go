package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tubesort/internal/registry"
	"github.com/vovakirdan/tubesort/internal/storage"
)

var (
	flagClearScores   bool
	flagResetProgress bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores and campaign progress",
	Long: `Display the top 10 high scores for a mode (default: tubesort),
along with aggregate stats and the furthest level each player reached.
Without a mode, a one-line summary of every mode is printed first.

Examples:
  tubesort scores
  tubesort scores tubesort_endless
  tubesort scores --clear
  tubesort scores --reset-progress`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all scores for the mode")
	scoresCmd.Flags().BoolVar(&flagResetProgress, "reset-progress", false, "Forget the local player's campaign progress")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := "tubesort"
	if len(args) == 1 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w (run 'tubesort list' to see available modes)", err)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearScores(gameID); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		fmt.Printf("Cleared scores for %s.\n", title)
		return nil
	}
	if flagResetProgress {
		if err := store.ResetProgress(storage.LocalPlayer, gameID); err != nil {
			return fmt.Errorf("resetting progress: %w", err)
		}
		fmt.Printf("Reset progress for %s.\n", title)
		return nil
	}

	if len(args) == 0 {
		if err := printModeSummary(store); err != nil {
			return err
		}
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'tubesort play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-8s  %-5s  %s\n", "Rank", "Player", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-5s  %s\n", "----", "------", "-----", "-----", "----")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-12s  %-8d  %-5d  %s\n", i+1, truncate(entry.Player, 12), entry.Score, entry.Level, dateStr)
	}

	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil && stats != nil {
		fmt.Printf("Best: %d   Games: %d   Average: %.0f   Furthest level: %d\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.BestLevel)
	}

	progress, err := store.AllProgress(gameID)
	if err != nil {
		return fmt.Errorf("retrieving progress: %w", err)
	}
	if len(progress) > 0 {
		fmt.Println()
		fmt.Println("Progress:")
		for _, p := range progress {
			fmt.Printf("  %-12s  level %d  (%s)\n", truncate(p.Player, 12), p.Level, p.UpdatedAt.Format("2006-01-02"))
		}
	}
	return nil
}

// printModeSummary prints one stats line per registered mode.
func printModeSummary(store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}

	fmt.Println("All modes")
	fmt.Println()
	fmt.Printf("  %-20s  %-5s  %-8s  %-7s  %s\n", "Mode", "Games", "Best", "Level", "Last played")
	fmt.Printf("  %-20s  %-5s  %-8s  %-7s  %s\n", "----", "-----", "----", "-----", "-----------")
	for _, mode := range registry.List() {
		stats, ok := all[mode.ID]
		if !ok {
			fmt.Printf("  %-20s  %-5d  %-8s  %-7s  %s\n", truncate(mode.Title, 20), 0, "-", "-", "never")
			continue
		}
		fmt.Printf("  %-20s  %-5d  %-8d  %-7d  %s\n", truncate(mode.Title, 20),
			stats.GamesCount, stats.HighScore, stats.BestLevel, stats.LastPlayed.Format("2006-01-02"))
	}
	fmt.Println()
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
