// tubesort is a terminal color-sorting puzzle: pour colored units between
// tubes until every tube holds a single color.
//
// Usage:
//
//	tubesort list               - List game modes
//	tubesort play [mode]        - Play (mode selector if no mode is given)
//	tubesort menu               - Start menu with scores and puzzle packs
//	tubesort serve              - Start SSH server for remote play
//	tubesort scores [mode]      - Show high scores and progress
//	tubesort levels <dir>       - Inspect a directory of puzzle packs
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible boards
//	--db <path>           - Set database path (default: ~/.tubesort/scores.db)
//	--config <path>       - Use a custom tubesort.yaml
//	--difficulty <name>   - Difficulty preset: easy, normal, hard
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tubesort/internal/config"
	"github.com/vovakirdan/tubesort/internal/games/tubesort"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tubesort",
	Short: "Tube Sort - a color sorting puzzle for your terminal",
	Long: `Tube Sort is a terminal puzzle: every tube holds a stack of colored
units, and you pour the top unit of one tube onto an empty tube or onto a
unit of the same color until each tube holds a single color.

Level N has N+2 tubes and N+2 colors, one tube starting empty.

Available commands:
  list     - Show all game modes
  play     - Play a mode directly
  menu     - Interactive menu with scores and puzzle packs
  serve    - Start SSH server for remote play
  scores   - View high scores and progress
  levels   - Inspect puzzle pack files

Examples:
  tubesort play
  tubesort play tubesort_endless --seed 42
  tubesort play --level-file ./packs/crossed.yaml
  tubesort menu --pack ./packs
  tubesort serve --ssh :2222
  tubesort scores`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := setupLogger(flagLogLevel); err != nil {
			return err
		}
		preset, err := config.ParseDifficultyPreset(flagDifficulty)
		if err != nil {
			return err
		}
		// Reject a broken config up front rather than playing on defaults
		if _, err := config.LoadTubeSort(flagConfig); err != nil {
			return err
		}
		tubesort.SetConfigPath(flagConfig)
		tubesort.SetDifficultyPreset(string(preset))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tubesort/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tubesort.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
}
