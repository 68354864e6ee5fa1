package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tubesort/internal/core"
	"github.com/vovakirdan/tubesort/internal/games/tubesort"
	"github.com/vovakirdan/tubesort/internal/games/tubesort/levels"
	"github.com/vovakirdan/tubesort/internal/platform/tui"
	"github.com/vovakirdan/tubesort/internal/registry"
	"github.com/vovakirdan/tubesort/internal/storage"
)

var (
	flagLevel     int
	flagLevelFile string
	flagPackDir   string
	flagPuzzle    string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play Tube Sort",
	Long: `Start playing. Without a mode the mode selector is shown first.

Modes:
  tubesort          - Campaign, levels 1-10
  tubesort_endless  - No level cap

Controls:
  ←/→ h/l a/d   - Move cursor
  ↑/↓           - Lift / drop the tube under the cursor
  Space/Enter   - Select a tube, then pour into another
  1-9, 0        - Pick tube directly
  Mouse         - Click a tube
  H/?           - Hint
  R             - Restart level
  N             - Next level (after a win)
  P             - Pause
  Q/Ctrl+C      - Quit

Examples:
  tubesort play
  tubesort play tubesort --level 5
  tubesort play tubesort_endless --seed 42
  tubesort play --difficulty hard
  tubesort play --level-file ./packs/crossed.yaml
  tubesort play --pack ./packs --puzzle crossed`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Level to start on (0 = config default)")
	playCmd.Flags().StringVar(&flagLevelFile, "level-file", "", "Play a hand-authored board from a YAML, JSON(C) or HCL file")
	playCmd.Flags().StringVar(&flagPackDir, "pack", "", "Directory of puzzle packs")
	playCmd.Flags().StringVar(&flagPuzzle, "puzzle", "", "Puzzle ID to play from --pack")
}

func runPlay(_ *cobra.Command, args []string) error {
	cfg := runtimeConfig()

	var game *tubesort.Game
	switch {
	case flagLevelFile != "" || flagPuzzle != "":
		lvl, err := loadPuzzle()
		if err != nil {
			return err
		}
		game = tubesort.New()
		game.UseBoard(lvl.Name, lvl.Board)

	case len(args) == 1:
		g, err := registry.Create(args[0])
		if err != nil {
			return fmt.Errorf("%w (run 'tubesort list' to see available modes)", err)
		}
		var ok bool
		if game, ok = g.(*tubesort.Game); !ok {
			return fmt.Errorf("mode %q is not a tube sort game", args[0])
		}
		if flagLevel > 0 {
			game.StartAt(flagLevel)
		}

	default:
		store := openStore()
		progress := playerProgress(store)
		if store != nil {
			store.Close()
		}

		sel, err := tui.RunTubeSortModeSelector(cfg, progress, loadPacks(flagPackDir))
		if err != nil {
			return err
		}
		// User pressed back or quit
		if sel == nil {
			return nil
		}
		game = sel.NewGame()
	}

	return runGame(game, cfg)
}

// runGame opens storage and plays one game until the player quits.
func runGame(game *tubesort.Game, cfg core.RuntimeConfig) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	restore := logToFile()
	defer restore()

	log.Info("starting game", "mode", game.ID(), "seed", cfg.Seed)
	if _, err := tui.Run(game, store, cfg, storage.LocalPlayer); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// loadPuzzle resolves --level-file or --pack/--puzzle to a pack level.
func loadPuzzle() (levels.Level, error) {
	if flagLevelFile != "" {
		return levels.LoadFile(flagLevelFile)
	}
	if flagPackDir == "" {
		return levels.Level{}, errors.New("--puzzle requires --pack")
	}
	loader := levels.NewLoader(flagPackDir)
	lvl, err := loader.LoadByID(flagPuzzle)
	if errors.Is(err, levels.ErrLevelNotFound) {
		if ids, idErr := loader.ListIDs(); idErr == nil && len(ids) > 0 {
			return lvl, fmt.Errorf("%w (available: %s)", err, strings.Join(ids, ", "))
		}
	}
	return lvl, err
}

// loadPacks loads every puzzle in dir. Problems are logged, not fatal.
func loadPacks(dir string) []levels.Level {
	if dir == "" {
		return nil
	}
	packs, skipped, err := levels.NewLoader(dir).Scan()
	if err != nil {
		log.Warn("could not load puzzle packs", "dir", dir, "error", err)
		return nil
	}
	for _, s := range skipped {
		log.Warn("skipped puzzle file", "path", s.Path, "error", s.Err)
	}
	return packs
}

// playerProgress returns the highest campaign level reached locally.
func playerProgress(store *storage.Store) int {
	if store == nil {
		return 0
	}
	level, err := store.Progress(storage.LocalPlayer, "tubesort")
	if err != nil {
		log.Warn("could not read progress", "error", err)
		return 0
	}
	return level
}

// runtimeConfig builds the runtime config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
