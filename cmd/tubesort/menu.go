package main

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tubesort/internal/platform/tui"
	"github.com/vovakirdan/tubesort/internal/storage"
)

var flagMenuPackDir string

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start Tube Sort with the interactive menu",
	Long: `Start in interactive menu mode.

Pick a mode, continue the campaign, choose a level or a puzzle pack.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Scoreboard
  Q            - Quit

Examples:
  tubesort menu
  tubesort menu --pack ./packs
  tubesort menu --db ./scores.db`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagMenuPackDir, "pack", "", "Directory of puzzle packs")
}

func runMenu(_ *cobra.Command, _ []string) error {
	packs := loadPacks(flagMenuPackDir)

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	restore := logToFile()
	defer restore()

	cfg := runtimeConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH, "")
			if sbErr != nil {
				log.Error("scoreboard failed", "error", sbErr)
			}
			if goBack {
				continue
			}
			return nil
		}

		if menuResult.GameID == "" {
			return nil
		}

		sel, err := tui.RunTubeSortModeSelector(cfg, playerProgress(store), packs)
		if err != nil {
			log.Error("mode selector failed", "error", err)
			continue
		}
		// User pressed back
		if sel == nil {
			continue
		}

		// Fresh seed for each game unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		game := sel.NewGame()
		log.Info("starting game", "mode", game.ID(), "seed", cfg.Seed)
		backToMenu, err := tui.Run(game, store, cfg, storage.LocalPlayer)
		if err != nil {
			log.Error("game failed", "error", err)
		}
		if !backToMenu {
			return nil
		}
	}
}
