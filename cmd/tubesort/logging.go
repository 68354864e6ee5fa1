package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tubesort/internal/storage"
)

// setupLogger installs the default stderr logger at the given level.
func setupLogger(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:  lvl,
		Prefix: "tubesort",
	})
	log.SetDefault(logger)
	return nil
}

// logToFile redirects the default logger to ~/.tubesort/tubesort.log while
// a full-screen program owns the terminal. The returned func restores stderr.
func logToFile() func() {
	prev := log.Default()

	home, err := os.UserHomeDir()
	if err != nil {
		return func() {}
	}
	dir := filepath.Join(home, ".tubesort")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "tubesort.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		prev.Warn("could not open log file", "error", err)
		return func() {}
	}

	fileLogger := log.NewWithOptions(f, log.Options{
		Level:           prev.GetLevel(),
		ReportTimestamp: true,
		Prefix:          "tubesort",
	})
	log.SetDefault(fileLogger)

	return func() {
		log.SetDefault(prev)
		f.Close()
	}
}

// openStore opens the scores database. Play continues without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
