// Package levels loads hand-authored tube sort boards from level packs.
// This package depends on tubesort but tubesort does not depend on levels.
package levels

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/vovakirdan/tubesort/internal/games/tubesort"
	"github.com/vovakirdan/tubesort/internal/games/tubesort/levels/formats"
)

// ErrLevelNotFound is returned by LoadByID when no level has the ID.
var ErrLevelNotFound = errors.New("level not found")

// Level represents a validated pack level.
type Level struct {
	ID       string
	Name     string
	Board    tubesort.Board
	FilePath string
}

// Loader handles loading levels from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// Skipped is a level file that failed to load.
type Skipped struct {
	Path string
	Err  error
}

// LoadAll recursively scans and loads all level files.
// Invalid files are skipped. Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	levels, _, err := l.Scan()
	return levels, err
}

// Scan is LoadAll that also reports the files it skipped, in walk order.
// Files without a level extension are ignored, not skipped.
func (l *Loader) Scan() ([]Level, []Skipped, error) {
	var levels []Level
	var skipped []Skipped

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(filepath.Ext(path)) {
			return nil
		}

		level, err := LoadFile(path)
		if err != nil {
			skipped = append(skipped, Skipped{Path: path, Err: err})
			return nil
		}

		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.SliceStable(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, skipped, nil
}

// LoadFile loads and validates a single level file.
func LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	parsed, err := formats.Parse(data, filepath.Ext(path))
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}

	board, err := tubesort.NewBoard(parsed.Tubes)
	if err != nil {
		return Level{}, fmt.Errorf("level %s in %s: %w", parsed.ID, path, err)
	}

	return Level{
		ID:       parsed.ID,
		Name:     parsed.Name,
		Board:    board,
		FilePath: path,
	}, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("%w: %s", ErrLevelNotFound, id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

func isSupportedExtension(ext string) bool {
	return slices.Contains(formats.FormatExtensions(), strings.ToLower(ext))
}
