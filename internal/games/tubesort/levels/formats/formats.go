// Package formats provides pluggable level file format parsers.
// Parsers only decode documents; color names are validated by the caller.
package formats

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingID is returned for documents without an id.
var ErrMissingID = errors.New("level has no id")

// Level represents a parsed level document.
type Level struct {
	ID    string
	Name  string
	Tubes [][]string // Color names, bottom to top
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".json", ".jsonc", ".hcl"}
}

// Parse routes data to the parser for ext (including the leading dot).
func Parse(data []byte, ext string) (Level, error) {
	var (
		lvl Level
		err error
	)
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		lvl, err = ParseYAML(data)
	case ".json", ".jsonc":
		lvl, err = ParseJSON(data)
	case ".hcl":
		lvl, err = ParseHCL(data, "level"+ext)
	default:
		return Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
	if err != nil {
		return Level{}, err
	}
	return lvl.normalize()
}

func (l Level) normalize() (Level, error) {
	l.ID = strings.TrimSpace(l.ID)
	if l.ID == "" {
		return Level{}, ErrMissingID
	}
	if l.Name == "" {
		l.Name = l.ID
	}
	for i, t := range l.Tubes {
		if t == nil {
			l.Tubes[i] = []string{}
		}
	}
	return l, nil
}
