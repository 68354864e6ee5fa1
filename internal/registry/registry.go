// Package registry maps mode IDs to game factories. Modes register
// themselves from init, so the CLI, menus and SSH sessions can create them
// by ID without importing each mode.
package registry

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/tubesort/internal/core"
)

// Game is what the platform drives: pure logic with no Bubble Tea
// dependency. The platform owns input mapping, timing and rendering.
type Game interface {
	// ID is the stable mode identifier used by the CLI and score storage.
	ID() string
	Title() string

	// Reset starts a fresh run for the given screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Step applies one tick of input.
	Step(in core.InputFrame) core.StepResult

	// Render draws into dst. It must not change game state.
	Render(dst *core.Screen)

	State() core.GameState

	// Controls returns a one-line key hint for the status bar.
	Controls() string
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new, not yet Reset, game.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu    sync.RWMutex
	modes = map[string]entry{}
)

// Register adds a mode. Registering the same ID twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := modes[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	modes[id] = entry{factory: f, title: f().Title()}
}

// List returns every registered mode ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	infos := make([]GameInfo, 0, len(modes))
	for id, e := range modes {
		infos = append(infos, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(infos, func(a, b GameInfo) int { return cmp.Compare(a.ID, b.ID) })
	return infos
}

// Create builds a new game for id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := modes[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := modes[id]
	return ok
}

// unregister removes id. Tests only.
func unregister(id string) {
	mu.Lock()
	defer mu.Unlock()
	delete(modes, id)
}
