package tubesort

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateWon         GameStateType = "won"
	StateComplete    GameStateType = "complete"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Mode     string
	Level    int
	Tubes    [][]string // Bottom to top
	Selected int        // NoSelection when nothing is selected
	Cursor   int
	Moves    int
	Score    int
	State    GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	case g.session.Complete():
		state = StateComplete
	case g.session.Won():
		state = StateWon
	}

	return Snapshot{
		Tick:     g.tick,
		Mode:     string(g.mode),
		Level:    g.session.Level(),
		Tubes:    g.session.Board().Names(),
		Selected: g.session.Selected(),
		Cursor:   g.cursor,
		Moves:    g.session.Moves(),
		Score:    g.session.Score(),
		State:    state,
	}
}
