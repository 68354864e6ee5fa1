// Package tubesort implements the tube sorting puzzle: pour colored units
// between tubes until every tube holds a single color.
package tubesort

// Level describes one campaign level.
type Level struct {
	ID   int
	Name string
}

// Tubes returns the tube count (and color count) for the level.
func (l Level) Tubes() int {
	return TubesForLevel(l.ID)
}

// Levels defines the campaign. Level n has n+2 tubes and n+2 colors,
// so the last level uses 12 tubes and wraps the 8-color palette.
var Levels = []Level{
	{ID: 1, Name: "First Pour"},
	{ID: 2, Name: "Four Colors"},
	{ID: 3, Name: "Steady Hands"},
	{ID: 4, Name: "Full Rack"},
	{ID: 5, Name: "Rainbow"},
	{ID: 6, Name: "Crowded Shelf"},
	{ID: 7, Name: "Double Take"},
	{ID: 8, Name: "Lab Assistant"},
	{ID: 9, Name: "Chemist"},
	{ID: 10, Name: "Alchemist"},
}

// LevelCount returns the number of campaign levels.
func LevelCount() int {
	return len(Levels)
}

// GetLevel returns the level at the given index (0-based).
// Returns nil if index is out of range.
func GetLevel(index int) *Level {
	if index < 0 || index >= len(Levels) {
		return nil
	}
	return &Levels[index]
}

// LevelNames returns the names of all levels.
func LevelNames() []string {
	names := make([]string, len(Levels))
	for i, lvl := range Levels {
		names[i] = lvl.Name
	}
	return names
}

// LevelName returns the display name of a 1-based level, with a
// generic name past the end of the campaign.
func LevelName(level int) string {
	if lvl := GetLevel(level - 1); lvl != nil {
		return lvl.Name
	}
	return "Endless"
}
