package tubesort

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tubesort/internal/core"
)

// Unit is one colored slot of liquid in a tube.
type Unit uint8

// The palette in generation order. Levels with more colors than the
// palette has entries wrap around to the start.
const (
	UnitRed Unit = iota
	UnitBlue
	UnitGreen
	UnitYellow
	UnitOrange
	UnitPurple
	UnitCyan
	UnitPink
	PaletteSize int = iota
)

var unitNames = [PaletteSize]string{
	"red", "blue", "green", "yellow", "orange", "purple", "cyan", "pink",
}

// PaletteColor returns the i-th palette entry, wrapping modulo PaletteSize.
func PaletteColor(i int) Unit {
	i %= PaletteSize
	if i < 0 {
		i += PaletteSize
	}
	return Unit(i)
}

// String returns the lowercase color name.
func (u Unit) String() string {
	if int(u) < PaletteSize {
		return unitNames[u]
	}
	return "unknown"
}

// Char returns a single letter used when drawing the unit.
func (u Unit) Char() rune {
	switch u {
	case UnitRed:
		return 'R'
	case UnitBlue:
		return 'B'
	case UnitGreen:
		return 'G'
	case UnitYellow:
		return 'Y'
	case UnitOrange:
		return 'O'
	case UnitPurple:
		return 'P'
	case UnitCyan:
		return 'C'
	case UnitPink:
		return 'K'
	default:
		return '?'
	}
}

// ScreenColor maps the unit to a terminal color.
func (u Unit) ScreenColor() core.Color {
	switch u {
	case UnitRed:
		return core.ColorRed
	case UnitBlue:
		return core.ColorBlue
	case UnitGreen:
		return core.ColorGreen
	case UnitYellow:
		return core.ColorYellow
	case UnitOrange:
		return core.ColorOrange
	case UnitPurple:
		return core.ColorMagenta
	case UnitCyan:
		return core.ColorCyan
	case UnitPink:
		return core.ColorPink
	default:
		return core.ColorDefault
	}
}

// ParseUnit converts a color name (or its letter) to a Unit.
func ParseUnit(s string) (Unit, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range unitNames {
		if name == n {
			return Unit(i), nil
		}
	}
	if len(name) == 1 {
		for i := range PaletteSize {
			if strings.EqualFold(string(Unit(i).Char()), name) {
				return Unit(i), nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}
