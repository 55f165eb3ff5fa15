package player

import (
	"fmt"
	"strings"
)

// Mode selects how movement input and the cursor steer the player.
type Mode int

const (
	// AxisLocked moves along the world axes and faces the last direction
	// walked. The cursor is ignored.
	AxisLocked Mode = iota
	// FaceCursor faces the cursor and moves relative to that facing.
	FaceCursor
)

func (m Mode) String() string {
	switch m {
	case AxisLocked:
		return "axis-locked"
	case FaceCursor:
		return "face-cursor"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses the names returned by String. An empty string selects
// AxisLocked.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "axis-locked", "axis":
		return AxisLocked, nil
	case "face-cursor", "cursor":
		return FaceCursor, nil
	default:
		return AxisLocked, fmt.Errorf("player: unknown movement mode %q", s)
	}
}
