// Package hud draws the debug overlay: the player's world position, facing,
// attack timer and the frame rate, in screen space on top of the world.
package hud

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/awall/delver/internal/core/space"
	"github.com/awall/delver/internal/render"
)

const margin = 4

// Stats is the snapshot the overlay prints.
type Stats struct {
	Position    space.WorldPosition
	Rotation    space.Angle
	Attacking   bool
	AttackTimer float64
	Mode        string
	FPS         float64
}

// HUD manages the heads-up display
type HUD struct {
	renderer render.Renderer
	color    color.Color
}

// New creates a HUD drawing through r.
func New(r render.Renderer) *HUD {
	return &HUD{
		renderer: r,
		color:    color.White,
	}
}

// Lines formats s, one fact per line.
func (h *HUD) Lines(s Stats) []string {
	attack := "idle"
	if s.Attacking {
		attack = fmt.Sprintf("%.3fs", s.AttackTimer)
	}
	return []string{
		fmt.Sprintf("pos %s", s.Position),
		fmt.Sprintf("rot %.0fdeg", s.Rotation.Degrees()),
		fmt.Sprintf("atk %s", attack),
		fmt.Sprintf("%s %.0ffps", s.Mode, s.FPS),
	}
}

// Draw prints s in the top-left corner of screen.
func (h *HUD) Draw(screen render.Image, s Stats) {
	h.renderer.DrawText(screen, strings.Join(h.Lines(s), "\n"), margin, margin, h.color)
}
