package game

import (
	"github.com/awall/delver/internal/core/space"
	"github.com/awall/delver/internal/render"
	"github.com/awall/delver/internal/ui/hud"
)

// Draw renders one frame to screen.
func (g *Game) Draw(screen render.Image, fps float64) {
	palette := g.Config.Palette
	shapes := g.Config.Shapes

	// Step 1: Clear to the background
	screen.Fill(palette.Background.Color())

	// Step 2: The pillar sits at fixed screen pixels, outside the world frame
	g.Renderer.FillRect(screen, shapes.Pillar.Rect(), space.Identity(), palette.Pillar.Color())

	// Step 3: The player, in its own local frame
	w, h := screen.Size()
	center := space.ScreenPosition{X: float64(w) / 2, Y: float64(h) / 2}
	transform := space.PlayerTransform(center, g.Player.Position, g.Player.Rotation)

	g.Renderer.FillRect(screen, shapes.Body.Rect(), transform, palette.Body.Color())
	g.Renderer.FillRect(screen, shapes.Front.Rect(), transform, palette.Front.Color())
	if g.Player.Attacking() {
		g.Renderer.FillRect(screen, shapes.Sword.Rect(), transform, palette.Sword.Color())
	}

	// Step 4: Overlay, unaffected by the world transform
	if g.HUD != nil {
		timer, _ := g.Player.AttackTimer()
		g.HUD.Draw(screen, hud.Stats{
			Position:    g.Player.Position,
			Rotation:    g.Player.Rotation,
			Attacking:   g.Player.Attacking(),
			AttackTimer: timer,
			Mode:        g.Mode.String(),
			FPS:         fps,
		})
	}
}
