package game

import (
	"go.uber.org/zap"

	"github.com/awall/delver/internal/config"
	"github.com/awall/delver/internal/core/space"
	"github.com/awall/delver/internal/player"
	"github.com/awall/delver/internal/render"
	"github.com/awall/delver/internal/ui/hud"
)

// Reloader delivers tuning changes. *config.Watcher implements it.
type Reloader interface {
	Updates() <-chan *config.Config
	Errors() <-chan error
}

// Game holds all game state and turns host events into player calls.
type Game struct {
	ScreenWidth  int
	ScreenHeight int

	Player *player.Player
	Dir    player.Direction
	Mode   player.Mode

	Config   *config.Config
	Renderer render.Renderer
	HUD      *hud.HUD

	reloads Reloader
	log     *zap.SugaredLogger
}

// New creates a game with a fresh player, sized to the configured window.
func New(r render.Renderer, cfg *config.Config, mode player.Mode, log *zap.SugaredLogger) *Game {
	g := &Game{
		ScreenWidth:  cfg.Window.Width,
		ScreenHeight: cfg.Window.Height,
		Player:       player.NewWithTuning(cfg.Player.Tuning()),
		Mode:         mode,
		Config:       cfg,
		Renderer:     r,
		log:          log,
	}
	if cfg.Debug.Overlay {
		g.HUD = hud.New(r)
	}
	return g
}

// WatchConfig applies configs from rl at the start of each update.
func (g *Game) WatchConfig(rl Reloader) {
	g.reloads = rl
}

// HandleEvent dispatches one host event.
func (g *Game) HandleEvent(ev render.Event) error {
	switch ev := ev.(type) {
	case render.RenderEvent:
		g.Draw(ev.Screen, ev.FPS)
	case render.UpdateEvent:
		g.Update(ev.DT)
	case render.KeyPressEvent:
		g.setKey(ev.Key, true)
	case render.KeyReleaseEvent:
		g.setKey(ev.Key, false)
	case render.MousePressEvent:
		if ev.Button == render.MouseButtonPrimary {
			g.Player.Attack()
		}
	case render.MouseReleaseEvent:
		// Attacks trigger on press only.
	case render.CursorMoveEvent:
		cursor := space.ToWorld(g.Center(), space.ScreenPosition{X: ev.X, Y: ev.Y})
		g.Player.RotateFromPos(cursor, g.Mode)
	}
	return nil
}

// Update advances the player by dt seconds using the held keys.
func (g *Game) Update(dt float64) {
	g.applyReloads()

	wasAttacking := g.Player.Attacking()
	g.Player.Update(dt, g.Dir, g.Mode)

	if attacking := g.Player.Attacking(); attacking != wasAttacking {
		if attacking {
			g.log.Debugw("attack started", "position", g.Player.Position, "rotation", g.Player.Rotation)
		} else {
			g.log.Debugw("attack ended")
		}
	}
}

// Layout tracks the window size; the logical screen is the window itself.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.ScreenWidth || outsideHeight != g.ScreenHeight {
		g.log.Debugw("window resized", "width", outsideWidth, "height", outsideHeight)
		g.ScreenWidth = outsideWidth
		g.ScreenHeight = outsideHeight
	}
	return g.ScreenWidth, g.ScreenHeight
}

// Center returns the pixel coordinate of the window midpoint.
func (g *Game) Center() space.ScreenPosition {
	return space.ScreenPosition{X: float64(g.ScreenWidth) / 2, Y: float64(g.ScreenHeight) / 2}
}

func (g *Game) setKey(key render.Key, down bool) {
	switch key {
	case render.KeyW:
		g.Dir.Up = down
	case render.KeyS:
		g.Dir.Down = down
	case render.KeyA:
		g.Dir.Left = down
	case render.KeyD:
		g.Dir.Right = down
	default:
		return
	}
	g.log.Debugw("direction", "key", key, "down", down)
}

// applyReloads drains pending tuning changes without blocking.
func (g *Game) applyReloads() {
	if g.reloads == nil {
		return
	}
	for {
		select {
		case cfg, ok := <-g.reloads.Updates():
			if !ok {
				g.reloads = nil
				return
			}
			g.ApplyConfig(cfg)
		case err, ok := <-g.reloads.Errors():
			if !ok {
				g.reloads = nil
				return
			}
			g.log.Warnw("tuning reload rejected", "error", err)
		default:
			return
		}
	}
}

// ApplyConfig switches to cfg. Window settings only take effect at startup;
// the player keeps its position and any swing in progress.
func (g *Game) ApplyConfig(cfg *config.Config) {
	g.Config = cfg
	g.Player.SetTuning(cfg.Player.Tuning())
	switch {
	case cfg.Debug.Overlay && g.HUD == nil:
		g.HUD = hud.New(g.Renderer)
	case !cfg.Debug.Overlay:
		g.HUD = nil
	}
	g.log.Infow("tuning applied",
		"velocity", cfg.Player.Velocity,
		"attack_duration", cfg.Player.AttackDuration,
		"overlay", cfg.Debug.Overlay)
}
