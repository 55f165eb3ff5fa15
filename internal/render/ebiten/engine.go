package ebiten

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/awall/delver/internal/render"
)

// EbitenEngine implements the Engine interface using Ebiten.
type EbitenEngine struct{}

// NewEngine creates a new Ebiten-based game engine.
func NewEngine() render.Engine {
	return &EbitenEngine{}
}

// RunGame opens the window described by opts and runs the game loop.
func (e *EbitenEngine) RunGame(game render.Game, opts render.WindowOptions) error {
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(opts.Title)
	if opts.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}

	ups := opts.UPS
	if ups <= 0 {
		ups = ebiten.DefaultTPS
	}
	ebiten.SetTPS(ups)

	adapter := newGameAdapter(game, ups, opts.ExitOnEscape)
	err := ebiten.RunGameWithOptions(adapter, &ebiten.RunGameOptions{
		// OpenGL 3.2 core on desktop.
		GraphicsLibrary: ebiten.GraphicsLibraryOpenGL,
	})
	if errors.Is(err, render.ErrExit) {
		return nil
	}
	return err
}

// gameAdapter adapts a render.Game to the ebiten.Game interface. Ebiten polls
// input once per tick; the adapter turns those polls into events and delivers
// them ahead of the tick's UpdateEvent.
type gameAdapter struct {
	game   render.Game
	input  *inputPump
	dt     float64
	events []render.Event

	// drawErr holds an error from Draw until the next Update can return it.
	drawErr error
}

func newGameAdapter(game render.Game, ups int, exitOnEscape bool) *gameAdapter {
	return &gameAdapter{
		game:  game,
		input: newInputPump(exitOnEscape),
		dt:    1 / float64(ups),
	}
}

// Update implements ebiten.Game.
func (a *gameAdapter) Update() error {
	if a.drawErr != nil {
		return loopError(a.drawErr)
	}

	var err error
	a.events, err = a.input.poll(a.events[:0])
	if err != nil {
		return loopError(err)
	}
	a.events = append(a.events, render.UpdateEvent{DT: a.dt})

	for _, ev := range a.events {
		if err := a.game.HandleEvent(ev); err != nil {
			return loopError(err)
		}
	}
	return nil
}

// Draw implements ebiten.Game.
func (a *gameAdapter) Draw(screen *ebiten.Image) {
	if a.drawErr != nil {
		return
	}
	a.drawErr = a.game.HandleEvent(render.RenderEvent{
		Screen: &EbitenImage{img: screen},
		FPS:    ebiten.ActualFPS(),
	})
}

// Layout implements ebiten.Game.
func (a *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Layout(outsideWidth, outsideHeight)
}

// loopError maps ErrExit to ebiten's clean shutdown signal.
func loopError(err error) error {
	if errors.Is(err, render.ErrExit) {
		return ebiten.Termination
	}
	return err
}
