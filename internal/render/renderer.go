package render

import (
	"errors"
	"image"
	"image/color"

	"github.com/awall/delver/internal/core/space"
)

// ErrExit is returned from the game loop when the host's exit policy fires
// (Escape with ExitOnEscape). Engines treat it as a normal shutdown.
var ErrExit = errors.New("render: exit requested")

// Renderer is the main rendering interface that abstracts the underlying
// graphics engine. This allows swapping rendering backends without changing
// game logic.
type Renderer interface {
	// FillRect fills r, given in a local frame, after mapping its corners
	// through m into screen pixels.
	FillRect(dst Image, r space.Rect, m space.Affine, clr color.Color)

	// DrawText draws text with its top-left corner at (x, y) in screen pixels.
	DrawText(dst Image, text string, x, y int, clr color.Color)
}

// Image represents a renderable image surface that can be drawn to.
type Image interface {
	Bounds() image.Rectangle
	Size() (width, height int)

	// Fill fills the whole image with clr.
	Fill(clr color.Color)
	// Clear clears the image to transparent.
	Clear()
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys a backend reports.
const (
	KeyUnknown Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyEscape
)

func (k Key) String() string {
	switch k {
	case KeyW:
		return "W"
	case KeyA:
		return "A"
	case KeyS:
		return "S"
	case KeyD:
		return "D"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeySpace:
		return "Space"
	case KeyEscape:
		return "Escape"
	default:
		return "Unknown"
	}
}

// MouseButton represents a mouse button.
type MouseButton int

// Mouse button constants
const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// MouseButtonPrimary is the button that attacks.
const MouseButtonPrimary = MouseButtonLeft

// Game represents the game interface that the engine will call.
type Game interface {
	// HandleEvent is called once per event, in the order the host produced
	// them. A non-nil error stops the loop.
	HandleEvent(ev Event) error

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	// The logical screen size is used for rendering and input coordinates.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// WindowOptions describes the window RunGame opens.
type WindowOptions struct {
	Title     string
	Width     int
	Height    int
	Resizable bool

	// UPS is the number of update events per second.
	UPS int

	// ExitOnEscape stops the loop with ErrExit when Escape is pressed.
	ExitOnEscape bool
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	// RunGame opens the window and runs the game loop with the provided game.
	// This is a blocking call that runs until the window closes, the exit
	// policy fires, or the game returns an error. Closing the window and
	// ErrExit both return nil.
	RunGame(game Game, opts WindowOptions) error
}
