package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/awall/delver/internal/render"
)

var mouseButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

// inputPump turns ebiten's per-tick input state into render events.
type inputPump struct {
	exitOnEscape bool

	keys []ebiten.Key

	cursorSeen       bool
	cursorX, cursorY int
}

func newInputPump(exitOnEscape bool) *inputPump {
	return &inputPump{exitOnEscape: exitOnEscape}
}

// poll appends the events since the previous tick to events: key presses, key
// releases, mouse buttons, then cursor movement. It returns render.ErrExit
// when the exit policy fires.
func (p *inputPump) poll(events []render.Event) ([]render.Event, error) {
	p.keys = inpututil.AppendJustPressedKeys(p.keys[:0])
	for _, k := range p.keys {
		if p.exitOnEscape && k == ebiten.KeyEscape {
			return events, render.ErrExit
		}
		if key := keyFromEbiten(k); key != render.KeyUnknown {
			events = append(events, render.KeyPressEvent{Key: key})
		}
	}

	p.keys = inpututil.AppendJustReleasedKeys(p.keys[:0])
	for _, k := range p.keys {
		if key := keyFromEbiten(k); key != render.KeyUnknown {
			events = append(events, render.KeyReleaseEvent{Key: key})
		}
	}

	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b) {
			events = append(events, render.MousePressEvent{Button: mouseButtonFromEbiten(b)})
		}
		if inpututil.IsMouseButtonJustReleased(b) {
			events = append(events, render.MouseReleaseEvent{Button: mouseButtonFromEbiten(b)})
		}
	}

	x, y := ebiten.CursorPosition()
	if !p.cursorSeen || x != p.cursorX || y != p.cursorY {
		p.cursorSeen = true
		p.cursorX, p.cursorY = x, y
		events = append(events, render.CursorMoveEvent{X: float64(x), Y: float64(y)})
	}

	return events, nil
}

// keyFromEbiten converts an ebiten.Key to a render.Key.
func keyFromEbiten(key ebiten.Key) render.Key {
	switch key {
	case ebiten.KeyW:
		return render.KeyW
	case ebiten.KeyA:
		return render.KeyA
	case ebiten.KeyS:
		return render.KeyS
	case ebiten.KeyD:
		return render.KeyD
	case ebiten.KeyArrowUp:
		return render.KeyUp
	case ebiten.KeyArrowDown:
		return render.KeyDown
	case ebiten.KeyArrowLeft:
		return render.KeyLeft
	case ebiten.KeyArrowRight:
		return render.KeyRight
	case ebiten.KeySpace:
		return render.KeySpace
	case ebiten.KeyEscape:
		return render.KeyEscape
	default:
		return render.KeyUnknown
	}
}

// mouseButtonFromEbiten converts an ebiten.MouseButton to a render.MouseButton.
func mouseButtonFromEbiten(button ebiten.MouseButton) render.MouseButton {
	switch button {
	case ebiten.MouseButtonRight:
		return render.MouseButtonRight
	case ebiten.MouseButtonMiddle:
		return render.MouseButtonMiddle
	default:
		return render.MouseButtonLeft
	}
}
