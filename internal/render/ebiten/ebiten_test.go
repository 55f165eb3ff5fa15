package ebiten

import (
	"errors"
	"fmt"
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/awall/delver/internal/render"
)

func TestKeyFromEbiten(t *testing.T) {
	tests := []struct {
		in   ebiten.Key
		want render.Key
	}{
		{ebiten.KeyW, render.KeyW},
		{ebiten.KeyA, render.KeyA},
		{ebiten.KeyS, render.KeyS},
		{ebiten.KeyD, render.KeyD},
		{ebiten.KeyEscape, render.KeyEscape},
		{ebiten.KeyArrowLeft, render.KeyLeft},
		{ebiten.KeyQ, render.KeyUnknown},
	}
	for _, tc := range tests {
		if got := keyFromEbiten(tc.in); got != tc.want {
			t.Errorf("keyFromEbiten(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestMouseButtonFromEbiten(t *testing.T) {
	if got := mouseButtonFromEbiten(ebiten.MouseButtonLeft); got != render.MouseButtonPrimary {
		t.Errorf("left button = %v, want primary", got)
	}
	if got := mouseButtonFromEbiten(ebiten.MouseButtonRight); got != render.MouseButtonRight {
		t.Errorf("right button = %v, want right", got)
	}
	if got := mouseButtonFromEbiten(ebiten.MouseButtonMiddle); got != render.MouseButtonMiddle {
		t.Errorf("middle button = %v, want middle", got)
	}
}

func TestColorScale(t *testing.T) {
	r, g, b, a := colorScale(color.NRGBA{R: 255, G: 0, B: 0, A: 255})
	if r != 1 || g != 0 || b != 0 || a != 1 {
		t.Fatalf("opaque red = (%v,%v,%v,%v), want (1,0,0,1)", r, g, b, a)
	}

	// Premultiplied: half-transparent white halves every channel.
	r, _, _, a = colorScale(color.NRGBA{R: 255, G: 255, B: 255, A: 128})
	if r != a {
		t.Fatalf("premultiplied channel %v should equal alpha %v", r, a)
	}
}

func TestLoopError(t *testing.T) {
	if err := loopError(render.ErrExit); err != ebiten.Termination {
		t.Fatalf("ErrExit should map to ebiten.Termination, got %v", err)
	}
	wrapped := fmt.Errorf("game: %w", render.ErrExit)
	if err := loopError(wrapped); err != ebiten.Termination {
		t.Fatalf("wrapped ErrExit should map to ebiten.Termination, got %v", err)
	}
	other := errors.New("boom")
	if err := loopError(other); err != other {
		t.Fatalf("other errors should pass through, got %v", err)
	}
}
