package hud

import (
	"image"
	"image/color"
	"math"
	"strings"
	"testing"

	"github.com/awall/delver/internal/core/space"
	"github.com/awall/delver/internal/render"
)

type textRecorder struct {
	text string
	x, y int
}

func (r *textRecorder) FillRect(render.Image, space.Rect, space.Affine, color.Color) {}

func (r *textRecorder) DrawText(dst render.Image, text string, x, y int, clr color.Color) {
	r.text, r.x, r.y = text, x, y
}

type blankImage struct{}

func (blankImage) Bounds() image.Rectangle { return image.Rect(0, 0, 200, 200) }
func (blankImage) Size() (int, int)        { return 200, 200 }
func (blankImage) Fill(color.Color)        {}
func (blankImage) Clear()                  {}

func TestLines(t *testing.T) {
	h := New(&textRecorder{})

	idle := h.Lines(Stats{
		Position: space.WorldPosition{X: 25, Y: -50},
		Rotation: math.Pi / 2,
		Mode:     "axis-locked",
		FPS:      59.7,
	})
	want := []string{"pos (25.00, -50.00)", "rot 90deg", "atk idle", "axis-locked 60fps"}
	if strings.Join(idle, "|") != strings.Join(want, "|") {
		t.Fatalf("Lines() = %q, want %q", idle, want)
	}

	swinging := h.Lines(Stats{Attacking: true, AttackTimer: 0.25})
	if swinging[2] != "atk 0.250s" {
		t.Fatalf("attack line = %q, want %q", swinging[2], "atk 0.250s")
	}
}

func TestDrawTopLeft(t *testing.T) {
	r := &textRecorder{}
	New(r).Draw(blankImage{}, Stats{})
	if r.x != margin || r.y != margin {
		t.Fatalf("overlay drawn at (%d,%d), want (%d,%d)", r.x, r.y, margin, margin)
	}
	if got := strings.Count(r.text, "\n"); got != 3 {
		t.Fatalf("Expected 4 lines, got %d newlines in %q", got, r.text)
	}
}
