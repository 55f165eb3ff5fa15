// Package space defines the two coordinate systems the game draws with and the
// transforms between them.
//
// World space has its origin at the center of the world and +y pointing up.
// Screen space is the window's pixel grid with its origin at the top-left
// corner and +y pointing down. Everything the simulation reasons about lives in
// world space; only the final transform flips into screen space.
package space

import (
	"fmt"
	"math"
)

// Angle is a rotation in radians, counterclockwise in world space. It is not
// normalized.
type Angle float64

// Degrees returns the angle in degrees.
func (a Angle) Degrees() float64 {
	return float64(a) * 180 / math.Pi
}

// Point is a position in some local frame.
type Point struct {
	X, Y float64
}

// WorldPosition is a position in world space (+y up).
type WorldPosition Point

func (p WorldPosition) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", p.X, p.Y)
}

// ScreenPosition is a position in window pixels (+y down).
type ScreenPosition Point

func (p ScreenPosition) String() string {
	return fmt.Sprintf("(%.1f, %.1f)px", p.X, p.Y)
}

// Rect is an axis-aligned rectangle in a local frame. It spans X..X+W and
// Y..Y+H.
type Rect struct {
	X, Y, W, H float64
}

// Corners returns the four corners in the order top-left, top-right,
// bottom-left, bottom-right of the local frame (before any flip).
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{r.X, r.Y},
		{r.X + r.W, r.Y},
		{r.X, r.Y + r.H},
		{r.X + r.W, r.Y + r.H},
	}
}
