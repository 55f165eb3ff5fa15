package space

import "math"

// Affine is a 2D affine transform mapping (x, y) to
// (A*x + B*y + Tx, C*x + D*y + Ty).
//
// The zero value is not the identity; use Identity.
type Affine struct {
	A, B, C, D float64
	Tx, Ty     float64
}

// Identity returns the identity transform.
func Identity() Affine {
	return Affine{A: 1, D: 1}
}

// Translation returns a transform that shifts by (tx, ty).
func Translation(tx, ty float64) Affine {
	return Affine{A: 1, D: 1, Tx: tx, Ty: ty}
}

// Scaling returns a transform that scales by (sx, sy).
func Scaling(sx, sy float64) Affine {
	return Affine{A: sx, D: sy}
}

// Rotation returns a counterclockwise rotation by theta (in a +y up frame).
func Rotation(theta Angle) Affine {
	sin, cos := math.Sincos(float64(theta))
	return Affine{A: cos, B: -sin, C: sin, D: cos}
}

// Mul returns the composition m ∘ o: o is applied first, then m.
func (m Affine) Mul(o Affine) Affine {
	return Affine{
		A:  m.A*o.A + m.B*o.C,
		B:  m.A*o.B + m.B*o.D,
		C:  m.C*o.A + m.D*o.C,
		D:  m.C*o.B + m.D*o.D,
		Tx: m.A*o.Tx + m.B*o.Ty + m.Tx,
		Ty: m.C*o.Tx + m.D*o.Ty + m.Ty,
	}
}

// Apply transforms p.
func (m Affine) Apply(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.Tx,
		Y: m.C*p.X + m.D*p.Y + m.Ty,
	}
}

// Inverse returns the inverse transform. ok is false when m is singular.
func (m Affine) Inverse() (inv Affine, ok bool) {
	det := m.A*m.D - m.B*m.C
	if det == 0 {
		return Affine{}, false
	}
	a := m.D / det
	b := -m.B / det
	c := -m.C / det
	d := m.A / det
	return Affine{
		A: a, B: b, C: c, D: d,
		Tx: -(a*m.Tx + b*m.Ty),
		Ty: -(c*m.Tx + d*m.Ty),
	}, true
}

// ToWorld converts a screen position into world space, given the pixel
// coordinate of the window midpoint.
func ToWorld(center, pos ScreenPosition) WorldPosition {
	return WorldPosition{X: pos.X - center.X, Y: center.Y - pos.Y}
}

// ToScreen is the inverse of ToWorld.
func ToScreen(center ScreenPosition, pos WorldPosition) ScreenPosition {
	return ScreenPosition{X: center.X + pos.X, Y: center.Y - pos.Y}
}

// ScreenTransform places the world origin at center and flips y so that world
// geometry can be drawn straight into window pixels.
func ScreenTransform(center ScreenPosition) Affine {
	return Translation(center.X, center.Y).Mul(Scaling(1, -1))
}

// PlayerTransform maps the player's local frame to screen pixels:
// ScreenTransform(center) ∘ translate(pos) ∘ rotate(rotation).
func PlayerTransform(center ScreenPosition, pos WorldPosition, rotation Angle) Affine {
	return ScreenTransform(center).
		Mul(Translation(pos.X, pos.Y)).
		Mul(Rotation(rotation))
}
