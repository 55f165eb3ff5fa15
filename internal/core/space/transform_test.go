package space

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func nearPoint(a, b Point) bool {
	return near(a.X, b.X) && near(a.Y, b.Y)
}

func TestToWorld(t *testing.T) {
	center := ScreenPosition{X: 100, Y: 100}
	tests := []struct {
		name   string
		screen ScreenPosition
		want   WorldPosition
	}{
		{name: "center", screen: ScreenPosition{100, 100}, want: WorldPosition{0, 0}},
		{name: "top-left", screen: ScreenPosition{0, 0}, want: WorldPosition{-100, 100}},
		{name: "bottom-right", screen: ScreenPosition{200, 200}, want: WorldPosition{100, -100}},
		{name: "above center", screen: ScreenPosition{100, 90}, want: WorldPosition{0, 10}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ToWorld(center, tc.screen)
			if got != tc.want {
				t.Fatalf("ToWorld(%v, %v) = %v, want %v", center, tc.screen, got, tc.want)
			}
		})
	}
}

func TestToWorldRoundTrip(t *testing.T) {
	center := ScreenPosition{X: 320, Y: 240}
	screen := ScreenTransform(center)
	inv, ok := screen.Inverse()
	if !ok {
		t.Fatalf("screen transform should be invertible")
	}
	for _, p := range []ScreenPosition{{0, 0}, {320, 240}, {17.5, 400}, {-3, -9}} {
		w := ToWorld(center, p)
		if back := ToScreen(center, w); back != p {
			t.Errorf("ToScreen(ToWorld(%v)) = %v", p, back)
		}
		if got := inv.Apply(Point(p)); !nearPoint(got, Point(w)) {
			t.Errorf("inverse screen transform of %v = %v, want %v", p, got, w)
		}
		if got := screen.Apply(Point(w)); !nearPoint(got, Point(p)) {
			t.Errorf("screen transform of %v = %v, want %v", w, got, p)
		}
	}
}

func TestScreenTransformFlipsY(t *testing.T) {
	center := ScreenPosition{X: 100, Y: 100}
	m := ScreenTransform(center)

	if got := m.Apply(Point{0, 0}); !nearPoint(got, Point{100, 100}) {
		t.Fatalf("origin mapped to %v, want center", got)
	}
	if got := m.Apply(Point{0, 1}); !nearPoint(got, Point{100, 99}) {
		t.Fatalf("world +y mapped to %v, want one pixel above center", got)
	}
	if got := m.Apply(Point{1, 0}); !nearPoint(got, Point{101, 100}) {
		t.Fatalf("world +x mapped to %v, want one pixel right of center", got)
	}
}

func TestPlayerTransform(t *testing.T) {
	center := ScreenPosition{X: 100, Y: 100}

	t.Run("idle at origin", func(t *testing.T) {
		m := PlayerTransform(center, WorldPosition{}, 0)
		if got := m.Apply(Point{}); !nearPoint(got, Point{100, 100}) {
			t.Fatalf("local origin mapped to %v, want (100,100)", got)
		}
	})

	t.Run("translated", func(t *testing.T) {
		pos := WorldPosition{X: 25, Y: 50}
		m := PlayerTransform(center, pos, 0)
		want := ToScreen(center, pos)
		if got := m.Apply(Point{}); !nearPoint(got, Point(want)) {
			t.Fatalf("local origin mapped to %v, want %v", got, want)
		}
	})

	t.Run("facing up", func(t *testing.T) {
		m := PlayerTransform(center, WorldPosition{}, math.Pi/2)
		// Local +x is the facing direction; facing up is toward smaller pixel y.
		if got := m.Apply(Point{10, 0}); !nearPoint(got, Point{100, 90}) {
			t.Fatalf("facing point mapped to %v, want (100,90)", got)
		}
	})

	t.Run("facing left", func(t *testing.T) {
		m := PlayerTransform(center, WorldPosition{}, math.Pi)
		if got := m.Apply(Point{10, 0}); !nearPoint(got, Point{90, 100}) {
			t.Fatalf("facing point mapped to %v, want (90,100)", got)
		}
	})
}

func TestAffineComposition(t *testing.T) {
	rot := Rotation(math.Pi / 2)
	tr := Translation(5, 0)

	// Rotate first, then translate.
	if got := tr.Mul(rot).Apply(Point{1, 0}); !nearPoint(got, Point{5, 1}) {
		t.Fatalf("translate∘rotate = %v, want (5,1)", got)
	}
	// Translate first, then rotate.
	if got := rot.Mul(tr).Apply(Point{1, 0}); !nearPoint(got, Point{0, 6}) {
		t.Fatalf("rotate∘translate = %v, want (0,6)", got)
	}
	if got := Identity().Mul(tr); got != tr {
		t.Fatalf("identity should be neutral, got %+v", got)
	}
}

func TestAffineInverse(t *testing.T) {
	m := PlayerTransform(ScreenPosition{50, 80}, WorldPosition{12, -7}, 0.3)
	inv, ok := m.Inverse()
	if !ok {
		t.Fatalf("expected invertible transform")
	}
	p := Point{3, 4}
	if got := inv.Apply(m.Apply(p)); !nearPoint(got, p) {
		t.Fatalf("inverse round trip = %v, want %v", got, p)
	}

	if _, ok := Scaling(0, 1).Inverse(); ok {
		t.Fatalf("singular transform reported invertible")
	}
}

func TestRectCorners(t *testing.T) {
	r := Rect{X: -25, Y: -25, W: 40, H: 50}
	c := r.Corners()
	want := [4]Point{{-25, -25}, {15, -25}, {-25, 25}, {15, 25}}
	if c != want {
		t.Fatalf("Corners() = %v, want %v", c, want)
	}
}

func TestAngleDegrees(t *testing.T) {
	if got := Angle(math.Pi).Degrees(); !near(got, 180) {
		t.Fatalf("Degrees(pi) = %v, want 180", got)
	}
	if got := Angle(-math.Pi / 2).Degrees(); !near(got, -90) {
		t.Fatalf("Degrees(-pi/2) = %v, want -90", got)
	}
}
