// Package player holds the player entity: its position and facing in world
// space, and the attack sub-state machine driven by Update.
package player

import (
	"math"

	"github.com/awall/delver/internal/core/space"
)

const (
	// Velocity is the walking speed in world units per second.
	Velocity = 250.0
	// AttackDuration is how long a swing lasts, in seconds.
	AttackDuration = 0.35
)

// Direction is a snapshot of which movement keys are held. Opposing keys may
// both be set.
type Direction struct {
	Up, Down, Left, Right bool
}

// Tuning holds the numbers Update integrates with.
type Tuning struct {
	Velocity       float64
	AttackDuration float64
}

// DefaultTuning returns Velocity and AttackDuration.
func DefaultTuning() Tuning {
	return Tuning{Velocity: Velocity, AttackDuration: AttackDuration}
}

// Player is the avatar. Position and Rotation may be read at any time; the
// attack state is only changed through Attack and Update.
type Player struct {
	Position space.WorldPosition
	Rotation space.Angle

	tuning Tuning

	// attacking doubles as "attackTimer is present".
	attacking   bool
	attackTimer float64
	startAttack bool
}

// New returns a player at the world origin facing +x, not attacking.
func New() *Player {
	return NewWithTuning(DefaultTuning())
}

// NewWithTuning is New with explicit tuning.
func NewWithTuning(t Tuning) *Player {
	return &Player{tuning: t}
}

// Tuning returns the tuning in effect.
func (p *Player) Tuning() Tuning {
	return p.tuning
}

// SetTuning replaces the tuning. A swing in progress keeps its remaining time.
func (p *Player) SetTuning(t Tuning) {
	p.tuning = t
}

// Attacking reports whether the sword should be drawn this frame.
func (p *Player) Attacking() bool {
	return p.attacking
}

// AttackTimer returns the remaining swing time. ok is false when no attack is
// in progress.
func (p *Player) AttackTimer() (remaining float64, ok bool) {
	if !p.attacking {
		return 0, false
	}
	return p.attackTimer, true
}

// AttackRequested reports whether an attack has been requested since the last
// Update.
func (p *Player) AttackRequested() bool {
	return p.startAttack
}

// Attack requests a swing. Requests made while a swing is in progress are
// dropped.
func (p *Player) Attack() {
	if !p.attacking {
		p.startAttack = true
	}
}

// RotateFromPos turns the player toward a cursor position in world space. It
// is inert in AxisLocked mode.
func (p *Player) RotateFromPos(cursor space.WorldPosition, mode Mode) {
	if mode != FaceCursor {
		return
	}
	dx := cursor.X - p.Position.X
	dy := cursor.Y - p.Position.Y
	p.Rotation = space.Angle(math.Atan2(dy, dx))
}

// Update advances the player by dt seconds: it starts a requested attack, ticks
// the attack timer, then moves according to dir. dt is not clamped.
func (p *Player) Update(dt float64, dir Direction, mode Mode) {
	if p.startAttack {
		p.startAttack = false
		p.attacking = true
		p.attackTimer = p.tuning.AttackDuration
	}

	if p.attacking {
		t := p.attackTimer - dt
		if t < 0 {
			p.attacking = false
			p.attackTimer = 0
			p.startAttack = false
		} else {
			p.attackTimer = t
		}
	}

	step := p.tuning.Velocity * dt
	switch mode {
	case FaceCursor:
		p.moveRelative(step, dir)
	default:
		p.moveAxisLocked(step, dir)
	}
}

// moveAxisLocked moves along the world axes and snaps Rotation to the last
// rule applied, in the order up, down, left, right.
func (p *Player) moveAxisLocked(step float64, dir Direction) {
	if dir.Up {
		p.Position.Y += step
		p.Rotation = math.Pi / 2
	}
	if dir.Down {
		p.Position.Y -= step
		p.Rotation = -math.Pi / 2
	}
	if dir.Left {
		p.Position.X -= step
		p.Rotation = math.Pi
	}
	if dir.Right {
		p.Position.X += step
		p.Rotation = 0
	}
}

// moveRelative moves relative to the current facing: up/down along it,
// left/right perpendicular to it. Rotation is left to RotateFromPos.
func (p *Player) moveRelative(step float64, dir Direction) {
	fy, fx := math.Sincos(float64(p.Rotation))
	// Left of the facing direction in a +y up frame.
	lx, ly := -fy, fx

	if dir.Up {
		p.Position.X += fx * step
		p.Position.Y += fy * step
	}
	if dir.Down {
		p.Position.X -= fx * step
		p.Position.Y -= fy * step
	}
	if dir.Left {
		p.Position.X += lx * step
		p.Position.Y += ly * step
	}
	if dir.Right {
		p.Position.X -= lx * step
		p.Position.Y -= ly * step
	}
}
