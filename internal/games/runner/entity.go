package runner

import (
	"time"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Player is the runner character. Only its vertical position changes.
type Player struct {
	X, Y     float64   // Top-left corner in world units
	VY       float64   // Vertical velocity, negative = up
	Size     float64   // Width and height
	Jumps    int       // Jumps accepted since the last landing
	LastJump time.Time // Time of the last accepted jump, zero if none
}

// Box returns the player's collision box.
func (p Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.Size, p.Size)
}

// Airborne reports whether the player is above the ground.
func (p Player) Airborne(ground float64) bool {
	return p.Y < ground
}

// Obstacle is a rectangular hazard scrolling in from the right.
type Obstacle struct {
	Kind      string // Archetype name
	X, Y      float64
	BaseY     float64 // Resting y for oscillating obstacles
	W, H      float64
	Color     core.Color
	Diff      float64 // Multiplier on the session scroll speed
	Oscillate bool
	Amplitude float64
	Phase     float64 // Radians, desynchronises oscillating obstacles
}

// Box returns the obstacle's collision box.
func (o Obstacle) Box() core.Box {
	return core.NewBox(o.X, o.Y, o.W, o.H)
}

// OffScreen reports whether the obstacle has fully left the playfield.
func (o Obstacle) OffScreen() bool {
	return o.X+o.W < 0
}

// Projectile is a ball that either awards points or ends the session.
type Projectile struct {
	X, Y    float64 // Centre
	R       float64
	Harmful bool
	Color   core.Color
}

// Box returns the square collision box around the projectile.
func (b Projectile) Box() core.Box {
	return core.BoxAround(b.X, b.Y, b.R)
}

// OffScreen reports whether the projectile has fully left the playfield.
func (b Projectile) OffScreen() bool {
	return b.X+b.R < 0
}
