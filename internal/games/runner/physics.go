package runner

import (
	"time"

	"github.com/vovakirdan/tui-runner/internal/config"
)

// UpdatePlayer applies one frame of gravity and lands the player on the
// ground. Landing zeroes the velocity and restores the jump budget.
func UpdatePlayer(p Player, world config.RunnerWorld, phys config.RunnerPhysics) Player {
	p.VY += phys.Gravity
	p.Y += p.VY
	if p.Y >= world.Ground {
		p.Y = world.Ground
		p.VY = 0
		p.Jumps = 0
	}
	return p
}

// Jump starts a jump at time now. It is rejected while the previous
// accepted jump is younger than the cooldown, or once the jump budget is
// spent before landing. A rejected jump returns p unchanged and false.
func Jump(p Player, phys config.RunnerPhysics, now time.Time) (Player, bool) {
	cooldown := time.Duration(phys.JumpCooldownMS) * time.Millisecond
	if !p.LastJump.IsZero() && now.Sub(p.LastJump) < cooldown {
		return p, false
	}
	if p.Jumps >= phys.MaxJumps {
		return p, false
	}
	p.VY = phys.JumpVelocity
	p.Jumps++
	p.LastJump = now
	return p, true
}
