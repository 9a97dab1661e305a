package runner

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Spawner creates obstacles and projectiles at fixed frame intervals.
// All randomness comes from its own seeded source so runs are reproducible.
type Spawner struct {
	rng     *rand.Rand
	cfg     *config.RunnerConfig
	palette []Obstacle // Archetype templates, positioned at spawn time
}

// NewSpawner creates a spawner with the given RNG seed.
func NewSpawner(seed int64, cfg *config.RunnerConfig) *Spawner {
	s := &Spawner{cfg: cfg}
	s.UpdateConfig(cfg)
	s.Reset(seed)
	return s
}

// UpdateConfig rebuilds the archetype palette from cfg.
func (s *Spawner) UpdateConfig(cfg *config.RunnerConfig) {
	s.cfg = cfg
	s.palette = s.palette[:0]
	for _, a := range cfg.Archetypes {
		s.palette = append(s.palette, Obstacle{
			Kind:      a.Name,
			W:         a.Width,
			H:         a.Height,
			Color:     core.ParseColor(a.Color),
			Diff:      a.Diff,
			Oscillate: a.Oscillate,
			Amplitude: a.Amplitude,
		})
	}
}

// Reset reseeds the RNG.
func (s *Spawner) Reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
}

// ObstacleDue reports whether an obstacle spawns at the given frame.
func (s *Spawner) ObstacleDue(frame int) bool {
	return len(s.palette) > 0 && due(frame, s.cfg.Spawn.ObstacleEvery)
}

// ProjectileDue reports whether a projectile spawns at the given frame.
func (s *Spawner) ProjectileDue(frame int) bool {
	return due(frame, s.cfg.Spawn.ProjectileEvery)
}

func due(frame, every int) bool {
	return every > 0 && frame > 0 && frame%every == 0
}

// Obstacle creates an obstacle of a uniformly chosen archetype at the
// right edge, bottom-aligned with the standing player.
func (s *Spawner) Obstacle() Obstacle {
	world := s.cfg.World
	o := s.palette[s.rng.Intn(len(s.palette))]
	o.X = world.Width
	o.BaseY = world.Ground + (world.PlayerSize - o.H)
	o.Y = o.BaseY
	o.Phase = s.rng.Float64() * 2 * math.Pi
	return o
}

// Projectile creates a projectile at the right edge, harmful with the
// configured probability.
func (s *Spawner) Projectile() Projectile {
	pc := s.cfg.Projectiles
	b := Projectile{
		X:       s.cfg.World.Width,
		Harmful: s.rng.Float64() < pc.HarmfulChance,
	}
	b.Y = s.cfg.World.Ground - pc.Lift - s.rng.Float64()*pc.Jitter
	if b.Harmful {
		b.R = pc.HarmfulRadius
		b.Color = core.ParseColor(pc.HarmfulColor)
	} else {
		b.R = pc.BenignRadius
		b.Color = core.ParseColor(pc.BenignColor)
	}
	return b
}
