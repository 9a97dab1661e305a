package runner

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// State is the session lifecycle state.
type State int

const (
	StateRunning State = iota
	StateStopped
)

func (s State) String() string {
	if s == StateStopped {
		return "stopped"
	}
	return "running"
}

// Session is one playthrough from reset to game over. It holds the only
// obstacle and projectile lists of the game.
type Session struct {
	Player      Player
	Obstacles   []Obstacle
	Projectiles []Projectile
	Frame       int
	Score       int
	Speed       float64
	State       State
}

// Running reports whether the session still advances.
func (s Session) Running() bool {
	return s.State == StateRunning
}

// Simulator owns the rules a session is advanced with.
type Simulator struct {
	cfg        *config.RunnerConfig
	difficulty *config.DifficultyManager
	spawner    *Spawner
}

// NewSimulator creates a simulator whose spawner uses the given seed.
func NewSimulator(cfg *config.RunnerConfig, seed int64) *Simulator {
	return &Simulator{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		spawner:    NewSpawner(seed, cfg),
	}
}

// Reseed resets the spawner RNG for a new session.
func (sim *Simulator) Reseed(seed int64) {
	sim.spawner.Reset(seed)
}

// NewSession returns a session in its initial state.
func (sim *Simulator) NewSession() Session {
	w := sim.cfg.World
	return Session{
		Player: Player{
			X:    w.PlayerX,
			Y:    w.Ground,
			Size: w.PlayerSize,
		},
		Obstacles:   []Obstacle{},
		Projectiles: []Projectile{},
		Speed:       sim.difficulty.InitialSpeed(),
		State:       StateRunning,
	}
}

// Jump applies a jump request to a running session.
func (sim *Simulator) Jump(s Session, now time.Time) (Session, bool) {
	if !s.Running() {
		return s, false
	}
	p, ok := Jump(s.Player, sim.cfg.Physics, now)
	s.Player = p
	return s, ok
}

// Tick advances a running session by one frame and returns the new session
// with the events that happened. A stopped session is returned unchanged.
//
// Order: player physics, obstacles (move, collide, prune), projectiles
// (move, collide, prune), frame counter, spawns, speed ramp. After a fatal
// collision the remaining entities still move and prune but are no longer
// tested, and the frame counter, spawns and ramp stay frozen.
func (sim *Simulator) Tick(s Session) (Session, []core.Event) {
	if !s.Running() {
		return s, nil
	}

	var events []core.Event
	next := s
	next.Player = UpdatePlayer(s.Player, sim.cfg.World, sim.cfg.Physics)

	obstacles := make([]Obstacle, 0, len(s.Obstacles)+1)
	for _, o := range s.Obstacles {
		o.X -= s.Speed * o.Diff
		if o.Oscillate {
			o.Y = o.BaseY + math.Sin(float64(s.Frame)*sim.cfg.Spawn.OscillationRate+o.Phase)*o.Amplitude
		}
		if next.Running() && HitsObstacle(next.Player, o) {
			next.State = StateStopped
		}
		if o.OffScreen() {
			continue
		}
		obstacles = append(obstacles, o)
	}

	projectiles := make([]Projectile, 0, len(s.Projectiles)+1)
	for _, b := range s.Projectiles {
		b.X -= s.Speed
		if next.Running() {
			switch HitsProjectile(next.Player, b) {
			case HitFatal:
				next.State = StateStopped
				continue
			case HitPickup:
				next.Score += sim.cfg.Scoring.PickupPoints
				events = append(events, core.EventPickup)
				continue
			}
		}
		if b.OffScreen() {
			continue
		}
		projectiles = append(projectiles, b)
	}

	next.Obstacles = obstacles
	next.Projectiles = projectiles

	if !next.Running() {
		return next, append(events, core.EventGameOver)
	}

	next.Frame++
	if sim.spawner.ObstacleDue(next.Frame) {
		next.Obstacles = append(next.Obstacles, sim.spawner.Obstacle())
	}
	if sim.spawner.ProjectileDue(next.Frame) {
		next.Projectiles = append(next.Projectiles, sim.spawner.Projectile())
	}
	if sim.difficulty.ShouldRamp(next.Frame) {
		next.Speed = sim.difficulty.Next(next.Speed)
	}

	return next, events
}
