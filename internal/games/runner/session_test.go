package runner

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// quietConfig disables spawning so tests control every entity.
func quietConfig() config.RunnerConfig {
	cfg := config.DefaultRunnerConfig()
	cfg.Spawn.ObstacleEvery = 0
	cfg.Spawn.ProjectileEvery = 0
	return cfg
}

func hasEvent(events []core.Event, e core.Event) bool {
	for _, ev := range events {
		if ev == e {
			return true
		}
	}
	return false
}

func TestNewSessionInitialState(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	sim := NewSimulator(&cfg, 1)
	s := sim.NewSession()

	if s.Score != 0 || s.Frame != 0 {
		t.Errorf("Expected score 0 frame 0, got %d %d", s.Score, s.Frame)
	}
	if s.Speed != cfg.Difficulty.InitialSpeed {
		t.Errorf("Expected speed %v, got %v", cfg.Difficulty.InitialSpeed, s.Speed)
	}
	if len(s.Obstacles) != 0 || len(s.Projectiles) != 0 {
		t.Error("Expected empty entity lists")
	}
	if !s.Running() {
		t.Error("New session should be running")
	}
	if s.Player.Y != cfg.World.Ground || s.Player.X != cfg.World.PlayerX {
		t.Errorf("Player not at start position: %+v", s.Player)
	}
}

func TestObstacleCollisionStopsSameTick(t *testing.T) {
	cfg := quietConfig()
	sim := NewSimulator(&cfg, 1)
	s := sim.NewSession()

	// After moving by speed it overlaps the player's lower half
	s.Obstacles = append(s.Obstacles, Obstacle{
		Kind: "block", X: 60 + s.Speed, Y: 288, BaseY: 288, W: 20, H: 20, Diff: 1,
	})

	next, events := sim.Tick(s)

	if next.Running() {
		t.Fatal("Expected session to stop on obstacle contact")
	}
	if !hasEvent(events, core.EventGameOver) {
		t.Error("Expected game over event")
	}
	if next.Frame != 0 {
		t.Errorf("Frame should not advance on the fatal tick, got %d", next.Frame)
	}
	if next.Score != 0 {
		t.Errorf("Score should be unchanged, got %d", next.Score)
	}
}

func TestBenignProjectileAwardsPoints(t *testing.T) {
	cfg := quietConfig()
	sim := NewSimulator(&cfg, 1)
	s := sim.NewSession()

	s.Projectiles = append(s.Projectiles, Projectile{X: 74 + s.Speed, Y: 280, R: 6})

	next, events := sim.Tick(s)

	if !next.Running() {
		t.Fatal("Benign projectile must not stop the session")
	}
	if next.Score != cfg.Scoring.PickupPoints {
		t.Errorf("Expected score %d, got %d", cfg.Scoring.PickupPoints, next.Score)
	}
	if len(next.Projectiles) != 0 {
		t.Error("Collected projectile should be removed")
	}
	if !hasEvent(events, core.EventPickup) {
		t.Error("Expected pickup event")
	}
	if next.Frame != 1 {
		t.Errorf("Expected frame 1, got %d", next.Frame)
	}
}

func TestHarmfulProjectileStopsWithoutScore(t *testing.T) {
	cfg := quietConfig()
	sim := NewSimulator(&cfg, 1)
	s := sim.NewSession()
	s.Score = 30

	s.Projectiles = append(s.Projectiles, Projectile{X: 74 + s.Speed, Y: 280, R: 8, Harmful: true})

	next, events := sim.Tick(s)

	if next.Running() {
		t.Fatal("Harmful projectile should stop the session")
	}
	if next.Score != 30 {
		t.Errorf("Score should be unchanged at 30, got %d", next.Score)
	}
	if len(next.Projectiles) != 0 {
		t.Error("Harmful projectile should be removed")
	}
	if !hasEvent(events, core.EventGameOver) {
		t.Error("Expected game over event")
	}
}

func TestProjectileAboveDoubleJumpIsMissed(t *testing.T) {
	cfg := quietConfig()
	sim := NewSimulator(&cfg, 1)
	s := sim.NewSession()

	s.Projectiles = append(s.Projectiles, Projectile{X: 74 + s.Speed, Y: 200, R: 6})

	next, _ := sim.Tick(s)
	if next.Score != 0 || len(next.Projectiles) != 1 {
		t.Errorf("Projectile out of reach should pass untouched, score %d, left %d",
			next.Score, len(next.Projectiles))
	}
}

func TestOffScreenEntitiesArePruned(t *testing.T) {
	cfg := quietConfig()
	sim := NewSimulator(&cfg, 1)
	s := sim.NewSession()

	s.Obstacles = append(s.Obstacles,
		Obstacle{Kind: "gone", X: -18, Y: 288, BaseY: 288, W: 20, H: 20, Diff: 1},
		Obstacle{Kind: "kept", X: 400, Y: 288, BaseY: 288, W: 20, H: 20, Diff: 1},
	)
	s.Projectiles = append(s.Projectiles,
		Projectile{X: -3, Y: 100, R: 6},
		Projectile{X: 400, Y: 100, R: 6},
	)

	next, _ := sim.Tick(s)

	if len(next.Obstacles) != 1 || next.Obstacles[0].Kind != "kept" {
		t.Errorf("Expected only the on-screen obstacle, got %+v", next.Obstacles)
	}
	if len(next.Projectiles) != 1 || next.Projectiles[0].X != 400-s.Speed {
		t.Errorf("Expected only the on-screen projectile, got %+v", next.Projectiles)
	}
}

func TestObstacleSpeedMultiplier(t *testing.T) {
	cfg := quietConfig()
	sim := NewSimulator(&cfg, 1)
	s := sim.NewSession()

	s.Obstacles = append(s.Obstacles, Obstacle{Kind: "tower", X: 500, Y: 248, BaseY: 248, W: 30, H: 60, Diff: 1.8})

	next, _ := sim.Tick(s)
	want := 500 - s.Speed*1.8
	if next.Obstacles[0].X != want {
		t.Errorf("Expected x %v, got %v", want, next.Obstacles[0].X)
	}
}

func TestOscillatingObstacleStaysInAmplitude(t *testing.T) {
	cfg := quietConfig()
	sim := NewSimulator(&cfg, 1)
	s := sim.NewSession()

	s.Obstacles = append(s.Obstacles, Obstacle{
		Kind: "spike", X: 5000, Y: 288, BaseY: 288, W: 20, H: 20, Diff: 1,
		Oscillate: true, Amplitude: 30, Phase: 0.5,
	})

	moved := false
	for i := 0; i < 100; i++ {
		s, _ = sim.Tick(s)
		o := s.Obstacles[0]
		if o.Y < o.BaseY-o.Amplitude || o.Y > o.BaseY+o.Amplitude {
			t.Fatalf("Frame %d: y %v outside amplitude", s.Frame, o.Y)
		}
		if o.Y != o.BaseY {
			moved = true
		}
	}
	if !moved {
		t.Error("Oscillating obstacle never moved vertically")
	}
}

func TestSpawnsAtCadence(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Spawn.ProjectileEvery = 0
	sim := NewSimulator(&cfg, 3)
	s := sim.NewSession()

	for i := 0; i < 89; i++ {
		s, _ = sim.Tick(s)
	}
	if len(s.Obstacles) != 0 {
		t.Fatalf("Expected no obstacle before frame 90, got %d", len(s.Obstacles))
	}
	s, _ = sim.Tick(s)
	if s.Frame != 90 || len(s.Obstacles) != 1 {
		t.Errorf("Expected one obstacle at frame 90, got %d at frame %d", len(s.Obstacles), s.Frame)
	}

	cfg = config.DefaultRunnerConfig()
	cfg.Spawn.ObstacleEvery = 0
	sim = NewSimulator(&cfg, 3)
	s = sim.NewSession()
	for i := 0; i < 150; i++ {
		s, _ = sim.Tick(s)
	}
	if len(s.Projectiles) != 1 {
		t.Errorf("Expected one projectile at frame 150, got %d", len(s.Projectiles))
	}
}

func TestSpeedRamps(t *testing.T) {
	cfg := quietConfig()
	cfg.Difficulty.RampEvery = 10
	sim := NewSimulator(&cfg, 1)
	s := sim.NewSession()

	prev := s.Speed
	for i := 0; i < 35; i++ {
		s, _ = sim.Tick(s)
		if s.Speed < prev {
			t.Fatalf("Speed decreased at frame %d: %v -> %v", s.Frame, prev, s.Speed)
		}
		prev = s.Speed
	}

	want := cfg.Difficulty.InitialSpeed + 3*cfg.Difficulty.RampStep
	if s.Speed != want {
		t.Errorf("Expected speed %v after 35 frames, got %v", want, s.Speed)
	}
}

func TestStoppedTickIsNoop(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	sim := NewSimulator(&cfg, 1)
	s := sim.NewSession()
	s.State = StateStopped
	s.Frame = 12
	s.Obstacles = append(s.Obstacles, Obstacle{Kind: "block", X: 300, Y: 288, W: 20, H: 20, Diff: 1})

	next, events := sim.Tick(s)

	if !reflect.DeepEqual(next, s) {
		t.Errorf("Stopped session changed:\n got %+v\nwant %+v", next, s)
	}
	if len(events) != 0 {
		t.Errorf("Expected no events, got %v", events)
	}
}

func TestJumpIgnoredWhileStopped(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	sim := NewSimulator(&cfg, 1)
	s := sim.NewSession()
	s.State = StateStopped

	next, ok := sim.Jump(s, fixedTime())
	if ok {
		t.Error("Jump should be rejected while stopped")
	}
	if next.Player != s.Player {
		t.Error("Player should be unchanged")
	}
}
