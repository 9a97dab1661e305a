package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

//go:embed defaults/server.yaml
var defaultServerYAML []byte

// DefaultRunnerConfig returns the built-in runner configuration.
// It mirrors defaults/runner.yaml and is used if the embedded file fails to parse.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		World: RunnerWorld{
			Width:      800,
			Height:     320,
			Ground:     260,
			PlayerX:    50,
			PlayerSize: 48,
		},
		Physics: RunnerPhysics{
			Gravity:        0.8,
			JumpVelocity:   -12,
			MaxJumps:       2,
			JumpCooldownMS: 250,
		},
		Spawn: RunnerSpawn{
			ObstacleEvery:   90,
			ProjectileEvery: 150,
			OscillationRate: 0.1,
		},
		Projectiles: RunnerProjectiles{
			HarmfulChance: 0.5,
			HarmfulRadius: 8,
			BenignRadius:  6,
			HarmfulColor:  "orange",
			BenignColor:   "blue",
			Lift:          30,
			Jitter:        40,
		},
		Archetypes: []Archetype{
			{Name: "block", Width: 20, Height: 20, Color: "pink", Diff: 1.0},
			{Name: "pillar", Width: 20, Height: 40, Color: "purple", Diff: 1.4},
			{Name: "tower", Width: 30, Height: 60, Color: "violet", Diff: 1.8},
			{Name: "spike", Width: 20, Height: 20, Color: "orange", Diff: 1.6, Oscillate: true, Amplitude: 30},
		},
		Scoring: RunnerScoring{
			PickupPoints: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialSpeed: 4,
			RampEvery:    600,
			RampStep:     0.5,
		},
	}
}

// DefaultServerConfig returns the built-in score server configuration.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Address:         ":3000",
		DBPath:          "~/.runner/scores.db",
		CORSOrigin:      "*",
		ShareURL:        "http://localhost:3000",
		LeaderboardSize: 50,
		Geo: GeoConfig{
			Enabled: true,
			URL:     "http://ip-api.com/json/",
			Timeout: 3 * time.Second,
		},
	}
}
