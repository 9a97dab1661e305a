// Package config provides YAML-based game and server configuration loading
// and difficulty management for the runner.
package config

// RunnerConfig contains all configuration for the endless runner.
// Distances are in world units, speeds in world units per frame.
type RunnerConfig struct {
	World       RunnerWorld       `yaml:"world"`
	Physics     RunnerPhysics     `yaml:"physics"`
	Spawn       RunnerSpawn       `yaml:"spawn"`
	Projectiles RunnerProjectiles `yaml:"projectiles"`
	Archetypes  []Archetype       `yaml:"archetypes"`
	Scoring     RunnerScoring     `yaml:"scoring"`
	Difficulty  DifficultyConfig  `yaml:"difficulty"`
}

// RunnerWorld defines the playfield geometry.
type RunnerWorld struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Ground     float64 `yaml:"ground"` // Player top edge when standing
	PlayerX    float64 `yaml:"player_x"`
	PlayerSize float64 `yaml:"player_size"`
}

// GroundLine returns the y coordinate of the floor surface.
func (w RunnerWorld) GroundLine() float64 {
	return w.Ground + w.PlayerSize
}

// RunnerPhysics defines player motion.
type RunnerPhysics struct {
	Gravity        float64 `yaml:"gravity"`
	JumpVelocity   float64 `yaml:"jump_velocity"` // Negative = upward
	MaxJumps       int     `yaml:"max_jumps"`
	JumpCooldownMS int     `yaml:"jump_cooldown_ms"`
}

// RunnerSpawn defines spawn cadence in frames.
type RunnerSpawn struct {
	ObstacleEvery   int     `yaml:"obstacle_every"`
	ProjectileEvery int     `yaml:"projectile_every"`
	OscillationRate float64 `yaml:"oscillation_rate"` // Radians per frame
}

// RunnerProjectiles defines the collectible/harmful balls.
type RunnerProjectiles struct {
	HarmfulChance float64 `yaml:"harmful_chance"`
	HarmfulRadius float64 `yaml:"harmful_radius"`
	BenignRadius  float64 `yaml:"benign_radius"`
	HarmfulColor  string  `yaml:"harmful_color"`
	BenignColor   string  `yaml:"benign_color"`
	Lift          float64 `yaml:"lift"`   // Height above Ground of the lowest spawn
	Jitter        float64 `yaml:"jitter"` // Random extra height range
}

// Archetype is one obstacle template in the spawn palette.
type Archetype struct {
	Name      string  `yaml:"name"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Color     string  `yaml:"color"`
	Diff      float64 `yaml:"diff"` // Multiplier on scroll speed
	Oscillate bool    `yaml:"oscillate"`
	Amplitude float64 `yaml:"amplitude"`
}

// RunnerScoring defines point awards.
type RunnerScoring struct {
	PickupPoints int `yaml:"pickup_points"`
}

// DifficultyConfig defines the stepped speed ramp.
type DifficultyConfig struct {
	Enabled      bool    `yaml:"enabled"`
	InitialSpeed float64 `yaml:"initial_speed"`
	RampEvery    int     `yaml:"ramp_every"` // Frames between speed steps
	RampStep     float64 `yaml:"ramp_step"`
	MaxSpeed     float64 `yaml:"max_speed"` // 0 = uncapped
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset.
// Unknown or empty values return "" which leaves the config untouched.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
