package config

import "math"

// DifficultyManager computes the stepped speed ramp from the frame counter.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.RampEvery > 0 && d.cfg.RampStep > 0
}

// InitialSpeed returns the scroll speed a fresh session starts with.
func (d *DifficultyManager) InitialSpeed() float64 {
	return d.cfg.InitialSpeed
}

// ShouldRamp reports whether the speed steps up at the given frame.
// Only positive multiples of the ramp interval qualify.
func (d *DifficultyManager) ShouldRamp(frame int) bool {
	return d.IsEnabled() && frame > 0 && frame%d.cfg.RampEvery == 0
}

// Next returns the speed after one ramp step, respecting the cap.
func (d *DifficultyManager) Next(speed float64) float64 {
	next := speed + d.cfg.RampStep
	if d.cfg.MaxSpeed > 0 {
		next = math.Min(next, math.Max(d.cfg.MaxSpeed, speed))
	}
	return next
}
