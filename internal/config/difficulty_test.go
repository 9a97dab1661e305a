package config

import "testing"

// speedAfter steps the ramp the way a session does over the given frames.
func speedAfter(d *DifficultyManager, frames int) float64 {
	speed := d.InitialSpeed()
	for frame := 1; frame <= frames; frame++ {
		if d.ShouldRamp(frame) {
			speed = d.Next(speed)
		}
	}
	return speed
}

func TestDifficultyShouldRamp(t *testing.T) {
	d := NewDifficultyManager(DefaultRunnerConfig().Difficulty)

	for frame := 0; frame <= 2400; frame++ {
		want := frame > 0 && frame%600 == 0
		if got := d.ShouldRamp(frame); got != want {
			t.Fatalf("ShouldRamp(%d) = %v, expected %v", frame, got, want)
		}
	}
}

func TestDifficultyDisabled(t *testing.T) {
	cfg := DefaultRunnerConfig().Difficulty
	cfg.Enabled = false
	d := NewDifficultyManager(cfg)

	if d.IsEnabled() {
		t.Fatal("manager should report disabled")
	}
	if d.ShouldRamp(600) {
		t.Error("disabled manager should never ramp")
	}
	if speedAfter(d, 6000) != 4 {
		t.Errorf("speed = %v, expected initial speed", speedAfter(d, 6000))
	}
}

func TestDifficultyRampSteps(t *testing.T) {
	d := NewDifficultyManager(DefaultRunnerConfig().Difficulty)

	tests := []struct {
		frame int
		speed float64
	}{
		{0, 4},
		{599, 4},
		{600, 4.5},
		{1799, 5},
		{1800, 5.5},
	}
	for _, tc := range tests {
		if got := speedAfter(d, tc.frame); got != tc.speed {
			t.Errorf("speed after %d frames = %v, expected %v", tc.frame, got, tc.speed)
		}
	}
}

func TestDifficultyMaxSpeed(t *testing.T) {
	cfg := DefaultRunnerConfig().Difficulty
	cfg.MaxSpeed = 5.2
	d := NewDifficultyManager(cfg)

	if got := d.Next(5); got != 5.2 {
		t.Errorf("Next(5) = %v, expected cap 5.2", got)
	}
	if got := speedAfter(d, 6000); got != 5.2 {
		t.Errorf("speed after 6000 frames = %v, expected cap 5.2", got)
	}
	// A speed already above the cap is never lowered.
	if got := d.Next(6); got != 6 {
		t.Errorf("Next(6) = %v, expected 6", got)
	}
}
