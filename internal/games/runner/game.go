// Package runner implements the endless side-scrolling runner: a player that
// jumps (with a double jump) over scrolling obstacles while collecting or
// dodging projectiles, with a speed ramp over time.
package runner

import (
	"time"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Game wraps a Simulator and its single active session for the platform
// layer. It is not safe for concurrent use; the render loop and the input
// controller both run on the event loop goroutine.
type Game struct {
	runtime  core.RuntimeConfig
	cfg      config.RunnerConfig
	fixedCfg bool // Config injected with WithConfig, skip loading
	sim      *Simulator
	session  Session
	skin     int
	muted    bool
	restarts int
	high     int
	now      func() time.Time
}

// Option configures a Game.
type Option func(*Game)

// WithClock sets the time source used for the jump cooldown.
func WithClock(now func() time.Time) Option {
	return func(g *Game) {
		g.now = now
	}
}

// WithConfig uses cfg instead of loading the runner config from disk.
func WithConfig(cfg config.RunnerConfig) Option {
	return func(g *Game) {
		g.cfg = cfg
		g.fixedCfg = true
	}
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names keep the
// config's own difficulty section.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// New creates a runner; call Reset before stepping it.
func New(opts ...Option) *Game {
	g := &Game{now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Reset loads the config and starts a fresh session seeded with runtime.Seed.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.fixedCfg {
		cfg, err := config.LoadRunner(configPath)
		if err != nil {
			cfg = config.DefaultRunnerConfig()
		}
		g.cfg = cfg
	}
	if difficultyPreset != "" {
		config.ApplyRunnerPreset(&g.cfg, difficultyPreset)
	}

	g.restarts = 0
	g.sim = NewSimulator(&g.cfg, runtime.Seed)
	g.session = g.sim.NewSession()
}

// Restart reinitializes the session: score, frame, speed and entity lists
// go back to their initial values and the state to running. Each restart
// uses the next seed so consecutive runs differ but stay reproducible.
func (g *Game) Restart() {
	if g.sim == nil {
		g.Reset(g.runtime)
		return
	}
	g.restarts++
	g.sim.Reseed(g.runtime.Seed + int64(g.restarts))
	g.session = g.sim.NewSession()
}

// Step advances the game by one tick. Skin and sound toggles always apply.
// Jumps are ignored while stopped, where only a restart has an effect.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionToggleSkin) {
		g.skin = (g.skin + 1) % len(Skins)
	}
	if in.Has(core.ActionToggleSound) {
		g.muted = !g.muted
	}

	if !g.session.Running() {
		if in.Has(core.ActionRestart) {
			g.Restart()
		}
		return core.StepResult{State: g.State()}
	}

	var events []core.Event
	if in.Has(core.ActionJump) {
		var jumped bool
		g.session, jumped = g.sim.Jump(g.session, g.now())
		if jumped {
			events = append(events, core.EventJump)
		}
	}

	var tickEvents []core.Event
	g.session, tickEvents = g.sim.Tick(g.session)
	events = append(events, tickEvents...)
	if g.session.Score > g.high {
		g.high = g.session.Score
	}

	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score,
		Frame:    g.session.Frame,
		Speed:    g.session.Speed,
		GameOver: !g.session.Running(),
	}
}

// Session returns a copy of the active session.
func (g *Game) Session() Session {
	return g.session
}

// Config returns the runner config in use.
func (g *Game) Config() config.RunnerConfig {
	return g.cfg
}

// HighScore returns the best score seen by this game.
func (g *Game) HighScore() int {
	return g.high
}

// SetHighScore seeds the HUD high score, typically from storage or the
// leaderboard. It never lowers the current value.
func (g *Game) SetHighScore(score int) {
	if score > g.high {
		g.high = score
	}
}

// Skin returns the active skin.
func (g *Game) Skin() Skin {
	return Skins[g.skin]
}

// Muted reports whether jump cues are silenced.
func (g *Game) Muted() bool {
	return g.muted
}

// JumpCue returns the control sequence for the active skin's jump sound,
// or "" when muted.
func (g *Game) JumpCue() string {
	if g.muted {
		return ""
	}
	return g.Skin().Sound.Cue()
}
