package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestEmbeddedRunnerMatchesHardcoded(t *testing.T) {
	cfg, err := unmarshalOver(defaultRunnerYAML, RunnerConfig{})
	if err != nil {
		t.Fatalf("embedded runner.yaml does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultRunnerConfig()) {
		t.Errorf("embedded defaults drifted from DefaultRunnerConfig():\n yaml: %+v\n code: %+v", cfg, DefaultRunnerConfig())
	}
}

func TestEmbeddedServerMatchesHardcoded(t *testing.T) {
	cfg, err := unmarshalOver(defaultServerYAML, ServerConfig{})
	if err != nil {
		t.Fatalf("embedded server.yaml does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultServerConfig()) {
		t.Errorf("embedded defaults drifted from DefaultServerConfig():\n yaml: %+v\n code: %+v", cfg, DefaultServerConfig())
	}
}

func TestLoadRunnerCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	data := []byte("physics:\n  gravity: 1.2\nscoring:\n  pickup_points: 25\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}

	if cfg.Physics.Gravity != 1.2 {
		t.Errorf("gravity = %v, expected 1.2", cfg.Physics.Gravity)
	}
	if cfg.Scoring.PickupPoints != 25 {
		t.Errorf("pickup points = %d, expected 25", cfg.Scoring.PickupPoints)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Physics.JumpVelocity != -12 {
		t.Errorf("jump velocity = %v, expected default -12", cfg.Physics.JumpVelocity)
	}
	if len(cfg.Archetypes) != 4 {
		t.Errorf("archetypes = %d, expected default palette of 4", len(cfg.Archetypes))
	}
}

func TestLoadRunnerCustomPathErrors(t *testing.T) {
	if _, err := LoadRunner(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("physics: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRunner(path); err == nil {
		t.Error("malformed custom config should be an error")
	}
}

func TestApplyRunnerPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		initial float64
		step    float64
	}{
		{DifficultyEasy, true, 3, 0.25},
		{DifficultyNormal, true, 4, 0.5},
		{DifficultyHard, true, 5, 0.75},
		{DifficultyFixed, false, 4, 0.5},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			ApplyRunnerPreset(&cfg, tc.preset)

			d := cfg.Difficulty
			if d.Enabled != tc.enabled || d.InitialSpeed != tc.initial || d.RampStep != tc.step {
				t.Errorf("difficulty = %+v", d)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("hard should parse")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("unknown presets should parse to empty")
	}
}

func TestApplyServerEnv(t *testing.T) {
	env := map[string]string{
		"RUNNER_ADDR":        ":9000",
		"PORT":               "8080",
		"RUNNER_DB":          "/tmp/x.db",
		"RUNNER_GEO_TIMEOUT": "750ms",
		"RUNNER_GEO_URL":     "",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := DefaultServerConfig()
	if err := ApplyServerEnv(&cfg, lookup); err != nil {
		t.Fatalf("ApplyServerEnv() failed: %v", err)
	}

	if cfg.Address != ":8080" {
		t.Errorf("address = %q, PORT should win", cfg.Address)
	}
	if cfg.DBPath != "/tmp/x.db" {
		t.Errorf("db path = %q", cfg.DBPath)
	}
	if cfg.Geo.Timeout != 750*time.Millisecond {
		t.Errorf("geo timeout = %v", cfg.Geo.Timeout)
	}
	if cfg.Geo.Enabled {
		t.Error("empty RUNNER_GEO_URL should disable geolocation")
	}
}

func TestApplyServerEnvRejectsBadValues(t *testing.T) {
	cfg := DefaultServerConfig()
	lookup := func(k string) (string, bool) {
		if k == "RUNNER_GEO_TIMEOUT" {
			return "soon", true
		}
		return "", false
	}
	if err := ApplyServerEnv(&cfg, lookup); err == nil {
		t.Error("unparseable timeout should be an error")
	}
}

func TestLoadServerReadsEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	if err := os.WriteFile(envFile, []byte("RUNNER_SHARE_URL=https://runner.example\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("RUNNER_SHARE_URL", "")
	os.Unsetenv("RUNNER_SHARE_URL")

	cfgPath := filepath.Join(dir, "server.yaml")
	if err := os.WriteFile(cfgPath, []byte("address: \":4000\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadServer(cfgPath, envFile)
	if err != nil {
		t.Fatalf("LoadServer() failed: %v", err)
	}
	if cfg.ShareURL != "https://runner.example" {
		t.Errorf("share url = %q, expected value from env file", cfg.ShareURL)
	}
	if cfg.LeaderboardSize != 50 {
		t.Errorf("leaderboard size = %d, expected default 50", cfg.LeaderboardSize)
	}
}

func TestLoadServerMissingEnvFileIsFine(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "server.yaml")
	if err := os.WriteFile(cfgPath, []byte("cors_origin: https://a.example\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadServer(cfgPath, filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Errorf("missing env file should be ignored, got %v", err)
	}
}
