package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ServerConfig contains configuration for the score server.
type ServerConfig struct {
	Address         string    `yaml:"address"`
	DBPath          string    `yaml:"db_path"`
	CORSOrigin      string    `yaml:"cors_origin"`
	ShareURL        string    `yaml:"share_url"`
	LeaderboardSize int       `yaml:"leaderboard_size"`
	Geo             GeoConfig `yaml:"geo"`
}

// GeoConfig configures the IP geolocation lookup.
type GeoConfig struct {
	Enabled bool          `yaml:"enabled"`
	URL     string        `yaml:"url"` // Base URL, the IP is appended
	Timeout time.Duration `yaml:"timeout"`
}

// LoadServer loads the score server configuration.
// Search order for the YAML: customPath -> ~/.runner/configs/server.yaml ->
// ./configs/server.yaml -> embedded default. Environment variables are
// applied last; envFile (usually ".env") is loaded into the environment
// first without overriding variables that are already set.
func LoadServer(customPath, envFile string) (ServerConfig, error) {
	cfg, err := loadYAML(customPath, "server.yaml", defaultServerYAML, DefaultServerConfig())
	if err != nil {
		return cfg, err
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	if err := ApplyServerEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ApplyServerEnv overrides cfg from environment variables.
// PORT is honoured for hosting platforms and wins over RUNNER_ADDR.
func ApplyServerEnv(cfg *ServerConfig, lookup func(string) (string, bool)) error {
	if v, ok := lookup("RUNNER_ADDR"); ok && v != "" {
		cfg.Address = v
	}
	if v, ok := lookup("PORT"); ok && v != "" {
		cfg.Address = ":" + v
	}
	if v, ok := lookup("RUNNER_DB"); ok && v != "" {
		cfg.DBPath = v
	}
	if v, ok := lookup("RUNNER_CORS_ORIGIN"); ok && v != "" {
		cfg.CORSOrigin = v
	}
	if v, ok := lookup("RUNNER_SHARE_URL"); ok && v != "" {
		cfg.ShareURL = v
	}
	if v, ok := lookup("RUNNER_GEO_URL"); ok {
		// An explicitly empty URL switches geolocation off.
		cfg.Geo.URL = v
		cfg.Geo.Enabled = v != ""
	}
	if v, ok := lookup("RUNNER_GEO_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid RUNNER_GEO_TIMEOUT %q: %w", v, err)
		}
		cfg.Geo.Timeout = d
	}
	if v, ok := lookup("RUNNER_LEADERBOARD_SIZE"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid RUNNER_LEADERBOARD_SIZE %q", v)
		}
		cfg.LeaderboardSize = n
	}
	return nil
}

// unmarshalOver decodes data on top of a copy of base so absent keys keep
// their default values.
func unmarshalOver[T any](data []byte, base T) (T, error) {
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, err
	}
	return cfg, nil
}
