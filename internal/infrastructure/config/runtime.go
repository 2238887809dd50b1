package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// RuntimeConfig is the process-level configuration (stickman.toml)
type RuntimeConfig struct {
	Logging    LoggingConfig    `toml:"logging"`
	Classifier ClassifierConfig `toml:"classifier"`
	Storage    StorageConfig    `toml:"storage"`
	Display    DisplayConfig    `toml:"display"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

type ClassifierConfig struct {
	Backend     string        `toml:"backend"`     // "lua" or "remote"
	ScriptsDir  string        `toml:"scripts_dir"` // empty = embedded scripts
	Endpoint    string        `toml:"endpoint"`    // base URL for the remote backend
	Timeout     time.Duration `toml:"timeout"`
	MaxInFlight int64         `toml:"max_in_flight"`
}

type StorageConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

type DisplayConfig struct {
	Scale    float64 `toml:"scale"`
	TickRate int     `toml:"tick_rate"`
}

// LoadRuntime reads a TOML file over the defaults. An empty path returns the defaults.
func LoadRuntime(path string) (*RuntimeConfig, error) {
	cfg := runtimeDefaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	switch cfg.Classifier.Backend {
	case "lua", "remote":
	default:
		return nil, fmt.Errorf("%w: unknown classifier backend %q", ErrInvalidConfig, cfg.Classifier.Backend)
	}
	if cfg.Classifier.MaxInFlight <= 0 {
		return nil, fmt.Errorf("%w: max_in_flight must be positive", ErrInvalidConfig)
	}
	return cfg, nil
}

func runtimeDefaults() *RuntimeConfig {
	return &RuntimeConfig{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Classifier: ClassifierConfig{
			Backend:     "lua",
			Endpoint:    "http://localhost:3400",
			Timeout:     3 * time.Second,
			MaxInFlight: 4,
		},
		Storage: StorageConfig{
			Enabled: true,
			Path:    "~/.stickman/results.db",
		},
		Display: DisplayConfig{
			Scale:    1,
			TickRate: 60,
		},
	}
}
