// Package config loads the mqrserver runtime configuration from a
// YAML file: listen address, world bounds, default k, and the synthetic
// load generator's settings.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level service configuration.
type Config struct {
	ListenAddr string      `yaml:"listen_addr"`
	World      WorldBounds `yaml:"world"`
	DefaultK   int         `yaml:"default_k"`
	Simulation Simulation  `yaml:"simulation"`
}

// WorldBounds is the envelope the synthetic load generator scatters
// points within.
type WorldBounds struct {
	MinX float64 `yaml:"min_x"`
	MaxX float64 `yaml:"max_x"`
	MinY float64 `yaml:"min_y"`
	MaxY float64 `yaml:"max_y"`
}

// Simulation configures the background synthetic load generator.
type Simulation struct {
	Enabled       bool    `yaml:"enabled"`
	PointCount    int     `yaml:"point_count"`
	MoveIntervalS int     `yaml:"move_interval_seconds"`
	MovesPerTick  float64 `yaml:"moves_per_second"`
}

// Default returns the baseline configuration used when no config file is
// given.
func Default() Config {
	return Config{
		ListenAddr: ":8080",
		World: WorldBounds{
			MinX: -180, MaxX: 180,
			MinY: -90, MaxY: 90,
		},
		DefaultK: 8,
		Simulation: Simulation{
			Enabled:       true,
			PointCount:    10000,
			MoveIntervalS: 2,
			MovesPerTick:  5,
		},
	}
}

// Load reads and parses a YAML config file at path, applying its values on
// top of Default(). A missing file is not an error; it just means the
// defaults are used.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}
