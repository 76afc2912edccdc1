// Package config loads engine configuration from TOML files.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/strand/internal/engine/arena"
)

// ArenaConfig tunes the allocator.
type ArenaConfig struct {
	// RegionCapacity is the default capacity for new arena regions.
	RegionCapacity int `toml:"region_capacity"`

	// Poison enables scribbling logically freed payloads.
	Poison bool `toml:"poison"`
}

// DemoConfig configures the demo program.
type DemoConfig struct {
	// Input is an optional file to run the rewrite demo against.
	Input string `toml:"input"`
}

// Config is the root configuration.
type Config struct {
	Arena ArenaConfig `toml:"arena"`
	Demo  DemoConfig  `toml:"demo"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Arena: ArenaConfig{
			RegionCapacity: arena.DefaultRegionCapacity,
		},
	}
}

// Load reads configuration from path, merged over the defaults. A missing
// file is not an error; the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, &ParseError{Path: path, Message: err.Error(), Err: err}
	}

	if cfg.Arena.RegionCapacity <= 0 {
		return cfg, fmt.Errorf("config %s: arena.region_capacity must be positive, got %d", path, cfg.Arena.RegionCapacity)
	}
	return cfg, nil
}

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
