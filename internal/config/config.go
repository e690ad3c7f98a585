// Package config loads runner settings: defaults, then an optional YAML file,
// then environment overrides, then validation.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/aoc2025/gridgraph"
)

// Environment variables that override file settings.
const (
	EnvInputDir      = "AOC_INPUT_DIR"
	EnvGridThreshold = "AOC_GRID_THRESHOLD"
	EnvGridMarker    = "AOC_GRID_MARKER"
)

// Sentinel errors for configuration problems.
var (
	// ErrInvalidConfig indicates a loaded configuration failed validation.
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// GridConfig configures the grid eviction puzzle.
type GridConfig struct {
	Marker       string `yaml:"marker"`
	Threshold    int    `yaml:"threshold"`
	Connectivity string `yaml:"connectivity"`
}

// Config is the full runner configuration.
type Config struct {
	// InputDir holds one "<day>.txt" file per puzzle.
	InputDir string `yaml:"input_dir"`
	// Days selects which puzzles to run when none are named on the command line.
	Days []int      `yaml:"days"`
	Grid GridConfig `yaml:"grid"`
}

// Default returns the configuration used when nothing else is provided.
func Default() Config {
	return Config{
		InputDir: "inputs",
		Days:     []int{4, 5},
		Grid: GridConfig{
			Marker:       string(gridgraph.DefaultMarker),
			Threshold:    gridgraph.DefaultThreshold,
			Connectivity: gridgraph.Conn8.String(),
		},
	}
}

// Load builds a Config with priority: env > file > defaults.
// A missing file at path is not an error; an unreadable or invalid one is.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
	}
	if err := loadEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("load config env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func loadEnv(cfg *Config) error {
	if v := os.Getenv(EnvInputDir); v != "" {
		cfg.InputDir = v
	}
	if v := os.Getenv(EnvGridMarker); v != "" {
		cfg.Grid.Marker = v
	}
	if v := os.Getenv(EnvGridThreshold); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvGridThreshold, v, err)
		}
		cfg.Grid.Threshold = n
	}
	return nil
}

// Validate checks field ranges. Errors wrap ErrInvalidConfig.
func (c Config) Validate() error {
	if c.InputDir == "" {
		return fmt.Errorf("%w: input_dir is empty", ErrInvalidConfig)
	}
	if len([]rune(c.Grid.Marker)) != 1 {
		return fmt.Errorf("%w: grid.marker must be a single character, got %q", ErrInvalidConfig, c.Grid.Marker)
	}
	if c.Grid.Threshold < 0 {
		return fmt.Errorf("%w: grid.threshold must be non-negative, got %d", ErrInvalidConfig, c.Grid.Threshold)
	}
	if _, err := parseConnectivity(c.Grid.Connectivity); err != nil {
		return err
	}
	for _, d := range c.Days {
		if d < 1 || d > 25 {
			return fmt.Errorf("%w: day %d out of range 1..25", ErrInvalidConfig, d)
		}
	}
	return nil
}

// GridOptions converts the grid section into gridgraph options.
// It assumes c has passed Validate.
func (c Config) GridOptions() gridgraph.GridOptions {
	conn, _ := parseConnectivity(c.Grid.Connectivity)
	return gridgraph.GridOptions{
		Marker:    []rune(c.Grid.Marker)[0],
		Threshold: c.Grid.Threshold,
		Conn:      conn,
	}
}

func parseConnectivity(s string) (gridgraph.Connectivity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "8", "conn8":
		return gridgraph.Conn8, nil
	case "4", "conn4":
		return gridgraph.Conn4, nil
	default:
		return gridgraph.Conn8, fmt.Errorf("%w: unknown grid.connectivity %q", ErrInvalidConfig, s)
	}
}
