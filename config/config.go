// SPDX-License-Identifier: MIT

// Package config holds the lvsearch CLI configuration.
//
// Values are resolved in order: defaults, YAML file, LVSEARCH_* environment
// variables, then command-line flags (applied by the CLI itself).
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvsearch/mdp/blackjack"
)

// Sentinel errors.
var (
	ErrInvalid = errors.New("config: invalid configuration")
	ErrDecode  = errors.New("config: decode failed")
)

// Map sources.
const (
	SourceGrid = "grid"
	SourceFile = "file"
)

// Heuristic names accepted by RouteConfig.Heuristic.
const (
	HeuristicStraightLine = "straight"
	HeuristicNorthSouth   = "northsouth"
	HeuristicZero         = "zero"
)

// Halving opponents.
const (
	OpponentMinimax = "minimax"
	OpponentFirst   = "first"
	OpponentRandom  = "random"
)

// Config is the full CLI configuration.
type Config struct {
	Log       LogConfig       `yaml:"log"`
	Route     RouteConfig     `yaml:"route"`
	Waypoints WaypointsConfig `yaml:"waypoints"`
	Blackjack BlackjackConfig `yaml:"blackjack"`
	Halving   HalvingConfig   `yaml:"halving"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// MapConfig says where the city map comes from.
type MapConfig struct {
	Source string `yaml:"source"` // grid or file
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	File   string `yaml:"file"` // YAML map document
}

// RouteConfig drives the route and waypoints commands.
type RouteConfig struct {
	Map       MapConfig `yaml:"map"`
	Start     string    `yaml:"start"`
	EndTag    string    `yaml:"end_tag"`
	AStar     bool      `yaml:"astar"`
	Heuristic string    `yaml:"heuristic"`
	Out       string    `yaml:"out"` // path JSON output; empty disables
}

// WaypointsConfig lists the tags the waypoints command must cover.
type WaypointsConfig struct {
	Tags []string `yaml:"tags"`
}

// BlackjackConfig drives the blackjack command.
type BlackjackConfig struct {
	blackjack.Params `yaml:",inline"`

	Preset        string  `yaml:"preset"` // "" or "peeking"
	Tolerance     float64 `yaml:"tolerance"`
	MaxIterations int     `yaml:"max_iterations"` // 0 = unbounded
}

// HalvingConfig drives the halving command.
type HalvingConfig struct {
	N        int    `yaml:"n"`
	Opponent string `yaml:"opponent"`
	Seed     uint64 `yaml:"seed"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log: LogConfig{Level: "info", Format: "text"},
		Route: RouteConfig{
			Map:       MapConfig{Source: SourceGrid, Width: 3, Height: 5},
			Start:     "0,0",
			EndTag:    "label=2,2",
			Heuristic: HeuristicStraightLine,
		},
		Blackjack: BlackjackConfig{
			Params:    blackjack.Params{CardValues: []int{1, 5}, Multiplicity: 2, Threshold: 10, PeekCost: 1},
			Tolerance: 1e-4,
		},
		Halving: HalvingConfig{N: 15, Opponent: OpponentMinimax, Seed: 1},
	}
}

// Parse decodes YAML over the defaults. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return cfg, nil
}

// Load reads path, applies the environment and validates. An empty path
// yields the defaults plus environment.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
		if cfg, err = Parse(data); err != nil {
			return cfg, err
		}
	}
	cfg.ApplyEnv(os.LookupEnv)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// ApplyEnv overrides log settings from LVSEARCH_LOG_LEVEL and
// LVSEARCH_LOG_FORMAT.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup("LVSEARCH_LOG_LEVEL"); ok && v != "" {
		c.Log.Level = v
	}
	if v, ok := lookup("LVSEARCH_LOG_FORMAT"); ok && v != "" {
		c.Log.Format = v
	}
}

// Validate checks every section.
func (c Config) Validate() error {
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}

	m := c.Route.Map
	switch m.Source {
	case SourceGrid:
		if m.Width < 1 || m.Height < 1 {
			return fmt.Errorf("%w: route.map grid %dx%d", ErrInvalid, m.Width, m.Height)
		}
	case SourceFile:
		if m.File == "" {
			return fmt.Errorf("%w: route.map.file is empty", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: route.map.source %q", ErrInvalid, m.Source)
	}
	switch c.Route.Heuristic {
	case HeuristicStraightLine, HeuristicNorthSouth, HeuristicZero:
	default:
		return fmt.Errorf("%w: route.heuristic %q", ErrInvalid, c.Route.Heuristic)
	}

	b := c.Blackjack
	if !(b.Tolerance > 0) || math.IsInf(b.Tolerance, 1) {
		return fmt.Errorf("%w: blackjack.tolerance %v", ErrInvalid, b.Tolerance)
	}
	if b.MaxIterations < 0 {
		return fmt.Errorf("%w: blackjack.max_iterations %d", ErrInvalid, b.MaxIterations)
	}
	switch b.Preset {
	case "", "peeking":
	default:
		return fmt.Errorf("%w: blackjack.preset %q", ErrInvalid, b.Preset)
	}
	if b.Preset == "" {
		if err := b.Params.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	}

	if c.Halving.N < 1 {
		return fmt.Errorf("%w: halving.n %d", ErrInvalid, c.Halving.N)
	}
	switch c.Halving.Opponent {
	case OpponentMinimax, OpponentFirst, OpponentRandom:
	default:
		return fmt.Errorf("%w: halving.opponent %q", ErrInvalid, c.Halving.Opponent)
	}

	return nil
}

// SlogLevel parses Level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("%w: log.level %q", ErrInvalid, l.Level)
	}

	return lvl, nil
}
