// Package config provides YAML-based game configuration loading and
// difficulty management for the snake arena.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is returned (wrapped) when a loaded config fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Arena      ArenaConfig      `yaml:"arena"`
	Timing     TimingConfig     `yaml:"timing"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Rules      RulesConfig      `yaml:"rules"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ArenaConfig defines the grid extent in cells.
type ArenaConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines the two fixed-interval gates.
type TimingConfig struct {
	MoveInterval time.Duration `yaml:"move_interval"` // Time between movement ticks
	FoodInterval time.Duration `yaml:"food_interval"` // Time between food spawn attempts
}

// Cell is a grid coordinate in config files.
type Cell struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// SpawnConfig defines where the two-segment snake starts each run.
type SpawnConfig struct {
	Head Cell `yaml:"head"`
	Tail Cell `yaml:"tail"`
}

// RulesConfig toggles optional rules.
type RulesConfig struct {
	MaxFood         int  `yaml:"max_food"`         // Maximum food items alive at once
	PreventReversal bool `yaml:"prevent_reversal"` // Ignore input that points back into the body
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Food eaten or movement ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Extra speed at max difficulty (1.0 = twice as fast)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset. Empty input yields an
// empty preset, meaning "use the config file as is".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// Validate checks that the config describes a playable arena.
func (c SnakeConfig) Validate() error {
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		return fmt.Errorf("config: arena %dx%d: %w", c.Arena.Width, c.Arena.Height, ErrInvalidConfig)
	}
	if c.Timing.MoveInterval <= 0 {
		return fmt.Errorf("config: move_interval %v must be positive: %w", c.Timing.MoveInterval, ErrInvalidConfig)
	}
	if c.Timing.FoodInterval <= 0 {
		return fmt.Errorf("config: food_interval %v must be positive: %w", c.Timing.FoodInterval, ErrInvalidConfig)
	}
	for _, cell := range []Cell{c.Spawn.Head, c.Spawn.Tail} {
		if cell.X < 0 || cell.X >= c.Arena.Width || cell.Y < 0 || cell.Y >= c.Arena.Height {
			return fmt.Errorf("config: spawn cell (%d, %d) outside arena: %w", cell.X, cell.Y, ErrInvalidConfig)
		}
	}
	dx := c.Spawn.Head.X - c.Spawn.Tail.X
	dy := c.Spawn.Head.Y - c.Spawn.Tail.Y
	if dx*dx+dy*dy != 1 {
		return fmt.Errorf("config: spawn head and tail must be adjacent: %w", ErrInvalidConfig)
	}
	if c.Rules.MaxFood < 0 {
		return fmt.Errorf("config: max_food %d is negative: %w", c.Rules.MaxFood, ErrInvalidConfig)
	}
	return nil
}
