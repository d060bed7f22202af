package config

import (
	"math"
	"time"
)

// minMoveInterval is the fastest movement tick difficulty scaling may produce.
const minMoveInterval = 40 * time.Millisecond

// DifficultyManager calculates the movement interval based on run progress.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Level returns the current difficulty level (0.0 to 1.0) based on food eaten or ticks survived.
func (d *DifficultyManager) Level(food int, ticks int) float64 {
	if !d.cfg.Enabled {
		return 0
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(food) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// MoveInterval returns the movement tick interval for the current progress.
// With progression disabled it returns base unchanged.
func (d *DifficultyManager) MoveInterval(base time.Duration, food int, ticks int) time.Duration {
	if !d.cfg.Enabled {
		return base
	}
	level := d.Level(food, ticks)
	scaled := time.Duration(float64(base) / (1.0 + level*d.cfg.Scaling.SpeedMultiplier))
	if scaled < minMoveInterval {
		scaled = minMoveInterval
	}
	if scaled > base {
		scaled = base
	}
	return scaled
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
