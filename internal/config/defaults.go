package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration: a 10x10 arena,
// a 200ms movement tick and a 1s food spawner.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Arena: ArenaConfig{
			Width:  10,
			Height: 10,
		},
		Timing: TimingConfig{
			MoveInterval: 200 * time.Millisecond,
			FoodInterval: time.Second,
		},
		Spawn: SpawnConfig{
			Head: Cell{X: 3, Y: 3},
			Tail: Cell{X: 3, Y: 2},
		},
		Rules: RulesConfig{
			MaxFood:         1,
			PreventReversal: false,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 30,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}
