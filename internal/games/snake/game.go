// Package snake implements the grid snake simulation: a snake moves across a
// bounded arena on a fixed movement tick, grows when it eats food, and the
// run resets immediately when the head leaves the arena or hits the body.
//
// World holds the simulation and has no platform dependencies. Game adapts a
// World to the registry.Game frame loop.
package snake

import (
	"time"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/registry"
)

// Package-level settings applied by the CLI before the registry creates a game.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names fall back
// to the config file's own difficulty section.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// Game adapts a World to the platform's fixed-rate frame loop.
type Game struct {
	cfg         config.SnakeConfig
	fixedConfig bool // cfg was supplied by the caller; skip file loading
	difficulty  *config.DifficultyManager
	world       *World
	frame       time.Duration // Elapsed time fed to the world per Step
	frames      uint64
	paused      bool
}

// New creates a game that loads its config on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game using cfg instead of loading a config file.
func NewWithConfig(cfg config.SnakeConfig) *Game {
	return &Game{cfg: cfg, fixedConfig: true}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// SettingsFromConfig converts a loaded config into World settings.
func SettingsFromConfig(cfg config.SnakeConfig) Settings {
	return Settings{
		Grid:            Grid{Width: cfg.Arena.Width, Height: cfg.Arena.Height},
		MoveInterval:    cfg.Timing.MoveInterval,
		FoodInterval:    cfg.Timing.FoodInterval,
		StartHead:       Position{X: cfg.Spawn.Head.X, Y: cfg.Spawn.Head.Y},
		StartTail:       Position{X: cfg.Spawn.Tail.X, Y: cfg.Spawn.Tail.Y},
		MaxFood:         cfg.Rules.MaxFood,
		PreventReversal: cfg.Rules.PreventReversal,
	}
}

// Reset initializes the world for a new session.
func (g *Game) Reset(rt core.RuntimeConfig) {
	if !g.fixedConfig {
		cfg, err := config.LoadSnake(configPath)
		if err != nil {
			cfg = config.DefaultSnakeConfig()
		}
		config.ApplySnakePreset(&cfg, difficultyPreset)
		g.cfg = cfg
	}

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.world = NewWorld(SettingsFromConfig(g.cfg), rt.Seed)
	g.frame = rt.FrameDuration()
	g.frames = 0
	g.paused = false
	g.applyDifficulty()
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world == nil {
		return core.StepResult{}
	}
	g.frames++

	if in.Has(core.ActionRestart) {
		g.world.Restart()
		g.paused = false
		g.applyDifficulty()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.world.Steer(directionFor(in))
	res := g.world.Update(g.frame)

	var result core.StepResult
	if res.Ended != nil {
		result.Ended = &core.RunSummary{
			Cause:     res.Ended.Cause.String(),
			Length:    res.Ended.Length,
			FoodEaten: res.Ended.FoodEaten,
			Ticks:     res.Ended.Ticks,
		}
	}
	if res.Moved {
		g.applyDifficulty()
	}

	result.State = g.State()
	return result
}

// directionFor returns the most recently pressed direction in the frame.
func directionFor(in core.InputFrame) Direction {
	switch in.LastOf(core.ActionLeft, core.ActionUp, core.ActionRight, core.ActionDown) {
	case core.ActionLeft:
		return DirLeft
	case core.ActionUp:
		return DirUp
	case core.ActionRight:
		return DirRight
	case core.ActionDown:
		return DirDown
	default:
		return DirNone
	}
}

// applyDifficulty retunes the movement interval for the current run's progress.
func (g *Game) applyDifficulty() {
	base := g.cfg.Timing.MoveInterval
	g.world.SetMoveInterval(g.difficulty.MoveInterval(base, g.world.FoodEaten(), g.world.Ticks()))
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:  g.world.FoodEaten(),
		Length: g.world.Len(),
		Runs:   g.world.Runs(),
		Paused: g.paused,
	}
}

// World exposes the underlying simulation for read-only inspection.
func (g *Game) World() *World {
	return g.world
}
