package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// FrameDuration returns the wall-clock time covered by one frame.
func (c RuntimeConfig) FrameDuration() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = DefaultConfig().TickRate
	}
	return time.Second / time.Duration(rate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score  int  // Food eaten in the current run
	Length int  // Current snake length
	Runs   int  // Runs terminated so far in this session
	Paused bool // Whether the game is paused
}

// RunSummary describes a run that just terminated.
type RunSummary struct {
	Cause     string // "wall" or "self"
	Length    int    // Snake length at termination
	FoodEaten int
	Ticks     int // Movement ticks survived
}

// StepResult is returned by Game.Step() after each frame.
// Ended is non-nil only on the frame a run terminated.
type StepResult struct {
	State GameState
	Ended *RunSummary
}
