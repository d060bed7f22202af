// Package registry maps game IDs to factories. Games register in init(), so
// the CLI and the SSH server can create them without importing each one.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// Game is the contract between a simulation and the terminal platform.
// Implementations stay free of Bubble Tea; the platform maps keys to
// actions, drives Step at a fixed frame rate and paints the Screen.
type Game interface {
	// ID is the stable identifier used on the command line and in the run journal.
	ID() string

	Title() string

	// Reset starts a fresh session using the screen size and RNG seed in cfg.
	Reset(cfg core.RuntimeConfig)

	// Step advances one frame. StepResult.Ended is set on the frame a run
	// terminated.
	Step(in core.InputFrame) core.StepResult

	// Render draws into dst.
	Render(dst *core.Screen)

	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a factory. It panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns every registered game sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
