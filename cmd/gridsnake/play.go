package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
	"github.com/vovakirdan/gridsnake/internal/platform/tui"
	"github.com/vovakirdan/gridsnake/internal/registry"
	"github.com/vovakirdan/gridsnake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing in this terminal. The game defaults to snake.

Controls:
  Arrows/WASD/HJKL - Steer (the snake waits for the first direction)
  P/Esc            - Pause
  R                - Restart the run
  ?                - Show all keys
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Starts slow and speeds up; reversing into the body is ignored
  normal - Starts at 30% speed-up and progresses to max
  hard   - Starts at 70% speed-up and progresses to max
  fixed  - Constant speed

Logs go to ~/.gridsnake/gridsnake.log while the game owns the terminal.

Examples:
  gridsnake play
  gridsnake play --difficulty hard
  gridsnake play --config ./my-snake.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	addGameConfigFlags(playCmd)
}

// loadSnakeConfig validates the config flags, hands them to the snake
// package for registry-created games and returns the effective config.
func loadSnakeConfig() (config.SnakeConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.SnakeConfig{}, err
	}

	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return config.SnakeConfig{}, err
	}
	config.ApplySnakePreset(&cfg, preset)

	snake.SetConfigPath(flagConfig)
	snake.SetDifficultyPreset(flagDifficulty)
	return cfg, nil
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := defaultGame
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'gridsnake list' to see available games.")
		os.Exit(1)
	}

	if _, err := loadSnakeConfig(); err != nil {
		fail("%v", err)
	}

	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	game, err := registry.Create(gameID)
	if err != nil {
		fail("creating game: %v", err)
	}

	logger, closeLog := newFileLogger("gridsnake")
	defer closeLog()

	opts := tui.Options{
		Logger:  logger,
		Session: currentUser(),
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run journal: %v\n", err)
		logger.Warn("could not open run journal", "error", err)
	} else {
		opts.Journal = store
	}

	logger.Info("session started", "game", gameID, "seed", cfg.Seed, "fps", cfg.TickRate)
	runErr := tui.Run(game, cfg, opts)

	if store != nil {
		store.Close()
	}
	logger.Info("session ended", "game", gameID)

	if runErr != nil {
		closeLog()
		fail("running game: %v", runErr)
	}
}

func currentUser() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return os.Getenv("USER")
}
