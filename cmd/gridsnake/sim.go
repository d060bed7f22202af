package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
	"github.com/vovakirdan/gridsnake/internal/platform/tui"
)

var (
	flagMoves string
	flagTicks int
	flagColor bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Replay a scripted session and print the final grid",
	Long: `Run the snake without a terminal UI. Each letter of --moves steers the
snake before one movement tick: U, D, L, R set a direction and '.' keeps
the current one. Time advances one movement interval per tick, so food
spawns exactly as it would in play. Terminated runs are printed as they
happen; the final grid and state follow.

Use --log-level debug to log every tick to stderr.

Examples:
  gridsnake sim --moves UUUU
  gridsnake sim --moves RRRRRRRR --seed 7
  gridsnake sim --moves U --ticks 40 --color`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagMoves, "moves", "", "Steering script: one of U, D, L, R or '.' per tick")
	simCmd.Flags().IntVar(&flagTicks, "ticks", 0, "Movement ticks to run (default: length of --moves)")
	simCmd.Flags().BoolVar(&flagColor, "color", false, "Render the final grid with colors")
	addGameConfigFlags(simCmd)
}

func runSim(_ *cobra.Command, _ []string) {
	cfg, err := loadSnakeConfig()
	if err != nil {
		fail("%v", err)
	}
	logger := newLogger(os.Stderr, "gridsnake-sim")

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	world := snake.NewWorld(snake.SettingsFromConfig(cfg), seed)
	difficulty := config.NewDifficultyManager(cfg.Difficulty)
	base := cfg.Timing.MoveInterval

	snake.Replay(world, flagMoves, flagTicks, func(tick int, res snake.TickResult) {
		if res.Ended != nil {
			fmt.Printf("tick %d: run ended (%s at %d,%d) length %d food %d\n",
				tick, res.Ended.Cause, res.Ended.At.X, res.Ended.At.Y, res.Ended.Length, res.Ended.FoodEaten)
		}
		world.SetMoveInterval(difficulty.MoveInterval(base, world.FoodEaten(), world.Ticks()))
		logger.Debug("tick",
			"n", tick,
			"head", world.Snapshot().Head,
			"dir", world.Direction(),
			"length", world.Len(),
			"grew", res.Grew,
			"spawned", res.Spawned,
		)
	})

	w, h := snake.RequiredSize(world.Grid())
	screen := core.NewScreen(w, h)
	snake.RenderWorld(screen, world, false)
	if flagColor {
		fmt.Println(tui.RenderScreen(screen))
	} else {
		fmt.Println(screen.String())
	}

	s := world.Snapshot()
	fmt.Printf("seed=%d ticks=%d length=%d food=%d runs=%d head=(%d,%d) dir=%s\n",
		seed, s.Ticks, s.Length, s.FoodEaten, s.Runs, s.Head.X, s.Head.Y, s.Dir)
}
