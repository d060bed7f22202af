// gridsnake is a turn-based snake on a fixed grid, played in the terminal
// or over SSH.
//
// Usage:
//
//	gridsnake list            - List available games
//	gridsnake play [game]     - Play in this terminal
//	gridsnake serve           - Start SSH server for remote play
//	gridsnake sim             - Replay a scripted session without a terminal
//	gridsnake runs [game]     - Browse the run journal
//
// Global flags:
//
//	--fps <rate>          - Set frame rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible food placement
//	--db <path>           - Set run journal path (default: ~/.gridsnake/runs.db)
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/gridsnake/internal/games/snake"
)

const defaultGame = "snake"

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	// Game config flags shared by play, serve and sim
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridsnake",
	Short: "Grid Snake - a turn-based snake for your terminal",
	Long: `Grid Snake moves a snake one cell per tick across a 10x10 arena.
Eat food to grow; leaving the arena or biting yourself starts a new run.

Available commands:
  list     - Show all available games
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  sim      - Replay a scripted session and print the result
  runs     - Browse the run journal

Examples:
  gridsnake play
  gridsnake play --difficulty hard
  gridsnake serve --ssh :2222
  gridsnake sim --moves UURRDD --ticks 20 --seed 7
  gridsnake runs`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if _, err := log.ParseLevel(flagLogLevel); err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gridsnake/runs.db", "Path to run journal database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(runsCmd)
}

// addGameConfigFlags registers --config and --difficulty on cmd.
func addGameConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom snake config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
