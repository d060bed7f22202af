package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridsnake/internal/platform/tui"
	"github.com/vovakirdan/gridsnake/internal/storage"
)

var (
	flagRunsLimit int
	flagRunsPlain bool
	flagRunsClear bool
)

var runsCmd = &cobra.Command{
	Use:   "runs [game]",
	Short: "Browse the run journal",
	Long: `Show every terminated run recorded in the journal (--db) with its cause,
final length, food eaten and ticks survived, plus totals.

The journal opens in an interactive table on a terminal and prints a
plain table otherwise.

Examples:
  gridsnake runs
  gridsnake runs --plain --limit 10
  gridsnake runs --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Number of runs for --plain output")
	runsCmd.Flags().BoolVar(&flagRunsPlain, "plain", false, "Print a plain table instead of the interactive viewer")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete every journaled run of the game")
}

func runRuns(_ *cobra.Command, args []string) {
	gameID := defaultGame
	if len(args) > 0 {
		gameID = args[0]
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening run journal: %v", err)
	}
	defer store.Close()

	if flagRunsClear {
		if err := store.ClearRuns(gameID); err != nil {
			store.Close()
			fail("%v", err)
		}
		fmt.Printf("Cleared the %s run journal.\n", gameID)
		return
	}

	width, height, termErr := term.GetSize(int(os.Stdout.Fd()))
	if !flagRunsPlain && termErr == nil && term.IsTerminal(int(os.Stdout.Fd())) {
		if err := tui.RunRunsViewer(store, gameID, width, height); err != nil {
			store.Close()
			fail("%v", err)
		}
		return
	}

	if err := printRuns(store, gameID, flagRunsLimit); err != nil {
		store.Close()
		fail("%v", err)
	}
}

func printRuns(store *storage.Store, gameID string, limit int) error {
	stats, err := store.Stats(gameID)
	if err != nil {
		return err
	}
	runs, err := store.RecentRuns(gameID, limit)
	if err != nil {
		return err
	}

	fmt.Printf("Run journal - %s\n", gameID)
	fmt.Println(tui.FormatStats(stats))
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Printf("Play 'gridsnake play %s' to start one.\n", gameID)
		return nil
	}

	t := tui.NewRunsTable(runs, len(runs))
	t.Blur()
	fmt.Println(t.View())
	return nil
}
