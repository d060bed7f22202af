package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/platform/tui"
	"github.com/vovakirdan/gridsnake/internal/registry"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeGame   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own independent game. Terminated runs from
every session go to the server's run journal (--db), tagged with the SSH
user name.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.gridsnake/host_key

Examples:
  gridsnake serve                           # Listen on :23234 with auto-generated key
  gridsnake serve --ssh :2222               # Listen on port 2222
  gridsnake serve --host-key ./my_host_key  # Use specific host key
  gridsnake serve --difficulty hard         # Every session plays hard

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeGame, "game", defaultGame, "Game every session plays")
	addGameConfigFlags(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) {
	if !registry.Exists(flagServeGame) {
		fail("unknown game %q", flagServeGame)
	}
	if _, err := loadSnakeConfig(); err != nil {
		fail("%v", err)
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		GameID:      flagServeGame,
		TickRate:    flagFPS,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(cfg, newLogger(os.Stderr, "gridsnake-ssh"))
	if err != nil {
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting gridsnake SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fail("server: %v", err)
	}
}
