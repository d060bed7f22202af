package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// newLogger builds a timestamped logger at the --log-level threshold.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if level, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(level)
	}
	return logger
}

// newFileLogger logs to ~/.gridsnake/gridsnake.log so output does not tear
// the alternate screen. It falls back to discarding logs when the file
// cannot be opened. The returned func closes the file.
func newFileLogger(prefix string) (*log.Logger, func()) {
	home, err := os.UserHomeDir()
	if err != nil {
		return newLogger(io.Discard, prefix), func() {}
	}

	dir := filepath.Join(home, ".gridsnake")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return newLogger(io.Discard, prefix), func() {}
	}

	f, err := os.OpenFile(filepath.Join(dir, "gridsnake.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return newLogger(io.Discard, prefix), func() {}
	}
	return newLogger(f, prefix), func() { f.Close() }
}
