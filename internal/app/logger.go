package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/classic-arcade/internal/config"
)

// NewLogger builds the process logger. Verbose lowers the level to debug.
func NewLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "arcade",
		ReportTimestamp: true,
	})
}

// OpenLogFile opens the append-only log in the XDG state directory.
// The TUI owns the terminal, so logs go to a file.
func OpenLogFile() (*os.File, error) {
	path, err := xdg.StateFile(filepath.Join(config.AppName, "arcade.log"))
	if err != nil {
		return nil, fmt.Errorf("app: log path: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("app: open log %s: %w", path, err)
	}
	return f, nil
}
