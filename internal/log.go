package internal

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

const logFileMode = 0o644

// LogParams contains the parameters for logging console output and errors.
// These will vary depending on whether launchday runs in report or tui mode.
// # Report mode
// - console output goes to stdout
// - error logs go to stderr
// # TUI mode
// - console output is discarded
// - error logs go to the configured log file
// .
type LogParams struct {
	ConsoleOut io.Writer
	ErrorOut   io.Writer
	Level      slog.Level
}

// NewLogger returns a text logger writing to the error output of params.
func NewLogger(params LogParams) *slog.Logger {
	errorOut := params.ErrorOut
	if errorOut == nil {
		errorOut = io.Discard
	}

	return slog.New(slog.NewTextHandler(errorOut, &slog.HandlerOptions{ //nolint:exhaustruct // defaults
		Level: params.Level,
	}))
}

// OpenLogFile opens the log file for appending. The caller closes it.
func OpenLogFile(path string) (*os.File, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFileMode)
	if err != nil {
		return nil, fmt.Errorf("openLogFile: %w", err)
	}

	return file, nil
}
