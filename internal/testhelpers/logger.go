package testhelpers

import (
	"io"
	"log/slog"

	"github.com/myrjola/fieldprep/internal/logging"
)

// NewLogger creates a debug-level logger writing to logSink, typically a [NewWriter].
func NewLogger(logSink io.Writer) *slog.Logger {
	return logging.NewLogger(logSink, slog.LevelDebug)
}
