// ABOUTME: Structured logging setup for the CLI.
// ABOUTME: Wraps zerolog with a console writer on stderr.

package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a logger writing human-readable output to stderr. Verbose
// enables debug-level events (cache hits, per-upload details).
func New(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
