// Package cli implements the affine command-line interface.
//
// The CLI composes a transform chain from a TOML file (--chain) and
// repeated --op flags, then prints it, maps points through it, or
// inverts it. It is built with cobra and logs through
// charmbracelet/log, which is also installed as the affine library's
// slog handler.
//
// # Commands
//
//   - show:   print the composed matrix
//   - map:    map X,Y points given as arguments or on stdin
//   - invert: print the inverse matrix, failing if it is singular
package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/charmbracelet/log"

	"github.com/gogpu/affine"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "affine",
	})
}

// installLogger routes the affine package's slog output through l.
func installLogger(l *log.Logger) {
	affine.SetLogger(slog.New(l))
}

// ctxKey is the type for context keys used in this package.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
