package affine

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled reports false, so callers that
// check it never build their attributes.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr holds the active logger. It is read on every singular
// inversion, possibly from many goroutines at once.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger installs the logger used by affine. The default discards
// everything; nil restores that default.
//
// SetLogger is safe to call while other goroutines are transforming or
// inverting matrices.
//
// affine only logs at [slog.LevelDebug]: one record each time Invert
// rejects a matrix, carrying the determinant and the coefficients.
//
// Example:
//
//	affine.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the logger installed by SetLogger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// logSingular records a rejected inversion. The attributes are only
// built when debug logging is on, keeping Invert allocation-free by default.
func logSingular(reason string, det float64, m Matrix) {
	l := Logger()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.LogAttrs(context.Background(), slog.LevelDebug, "affine: "+reason,
		slog.Float64("det", det),
		slog.String("matrix", m.String()),
	)
}
