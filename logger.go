package anchormark

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled reports false, so attribute
// values passed to Debug or Info are never formatted.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// current is swapped atomically; the CLI installs a handler while paths
// are being annotated on the same package.
var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(newNopLogger())
}

// SetLogger installs l as the destination for anchormark diagnostics.
// Nothing is logged until a logger is installed; nil silences output again.
//
// Records emitted:
//   - [slog.LevelDebug]: one record per annotated path with its anchor and
//     handle counts, one per skipped selection item, and the config file
//     the CLI loaded
//   - [slog.LevelInfo]: the totals at the end of [Run] and each output
//     file written by the command
//
// The command's --verbose flag does the equivalent of
//
//	anchormark.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	current.Store(l)
}

// Logger returns the installed logger. The scene loader and the command's
// output writer log through it too, so one SetLogger call covers a whole
// run.
func Logger() *slog.Logger {
	return current.Load()
}
