package departures

import (
	"log/slog"
	"sync/atomic"
)

// silent discards every record. It is active until the host program
// calls SetLogger.
var silent = slog.New(slog.DiscardHandler)

var boardLogger atomic.Pointer[slog.Logger]

func init() {
	boardLogger.Store(silent)
}

// SetLogger routes diagnostics from parsing, rendering and the output
// sinks to l. Passing nil silences them again.
//
// Parse logs each record it accepts and the display line built from it at
// [slog.LevelDebug]. Render reports the finished canvas, and every sink the
// bytes it wrote, at [slog.LevelInfo]. Layout problems the board survives
// are logged at [slog.LevelWarn]: a line wider than the panel, glyphs whose
// descent reaches the rule below them, and blocks past the bottom edge.
//
// The departureboard command installs a text handler on stderr:
//
//	departures.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	boardLogger.Store(l)
}

// Logger returns the logger set by SetLogger. The text and output packages
// log through it too. It may be called while SetLogger runs.
func Logger() *slog.Logger {
	return boardLogger.Load()
}
