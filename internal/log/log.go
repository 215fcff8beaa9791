package log

import (
	"io"
	"log/slog"
)

// Level maps CLI switches to a slog level: debug wins over verbose, default is warn.
func Level(debug, verbose bool) slog.Level {
	switch {
	case debug:
		return slog.LevelDebug
	case verbose:
		return slog.LevelInfo
	}
	return slog.LevelWarn
}

// Setup installs a text logger writing to w as the slog default and returns it.
func Setup(w io.Writer, debug, verbose bool) *slog.Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: Level(debug, verbose)})
	l := slog.New(h)
	slog.SetDefault(l)
	return l
}
