package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New builds a logger writing to w. format is "console" or "json";
// unknown levels fall back to info.
func New(level, format string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	out := w
	if format != "json" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: true}
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}
