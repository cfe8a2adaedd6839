// Package logging configures the zerolog logger shared by the CLI, the
// controller and the HTTP server.
//
// Loggers are passed explicitly through constructors or carried on a
// context.Context:
//
//	log := logging.New(logging.Config{Level: "debug", Format: "console"})
//	ctx := logging.WithLogger(context.Background(), &log)
//	logging.FromContext(ctx).Info().Str("source", ref).Msg("fetching catalog")
package logging

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/x/term"
	"github.com/rs/zerolog"
)

type Config struct {
	// Level is the minimum level: trace, debug, info, warn, error, disabled.
	Level string
	// Format is console, json, or auto (console when Output is a terminal).
	Format string
	// Output defaults to os.Stderr.
	Output io.Writer
	// NoColor disables colors in console output.
	NoColor bool
}

// Nop discards everything.
var Nop = zerolog.Nop()

func New(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	var w io.Writer = out
	if resolveFormat(cfg.Format, out) == "console" {
		w = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.Kitchen,
			NoColor:    cfg.NoColor || os.Getenv("NO_COLOR") != "",
		}
	}

	level := ParseLevel(cfg.Level)
	logger := zerolog.New(w).Level(level).With().Timestamp().Logger()
	if level <= zerolog.DebugLevel {
		logger = logger.With().Caller().Logger()
	}
	return logger
}

func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "":
		return zerolog.InfoLevel
	case "warning":
		return zerolog.WarnLevel
	case "none", "off":
		return zerolog.Disabled
	}
	l, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.InfoLevel
	}
	return l
}

func resolveFormat(format string, out io.Writer) string {
	switch f := strings.ToLower(format); f {
	case "console", "pretty":
		return "console"
	case "json":
		return "json"
	}
	if f, ok := out.(*os.File); ok && term.IsTerminal(f.Fd()) {
		return "console"
	}
	return "json"
}

type contextKey int

const loggerKey contextKey = iota

func WithLogger(ctx context.Context, logger *zerolog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the logger stored on ctx, or Nop when there is none.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(loggerKey).(*zerolog.Logger); ok && logger != nil {
			return logger
		}
	}
	return &Nop
}
