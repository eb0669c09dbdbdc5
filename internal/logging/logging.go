// Package logging builds the zerolog logger shared by the CLI, TUI and server,
// and adapts it to the engine's printf-style Logger interface.
package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options configure New.
type Options struct {
	Level  string // debug | info | warn | error; unknown values mean info
	Pretty bool   // human-readable console output instead of JSON
}

// New returns a timestamped zerolog logger writing to w.
func New(w io.Writer, opts Options) zerolog.Logger {
	if opts.Pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).
		Level(ParseLevel(opts.Level)).
		With().
		Timestamp().
		Logger()
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// EngineLogger adapts a zerolog logger to calculation.Logger.
type EngineLogger struct {
	logger zerolog.Logger
}

// NewEngineLogger wraps l, tagging every event with component=engine.
func NewEngineLogger(l zerolog.Logger) *EngineLogger {
	return &EngineLogger{logger: l.With().Str("component", "engine").Logger()}
}

func (e *EngineLogger) Debugf(format string, args ...any) {
	e.logger.Debug().Msg(fmt.Sprintf(format, args...))
}

func (e *EngineLogger) Infof(format string, args ...any) {
	e.logger.Info().Msg(fmt.Sprintf(format, args...))
}

func (e *EngineLogger) Warnf(format string, args ...any) {
	e.logger.Warn().Msg(fmt.Sprintf(format, args...))
}

func (e *EngineLogger) Errorf(format string, args ...any) {
	e.logger.Error().Msg(fmt.Sprintf(format, args...))
}
