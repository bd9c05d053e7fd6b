// Package logging provides the leveled logger the bootstrapper reports
// through: a zerolog-backed console sink for the binary and an in-memory
// recorder for tests.
package logging

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/dkoosis/sqboot/pkg/render"
)

// Verbosity is the effective log verbosity of a run.
type Verbosity int

const (
	Info Verbosity = iota
	Debug
)

func (v Verbosity) String() string {
	switch v {
	case Debug:
		return "debug"
	default:
		return "info"
	}
}

// Logger receives progress, warnings and validation errors. Errors are
// reported, not returned, so callers can accumulate several before failing.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Console writes leveled messages to a writer via zerolog. Level labels are
// styled with the render theme.
type Console struct {
	zl zerolog.Logger
}

// NewConsole creates a console logger at Info verbosity.
func NewConsole(w io.Writer, theme render.Theme) *Console {
	cw := zerolog.ConsoleWriter{
		Out:         w,
		NoColor:     true,
		PartsOrder:  []string{zerolog.LevelFieldName, zerolog.MessageFieldName},
		FormatLevel: levelFormatter(theme),
	}
	return &Console{zl: zerolog.New(cw).Level(zerolog.InfoLevel)}
}

// SetVerbosity changes which messages are emitted. Debug messages are
// dropped at Info verbosity.
func (c *Console) SetVerbosity(v Verbosity) {
	level := zerolog.InfoLevel
	if v == Debug {
		level = zerolog.DebugLevel
	}
	c.zl = c.zl.Level(level)
}

func (c *Console) Debugf(format string, args ...any) {
	c.zl.Debug().Msgf(format, args...)
}

func (c *Console) Infof(format string, args ...any) {
	c.zl.Info().Msgf(format, args...)
}

func (c *Console) Warnf(format string, args ...any) {
	c.zl.Warn().Msgf(format, args...)
}

func (c *Console) Errorf(format string, args ...any) {
	c.zl.Error().Msgf(format, args...)
}

func levelFormatter(theme render.Theme) zerolog.Formatter {
	return func(i interface{}) string {
		lvl, _ := i.(string)
		return theme.Level(lvl)
	}
}
