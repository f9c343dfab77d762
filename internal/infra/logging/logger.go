// Where: internal/infra/logging/logger.go
// What: Structured diagnostic logger.
// Why: Keep debug traces on stderr, separate from the user-facing console output.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/poruru-code/keyprops/internal/constants"
	"github.com/poruru-code/keyprops/internal/infra/envutil"
	"github.com/poruru-code/keyprops/internal/meta"
	"github.com/rs/zerolog"
)

// Config captures options for building a logger.
type Config struct {
	Level   string    // optional level ("debug", "info", ...); KEYPROPS_LOG_LEVEL otherwise
	Verbose bool      // forces debug level
	Output  io.Writer // defaults to os.Stderr
	JSON    bool      // raw JSON lines instead of the console writer
}

// New builds a zerolog logger. The default level is warn so normal runs stay quiet.
func New(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if !cfg.JSON {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen, NoColor: !isTTY(out)}
	}
	return zerolog.New(out).Level(resolveLevel(cfg)).With().
		Timestamp().
		Str("app", meta.AppName).
		Logger()
}

// Nop returns a logger that discards everything.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

func resolveLevel(cfg Config) zerolog.Level {
	if cfg.Verbose {
		return zerolog.DebugLevel
	}
	raw := strings.TrimSpace(cfg.Level)
	if raw == "" {
		raw = envutil.Get(constants.EnvLogLevel)
	}
	if raw != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(raw)); err == nil && parsed != zerolog.NoLevel {
			return parsed
		}
	}
	return zerolog.WarnLevel
}
