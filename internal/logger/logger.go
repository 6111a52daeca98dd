// Package logger configures zerolog for a Lambda runtime, where anything
// written to stdout lands in CloudWatch Logs as one JSON document per line.
package logger

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type loggerKey struct{}

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return filepath.Base(file) + ":" + strconv.Itoa(line)
	}
}

// New builds a logger writing to w at the given level. Unknown or empty levels
// fall back to info.
func New(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).With().Timestamp().Caller().Logger().Level(lvl)
}

// Setup installs a stdout logger as the global zerolog logger and returns it.
func Setup(level string) zerolog.Logger {
	l := New(os.Stdout, level)
	log.Logger = l
	return l
}

// Ctx returns the logger stored in ctx, or the global logger.
func Ctx(ctx context.Context) *zerolog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey{}).(*zerolog.Logger); ok && l != nil {
			return l
		}
	}
	return &log.Logger
}

func WithLogger(ctx context.Context, logger *zerolog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}
