// Package logging builds the process logger and routes the standard log
// package through it.
package logging

import (
	"io"
	"log"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// New returns a timestamped zerolog logger writing to w at the given level.
func New(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Nop(), errors.Wrapf(err, "unknown log level %q", level)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

// RedirectStdLog sends the standard log package output to logger at info
// level.
func RedirectStdLog(logger zerolog.Logger) {
	log.SetFlags(0)
	log.SetOutput(stdWriter{logger: logger})
}

type stdWriter struct {
	logger zerolog.Logger
}

func (w stdWriter) Write(p []byte) (int, error) {
	w.logger.Info().Msg(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
