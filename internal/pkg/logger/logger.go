// Package logger adapts zerolog to the ports.Logger interface.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// ZeroLogger routes structured log events to stderr. Verbose mode lowers the
// level to debug; otherwise only warnings and errors are emitted so command
// output stays clean.
type ZeroLogger struct {
	log zerolog.Logger
}

// New creates a ZeroLogger.
func New(verbose bool) *ZeroLogger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
	return &ZeroLogger{log: zl}
}

func (l *ZeroLogger) Debug(msg string, fields map[string]interface{}) {
	l.log.Debug().Fields(fields).Msg(msg)
}

func (l *ZeroLogger) Info(msg string, fields map[string]interface{}) {
	l.log.Info().Fields(fields).Msg(msg)
}

func (l *ZeroLogger) Warn(msg string, fields map[string]interface{}) {
	l.log.Warn().Fields(fields).Msg(msg)
}

func (l *ZeroLogger) Error(msg string, err error, fields map[string]interface{}) {
	l.log.Error().Err(err).Fields(fields).Msg(msg)
}
