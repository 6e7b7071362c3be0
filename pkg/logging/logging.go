// Package logging owns scopelink's zerolog setup: a console stream on
// stderr scaled by repeated -v flags, mirrored into a log file under
// the state directory so a failed run can be inspected afterwards.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/scopelink/scopelink/pkg/paths"
)

// SetupLogger installs the global logger. Verbosity counts -v flags:
// 0 warns, 1 informs, 2 debugs with caller locations, 3 and up trace.
// The file sink is best effort; when it cannot be opened the console
// stream still works and says so.
func SetupLogger(verbosity int) {
	zerolog.SetGlobalLevel(levelFor(verbosity))

	sinks := []io.Writer{zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
	}}

	logPath := paths.New().LogFilePath()
	file, fileErr := openLogFile(logPath)
	if fileErr == nil {
		sinks = append(sinks, file)
	}

	ctx := zerolog.New(io.MultiWriter(sinks...)).With().Timestamp()
	if verbosity >= 2 {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()

	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", logPath).Msg("File logging disabled")
	}
	log.Debug().Int("verbosity", verbosity).Str("logFile", logPath).Msg("Logger configured")
}

// GetLogger returns a logger tagged with a component name, so every
// line says which part of scopelink wrote it.
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// LogCommand records a subprocess invocation before it runs.
func LogCommand(cmd string, args []string) {
	log.Debug().
		Str("command", cmd).
		Strs("args", args).
		Msg("Executing command")
}

func levelFor(verbosity int) zerolog.Level {
	switch verbosity {
	case 0:
		return zerolog.WarnLevel
	case 1:
		return zerolog.InfoLevel
	case 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
}
