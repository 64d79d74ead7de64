package utils

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// LogLevelEnvVar is the name of the environment variable which sets the
// minimum level of the emitted log messages.
const LogLevelEnvVar = "IRCSTREAM_LOG_LEVEL"

var (
	loggers     = make(map[string]*Logger)
	loggersLock sync.Mutex
	root        zerolog.Logger
)

func init() {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	root = zerolog.New(output).With().Timestamp().Logger()
	level, ok := ParseLevel(os.Getenv(LogLevelEnvVar))
	if !ok {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
}

// Logger is a named logger. Use GetLogger to obtain one.
type Logger struct {
	l zerolog.Logger
}

// GetLogger returns a logger with the given name. Loggers are cached so
// calling this function multiple times with the same name returns the same
// logger.
func GetLogger(name string) *Logger {
	loggersLock.Lock()
	defer loggersLock.Unlock()
	if _, ok := loggers[name]; !ok {
		loggers[name] = &Logger{
			l: root.With().Str("component", name).Logger(),
		}
	}
	return loggers[name]
}

func (l *Logger) Debugf(format string, v ...interface{}) {
	l.l.Debug().Msgf(format, v...)
}

func (l *Logger) Printf(format string, v ...interface{}) {
	l.l.Info().Msgf(format, v...)
}

func (l *Logger) Print(v ...interface{}) {
	l.l.Info().Msg(fmt.Sprint(v...))
}

func (l *Logger) Errorf(format string, v ...interface{}) {
	l.l.Error().Msgf(format, v...)
}

// SetLevel changes the minimum level of the messages emitted by all loggers.
func SetLevel(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
}

// ParseLevel converts a level name such as "debug" into a zerolog level. The
// second return value is false if the name is empty or unknown.
func ParseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}
