// Package log provides a small facade over zap for per-service loggers.
//
// Every subsystem (catalogue walker, GDC client, archive fetcher, ...)
// acquires a named logger via ForService and emits through the usual
// level helpers. Verbosity is set once at the CLI boundary from the
// --verbosity flag and applies to all loggers.
package log

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger emits formatted log lines for one named service.
type Logger struct {
	sugar *zap.SugaredLogger
}

var (
	mu      sync.Mutex
	level   = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	root    *zap.Logger
	loggers = map[string]*Logger{}
)

func rootLogger() *zap.Logger {
	if root == nil {
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = level
		cfg.DisableStacktrace = true
		logger, err := cfg.Build()
		if err != nil {
			logger = zap.NewNop()
		}
		root = logger
	}
	return root
}

// ForService returns the logger for the given service name, creating it
// on first use. Loggers are cached; repeated calls return the same value.
func ForService(name string) *Logger {
	if name == "" {
		name = "unknown"
	}
	mu.Lock()
	defer mu.Unlock()
	if l, ok := loggers[name]; ok {
		return l
	}
	l := &Logger{sugar: rootLogger().Named(name).Sugar()}
	loggers[name] = l
	return l
}

// SetVerbosity maps a CLI verbosity choice (ERROR, WARNING, INFO, DEBUG)
// onto the global log level.
func SetVerbosity(verbosity string) error {
	switch strings.ToUpper(verbosity) {
	case "ERROR":
		level.SetLevel(zapcore.ErrorLevel)
	case "WARNING":
		level.SetLevel(zapcore.WarnLevel)
	case "INFO":
		level.SetLevel(zapcore.InfoLevel)
	case "DEBUG":
		level.SetLevel(zapcore.DebugLevel)
	default:
		return fmt.Errorf("invalid verbosity %q (expected ERROR, WARNING, INFO or DEBUG)", verbosity)
	}
	return nil
}

func (l *Logger) Debugf(format string, args ...any) { l.sugar.Debugf(format, args...) }
func (l *Logger) Infof(format string, args ...any)  { l.sugar.Infof(format, args...) }
func (l *Logger) Warnf(format string, args ...any)  { l.sugar.Warnf(format, args...) }
func (l *Logger) Errorf(format string, args ...any) { l.sugar.Errorf(format, args...) }
