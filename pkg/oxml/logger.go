package oxml

import (
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	globalLogger      *logrus.Logger
	globalLoggerMutex sync.RWMutex
	globalLoggerOnce  sync.Once

	// silenced holds the writer a logger had before level "off" discarded it.
	silenced      = make(map[*logrus.Logger]io.Writer)
	silencedMutex sync.Mutex
)

func initGlobalLogger() {
	globalLoggerOnce.Do(func() {
		logger := logrus.New()
		logger.SetOutput(os.Stderr)
		configureLogger(logger, GetGlobalConfig())

		globalLoggerMutex.Lock()
		if globalLogger == nil {
			globalLogger = logger
		}
		globalLoggerMutex.Unlock()
	})
}

// NewLogger creates a logrus logger writing to w, configured from config.
// A nil writer discards output.
func NewLogger(w io.Writer, config *Config) *logrus.Logger {
	if w == nil {
		w = io.Discard
	}
	logger := logrus.New()
	logger.SetOutput(w)
	configureLogger(logger, config)
	return logger
}

func configureLogger(logger *logrus.Logger, config *Config) {
	if config == nil {
		config = DefaultConfig()
	}

	if config.LogFormat == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			DisableColors: true,
			FullTimestamp: true,
		})
	}

	silencedMutex.Lock()
	defer silencedMutex.Unlock()

	if config.LogLevel == "off" {
		if logger.Out != io.Discard {
			silenced[logger] = logger.Out
		}
		logger.SetOutput(io.Discard)
		logger.SetLevel(logrus.PanicLevel)
		return
	}
	if out, ok := silenced[logger]; ok {
		delete(silenced, logger)
		if logger.Out == io.Discard {
			logger.SetOutput(out)
		}
	}
	logger.SetLevel(parseLogLevel(config.LogLevel))
}

func parseLogLevel(levelStr string) logrus.Level {
	switch levelStr {
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel // Default to info
	}
}

// SetLogger replaces the package logger
func SetLogger(logger *logrus.Logger) {
	initGlobalLogger()
	globalLoggerMutex.Lock()
	globalLogger = logger
	globalLoggerMutex.Unlock()
}

// GetLogger returns the package logger
func GetLogger() *logrus.Logger {
	initGlobalLogger()
	globalLoggerMutex.RLock()
	defer globalLoggerMutex.RUnlock()
	return globalLogger
}

func WithField(key string, value interface{}) *logrus.Entry {
	return GetLogger().WithField(key, value)
}

func WithFields(fields logrus.Fields) *logrus.Entry {
	return GetLogger().WithFields(fields)
}

// UpdateLoggerFromConfig updates the package logger based on the current global configuration.
// Leaving level "off" restores the writer the logger had before.
func UpdateLoggerFromConfig() {
	configureLogger(GetLogger(), GetGlobalConfig())
}
