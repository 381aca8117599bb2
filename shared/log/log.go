package log

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel defines the severity level for log messages.
type LogLevel string

const (
	// LogInfo is used for general informational messages.
	LogInfo LogLevel = "info"

	// LogWarn is used for potentially harmful situations.
	LogWarn LogLevel = "warn"

	// LogError is used for error events that might still allow the application to continue running.
	LogError LogLevel = "error"

	// LogDebug is used for debugging messages with detailed internal information.
	LogDebug LogLevel = "debug"
)

// ParseLevel converts a configuration string into a LogLevel.
// Matching is case-insensitive; an empty string means info.
func ParseLevel(s string) (LogLevel, error) {
	switch lvl := LogLevel(strings.ToLower(strings.TrimSpace(s))); lvl {
	case "":
		return LogInfo, nil
	case LogInfo, LogWarn, LogError, LogDebug:
		return lvl, nil
	default:
		return "", fmt.Errorf("unknown log level %q", s)
	}
}

// ZapLevel maps l onto the zap level of the same name.
func (l LogLevel) ZapLevel() zapcore.Level {
	switch l {
	case LogDebug:
		return zap.DebugLevel
	case LogWarn:
		return zap.WarnLevel
	case LogError:
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

// Emit writes msg at level with the given structured fields.
func Emit(logger *zap.Logger, level LogLevel, msg string, fields map[string]interface{}) {
	zfields := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zfields = append(zfields, zap.Any(k, v))
	}

	switch level {
	case LogInfo:
		logger.Info(msg, zfields...)
	case LogWarn:
		logger.Warn(msg, zfields...)
	case LogError:
		logger.Error(msg, zfields...)
	case LogDebug:
		logger.Debug(msg, zfields...)
	default:
		logger.Info(msg, zfields...)
	}
}

// NewConsoleLogger builds a human-readable logger writing to w at level.
func NewConsoleLogger(w io.Writer, level LogLevel) *zap.Logger {
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(zapcore.AddSync(w)),
		level.ZapLevel(),
	)
	return zap.New(consoleCore)
}

// Sync flushes logger, reporting failures through the logger itself.
func Sync(logger *zap.Logger) {
	if err := logger.Sync(); err != nil {
		logger.Warn("failed to sync logger", zap.Error(err))
	}
}
