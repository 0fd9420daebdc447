package errors

import (
	"sync"

	"go.uber.org/zap"
)

var (
	defaultLoggerOnce sync.Once
	defaultLogger     *zap.Logger
)

func fallbackLogger() *zap.Logger {
	defaultLoggerOnce.Do(func() {
		logger, err := zap.NewDevelopment()
		if err != nil {
			logger = zap.NewNop()
		}
		defaultLogger = logger
	})
	return defaultLogger
}

// LogHandler is a Handler that writes diagnostics through a zap logger.
// This is the default handler; there is no end-user-facing error surface,
// only developer-console diagnostics.
type LogHandler struct {
	// Logger is the destination logger. A zero LogHandler logs through a
	// development logger writing to stderr.
	Logger *zap.Logger
}

// HandleError logs a MotionError at warn level.
func (h *LogHandler) HandleError(err *MotionError) {
	if err == nil {
		return
	}
	logger := h.Logger
	if logger == nil {
		logger = fallbackLogger()
	}
	fields := []zap.Field{
		zap.String("op", err.Op),
		zap.Stringer("kind", err.Kind),
		zap.Error(err.Err),
	}
	if err.Key != nil {
		fields = append(fields, zap.Any("key", err.Key))
	}
	logger.Warn("animation step failed", fields...)
}
