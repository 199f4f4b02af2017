// Package log provides the generator's structured logger: a thin
// sync.Once-guarded wrapper around zap defaulting to a no-op logger, the
// same shape used for the ambient logger this code was adapted from.
package log

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
	mu         sync.Mutex
)

// Logger returns the package's logger instance. Defaults to a no-op
// logger until SetLogger is called.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		mu.Lock()
		defer mu.Unlock()
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// SetLogger replaces the package logger. Passing nil restores the no-op
// default.
func SetLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	loggerOnce.Do(func() {})
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}
