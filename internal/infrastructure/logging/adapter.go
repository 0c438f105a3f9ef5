// Package logging adapts the zap based logger in pkg/logger to the port.Logger
// interface used by the application layer.
package logging

import (
	"context"

	"github.com/hapkiduki/measure-go/internal/application/port"
	"github.com/hapkiduki/measure-go/pkg/logger"
)

// Adapter adapts the logger.Logger to the port.Logger interface.
type Adapter struct {
	*logger.Logger
}

var _ port.Logger = (*Adapter)(nil)

// NewAdapter wraps log. A nil log is replaced by a no-op logger.
func NewAdapter(log *logger.Logger) *Adapter {
	if log == nil {
		log = logger.NewNop()
	}
	return &Adapter{log}
}

// Nop returns an adapter that discards every entry.
func Nop() *Adapter {
	return &Adapter{logger.NewNop()}
}

// Debug implements port.Logger.
func (l *Adapter) Debug(msg string, keysAndValues ...any) {
	l.Logger.Debug(msg, keysAndValues...)
}

// Info implements port.Logger.
func (l *Adapter) Info(msg string, keysAndValues ...any) {
	l.Logger.Info(msg, keysAndValues...)
}

// Warn implements port.Logger.
func (l *Adapter) Warn(msg string, keysAndValues ...any) {
	l.Logger.Warn(msg, keysAndValues...)
}

// Error implements port.Logger.
func (l *Adapter) Error(msg string, keysAndValues ...any) {
	l.Logger.Error(msg, keysAndValues...)
}

// With implements port.Logger.
func (l *Adapter) With(keysAndValues ...any) port.Logger {
	return &Adapter{l.Logger.With(keysAndValues...)}
}

// WithContext implements port.Logger.
func (l *Adapter) WithContext(ctx context.Context) port.Logger {
	return &Adapter{l.Logger.WithContext(ctx)}
}
