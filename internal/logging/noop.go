package logging

import "context"

// NoOpLogger is a logger that discards all logs (useful for testing)
type NoOpLogger struct{}

// NewNoOpLogger creates a new no-op logger
func NewNoOpLogger() Logger {
	return &NoOpLogger{}
}

// Debug discards the message.
func (n *NoOpLogger) Debug(msg string, fields ...interface{}) {}

// Info discards the message.
func (n *NoOpLogger) Info(msg string, fields ...interface{}) {}

// Warn discards the message.
func (n *NoOpLogger) Warn(msg string, fields ...interface{}) {}

// Error discards the message.
func (n *NoOpLogger) Error(msg string, fields ...interface{}) {}

// InfoContext discards the message.
func (n *NoOpLogger) InfoContext(ctx context.Context, msg string, fields ...interface{}) {}

// ErrorContext discards the message.
func (n *NoOpLogger) ErrorContext(ctx context.Context, msg string, fields ...interface{}) {}

// WithTraceID returns the logger unchanged.
func (n *NoOpLogger) WithTraceID(traceID string) Logger { return n }

// WithComponent returns the logger unchanged.
func (n *NoOpLogger) WithComponent(component string) Logger { return n }
