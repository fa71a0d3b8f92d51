package logger

import (
	"testing"
)

// TestLogger forwards log output to the test log so failures keep
// their surrounding context.
type TestLogger struct {
	T *testing.T
}

// NewTestLogger creates a logger bound to the given test.
func NewTestLogger(t *testing.T) Logger {
	return &TestLogger{T: t}
}

func (l *TestLogger) Debug(msg string) {
	if l.T != nil {
		l.T.Logf("[DEBUG] %s", msg)
	}
}

func (l *TestLogger) Info(msg string) {
	if l.T != nil {
		l.T.Logf("[INFO] %s", msg)
	}
}

func (l *TestLogger) Warn(msg string) {
	if l.T != nil {
		l.T.Logf("[WARN] %s", msg)
	}
}

func (l *TestLogger) Error(msg string) {
	if l.T != nil {
		l.T.Logf("[ERROR] %s", msg)
	}
}

func (l *TestLogger) Fatal(msg string) {
	if l.T != nil {
		l.T.Logf("[FATAL] %s", msg)
	}
}

func (l *TestLogger) WithField(key string, value interface{}) Logger {
	return l
}

func (l *TestLogger) WithFields(fields map[string]interface{}) Logger {
	return l
}
