package testutil

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
)

// TestLogger captures slog output as JSON lines for assertions
type TestLogger struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// LogEntry is one decoded log line
type LogEntry map[string]interface{}

// NewTestLogger returns a capture buffer and a debug-level logger writing to it
func NewTestLogger() (*TestLogger, *slog.Logger) {
	l := &TestLogger{}
	return l, slog.New(slog.NewJSONHandler(l, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func (l *TestLogger) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.Write(p)
}

// Entries decodes every captured line
func (l *TestLogger) Entries() []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	var entries []LogEntry
	for _, line := range strings.Split(strings.TrimSpace(l.buf.String()), "\n") {
		if line == "" {
			continue
		}
		var e LogEntry
		if err := json.Unmarshal([]byte(line), &e); err == nil {
			entries = append(entries, e)
		}
	}
	return entries
}

// Find returns the first entry with the given message
func (l *TestLogger) Find(msg string) (LogEntry, bool) {
	for _, e := range l.Entries() {
		if e["msg"] == msg {
			return e, true
		}
	}
	return nil, false
}
