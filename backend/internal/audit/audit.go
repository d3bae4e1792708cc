// Package audit writes the structured record required for HIGH and
// CRITICAL outcomes. Entries carry category and modifier names, the level
// and timing only; raw message text must never appear in any record, and
// the entry type has no field that could hold it.
package audit

import (
	"encoding/json"
	"log"
	"os"
	"sync"
	"time"

	"github.com/havenbridge/crisis-sentinel/backend/internal/risk"
)

// Entry is one assessment audit record.
type Entry struct {
	Timestamp    time.Time     `json:"timestamp"`
	RequestID    string        `json:"request_id"`
	SessionID    string        `json:"session_id"`
	Level        risk.Level    `json:"level"`
	Categories   []string      `json:"categories,omitempty"`
	Modifiers    []string      `json:"modifiers,omitempty"`
	Trend        bool          `json:"trend_escalated"`
	Intervention string        `json:"intervention"`
	Failed       bool          `json:"failed,omitempty"`
	Latency      time.Duration `json:"latency_ns"`
}

// Logger appends JSON entries to a file or stdout.
type Logger struct {
	mu       sync.Mutex
	file     *os.File
	encoder  *json.Encoder
	fallback *log.Logger
}

// NewLogger creates an audit logger. An empty filePath logs JSON to stdout.
func NewLogger(filePath string) (*Logger, error) {
	var file *os.File
	var err error

	if filePath != "" {
		file, err = os.OpenFile(filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, err
		}
	} else {
		file = os.Stdout
	}

	return &Logger{
		file:     file,
		encoder:  json.NewEncoder(file),
		fallback: log.New(os.Stderr, "[AUDIT] ", log.LstdFlags),
	}, nil
}

// Log writes one entry.
func (l *Logger) Log(entry Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	if err := l.encoder.Encode(entry); err != nil {
		l.fallback.Printf("Failed to write audit entry: %v, request=%s level=%s", err, entry.RequestID, entry.Level)
	}
}

// Close closes the audit log file.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil && l.file != os.Stdout {
		return l.file.Close()
	}
	return nil
}
