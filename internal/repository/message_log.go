package repository

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

// MessageLog is the human-readable audit trail of message submissions, one
// line per message. It is independent of the alert history: both are written
// on the message path and neither is derived from the other.
type MessageLog struct {
	mu   sync.Mutex
	path string
}

func NewMessageLog(path string) *MessageLog {
	return &MessageLog{path: path}
}

// Append adds one line to the end of the log.
func (l *MessageLog) Append(line string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open message log: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("append message log: %w", err)
	}
	return nil
}

// Recent returns up to n lines, newest first. A missing log file reads as
// empty.
func (l *MessageLog) Recent(n int) ([]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read message log: %w", err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	out := make([]string, 0, n)
	for i := len(lines) - 1; i >= 0 && len(out) < n; i-- {
		if s := strings.TrimSpace(lines[i]); s != "" {
			out = append(out, s)
		}
	}
	return out, nil
}
