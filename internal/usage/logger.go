// Package usage provides append-only usage logging for workflow operations.
// Logging is best-effort by contract: a full queue drops the event and a
// write failure is logged and swallowed; neither ever surfaces to the
// operation that produced the event.
package usage

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rptlabs/counterpose/internal/domain"
)

// Config controls usage logging.
type Config struct {
	Enabled   bool
	Path      string
	QueueSize int
}

// Event is one usage record: which session did what, and how much text the
// caller submitted.
type Event struct {
	Timestamp  time.Time
	SessionID  string
	Domain     domain.Domain
	Persona    string
	Step       string
	TextLength int
}

// Logger appends one line per event to a flat file from a background
// goroutine so callers never block on disk I/O.
type Logger struct {
	cfg   Config
	queue chan Event
	done  chan struct{}

	mu     sync.RWMutex
	closed bool
}

// New creates a usage logger and starts its writer goroutine. A disabled
// config returns a logger whose Log is a no-op.
func New(cfg Config) (*Logger, error) {
	l := &Logger{cfg: cfg}
	if !cfg.Enabled {
		return l, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
		return nil, fmt.Errorf("create usage log directory: %w", err)
	}

	l.queue = make(chan Event, cfg.QueueSize)
	l.done = make(chan struct{})
	go l.run()
	return l, nil
}

// Log enqueues an event. Events are dropped when the queue is full or the
// logger is closed rather than blocking or failing the operation that
// produced them.
func (l *Logger) Log(event Event) {
	if l.queue == nil {
		return
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	// The read lock holds off Close until the send completes, so the queue
	// is never closed underneath an in-flight send.
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.closed {
		slog.Warn("Usage logger closed, dropping event", "session_id", event.SessionID, "step", event.Step)
		return
	}

	select {
	case l.queue <- event:
	default:
		slog.Warn("Usage log queue full, dropping event", "session_id", event.SessionID, "step", event.Step)
	}
}

// Close drains the queue and stops the writer. Safe to call more than once;
// events logged after Close are dropped.
func (l *Logger) Close() error {
	if l.queue == nil {
		return nil
	}

	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return nil
	}
	l.closed = true
	l.mu.Unlock()

	close(l.queue)
	<-l.done
	return nil
}

func (l *Logger) run() {
	defer close(l.done)
	for event := range l.queue {
		l.write(event)
	}
}

func (l *Logger) write(event Event) {
	f, err := os.OpenFile(l.cfg.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		slog.Warn("Usage log open failed", "path", l.cfg.Path, "error", err)
		return
	}
	defer func() { _ = f.Close() }()

	line := fmt.Sprintf("%s,%s,%s,%s,%s,%d\n",
		event.Timestamp.Format(time.RFC3339),
		event.SessionID,
		event.Domain,
		event.Persona,
		event.Step,
		event.TextLength,
	)
	if _, err := f.WriteString(line); err != nil {
		slog.Warn("Usage log write failed", "path", l.cfg.Path, "error", err)
	}
}
