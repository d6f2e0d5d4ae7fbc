package usage

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rptlabs/counterpose/internal/domain"
)

func TestLoggerAppendsLine(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "usage.log")
	logger, err := New(Config{Enabled: true, Path: path, QueueSize: 16})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer func() { _ = logger.Close() }()

	logger.Log(Event{
		SessionID:  "sess-1",
		Domain:     domain.SoftwareDevelopment,
		Persona:    "system",
		Step:       "init",
		TextLength: 42,
	})

	line := waitForLogLine(t, path)
	fields := strings.Split(line, ",")
	if len(fields) != 6 {
		t.Fatalf("expected 6 fields, got %d: %q", len(fields), line)
	}
	if _, err := time.Parse(time.RFC3339, fields[0]); err != nil {
		t.Errorf("first field is not a timestamp: %q", fields[0])
	}
	if fields[1] != "sess-1" || fields[2] != "software_development" || fields[3] != "system" || fields[4] != "init" || fields[5] != "42" {
		t.Errorf("unexpected fields: %v", fields)
	}
}

func TestLoggerCloseFlushesQueue(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "usage.log")
	logger, err := New(Config{Enabled: true, Path: path, QueueSize: 64})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	for i := 0; i < 10; i++ {
		logger.Log(Event{SessionID: "sess-1", Domain: domain.ProductStrategy, Persona: "system", Step: "init"})
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 10 {
		t.Errorf("expected 10 lines after close, got %d", len(lines))
	}
}

func TestLoggerLogAfterCloseIsDropped(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "usage.log")
	logger, err := New(Config{Enabled: true, Path: path, QueueSize: 16})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// Must drop silently, never panic: logging is best-effort even during
	// shutdown.
	logger.Log(Event{SessionID: "sess-1", Domain: domain.ProductStrategy, Persona: "system", Step: "init"})

	if err := logger.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("dropped event should not create the log file, stat err = %v", err)
	}
}

func TestLoggerConcurrentLogAndClose(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "usage.log")
	logger, err := New(Config{Enabled: true, Path: path, QueueSize: 4})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				logger.Log(Event{SessionID: "sess-1", Domain: domain.SoftwareDevelopment, Persona: "system", Step: "init"})
			}
		}()
	}

	if err := logger.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
	wg.Wait()
}

func TestLoggerDisabledIsNoop(t *testing.T) {
	t.Parallel()

	logger, err := New(Config{Enabled: false})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	// Must never panic or block.
	logger.Log(Event{SessionID: "sess-1", Step: "init"})
	if err := logger.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}

func waitForLogLine(t *testing.T, path string) string {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		data, err := os.ReadFile(path)
		if err == nil && len(data) > 0 {
			lines := strings.Split(strings.TrimSpace(string(data)), "\n")
			if len(lines) > 0 {
				return lines[len(lines)-1]
			}
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for log file %s", path)
	return ""
}
