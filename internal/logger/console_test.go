package logger

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/josephdiniso/minigrep/internal/search"
)

// TestNewConsoleLogger verifies the constructor creates a ConsoleLogger with the provided writer.
func TestNewConsoleLogger(t *testing.T) {
	t.Run("with valid writer", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := NewConsoleLogger(buf, "info")

		if logger == nil {
			t.Fatal("expected non-nil logger")
		}
		if logger.writer != buf {
			t.Error("writer not set correctly")
		}
		if logger.logLevel != "info" {
			t.Errorf("expected log level %q, got %q", "info", logger.logLevel)
		}
		if logger.colorOutput {
			t.Error("expected color to be disabled for a buffer")
		}
	})

	t.Run("with nil writer", func(t *testing.T) {
		logger := NewConsoleLogger(nil, "info")
		if logger == nil {
			t.Fatal("expected non-nil logger even with nil writer")
		}
		// Must not panic
		logger.LogError("discarded")
	})

	t.Run("invalid level falls back to info", func(t *testing.T) {
		logger := NewConsoleLogger(&bytes.Buffer{}, "LOUD")
		if logger.logLevel != "info" {
			t.Errorf("expected log level %q, got %q", "info", logger.logLevel)
		}
	})

	t.Run("level is case-insensitive", func(t *testing.T) {
		logger := NewConsoleLogger(&bytes.Buffer{}, " DEBUG ")
		if logger.logLevel != "debug" {
			t.Errorf("expected log level %q, got %q", "debug", logger.logLevel)
		}
	})
}

// TestLevelFiltering verifies messages below the configured level are dropped.
func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		level    string
		wantSeen []string
	}{
		{level: "trace", wantSeen: []string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR"}},
		{level: "debug", wantSeen: []string{"DEBUG", "INFO", "WARN", "ERROR"}},
		{level: "info", wantSeen: []string{"INFO", "WARN", "ERROR"}},
		{level: "warn", wantSeen: []string{"WARN", "ERROR"}},
		{level: "error", wantSeen: []string{"ERROR"}},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := NewConsoleLogger(buf, tt.level)

			logger.LogTrace("t")
			logger.LogDebug("d")
			logger.LogInfo("i")
			logger.LogWarn("w")
			logger.LogError("e")

			output := buf.String()
			lines := strings.Split(strings.TrimSpace(output), "\n")
			if len(lines) != len(tt.wantSeen) {
				t.Fatalf("expected %d lines, got %d: %q", len(tt.wantSeen), len(lines), output)
			}
			for i, level := range tt.wantSeen {
				if !strings.Contains(lines[i], "["+level+"]") {
					t.Errorf("line %d = %q, want level %s", i, lines[i], level)
				}
			}
		})
	}
}

// TestLogFormat verifies the plain-text line format.
func TestLogFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewConsoleLogger(buf, "info")
	logger.LogWarn("something happened")

	output := buf.String()
	// [HH:MM:SS] is 10 characters
	if len(output) < 10 || output[0] != '[' || output[9] != ']' {
		t.Fatalf("missing timestamp prefix: %q", output)
	}
	if !strings.HasSuffix(output, " [WARN] something happened\n") {
		t.Errorf("unexpected format: %q", output)
	}
	if strings.Contains(output, "\x1b[") {
		t.Errorf("unexpected ANSI codes in non-terminal output: %q", output)
	}
}

// TestScanMessages verifies the scan diagnostics are logged at DEBUG level.
func TestScanMessages(t *testing.T) {
	skipped := search.SkippedFile{Path: "/tmp/bad.bin", Err: errors.New("not text")}
	result := &search.TreeResult{
		Scanned: 10,
		Matched: 3,
		Skipped: []search.SkippedFile{skipped},
	}

	t.Run("debug shows scan messages", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := NewConsoleLogger(buf, "debug")

		logger.LogScanStart("duct", "/src", true)
		logger.LogSkipped(skipped)
		logger.LogScanComplete(result, 1500*time.Millisecond)
		logger.LogScanComplete(nil, time.Second)

		output := buf.String()
		for _, want := range []string{
			`Searching directory /src for "duct"`,
			"Skipping /tmp/bad.bin: not text",
			"Scan complete: 3 matched, 10 scanned, 1 skipped (1s)",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("output missing %q:\n%s", want, output)
			}
		}
		if got := strings.Count(output, "\n"); got != 3 {
			t.Errorf("expected 3 lines, got %d", got)
		}
	})

	t.Run("info hides scan messages", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := NewConsoleLogger(buf, "info")

		logger.LogScanStart("duct", "/src/main.go", false)
		logger.LogSkipped(skipped)
		logger.LogScanComplete(result, time.Second)

		if buf.Len() != 0 {
			t.Errorf("expected no output at info level, got %q", buf.String())
		}
	})
}

// TestConcurrentLogging verifies lines are not interleaved.
func TestConcurrentLogging(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewConsoleLogger(buf, "info")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			logger.LogInfo("concurrent message")
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 50 {
		t.Fatalf("expected 50 lines, got %d", len(lines))
	}
	for _, line := range lines {
		if !strings.HasSuffix(line, "[INFO] concurrent message") {
			t.Errorf("corrupted line: %q", line)
		}
	}
}

// TestFormatDuration verifies human-readable durations.
func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{250 * time.Millisecond, "250ms"},
		{5 * time.Second, "5s"},
		{90 * time.Second, "1m30s"},
		{2 * time.Minute, "2m"},
		{2*time.Hour + 15*time.Minute, "2h15m"},
		{time.Hour + time.Minute + time.Second, "1h1m1s"},
		{3 * time.Hour, "3h"},
	}

	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

// TestNoOpLogger verifies the no-op logger accepts every call.
func TestNoOpLogger(t *testing.T) {
	var l Logger = NewNoOpLogger()
	l.LogTrace("x")
	l.LogDebug("x")
	l.LogInfo("x")
	l.LogWarn("x")
	l.LogError("x")
	l.LogScanStart("q", "p", true)
	l.LogSkipped(search.SkippedFile{})
	l.LogScanComplete(&search.TreeResult{}, 0)
}
