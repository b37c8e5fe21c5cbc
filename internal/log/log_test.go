package log

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

func TestPrintfQuiet(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false, true)

	l.Printf("hello %s\n", "world")
	l.Println("another line")

	if buf.Len() != 0 {
		t.Errorf("quiet logger produced output: %q", buf.String())
	}
}

func TestWarnfIgnoresQuiet(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false, true)

	l.Warnf("disk %s", "full")

	got := buf.String()
	if !strings.Contains(got, "Warning: disk full") {
		t.Errorf("expected warning in output, got %q", got)
	}
}

func TestCommandVerbose(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, true, false)

	done := l.Command("/repo", "git", "status", "--porcelain")
	done(250 * time.Millisecond)

	got := buf.String()
	if !strings.Contains(got, "[/repo] $ git status --porcelain") {
		t.Errorf("expected command trace, got %q", got)
	}
	if !strings.Contains(got, "took 250ms") {
		t.Errorf("expected duration, got %q", got)
	}
}

func TestCommandNotVerbose(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false, false)

	done := l.Command("", "git", "status")
	done(time.Second)

	if buf.Len() != 0 {
		t.Errorf("non-verbose logger traced command: %q", buf.String())
	}
}

func TestFromContextFallback(t *testing.T) {
	l := FromContext(context.Background())
	if l == nil {
		t.Fatal("expected a no-op logger, got nil")
	}
	// Must not panic or print anywhere visible.
	l.Printf("ignored")
	l.Warnf("ignored")
}

func TestFromContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false, false)
	ctx := WithLogger(context.Background(), l)

	FromContext(ctx).Printf("via context")

	if got := buf.String(); got != "via context" {
		t.Errorf("expected %q, got %q", "via context", got)
	}
}
