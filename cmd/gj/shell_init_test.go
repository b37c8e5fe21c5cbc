package main

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/mirakui/gj/internal/output"
)

func runShellInit(t *testing.T, shell string) (string, error) {
	t.Helper()
	var stdout bytes.Buffer
	ctx := output.WithPrinter(context.Background(), &stdout)

	cmd := newShellInitCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{shell})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.Execute()
	return stdout.String(), err
}

func TestShellInitWrappers(t *testing.T) {
	for _, shell := range []string{"zsh", "bash", "fish"} {
		t.Run(shell, func(t *testing.T) {
			out, err := runShellInit(t, shell)
			if err != nil {
				t.Fatalf("shell-init %s: %v", shell, err)
			}
			// Every wrapper defers to the real binary and cds into
			// whatever path it prints.
			if !strings.Contains(out, "command gj") {
				t.Errorf("wrapper does not call the real binary:\n%s", out)
			}
			if !strings.Contains(out, "cd ") {
				t.Errorf("wrapper never cds:\n%s", out)
			}
		})
	}
}

func TestShellInitUnknownShell(t *testing.T) {
	if _, err := runShellInit(t, "powershell"); err == nil {
		t.Error("expected error for unsupported shell")
	}
}

func TestFormatAge(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{30 * time.Second, "just now"},
		{5 * time.Minute, "5m ago"},
		{3 * time.Hour, "3h ago"},
		{49 * time.Hour, "2d ago"},
	}
	for _, tt := range tests {
		if got := formatAge(tt.d); got != tt.want {
			t.Errorf("formatAge(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
