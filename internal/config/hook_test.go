package config

import (
	"strings"
	"testing"
)

func TestHookValidate(t *testing.T) {
	tests := []struct {
		name    string
		hook    Hook
		wantErr string
	}{
		{
			name: "valid copy",
			hook: Hook{Type: HookCopy, From: ".env"},
		},
		{
			name: "valid copy with rename",
			hook: Hook{Type: HookCopy, From: ".env.example", To: ".env", Required: true},
		},
		{
			name: "valid run",
			hook: Hook{Type: HookRun, Command: "npm install"},
		},
		{
			name:    "copy without from",
			hook:    Hook{Type: HookCopy},
			wantErr: "requires 'from'",
		},
		{
			name:    "copy with command",
			hook:    Hook{Type: HookCopy, From: ".env", Command: "make"},
			wantErr: "cannot set 'command'",
		},
		{
			name:    "run without command",
			hook:    Hook{Type: HookRun},
			wantErr: "requires 'command'",
		},
		{
			name:    "run with copy fields",
			hook:    Hook{Type: HookRun, Command: "make", From: ".env"},
			wantErr: "cannot set 'from'",
		},
		{
			name:    "missing type",
			hook:    Hook{From: ".env"},
			wantErr: "requires a 'type'",
		},
		{
			name:    "unknown type",
			hook:    Hook{Type: "exec", Command: "make"},
			wantErr: "unknown hook type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.hook.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestHookDest(t *testing.T) {
	if got := (Hook{Type: HookCopy, From: ".env"}).Dest(); got != ".env" {
		t.Errorf("Dest() = %q, want .env", got)
	}
	if got := (Hook{Type: HookCopy, From: ".env.example", To: ".env"}).Dest(); got != ".env" {
		t.Errorf("Dest() = %q, want .env", got)
	}
}

func TestHookDescription(t *testing.T) {
	if got := (Hook{Type: HookCopy, From: ".env"}).Description(); got != "copy .env" {
		t.Errorf("Description() = %q", got)
	}
	if got := (Hook{Type: HookRun, Command: "npm install"}).Description(); got != "run npm install" {
		t.Errorf("Description() = %q", got)
	}
}
