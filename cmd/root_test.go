// Package cmd provides tests for CLI command handlers.
package cmd

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/albanog/remind/internal/config"
	"github.com/albanog/remind/internal/duration"
)

// isolateEnv keeps a developer's real config files and env overrides out
// of CLI tests.
func isolateEnv(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("REMIND_MESSAGE", "")
	t.Setenv("REMIND_ONCE", "")
	chdir(t, dir)
}

// chdir is a stand-in for t.Chdir, which needs Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}

func TestRun(t *testing.T) {
	t.Run("shows help with --help flag", func(t *testing.T) {
		isolateEnv(t)
		if err := Run(context.Background(), []string{"--help"}); err != nil {
			t.Errorf("expected no error with --help, got %v", err)
		}
	})

	t.Run("shows help with -h flag", func(t *testing.T) {
		isolateEnv(t)
		if err := Run(context.Background(), []string{"-h"}); err != nil {
			t.Errorf("expected no error with -h, got %v", err)
		}
	})

	t.Run("shows version with --version flag", func(t *testing.T) {
		isolateEnv(t)
		if err := Run(context.Background(), []string{"--version"}); err != nil {
			t.Errorf("expected no error with --version, got %v", err)
		}
	})

	t.Run("shows help with help command", func(t *testing.T) {
		isolateEnv(t)
		if err := Run(context.Background(), []string{"help"}); err != nil {
			t.Errorf("expected no error with help command, got %v", err)
		}
	})

	t.Run("missing duration returns error", func(t *testing.T) {
		isolateEnv(t)
		err := Run(context.Background(), []string{})
		if err == nil || !strings.Contains(err.Error(), "missing duration") {
			t.Errorf("expected missing duration error, got %v", err)
		}
	})

	t.Run("syntax error message", func(t *testing.T) {
		isolateEnv(t)
		err := Run(context.Background(), []string{"2x30m"})
		if err == nil || err.Error() != msgSyntax {
			t.Errorf("expected %q, got %v", msgSyntax, err)
		}
	})

	t.Run("overflow error message", func(t *testing.T) {
		isolateEnv(t)
		err := Run(context.Background(), []string{"9999h"})
		if err == nil || err.Error() != msgOverflow {
			t.Errorf("expected %q, got %v", msgOverflow, err)
		}
	})

	t.Run("runs once to completion", func(t *testing.T) {
		isolateEnv(t)
		if err := Run(context.Background(), []string{"-once", "0h0m", "done"}); err != nil {
			t.Errorf("expected no error for -once run, got %v", err)
		}
	})
}

func TestParseReminderArgs(t *testing.T) {
	cfg := &config.Config{Message: "configured"}

	tests := []struct {
		name    string
		args    []string
		wantD   duration.Duration
		wantMsg string
		wantErr string
	}{
		{
			name:    "duration only uses configured message",
			args:    []string{"2h30m"},
			wantD:   duration.Duration{Hours: 2, Minutes: 30},
			wantMsg: "configured",
		},
		{
			name:    "positional message wins",
			args:    []string{"45m", "Go for a walk"},
			wantD:   duration.Duration{Minutes: 45},
			wantMsg: "Go for a walk",
		},
		{
			name:    "too many arguments",
			args:    []string{"45m", "msg", "extra"},
			wantErr: "unexpected arguments",
		},
		{
			name:    "syntax failure",
			args:    []string{"abc"},
			wantErr: msgSyntax,
		},
		{
			name:    "overflow failure",
			args:    []string{"300m"},
			wantErr: msgOverflow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, msg, err := parseReminderArgs(cfg, tt.args)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("got error %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if d != tt.wantD {
				t.Errorf("duration: got %+v, want %+v", d, tt.wantD)
			}
			if msg != tt.wantMsg {
				t.Errorf("message: got %q, want %q", msg, tt.wantMsg)
			}
		})
	}
}
