package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/albanog/remind/internal/duration"
)

func TestTimeoutSwitchesToAlerting(t *testing.T) {
	m := NewModel(duration.Duration{Minutes: 1}, "break time", false)

	updated, cmd := m.Update(timer.TimeoutMsg{})
	got := updated.(Model)

	if !got.alerting {
		t.Error("alerting: got false, want true after timeout")
	}
	if got.alerts != 1 {
		t.Errorf("alerts: got %d, want 1", got.alerts)
	}
	if cmd == nil {
		t.Error("expected bell/tick command after timeout, got nil")
	}
	if !strings.Contains(got.View(), "break time") {
		t.Errorf("alert view missing message: %q", got.View())
	}
}

func TestAlertTickRepeats(t *testing.T) {
	m := NewModel(duration.Duration{}, "again", false)
	m.alerting = true
	m.alerts = 1

	updated, cmd := m.Update(alertTickMsg{})
	got := updated.(Model)

	if got.alerts != 2 {
		t.Errorf("alerts: got %d, want 2", got.alerts)
	}
	if cmd == nil {
		t.Error("expected follow-up tick command, got nil")
	}
}

func TestAlertTickIgnoredWhenOnce(t *testing.T) {
	m := NewModel(duration.Duration{}, "single", true)
	m.alerting = true
	m.alerts = 1

	updated, cmd := m.Update(alertTickMsg{})
	got := updated.(Model)

	if got.alerts != 1 {
		t.Errorf("alerts: got %d, want 1 with once set", got.alerts)
	}
	if cmd != nil {
		t.Error("expected no follow-up command with once set")
	}
}

func TestQuitKey(t *testing.T) {
	m := NewModel(duration.Duration{Minutes: 1}, "", false)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	got := updated.(Model)

	if !got.quitting {
		t.Error("quitting: got false, want true after q")
	}
	if cmd == nil {
		t.Error("expected quit command, got nil")
	}
}

func TestCountdownView(t *testing.T) {
	m := NewModel(duration.Duration{Hours: 1}, "", false)

	view := m.View()
	if !strings.Contains(view, "Started:") || !strings.Contains(view, "Ending:") {
		t.Errorf("countdown view missing schedule lines: %q", view)
	}
}

func TestIsTTY(t *testing.T) {
	if IsTTY(&bytes.Buffer{}) {
		t.Error("IsTTY: got true for bytes.Buffer, want false")
	}
}
