// Package ui provides the optional countdown terminal interface.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/albanog/remind/internal/alarm"
	"github.com/albanog/remind/internal/duration"
)

const tickInterval = time.Millisecond * 100

// RunTUI runs the countdown interface to completion.
func RunTUI(ctx context.Context, d duration.Duration, message string, once bool) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}
	if message == "" {
		message = alarm.DefaultMessage
	}

	model := NewModel(d, message, once)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}

// alertTickMsg fires once per cadence interval while alerting.
type alertTickMsg struct{}

// Model is the bubbletea model for the countdown interface.
type Model struct {
	timer    timer.Model
	progress progress.Model
	help     help.Model
	quitKey  key.Binding

	start   time.Time
	total   time.Duration
	passed  time.Duration
	message string
	once    bool

	alerting bool
	alerts   int
	quitting bool
}

// NewModel builds the countdown model for a parsed duration.
func NewModel(d duration.Duration, message string, once bool) Model {
	return Model{
		timer:    timer.NewWithInterval(d.Interval(), tickInterval),
		progress: progress.New(progress.WithDefaultGradient()),
		help:     help.New(),
		quitKey:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		start:    time.Now(),
		total:    d.Interval(),
		message:  message,
		once:     once,
	}
}

func (m Model) Init() tea.Cmd {
	return m.timer.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timer.TickMsg:
		var cmds []tea.Cmd
		var cmd tea.Cmd

		m.passed += m.timer.Interval
		cmds = append(cmds, m.progress.SetPercent(m.percent()))

		m.timer, cmd = m.timer.Update(msg)
		cmds = append(cmds, cmd)

		return m, tea.Batch(cmds...)

	case timer.StartStopMsg:
		var cmd tea.Cmd
		m.timer, cmd = m.timer.Update(msg)
		return m, cmd

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		return m, cmd

	case timer.TimeoutMsg:
		m.alerting = true
		m.alerts = 1
		if m.once {
			return m, ringBell()
		}
		return m, tea.Batch(ringBell(), m.scheduleAlert())

	case alertTickMsg:
		if !m.alerting || m.once {
			return m, nil
		}
		m.alerts++
		return m, tea.Batch(ringBell(), m.scheduleAlert())

	case tea.KeyMsg:
		if key.Matches(msg, m.quitKey) {
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.alerting {
		s := fmt.Sprintf("\n  %s\n", m.message)
		if !m.once {
			s += fmt.Sprintf("\n  Alerted %d time(s), repeating every %s.\n", m.alerts, alarm.DefaultCadence)
		}
		s += "\n" + m.helpView()
		return s
	}

	s := fmt.Sprintf("%s\n%s\n",
		m.start.Format(" Started:\tMon, Jan at 15:04:05"),
		m.start.Add(m.total).Format(" Ending:\tMon, Jan at 15:04:05"),
	)
	s += fmt.Sprintf("\n - %s\n %s\n", m.timer.View(), m.progress.View())
	s += "\n" + m.helpView()
	return s
}

func (m Model) helpView() string {
	return " " + m.help.ShortHelpView([]key.Binding{m.quitKey})
}

func (m Model) percent() float64 {
	if m.total <= 0 {
		return 1
	}
	pct := float64(m.passed) / float64(m.total)
	if pct > 1 {
		pct = 1
	}
	return pct
}

func (m Model) scheduleAlert() tea.Cmd {
	return tea.Tick(alarm.DefaultCadence, func(time.Time) tea.Msg {
		return alertTickMsg{}
	})
}

// ringBell writes the bell character straight to the terminal; the alt
// screen swallows it from the view otherwise.
func ringBell() tea.Cmd {
	return func() tea.Msg {
		fmt.Print("\a")
		return nil
	}
}

// IsTTY reports whether w is attached to a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, _ := f.Stat()
	return (info.Mode() & os.ModeCharDevice) != 0
}
