// Package alarm implements the wait-then-alert flow: report the parsed
// duration, sleep it off, then ring on a fixed cadence until stopped.
package alarm

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/albanog/remind/internal/duration"
)

const (
	// DefaultCadence is the fixed interval between repeated alerts.
	DefaultCadence = 30 * time.Second

	// DefaultMessage is used when the caller supplies no message.
	DefaultMessage = "Time is up!"

	// clearScreen erases the terminal and homes the cursor, marking the
	// switch from waiting to alerting.
	clearScreen = "\x1b[2J\x1b[H"

	bell = "\a"
)

// Scheduler runs a single reminder to completion. Zero value is not
// usable; construct with New.
type Scheduler struct {
	// Out receives all user-facing output: the status line, the clear
	// sequence, and the alert lines.
	Out io.Writer

	// Cadence overrides DefaultCadence. Tests shrink it; the CLI never
	// does.
	Cadence time.Duration

	// Bell controls whether alert lines are prefixed with the audible
	// bell control character.
	Bell bool

	logger *log.Logger
}

// New returns a Scheduler writing to out with the default cadence.
func New(out io.Writer, logger *log.Logger) *Scheduler {
	return &Scheduler{
		Out:     out,
		Cadence: DefaultCadence,
		Bell:    true,
		logger:  logger,
	}
}

// Run reports the parsed duration, waits it out, then alerts. With once
// set it returns after a single alert; otherwise it repeats at the
// cadence until ctx is cancelled, in which case it returns ctx.Err().
func (s *Scheduler) Run(ctx context.Context, d duration.Duration, message string, once bool) error {
	if message == "" {
		message = DefaultMessage
	}

	fmt.Fprintf(s.Out, "Remind in %s.\n", d)
	s.debug("waiting", "interval", d.Interval(), "once", once)

	if err := s.wait(ctx, d.Interval()); err != nil {
		return err
	}

	fmt.Fprint(s.Out, clearScreen)
	s.debug("alerting", "message", message)

	for {
		s.alert(message)
		if once {
			return nil
		}
		if err := s.wait(ctx, s.cadence()); err != nil {
			return err
		}
	}
}

// wait blocks for delay or until ctx is cancelled.
func (s *Scheduler) wait(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
		return nil
	}
}

func (s *Scheduler) alert(message string) {
	if s.Bell {
		fmt.Fprintf(s.Out, "%s%s\n", bell, message)
		return
	}
	fmt.Fprintln(s.Out, message)
}

func (s *Scheduler) cadence() time.Duration {
	if s.Cadence > 0 {
		return s.Cadence
	}
	return DefaultCadence
}

func (s *Scheduler) debug(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}
