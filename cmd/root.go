// Package cmd implements the CLI command structure for remind.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/albanog/remind/internal/alarm"
	"github.com/albanog/remind/internal/config"
	"github.com/albanog/remind/internal/duration"
	"github.com/albanog/remind/internal/logging"
	"github.com/albanog/remind/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// User-facing parse failure messages, shown verbatim.
const (
	msgSyntax   = "Syntax error."
	msgOverflow = "Duration too long."
)

// Run executes the remind CLI.
func Run(ctx context.Context, args []string) error {
	// Create a flag set for global options
	fs := flag.NewFlagSet("remind", flag.ContinueOnError)
	fs.Usage = func() {
		printUsage(fs, os.Stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	// Global flags
	cfg, err := config.Load(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, os.Stdout)
		return nil
	}
	if *showVersion {
		return versionCommand()
	}

	// Determine the subcommand. The first positional is normally the
	// duration token, so only exact command names dispatch away from run.
	subcommand := "run"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 {
		switch remainingArgs[0] {
		case "run", "tui", "version", "help":
			subcommand = remainingArgs[0]
			remainingArgs = remainingArgs[1:]
		}
	}

	// Execute the subcommand
	switch subcommand {
	case "run":
		return runCommand(ctx, cfg, remainingArgs)
	case "tui":
		return tuiCommand(ctx, cfg, remainingArgs)
	case "version":
		return versionCommand()
	case "help":
		printUsage(fs, os.Stdout)
		return nil
	default:
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// runCommand parses the duration token and hands off to the scheduler.
func runCommand(ctx context.Context, cfg *config.Config, args []string) error {
	d, message, err := parseReminderArgs(cfg, args)
	if err != nil {
		return err
	}

	logger := logging.NewFromConfig(os.Stderr, cfg.LogLevel, cfg.LogFormat, cfg.LogTimestamps)
	scheduler := alarm.New(os.Stdout, logger)
	scheduler.Bell = cfg.Bell

	return scheduler.Run(ctx, d, message, cfg.Once)
}

// tuiCommand runs the countdown interface instead of the plain scheduler.
func tuiCommand(ctx context.Context, cfg *config.Config, args []string) error {
	d, message, err := parseReminderArgs(cfg, args)
	if err != nil {
		return err
	}
	return ui.RunTUI(ctx, d, message, cfg.Once)
}

// parseReminderArgs extracts the duration token and optional message from
// positional arguments. A positional message overrides the configured one.
func parseReminderArgs(cfg *config.Config, args []string) (duration.Duration, string, error) {
	if len(args) == 0 {
		return duration.Duration{}, "", errors.New("missing duration argument (ex: 2h30m)")
	}
	if len(args) > 2 {
		return duration.Duration{}, "", fmt.Errorf("unexpected arguments: %v", args[2:])
	}

	d, err := duration.Parse(args[0])
	if err != nil {
		if errors.Is(err, duration.ErrOverflow) {
			return duration.Duration{}, "", errors.New(msgOverflow)
		}
		return duration.Duration{}, "", errors.New(msgSyntax)
	}

	message := cfg.Message
	if len(args) == 2 {
		message = args[1]
	}
	return d, message, nil
}

// versionCommand prints version information.
func versionCommand() error {
	fmt.Printf("remind version %s\n", Version)
	return nil
}

// printUsage prints the usage message.
func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "Remind - wait, then nag until you acknowledge")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  remind [options] <duration> [message]")
	fmt.Fprintln(w, "  remind [command] [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  run <duration> [message]  Run the reminder (default command)")
	fmt.Fprintln(w, "  tui <duration> [message]  Run with a countdown terminal UI")
	fmt.Fprintln(w, "  version                   Show version information")
	fmt.Fprintln(w, "  help                      Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Duration format: <int>h<int>m, <int>h, or <int>m (ex: 2h30m)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
}
