// Package main is the entry point for the scribe editor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/dshills/scribe/internal/app"
	"github.com/dshills/scribe/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// errUsage marks command line mistakes.
var errUsage = errors.New("usage error")

func main() {
	os.Exit(run())
}

func run() int {
	opts, done, err := parseFlags(os.Args[1:], os.Stdout, os.Stderr)
	if err != nil {
		if errors.Is(err, errUsage) {
			return exitUsage
		}
		return exitError
	}
	if done {
		return exitOK
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: standard input is not a terminal")
		return exitError
	}

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return exitError
	}
	defer application.Close()

	terminal, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return exitError
	}
	if err := application.SetBackend(terminal); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to set backend: %v\n", err)
		return exitError
	}

	// Run restores the terminal before returning, so errors print cleanly.
	return exitCode(application.Run(), os.Stderr)
}

// exitCode maps the result of Run to a process exit code.
func exitCode(err error, stderr io.Writer) int {
	if err == nil || errors.Is(err, app.ErrQuit) {
		return exitOK
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return exitError
}

// parseFlags parses the command line. done is true when the invocation
// was fully handled (help or version) and the editor should not start.
func parseFlags(args []string, stdout, stderr io.Writer) (opts app.Options, done bool, err error) {
	fs := flag.NewFlagSet("scribe", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var showVersion, showHelp bool

	fs.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	fs.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	fs.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error); overrides the config file")
	fs.StringVar(&opts.LogFile, "log-file", "", "Write logs to this file; overrides the config file")
	fs.BoolVar(&showVersion, "version", false, "Show version information")
	fs.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	fs.BoolVar(&showHelp, "help", false, "Show help message")
	fs.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "scribe - a minimal modal text editor\n\n")
		fmt.Fprintf(stderr, "Usage: scribe [options] [file]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nKeys:\n")
		fmt.Fprintf(stderr, "  Edit mode      type to append, Enter, Tab, Backspace, Esc for view mode\n")
		fmt.Fprintf(stderr, "  View mode      i to edit, : for a command\n")
		fmt.Fprintf(stderr, "  Command mode   :w <file> to save, :q to quit, Esc to cancel\n")
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  scribe                 Start with an empty buffer\n")
		fmt.Fprintf(stderr, "  scribe notes.txt       Load notes.txt, creating it if absent\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return opts, true, nil
		}
		return opts, false, fmt.Errorf("%w: %v", errUsage, err)
	}

	if showHelp {
		fs.Usage()
		return opts, true, nil
	}

	if showVersion {
		fmt.Fprintf(stdout, "scribe %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return opts, true, nil
	}

	switch strings.ToLower(opts.LogLevel) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		fmt.Fprintf(stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
		return opts, false, fmt.Errorf("%w: log level %q", errUsage, opts.LogLevel)
	}

	switch fs.NArg() {
	case 0:
	case 1:
		opts.File = fs.Arg(0)
	default:
		fmt.Fprintf(stderr, "Error: expected at most one file, got %d\n", fs.NArg())
		fs.Usage()
		return opts, false, fmt.Errorf("%w: too many arguments", errUsage)
	}

	return opts, false, nil
}
