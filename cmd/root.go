// Package cmd implements the CLI command structure for wellness.
package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/log"

	"github.com/nibzard/wellness-go/internal/config"
	"github.com/nibzard/wellness-go/internal/logging"
	"github.com/nibzard/wellness-go/internal/savedstate"
	"github.com/nibzard/wellness-go/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// stdout receives command output. Tests replace it.
var stdout io.Writer = os.Stdout

// Run executes the wellness CLI.
func Run(ctx context.Context, args []string) error {
	// Create a flag set for global options
	fs := flag.NewFlagSet("wellness", flag.ContinueOnError)
	fs.Usage = func() {
		printUsage(fs, os.Stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	// Global flags
	cws, err := config.LoadWithSources(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := cws.Config
	if *help {
		printUsage(fs, stdout)
		return nil
	}
	if *showVersion {
		return versionCommand()
	}

	// No args or a leading flag means the default command.
	subcommand := "tui"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 && !strings.HasPrefix(remainingArgs[0], "-") {
		subcommand = remainingArgs[0]
		remainingArgs = remainingArgs[1:]
	}

	switch subcommand {
	case "tui":
		return tuiCommand(ctx, cfg, remainingArgs)
	case "render":
		return renderCommand(cfg, remainingArgs)
	case "state":
		return stateCommand(cfg, remainingArgs)
	case "tail":
		return tailCommand(ctx, cfg, remainingArgs)
	case "config":
		return configCommand(cws, remainingArgs)
	case "version", "--version", "-v":
		return versionCommand()
	case "help", "--help", "-h":
		printUsage(fs, stdout)
		return nil
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, os.Stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// tuiCommand runs the interactive screen and saves its state on exit.
func tuiCommand(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("wellness tui", flag.ContinueOnError)
	fresh := fs.Bool("fresh", false, "Ignore saved state for this run")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	runLog, err := logging.NewRunLogger(cfg.LogDir)
	if err != nil {
		return fmt.Errorf("creating run log: %w", err)
	}
	defer runLog.Close()
	logger := logging.NewLogger(runLog.Writer(), logOptions(cfg))
	logger.Info("run started", "run_id", runLog.RunID, "version", Version, "config_files", cfg.Files)

	store, err := savedstate.Open(cfg.StateBackend, cfg.StateDir)
	if err != nil {
		return fmt.Errorf("opening state store: %w", err)
	}
	defer store.Close()

	var saved *savedstate.Bundle
	if cfg.Restore && !*fresh {
		saved = loadSaved(store, logger)
	}
	if !cfg.Restore {
		// Nothing is written back either.
		store = nil
	}
	return ui.RunTUI(ctx, ui.OptionsFromConfig(cfg, logger), store, saved)
}

// renderCommand prints a single frame without a terminal.
func renderCommand(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("wellness render", flag.ContinueOnError)
	rows := fs.Int("rows", cfg.VisibleRows, "Number of task rows to show (0 = default)")
	fresh := fs.Bool("fresh", false, "Ignore saved state")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if *rows < 0 {
		return fmt.Errorf("-rows must not be negative, got %d", *rows)
	}

	logger := logging.NewLogger(os.Stderr, logging.Options{Level: "warn", Prefix: "wellness"})
	var saved *savedstate.Bundle
	if cfg.Restore && !*fresh {
		store, err := savedstate.Open(cfg.StateBackend, cfg.StateDir)
		if err != nil {
			return fmt.Errorf("opening state store: %w", err)
		}
		saved = loadSaved(store, logger)
		store.Close()
	}

	opts := ui.OptionsFromConfig(cfg, logger)
	opts.VisibleRows = *rows
	return ui.Render(stdout, opts, saved)
}

// loadSaved returns the saved bundle, or nil when there is none or it
// cannot be used. Problems are logged, never returned.
func loadSaved(store savedstate.Store, logger *log.Logger) *savedstate.Bundle {
	b, err := store.Load()
	var verr *savedstate.ValidationError
	switch {
	case err == nil:
		logger.Info("state loaded", "location", store.Location(), "keys", b.Len())
		return b
	case errors.Is(err, savedstate.ErrNoState):
		logger.Info("no saved state", "location", store.Location())
	case errors.As(err, &verr):
		logger.Warn("ignoring invalid saved state", "location", store.Location(), "path", verr.Path, "err", verr.Err)
	default:
		logger.Warn("ignoring unreadable saved state", "location", store.Location(), "err", err)
	}
	return nil
}

// stateCommand shows or clears the saved bundle.
func stateCommand(cfg *config.Config, args []string) error {
	action := "show"
	if len(args) > 0 {
		action = args[0]
		args = args[1:]
	}
	if len(args) > 0 {
		return fmt.Errorf("unexpected arguments: %v", args)
	}

	store, err := savedstate.Open(cfg.StateBackend, cfg.StateDir)
	if err != nil {
		return fmt.Errorf("opening state store: %w", err)
	}
	defer store.Close()

	switch action {
	case "show":
		b, err := store.Load()
		if errors.Is(err, savedstate.ErrNoState) {
			fmt.Fprintf(stdout, "No saved state in %s\n", store.Location())
			return nil
		}
		if err != nil {
			return fmt.Errorf("loading state: %w", err)
		}
		data, err := json.MarshalIndent(b, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding state: %w", err)
		}
		fmt.Fprintf(stdout, "State: %s\n", store.Location())
		fmt.Fprintln(stdout, string(data))
		return nil
	case "reset":
		if err := store.Clear(); err != nil {
			return fmt.Errorf("clearing state: %w", err)
		}
		fmt.Fprintf(stdout, "Cleared saved state in %s\n", store.Location())
		return nil
	default:
		return fmt.Errorf("unknown state action: %s (expected show|reset)", action)
	}
}

// tailCommand tails the latest run log.
func tailCommand(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("wellness tail", flag.ContinueOnError)
	follow := fs.Bool("f", false, "Follow the log (like tail -f)")
	fs.BoolVar(follow, "follow", false, "Follow the log (like tail -f)")
	n := fs.Int("n", 0, "Number of lines to show (0 = all)")
	list := fs.Bool("list", false, "List run logs instead of tailing")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *list {
		runs, err := logging.FindLogRuns(cfg.LogDir)
		if err != nil {
			return fmt.Errorf("listing logs: %w", err)
		}
		if len(runs) == 0 {
			fmt.Fprintln(stdout, "No log files found.")
			return nil
		}
		tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
		for _, run := range runs {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", run.RunID, run.ModTime.Format("2006-01-02 15:04:05"), run.Path)
		}
		return tw.Flush()
	}

	logPath, err := logging.FindLatestLog(cfg.LogDir)
	if err != nil {
		return fmt.Errorf("finding latest log: %w", err)
	}
	if logPath == "" {
		fmt.Fprintln(stdout, "No log files found.")
		return nil
	}

	fmt.Fprintf(stdout, "Tailing: %s\n", logPath)
	if *follow {
		fmt.Fprintln(stdout, "(Ctrl+C to stop)")
	}
	fmt.Fprintln(stdout)

	return logging.TailLog(ctx, stdout, logPath, *n, *follow)
}

// configCommand prints the effective configuration and where each value
// came from.
func configCommand(cws *config.ConfigWithSources, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected arguments: %v", args)
	}
	cfg := cws.Config
	if len(cfg.Files) == 0 {
		fmt.Fprintln(stdout, "Config files: (none)")
	} else {
		fmt.Fprintf(stdout, "Config files: %s\n", strings.Join(cfg.Files, ", "))
	}
	fmt.Fprintln(stdout)

	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	for _, field := range config.Fields() {
		fmt.Fprintf(tw, "%s\t%s\t(%s)\n", field, cfg.Value(field), cws.Sources[field])
	}
	return tw.Flush()
}

func logOptions(cfg *config.Config) logging.Options {
	opts := logging.DefaultOptions()
	opts.Level = cfg.LogLevel
	opts.Format = cfg.LogFormat
	opts.ReportTimestamp = cfg.LogTimestamps
	opts.ReportCaller = cfg.LogCaller
	return opts
}

// versionCommand prints version information.
func versionCommand() error {
	fmt.Fprintf(stdout, "wellness version %s (%s, %s/%s)\n", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	return nil
}

// printUsage prints the usage message.
func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "Wellness - water counter and task checklist")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  wellness [options] [command]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  tui           Run the interactive screen (default command)")
	fmt.Fprintln(w, "  render        Print one frame of the screen")
	fmt.Fprintln(w, "  state [show|reset]  Show or clear the saved state")
	fmt.Fprintln(w, "  tail          Tail the latest log file")
	fmt.Fprintln(w, "  config        Show the effective configuration")
	fmt.Fprintln(w, "  version       Show version information")
	fmt.Fprintln(w, "  help          Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "TUI Options (use with 'tui' command):")
	fmt.Fprintln(w, "  -fresh")
	fmt.Fprintln(w, "        Ignore saved state for this run")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render Options (use with 'render' command):")
	fmt.Fprintln(w, "  -rows int")
	fmt.Fprintln(w, "        Number of task rows to show")
	fmt.Fprintln(w, "  -fresh")
	fmt.Fprintln(w, "        Ignore saved state")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Tail Options (use with 'tail' command):")
	fmt.Fprintln(w, "  -f, --follow")
	fmt.Fprintln(w, "        Follow the log (like tail -f)")
	fmt.Fprintln(w, "  -n int")
	fmt.Fprintln(w, "        Number of lines to show (0 = all)")
	fmt.Fprintln(w, "  -list")
	fmt.Fprintln(w, "        List run logs instead of tailing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Keys:")
	fmt.Fprintln(w, "  +/a add a glass, tab switch focus, space/x check, d close,")
	fmt.Fprintln(w, "  ctrl+r recreate the session, ? help, q quit")
}
