package config

import "flag"

// flagFields maps flag names to config field names.
var flagFields = map[string]string{
	"tasks":           "task_count",
	"max":             "counter_max",
	"counter-mode":    "counter_mode",
	"rows":            "visible_rows",
	"restore":         "restore",
	"restore-counter": "restore_counter",
	"state-dir":       "state_dir",
	"state-backend":   "state_backend",
	"log-dir":         "log_dir",
	"log-level":       "log_level",
	"log-format":      "log_format",
	"log-timestamps":  "log_timestamps",
	"log-caller":      "log_caller",
}

// parseFlags defines the config flags on fs, parses args and records which
// flags were set explicitly.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string, sources map[string]ConfigSource) error {
	if fs == nil {
		fs = flag.NewFlagSet("wellness", flag.ContinueOnError)
	}

	// Screen
	fs.IntVar(&cfg.TaskCount, "tasks", cfg.TaskCount, "Number of generated tasks")
	fs.IntVar(&cfg.CounterMax, "max", cfg.CounterMax, "Upper bound of the water counter")
	fs.StringVar(&cfg.CounterMode, "counter-mode", cfg.CounterMode, "Counter ownership (self|hoisted)")
	fs.IntVar(&cfg.VisibleRows, "rows", cfg.VisibleRows, "Visible task rows (0 fits the terminal)")

	// Restorable state
	fs.BoolVar(&cfg.Restore, "restore", cfg.Restore, "Restore saved state on start")
	fs.BoolVar(&cfg.RestoreCounter, "restore-counter", cfg.RestoreCounter, "Keep the counter across session recreation")
	fs.StringVar(&cfg.StateDir, "state-dir", cfg.StateDir, "Saved state directory")
	fs.StringVar(&cfg.StateBackend, "state-backend", cfg.StateBackend, "Saved state backend (file|bolt)")

	// Logging
	fs.StringVar(&cfg.LogDir, "log-dir", cfg.LogDir, "Log directory")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text, json, logfmt)")
	fs.BoolVar(&cfg.LogTimestamps, "log-timestamps", cfg.LogTimestamps, "Show timestamps in logs")
	fs.BoolVar(&cfg.LogCaller, "log-caller", cfg.LogCaller, "Show caller location in logs")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if sources != nil {
		fs.Visit(func(f *flag.Flag) {
			if field, ok := flagFields[f.Name]; ok {
				sources[field] = SourceFlag
			}
		})
	}
	return nil
}
