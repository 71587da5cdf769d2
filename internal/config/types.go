package config

import (
	"github.com/nibzard/wellness-go/internal/savedstate"
	"github.com/nibzard/wellness-go/internal/wellness"
	"github.com/nibzard/wellness-go/internal/wellnessdir"
)

// ConfigSource represents where a configuration value came from.
type ConfigSource string

const (
	SourceDefault  ConfigSource = "default"
	SourceUserFile ConfigSource = "user file"
	SourceProjFile ConfigSource = "project file"
	SourceEnv      ConfigSource = "environment"
	SourceFlag     ConfigSource = "flag"
)

// ConfigWithSources holds configuration along with source information for each field.
type ConfigWithSources struct {
	Config  *Config
	Sources map[string]ConfigSource
}

// Counter modes.
const (
	// CounterModeSelf renders the counter with its own internal state.
	CounterModeSelf = "self"
	// CounterModeHoisted keeps the count in a parent and passes it down.
	CounterModeHoisted = "hoisted"
)

// Default values.
const (
	DefaultTaskCount    = wellness.DefaultTaskCount
	DefaultCounterMax   = wellness.DefaultCounterMax
	DefaultCounterMode  = CounterModeHoisted
	DefaultStateDir     = "~/" + wellnessdir.Dir
	DefaultStateBackend = savedstate.BackendFile
	DefaultLogDir       = "~/" + wellnessdir.Dir + "/" + wellnessdir.LogsDir
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "text"
)

// Config holds the full configuration for wellness.
type Config struct {
	// Screen
	TaskCount   int    `toml:"task_count"`
	CounterMax  int    `toml:"counter_max"`
	CounterMode string `toml:"counter_mode"`
	VisibleRows int    `toml:"visible_rows"` // 0 fits the terminal height

	// Restorable state
	Restore        bool   `toml:"restore"`
	RestoreCounter bool   `toml:"restore_counter"`
	StateDir       string `toml:"state_dir"`
	StateBackend   string `toml:"state_backend"`

	// Logging configuration
	LogDir        string `toml:"log_dir"`
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`

	// Config files that were applied, lowest priority first (computed)
	Files []string `toml:"-"`
}

// configFields returns the list of configurable field names for source tracking.
func configFields() []string {
	return []string{
		"task_count",
		"counter_max",
		"counter_mode",
		"visible_rows",
		"restore",
		"restore_counter",
		"state_dir",
		"state_backend",
		"log_dir",
		"log_level",
		"log_format",
		"log_timestamps",
		"log_caller",
	}
}

// Fields returns the configurable field names in display order.
func Fields() []string {
	return configFields()
}
