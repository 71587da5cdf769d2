package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/nibzard/wellness-go/internal/savedstate"
	"github.com/nibzard/wellness-go/internal/wellnessdir"
)

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. User config file (~/.wellness/wellness.toml or OS-specific config dir)
// 3. Project config file (wellness.toml or .wellness.toml in current directory)
// 4. Environment variables
// 5. CLI flags
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cws, err := load(fs, args, nil)
	if err != nil {
		return nil, err
	}
	return cws.Config, nil
}

// LoadWithSources loads configuration and tracks the source of each value.
// Returns ConfigWithSources containing the config and a map of field names to their sources.
func LoadWithSources(fs *flag.FlagSet, args []string) (*ConfigWithSources, error) {
	sources := make(map[string]ConfigSource)
	for _, field := range configFields() {
		sources[field] = SourceDefault
	}
	return load(fs, args, sources)
}

func load(fs *flag.FlagSet, args []string, sources map[string]ConfigSource) (*ConfigWithSources, error) {
	cfg := &Config{}

	// 1. Set defaults
	setDefaults(cfg)

	// 2. Try to load from user config file
	if path := findUserConfigFile(); path != "" {
		if err := loadConfigFile(cfg, path, sources, SourceUserFile); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", path, err)
		}
	}

	// 3. Try to load from project config file (overrides user config)
	if path := findProjectConfigFile(); path != "" {
		if err := loadConfigFile(cfg, path, sources, SourceProjFile); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", path, err)
		}
	}

	// 4. Override from environment
	if err := loadFromEnv(cfg, sources); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	// 5. Parse CLI flags (they override everything)
	if err := parseFlags(cfg, fs, args, sources); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	// 6. Compute derived values
	finalizeConfig(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &ConfigWithSources{Config: cfg, Sources: sources}, nil
}

func setDefaults(cfg *Config) {
	cfg.TaskCount = DefaultTaskCount
	cfg.CounterMax = DefaultCounterMax
	cfg.CounterMode = DefaultCounterMode
	cfg.VisibleRows = 0
	cfg.Restore = true
	cfg.RestoreCounter = true
	cfg.StateDir = DefaultStateDir
	cfg.StateBackend = DefaultStateBackend
	cfg.LogDir = DefaultLogDir
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
}

// loadConfigFile decodes a TOML file on top of cfg. Only keys present in the
// file are recorded in sources.
func loadConfigFile(cfg *Config, path string, sources map[string]ConfigSource, source ConfigSource) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	cfg.Files = append(cfg.Files, path)
	if sources == nil {
		return nil
	}
	for _, field := range configFields() {
		if md.IsDefined(field) {
			sources[field] = source
		}
	}
	return nil
}

func findProjectConfigFile() string {
	for _, name := range []string{wellnessdir.ConfigFile, wellnessdir.ProjectConfigFile} {
		if _, err := os.Stat(name); err == nil {
			if abs, err := filepath.Abs(name); err == nil {
				return abs
			}
			return name
		}
	}
	return ""
}

func findUserConfigFile() string {
	// First try ~/.wellness/wellness.toml
	home, err := os.UserHomeDir()
	if err == nil {
		userConfigPath := wellnessdir.ConfigPath(home)
		if _, err := os.Stat(userConfigPath); err == nil {
			return userConfigPath
		}
	}

	// If ~/.wellness doesn't exist, try OS-specific config directories
	if cfgDir := osUserConfigDir(); cfgDir != "" {
		userConfigPath := filepath.Join(cfgDir, "wellness", wellnessdir.ConfigFile)
		if _, err := os.Stat(userConfigPath); err == nil {
			return userConfigPath
		}
	}

	return ""
}

// osUserConfigDir returns the OS-specific user config directory.
// Returns empty string if the directory cannot be determined.
func osUserConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		return os.Getenv("APPDATA")
	case "darwin":
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, "Library", "Application Support")
		}
	case "linux", "openbsd", "freebsd", "netbsd":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return xdg
		}
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, ".config")
		}
	}
	return ""
}

// finalizeConfig computes derived values.
func finalizeConfig(cfg *Config) {
	cfg.StateDir = expandPath(cfg.StateDir)
	cfg.LogDir = expandPath(cfg.LogDir)
	cfg.CounterMode = strings.ToLower(strings.TrimSpace(cfg.CounterMode))
	cfg.StateBackend = strings.ToLower(strings.TrimSpace(cfg.StateBackend))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.TaskCount < 0 {
		return fmt.Errorf("task_count must not be negative, got %d", c.TaskCount)
	}
	if c.CounterMax < 1 {
		return fmt.Errorf("counter_max must be at least 1, got %d", c.CounterMax)
	}
	if c.VisibleRows < 0 {
		return fmt.Errorf("visible_rows must not be negative, got %d", c.VisibleRows)
	}
	switch c.CounterMode {
	case CounterModeSelf, CounterModeHoisted:
	default:
		return fmt.Errorf("invalid counter_mode %q (expected %s|%s)", c.CounterMode, CounterModeSelf, CounterModeHoisted)
	}
	switch c.StateBackend {
	case savedstate.BackendFile, savedstate.BackendBolt:
	default:
		return fmt.Errorf("invalid state_backend %q (expected %s|%s)", c.StateBackend, savedstate.BackendFile, savedstate.BackendBolt)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q (expected debug|info|warn|error)", c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json", "logfmt":
	default:
		return fmt.Errorf("invalid log_format %q (expected text|json|logfmt)", c.LogFormat)
	}
	return nil
}

// Value returns the display value of a config field by its TOML name.
func (c *Config) Value(field string) string {
	switch field {
	case "task_count":
		return fmt.Sprint(c.TaskCount)
	case "counter_max":
		return fmt.Sprint(c.CounterMax)
	case "counter_mode":
		return c.CounterMode
	case "visible_rows":
		return fmt.Sprint(c.VisibleRows)
	case "restore":
		return fmt.Sprint(c.Restore)
	case "restore_counter":
		return fmt.Sprint(c.RestoreCounter)
	case "state_dir":
		return c.StateDir
	case "state_backend":
		return c.StateBackend
	case "log_dir":
		return c.LogDir
	case "log_level":
		return c.LogLevel
	case "log_format":
		return c.LogFormat
	case "log_timestamps":
		return fmt.Sprint(c.LogTimestamps)
	case "log_caller":
		return fmt.Sprint(c.LogCaller)
	}
	return ""
}
