package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// loadFromEnv overrides config from WELLNESS_* environment variables.
// If sources is non-nil, it tracks the source of each value.
func loadFromEnv(cfg *Config, sources map[string]ConfigSource) error {
	setSource := func(field string) {
		if sources != nil {
			sources[field] = SourceEnv
		}
	}
	envInt := func(name, field string, target *int) error {
		v := os.Getenv(name)
		if v == "" {
			return nil
		}
		i, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		*target = i
		setSource(field)
		return nil
	}
	envString := func(name, field string, target *string) {
		if v := os.Getenv(name); v != "" {
			*target = v
			setSource(field)
		}
	}
	envBool := func(name, field string, target *bool) {
		if v := os.Getenv(name); v != "" {
			*target = boolFromString(v)
			setSource(field)
		}
	}

	if err := envInt("WELLNESS_TASK_COUNT", "task_count", &cfg.TaskCount); err != nil {
		return err
	}
	if err := envInt("WELLNESS_COUNTER_MAX", "counter_max", &cfg.CounterMax); err != nil {
		return err
	}
	if err := envInt("WELLNESS_VISIBLE_ROWS", "visible_rows", &cfg.VisibleRows); err != nil {
		return err
	}
	envString("WELLNESS_COUNTER_MODE", "counter_mode", &cfg.CounterMode)
	envBool("WELLNESS_RESTORE", "restore", &cfg.Restore)
	envBool("WELLNESS_RESTORE_COUNTER", "restore_counter", &cfg.RestoreCounter)
	envString("WELLNESS_STATE_DIR", "state_dir", &cfg.StateDir)
	envString("WELLNESS_STATE_BACKEND", "state_backend", &cfg.StateBackend)

	// Logging configuration
	envString("WELLNESS_LOG_DIR", "log_dir", &cfg.LogDir)
	envString("WELLNESS_LOG_LEVEL", "log_level", &cfg.LogLevel)
	envString("WELLNESS_LOG_FORMAT", "log_format", &cfg.LogFormat)
	envBool("WELLNESS_LOG_TIMESTAMPS", "log_timestamps", &cfg.LogTimestamps)
	envBool("WELLNESS_LOG_CALLER", "log_caller", &cfg.LogCaller)
	return nil
}

func boolFromString(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "1" || s == "true" || s == "yes" || s == "on"
}
