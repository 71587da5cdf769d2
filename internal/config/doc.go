// Package config handles configuration loading and defaults.
//
// Configuration is loaded from multiple sources in priority order:
// 1. Built-in defaults
// 2. User config file (~/.wellness/wellness.toml or OS-specific config directory)
// 3. Project config file (wellness.toml or .wellness.toml in the working directory)
// 4. Environment variables (WELLNESS_*)
// 5. CLI flags
//
// Each level overrides the previous one, so CLI flags take precedence.
//
// User-level config locations:
// - ~/.wellness/wellness.toml (preferred)
// - Windows: %APPDATA%\wellness\wellness.toml
// - macOS: ~/Library/Application Support/wellness/wellness.toml
// - Linux/BSD: $XDG_CONFIG_HOME/wellness/wellness.toml or ~/.config/wellness/wellness.toml
//
// Project-level config locations (overrides user config):
// - ./wellness.toml (preferred)
// - ./.wellness.toml
package config
