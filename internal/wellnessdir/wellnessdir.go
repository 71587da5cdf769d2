// Package wellnessdir names the files kept in the .wellness directory.
package wellnessdir

import "path/filepath"

const (
	// Dir is the name of the wellness state directory.
	Dir = ".wellness"

	// ConfigFile is the config file name, inside Dir or a project root.
	ConfigFile = "wellness.toml"

	// ProjectConfigFile is the hidden variant accepted in a project root.
	ProjectConfigFile = ".wellness.toml"

	// StateFile holds the JSON bundle of the file backend.
	StateFile = "state.json"

	// StateDB holds the bundle of the bolt backend.
	StateDB = "state.db"

	// LogsDir is the run log directory, inside Dir.
	LogsDir = "logs"
)

// DirPath returns the .wellness directory within base. An empty base means
// the home directory shorthand "~".
func DirPath(base string) string {
	if base == "" {
		base = "~"
	}
	return join(base, Dir)
}

// ConfigPath returns the config file path within base's .wellness directory.
func ConfigPath(base string) string {
	return join(DirPath(base), ConfigFile)
}

// StateFilePath returns the path of the JSON bundle inside stateDir.
func StateFilePath(stateDir string) string {
	return filepath.Join(stateDir, StateFile)
}

// StateDBPath returns the path of the bolt database inside stateDir.
func StateDBPath(stateDir string) string {
	return filepath.Join(stateDir, StateDB)
}

// join keeps a leading "~" intact so callers can expand it later.
func join(base, name string) string {
	if base == "~" {
		return "~/" + name
	}
	return filepath.Join(base, name)
}
