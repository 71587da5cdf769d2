package savedstate

import (
	"fmt"

	"github.com/nibzard/wellness-go/internal/wellnessdir"
)

// Backend names accepted by Open.
const (
	BackendFile = "file"
	BackendBolt = "bolt"
)

// Store persists a single Bundle between sessions.
type Store interface {
	// Load returns the saved bundle, or ErrNoState when nothing is saved.
	Load() (*Bundle, error)
	// Save replaces the saved bundle.
	Save(b *Bundle) error
	// Clear removes the saved bundle. Clearing an empty store is not an error.
	Clear() error
	// Location describes where the bundle lives, for display.
	Location() string
	Close() error
}

// Open opens the store for the given backend inside dir.
func Open(backend, dir string) (Store, error) {
	switch backend {
	case BackendFile, "":
		return NewFileStore(wellnessdir.StateFilePath(dir)), nil
	case BackendBolt:
		return OpenBoltStore(wellnessdir.StateDBPath(dir))
	default:
		return nil, fmt.Errorf("unknown state backend %q (expected %s|%s)", backend, BackendFile, BackendBolt)
	}
}
