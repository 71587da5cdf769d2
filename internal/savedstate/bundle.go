// Package savedstate stores the small set of UI values that survive a
// session recreation.
//
// A Bundle is a flat map of explicit string keys to integers. Components write
// their restorable values under stable keys (for example "water_counter.count")
// when a session ends and read them back when the next session starts. Anything
// not written to a Bundle is session-scoped and rebuilt from scratch.
package savedstate

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// SchemaVersion is the current bundle format version.
const SchemaVersion = 1

// ErrNoState is returned by Store.Load when nothing has been saved yet.
var ErrNoState = errors.New("no saved state")

// Bundle is a flat key/value snapshot of restorable UI state.
type Bundle struct {
	SchemaVersion int            `json:"schema_version"`
	SavedAt       *time.Time     `json:"saved_at,omitempty"`
	Values        map[string]int `json:"values"`
}

// NewBundle returns an empty bundle at the current schema version.
func NewBundle() *Bundle {
	return &Bundle{
		SchemaVersion: SchemaVersion,
		Values:        make(map[string]int),
	}
}

// PutInt stores v under key, replacing any previous value.
func (b *Bundle) PutInt(key string, v int) {
	if b.Values == nil {
		b.Values = make(map[string]int)
	}
	b.Values[key] = v
}

// Int returns the value stored under key.
func (b *Bundle) Int(key string) (int, bool) {
	if b == nil || b.Values == nil {
		return 0, false
	}
	v, ok := b.Values[key]
	return v, ok
}

// Delete removes key from the bundle.
func (b *Bundle) Delete(key string) {
	if b == nil {
		return
	}
	delete(b.Values, key)
}

// Keys returns the stored keys in sorted order.
func (b *Bundle) Keys() []string {
	if b == nil {
		return nil
	}
	keys := make([]string, 0, len(b.Values))
	for k := range b.Values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of stored values.
func (b *Bundle) Len() int {
	if b == nil {
		return 0
	}
	return len(b.Values)
}

// Stamp sets SavedAt to now in UTC.
func (b *Bundle) Stamp() {
	now := time.Now().UTC()
	b.SavedAt = &now
}

// ValidationError represents a bundle rejected by the schema.
type ValidationError struct {
	Path string // dotted path to the offending value
	Err  error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
