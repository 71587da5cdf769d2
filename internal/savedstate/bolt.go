package savedstate

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	bolt "go.etcd.io/bbolt"
)

const (
	bucketValues = "values"
	bucketMeta   = "meta"

	metaSchemaVersion = "schema_version"
	metaSavedAt       = "saved_at"
)

// BoltStore keeps the bundle in a bbolt database, one key per value.
type BoltStore struct {
	path string
	db   *bolt.DB
}

// OpenBoltStore opens (or creates) the database at path.
func OpenBoltStore(path string) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	db, err := bolt.Open(path, 0644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open state db: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{bucketValues, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize state db: %w", err)
	}
	return &BoltStore{path: path, db: db}, nil
}

// Location returns the database path.
func (s *BoltStore) Location() string { return s.path }

// Load reads the bundle. A database without a schema version has never been
// saved to and yields ErrNoState.
func (s *BoltStore) Load() (*Bundle, error) {
	b := NewBundle()
	found := false
	err := s.db.View(func(tx *bolt.Tx) error {
		meta := tx.Bucket([]byte(bucketMeta))
		v := meta.Get([]byte(metaSchemaVersion))
		if v == nil {
			return nil
		}
		found = true
		version, err := strconv.Atoi(string(v))
		if err != nil {
			return &ValidationError{Path: "schema_version", Err: err}
		}
		b.SchemaVersion = version
		if raw := meta.Get([]byte(metaSavedAt)); raw != nil {
			ts, err := time.Parse(time.RFC3339Nano, string(raw))
			if err != nil {
				return &ValidationError{Path: "saved_at", Err: err}
			}
			b.SavedAt = &ts
		}
		return tx.Bucket([]byte(bucketValues)).ForEach(func(k, v []byte) error {
			n, err := strconv.Atoi(string(v))
			if err != nil {
				return &ValidationError{Path: "values." + string(k), Err: err}
			}
			b.Values[string(k)] = n
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("read state db: %w", err)
	}
	if !found {
		return nil, ErrNoState
	}
	if err := Validate(b); err != nil {
		return nil, fmt.Errorf("validate state db %s: %w", s.path, err)
	}
	return b, nil
}

// Save replaces the stored bundle in a single transaction.
func (s *BoltStore) Save(b *Bundle) error {
	if err := Validate(b); err != nil {
		return fmt.Errorf("refusing to save invalid bundle: %w", err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := resetBuckets(tx); err != nil {
			return err
		}
		values := tx.Bucket([]byte(bucketValues))
		for k, v := range b.Values {
			if err := values.Put([]byte(k), []byte(strconv.Itoa(v))); err != nil {
				return err
			}
		}
		meta := tx.Bucket([]byte(bucketMeta))
		if err := meta.Put([]byte(metaSchemaVersion), []byte(strconv.Itoa(b.SchemaVersion))); err != nil {
			return err
		}
		if b.SavedAt != nil {
			return meta.Put([]byte(metaSavedAt), []byte(b.SavedAt.UTC().Format(time.RFC3339Nano)))
		}
		return nil
	})
}

// Clear empties both buckets.
func (s *BoltStore) Clear() error {
	return s.db.Update(resetBuckets)
}

// Close closes the database.
func (s *BoltStore) Close() error {
	return s.db.Close()
}

func resetBuckets(tx *bolt.Tx) error {
	for _, name := range []string{bucketValues, bucketMeta} {
		if err := tx.DeleteBucket([]byte(name)); err != nil && err != bolt.ErrBucketNotFound {
			return err
		}
		if _, err := tx.CreateBucket([]byte(name)); err != nil {
			return err
		}
	}
	return nil
}
