package savedstate

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func openStores(t *testing.T) map[string]Store {
	t.Helper()
	stores := make(map[string]Store)
	for _, backend := range []string{BackendFile, BackendBolt} {
		s, err := Open(backend, t.TempDir())
		if err != nil {
			t.Fatalf("Open(%q): %v", backend, err)
		}
		t.Cleanup(func() { s.Close() })
		stores[backend] = s
	}
	return stores
}

func TestStoreRoundTrip(t *testing.T) {
	for name, s := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := s.Load(); !errors.Is(err, ErrNoState) {
				t.Fatalf("Load on empty store: got %v, want ErrNoState", err)
			}

			b := NewBundle()
			b.PutInt("water_counter.count", 7)
			b.PutInt("task_list.anchor", 12)
			b.Stamp()
			if err := s.Save(b); err != nil {
				t.Fatalf("Save: %v", err)
			}

			got, err := s.Load()
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if diff := cmp.Diff(b.Values, got.Values); diff != "" {
				t.Errorf("values mismatch (-want +got):\n%s", diff)
			}
			if got.SchemaVersion != SchemaVersion {
				t.Errorf("SchemaVersion = %d, want %d", got.SchemaVersion, SchemaVersion)
			}
			if got.SavedAt == nil || !got.SavedAt.Equal(*b.SavedAt) {
				t.Errorf("SavedAt = %v, want %v", got.SavedAt, b.SavedAt)
			}
		})
	}
}

func TestStoreSaveReplaces(t *testing.T) {
	for name, s := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			first := NewBundle()
			first.PutInt("a.one", 1)
			first.PutInt("a.two", 2)
			if err := s.Save(first); err != nil {
				t.Fatalf("Save: %v", err)
			}
			second := NewBundle()
			second.PutInt("a.two", 5)
			if err := s.Save(second); err != nil {
				t.Fatalf("Save: %v", err)
			}
			got, err := s.Load()
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if diff := cmp.Diff(map[string]int{"a.two": 5}, got.Values); diff != "" {
				t.Errorf("values mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStoreClear(t *testing.T) {
	for name, s := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			if err := s.Clear(); err != nil {
				t.Fatalf("Clear on empty store: %v", err)
			}
			b := NewBundle()
			b.PutInt("water_counter.count", 3)
			if err := s.Save(b); err != nil {
				t.Fatalf("Save: %v", err)
			}
			if err := s.Clear(); err != nil {
				t.Fatalf("Clear: %v", err)
			}
			if _, err := s.Load(); !errors.Is(err, ErrNoState) {
				t.Errorf("Load after Clear: got %v, want ErrNoState", err)
			}
		})
	}
}

func TestStoreRejectsInvalidBundle(t *testing.T) {
	for name, s := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			b := NewBundle()
			b.PutInt("water_counter.count", -1)
			err := s.Save(b)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Save: got %v, want *ValidationError", err)
			}
			if ve.Path != "values.water_counter.count" {
				t.Errorf("Path = %q", ve.Path)
			}
		})
	}
}

func TestFileStoreLoadCorrupt(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "{not json"},
		{"wrong version", `{"schema_version": 2, "values": {}}`},
		{"missing values", `{"schema_version": 1}`},
		{"string value", `{"schema_version": 1, "values": {"water_counter.count": "3"}}`},
		{"bad key", `{"schema_version": 1, "values": {"Water Counter": 3}}`},
		{"extra field", `{"schema_version": 1, "values": {}, "extra": true}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "state.json")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := NewFileStore(path).Load()
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Load: got %v, want *ValidationError", err)
			}
		})
	}
}

func TestFileStoreWritesIndentedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.json")
	s := NewFileStore(path)
	b := NewBundle()
	b.PutInt("water_counter.count", 4)
	if err := s.Save(b); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "\n  \"values\"") {
		t.Errorf("expected 2-space indentation, got:\n%s", data)
	}
	if !strings.HasSuffix(string(data), "\n") {
		t.Error("expected trailing newline")
	}
	if s.Location() != path {
		t.Errorf("Location() = %q, want %q", s.Location(), path)
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	_, err := Open("redis", t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "unknown state backend") {
		t.Fatalf("got %v, want unknown backend error", err)
	}
}
