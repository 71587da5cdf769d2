package savedstate

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBundleAccessors(t *testing.T) {
	var zero Bundle
	zero.PutInt("x", 1)
	if v, ok := zero.Int("x"); !ok || v != 1 {
		t.Errorf("Int on zero-value bundle after PutInt = %d, %v", v, ok)
	}

	b := NewBundle()
	if _, ok := b.Int("missing"); ok {
		t.Error("Int(missing) reported ok")
	}
	b.PutInt("b.key", 2)
	b.PutInt("a.key", 1)
	if diff := cmp.Diff([]string{"a.key", "b.key"}, b.Keys()); diff != "" {
		t.Errorf("Keys mismatch (-want +got):\n%s", diff)
	}
	b.Delete("a.key")
	if b.Len() != 1 {
		t.Errorf("Len() = %d, want 1", b.Len())
	}

	var nilBundle *Bundle
	if _, ok := nilBundle.Int("x"); ok {
		t.Error("Int on nil bundle reported ok")
	}
	if nilBundle.Len() != 0 {
		t.Error("Len on nil bundle")
	}
}

func TestValidate(t *testing.T) {
	b := NewBundle()
	b.PutInt("water_counter.count", 0)
	b.Stamp()
	if err := Validate(b); err != nil {
		t.Errorf("valid bundle rejected: %v", err)
	}
	if err := Validate(nil); err == nil {
		t.Error("nil bundle accepted")
	}
}

func TestJSONPointerToPath(t *testing.T) {
	tests := map[string]string{
		"":                            "",
		"/":                           "",
		"/values/water_counter.count": "values.water_counter.count",
		"#/a/0/b":                     "a[0].b",
		"/a~1b/c~0d":                  "a/b.c~d",
	}
	for in, want := range tests {
		if got := jsonPointerToPath(in); got != want {
			t.Errorf("jsonPointerToPath(%q) = %q, want %q", in, got, want)
		}
	}
}
