package dynamics

import (
	"testing"

	"github.com/san-kum/lbmcore/internal/descriptor"
)

func TestRegistryResolvesAllVariants(t *testing.T) {
	r := NewRegistry()
	names := []string{
		"bgk", "externalmoment", "incbgk", "constrho", "chopard",
		"regularized", "rlb", "entropic", "forcedentropic",
	}
	for _, name := range names {
		dyn, err := r.Get(name, descriptor.D2Q9, map[string]float64{"omega": 1.0, "vs2": 1.0 / 3.0})
		if err != nil {
			t.Errorf("Get(%q): %v", name, err)
			continue
		}
		if dyn == nil {
			t.Errorf("Get(%q) returned nil dynamics", name)
		}
		if dyn.Descriptor() != descriptor.D2Q9 {
			t.Errorf("Get(%q) built dynamics for the wrong descriptor", name)
		}
	}
}

func TestRegistryUnknownName(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Get("nonexistent", descriptor.D2Q9, nil); err == nil {
		t.Fatal("expected an error for an unknown dynamics name")
	}
}

func TestRegistryNamesMatchesRegistered(t *testing.T) {
	r := NewRegistry()
	names := r.Names()
	if len(names) != 9 {
		t.Errorf("Names() returned %d entries, want 9", len(names))
	}
	seen := make(map[string]bool)
	for _, n := range names {
		seen[n] = true
	}
	for _, want := range []string{"bgk", "rlb", "entropic", "forcedentropic"} {
		if !seen[want] {
			t.Errorf("Names() missing %q", want)
		}
	}
}
