package config

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Descriptor != "D3Q19" {
		t.Errorf("expected descriptor D3Q19, got %s", cfg.Descriptor)
	}
	if cfg.Omega <= 0 {
		t.Error("omega should be positive")
	}
	if cfg.Steps <= 0 {
		t.Error("steps should be positive")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("lid_driven_cavity", "low_re")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Omega != 1.8 {
		t.Errorf("expected omega 1.8, got %f", cfg.Omega)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	cfg := GetPreset("lid_driven_cavity", "nonexistent")
	if cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}

	cfg = GetPreset("nonexistent", "low_re")
	if cfg != nil {
		t.Error("expected nil for nonexistent scenario")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("lid_driven_cavity")
	if len(presets) == 0 {
		t.Error("expected presets for lid_driven_cavity")
	}

	presets = ListPresets("nonexistent")
	if presets != nil {
		t.Error("expected nil for nonexistent scenario")
	}
}

func TestDynamicsParams(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Omega = 1.5
	cfg.Vs2 = 0.4
	params := cfg.DynamicsParams()
	if params["omega"] != 1.5 || params["vs2"] != 0.4 {
		t.Errorf("unexpected dynamics params: %+v", params)
	}
}
