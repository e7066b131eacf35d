package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.MaxPoints != 5000 {
		t.Errorf("expected max_points 5000, got %d", cfg.MaxPoints)
	}
	if math.Abs(cfg.AngleScale-180/math.Pi) > 1e-15 {
		t.Errorf("expected degrees, got scale %f", cfg.AngleScale)
	}
	if cfg.ResolvedMass != 1 {
		t.Errorf("expected resolved mass 1, got %f", cfg.ResolvedMass)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoad_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	data := "file_root: run1\nnum_bodies: 3\nplot:\n  tmax: 200\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.FileRoot != "run1" || cfg.NumBodies != 3 || cfg.Plot.TMax != 200 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.MaxPoints != DefaultMaxPoints || cfg.Spectral.MedianBox != DefaultMedianBox {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	want := DefaultConfig()
	want.TrackAxes = true
	want.PrecessionFrame = FrameTotal

	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !got.TrackAxes || got.PrecessionFrame != FrameTotal {
		t.Errorf("round trip lost fields: %+v", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Config)
	}{
		{"no bodies", func(c *Config) { c.NumBodies = 0 }},
		{"zero cap", func(c *Config) { c.MaxPoints = 0 }},
		{"frame", func(c *Config) { c.PrecessionFrame = "galactic" }},
		{"even box", func(c *Config) { c.Spectral.MedianBox = 100 }},
		{"window", func(c *Config) { c.Plot.TMin, c.Plot.TMax = 10, 5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mod(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("phobos", "mars_deimos")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.NumBodies != 2 {
		t.Errorf("expected 2 bodies, got %d", cfg.NumBodies)
	}
	if len(cfg.Plot.Palette) == 0 {
		t.Error("expected default palette")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("preset invalid: %v", err)
	}

	cfg.NumBodies = 9
	if Presets["phobos"]["mars_deimos"].NumBodies != 2 {
		t.Error("GetPreset must return a copy")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("phobos", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "mars"); cfg != nil {
		t.Error("expected nil for nonexistent system")
	}
}

func TestListPresets(t *testing.T) {
	for _, sys := range ListSystems() {
		names := ListPresets(sys)
		if len(names) == 0 {
			t.Errorf("expected presets for %s", sys)
		}
		for _, n := range names {
			if err := GetPreset(sys, n).Validate(); err != nil {
				t.Errorf("%s/%s: %v", sys, n, err)
			}
		}
	}
	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for nonexistent system")
	}
}
