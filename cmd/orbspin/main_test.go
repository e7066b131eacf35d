package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/orbspin/internal/config"
)

func parse(t *testing.T, args ...string) *config.Config {
	t.Helper()
	root := newRootCmd()
	cmd, _, err := root.Find([]string{"analyze"})
	if err != nil {
		t.Fatal(err)
	}
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("parse %v: %v", args, err)
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		t.Fatalf("loadConfig %v: %v", args, err)
	}
	return cfg
}

func TestLoadConfig_Precedence(t *testing.T) {
	cfg := parse(t)
	if cfg.NumBodies != config.DefaultBodies || cfg.Plot.Theme != "minimal" {
		t.Errorf("defaults not applied: %+v", cfg)
	}

	cfg = parse(t, "--preset", "binary/tidal")
	if cfg.MaxPoints != 10000 || !cfg.TrackAxes || cfg.Plot.Theme != "ocean" {
		t.Errorf("preset not applied: %+v", cfg)
	}

	cfg = parse(t, "--preset", "binary/tidal", "--max-points", "300", "--frame", "total")
	if cfg.MaxPoints != 300 || cfg.PrecessionFrame != config.FrameTotal || cfg.NumBodies != 2 {
		t.Errorf("flags should override the preset: %+v", cfg)
	}

	path := filepath.Join(t.TempDir(), "c.yaml")
	if err := os.WriteFile(path, []byte("num_bodies: 4\nfile_root: runs/a\nplot:\n  res_j: 5\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg = parse(t, "--config", path, "--res-dj", "2")
	if cfg.NumBodies != 4 || cfg.Plot.ResJ != 5 || cfg.Plot.ResDJ != 2 {
		t.Errorf("config file or flag not applied: %+v", cfg)
	}
	root, err := fileRoot(cfg, nil)
	if err != nil || root != "runs/a" {
		t.Errorf("file root %q, %v", root, err)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	for _, args := range [][]string{
		{"--preset", "binary/none"},
		{"--frame", "ecliptic"},
		{"--config", filepath.Join(t.TempDir(), "missing.yaml")},
	} {
		root := newRootCmd()
		cmd, _, _ := root.Find([]string{"analyze"})
		if err := cmd.ParseFlags(args); err != nil {
			t.Fatal(err)
		}
		if _, err := loadConfig(cmd); err == nil {
			t.Errorf("%v: expected error", args)
		}
	}
	if _, err := fileRoot(config.DefaultConfig(), nil); err == nil {
		t.Error("expected error without a file root")
	}
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Plot.Theme = "retro"
	cfg.Plot.Width = 50
	cfg.Spectral.MedianBox = 11
	if o := renderOptions(cfg); o.Theme.Name != "retro" || o.Width != 50 {
		t.Errorf("render options %+v", o)
	}
	if o := panelOptions(cfg); o.MedianBox != 11 || o.ResJ != 2 {
		t.Errorf("panel options %+v", o)
	}
	if o := pipelineOptions(cfg, nil, nil); o.MaxPoints != cfg.MaxPoints || o.PrecessionFrame != config.FrameXY {
		t.Errorf("pipeline options %+v", o)
	}
}
