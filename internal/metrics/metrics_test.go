package metrics

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEnergyDrift(t *testing.T) {
	m := NewEnergyDrift()
	Feed(m, []float64{0, 1, 2}, []float64{-2, -2.1, -1.95})

	if math.Abs(m.Value()-0.05) > 1e-12 {
		t.Errorf("expected drift 0.05, got %f", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero drift after reset")
	}
}

func TestMeanAbs(t *testing.T) {
	m := NewMeanAbs("rate")
	if m.Value() != 0 {
		t.Error("expected zero before samples")
	}
	Feed(m, []float64{0, 1}, []float64{-1, 3})
	if m.Value() != 2 {
		t.Errorf("expected 2, got %f", m.Value())
	}
}

func TestStability(t *testing.T) {
	m := NewStability("s", 0.5)
	if m.Value() != 1 {
		t.Error("expected 1 before samples")
	}
	Feed(m, []float64{0, 1, 2, 3}, []float64{0.1, 0.6, -0.2, math.NaN()})
	if m.Value() != 0.5 {
		t.Errorf("expected 0.5, got %f", m.Value())
	}
}

func TestSummarize(t *testing.T) {
	out := Summarize(Series{
		Time: []float64{0, 1},
		ETot: []float64{1, 1},
		DEDt: []float64{0, 0},
		Tilt: []float64{0, 1},
	})
	if out["energy_drift"] != 0 || out["mean_abs_dedt"] != 0 || out["principal_fraction"] != 0.5 {
		t.Errorf("unexpected summary %v", out)
	}
}

func TestRecorder(t *testing.T) {
	r := NewRecorder()
	r.OnStage("load", 100, 10*time.Millisecond)
	r.OnStage("load", 50, 5*time.Millisecond)
	r.SetStride(2)
	r.SetRun(map[string]float64{"energy_drift": 0.01})

	mfs, err := r.Registry().Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	if len(mfs) != 4 {
		t.Errorf("expected 4 metric families, got %d", len(mfs))
	}

	path := filepath.Join(t.TempDir(), "orbspin.prom")
	if err := r.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		`orbspin_stage_samples_total{stage="load"} 150`,
		"orbspin_stride 2",
		`orbspin_run_metric{metric="energy_drift"} 0.01`,
		"orbspin_stage_duration_seconds_count",
	} {
		if !strings.Contains(string(data), want) {
			t.Errorf("textfile missing %q", want)
		}
	}
}
