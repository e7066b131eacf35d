package storage

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/san-kum/orbspin/internal/kepler"
	"github.com/san-kum/orbspin/internal/pipeline"
)

func result() *pipeline.Result {
	res := &pipeline.Result{
		Stride:   2,
		Elements: [][]kepler.OrbitalElements{{{SemiMajorAxis: 1}, {SemiMajorAxis: 1.5}}},
		Metrics:  map[string]float64{"energy_drift": 1.5},
		Moments:  pipeline.Moments{I3: 3, I2: 2, I1: 1},
	}
	res.Time = []float64{0, 0.5}
	res.Obliquity = []float64{10, 11}
	res.Spin = []float64{2, 2}
	res.Tilt = []float64{0, 0}
	res.Precession = []float64{0, math.NaN()}
	res.PhiEu = []float64{0, 0}
	res.ThetaEu = []float64{0, 0}
	res.BPhiEu = []float64{0, 0}
	res.ETot = []float64{-1, -1}
	res.DEDt = []float64{0, 0}
	return res
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save("data/run1", result())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Source != "data/run1" || meta.Samples != 2 || meta.Stride != 2 || meta.NumBodies != 1 {
		t.Errorf("unexpected metadata %+v", meta)
	}
	if meta.Metrics["energy_drift"] != 1.5 || meta.Moments.I1 != 1 {
		t.Errorf("metrics/moments not kept: %+v", meta)
	}

	tab, err := st.LoadSeries(runID)
	if err != nil {
		t.Fatalf("load series failed: %v", err)
	}
	if len(tab.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(tab.Rows))
	}
	if a := tab.Column("a0"); len(a) != 2 || a[1] != 1.5 {
		t.Errorf("a0 column %v", a)
	}
	if p := tab.Column("precession"); !math.IsNaN(p[1]) {
		t.Errorf("expected NaN precession, got %v", p[1])
	}
	if tab.Column("nope") != nil {
		t.Error("expected nil for a missing column")
	}
}

func TestStoreList(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)
	clock := time.Unix(1000, 0)
	st.now = func() time.Time { return clock }

	first, err := st.Save("run", result())
	if err != nil {
		t.Fatal(err)
	}
	second, err := st.Save("run", result())
	if err != nil {
		t.Fatal(err)
	}
	if first == second {
		t.Fatalf("run IDs collide: %s", first)
	}
	if err := os.Mkdir(filepath.Join(dir, "junk"), 0755); err != nil {
		t.Fatal(err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Errorf("expected 2 runs, got %d", len(runs))
	}
}

func TestStoreList_Missing(t *testing.T) {
	runs, err := New(filepath.Join(t.TempDir(), "none")).List()
	if err != nil || len(runs) != 0 {
		t.Errorf("expected empty list, got %v, %v", runs, err)
	}
}
