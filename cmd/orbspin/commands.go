package main

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/orbspin/internal/analysis"
	"github.com/san-kum/orbspin/internal/config"
	"github.com/san-kum/orbspin/internal/dataio"
	"github.com/san-kum/orbspin/internal/export"
	"github.com/san-kum/orbspin/internal/metrics"
	"github.com/san-kum/orbspin/internal/orbit"
	"github.com/san-kum/orbspin/internal/pipeline"
	"github.com/san-kum/orbspin/internal/series"
	"github.com/san-kum/orbspin/internal/storage"
	"github.com/san-kum/orbspin/internal/viz"
	"github.com/spf13/cobra"
)

type run struct {
	cfg *config.Config
	src string
	res *pipeline.Result
	rec *metrics.Recorder
}

// analyse loads the run named by args and runs the pipeline over it.
func analyse(cmd *cobra.Command, args []string) (*run, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	root, err := fileRoot(cfg, args)
	if err != nil {
		return nil, err
	}

	log := newLogger()
	rec := metrics.NewRecorder()
	src := dataio.Dir{Root: root, NumPoints: cfg.NumBodies}

	start := time.Now()
	res, err := pipeline.Run(cmd.Context(), src, pipelineOptions(cfg, rec, log))
	if err != nil {
		return nil, err
	}
	res.Metrics = metrics.Summarize(metrics.Series{Time: res.Time, ETot: res.ETot, DEDt: res.DEDt, Tilt: res.Tilt})
	rec.SetStride(res.Stride)
	rec.SetRun(res.Metrics)
	log.Debug("analysis complete", "root", root, "elapsed", time.Since(start))

	return &run{cfg: cfg, src: root, res: res, rec: rec}, nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	r, err := analyse(cmd, args)
	if err != nil {
		return err
	}
	res := r.res

	printSummary(r)

	if plotPanels || svgFile != "" {
		panels, err := viz.BuildPanels(res, panelOptions(r.cfg))
		if err != nil {
			return err
		}
		if plotPanels {
			fmt.Println()
			fmt.Print(viz.RenderAll(panels, renderOptions(r.cfg)))
		}
		if svgFile != "" {
			o := export.DefaultSVGOptions()
			if len(r.cfg.Plot.Palette) > 0 {
				o.Palette = r.cfg.Plot.Palette
			}
			if err := export.SVGFile(svgFile, panels, o); err != nil {
				return err
			}
			fmt.Printf("svg: %s\n", svgFile)
		}
	}

	if jsonFile != "" {
		if err := export.JSONFile(jsonFile, r.src, res); err != nil {
			return err
		}
		fmt.Printf("json: %s\n", jsonFile)
	}
	if csvFile != "" {
		if err := export.CSVFile(csvFile, res); err != nil {
			return err
		}
		fmt.Printf("csv: %s\n", csvFile)
	}
	if metricsFile != "" {
		if err := r.rec.WriteTextfile(metricsFile); err != nil {
			return err
		}
		fmt.Printf("metrics: %s\n", metricsFile)
	}
	if save {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(r.src, res)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}
	return nil
}

func printSummary(r *run) {
	res := r.res
	n := res.Len()

	fmt.Printf("root: %s\n", r.src)
	fmt.Printf("samples: %d (stride %d)\n", n, res.Stride)
	fmt.Printf("bodies: %d\n", res.NumBodies())
	fmt.Printf("moments: I3=%.6g I2=%.6g I1=%.6g\n", res.Moments.I3, res.Moments.I2, res.Moments.I1)
	fmt.Printf("asphericity: gamma=%.4g alpha=%.4g qeff=%.4g\n\n",
		res.Asphericity.Last.Gamma, res.Asphericity.Last.Alpha, res.Asphericity.Last.QEff)
	if n == 0 {
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BODY\tA\tE\tI (deg)\t")
	for b, els := range res.Elements {
		el := els[n-1]
		fmt.Fprintf(w, "%d\t%.6g\t%.4g\t%.4f\t\n", b, el.SemiMajorAxis, el.Eccentricity, el.Inclination*180/math.Pi)
	}
	w.Flush()

	fmt.Printf("\nfinal: t=%.6g obliquity=%.4f spin=%.6g J=%.4f deg\n",
		res.Time[n-1], res.Obliquity[n-1], res.Spin[n-1], res.Tilt[n-1]*180/math.Pi)
	fmt.Println("\nmetrics:")
	for _, name := range []string{"energy_drift", "mean_abs_dedt", "principal_fraction"} {
		fmt.Printf("  %s: %.6g\n", name, res.Metrics[name])
	}
}

func viewRun(cmd *cobra.Command, args []string) error {
	r, err := analyse(cmd, args)
	if err != nil {
		return err
	}
	return viz.Run(r.res, panelOptions(r.cfg), renderOptions(r.cfg))
}

func spectrumRun(cmd *cobra.Command, args []string) error {
	r, err := analyse(cmd, args)
	if err != nil {
		return err
	}
	res := r.res

	fmt.Printf("frequency analysis: %s\n\n", r.src)
	lines := []struct {
		name string
		xs   []float64
	}{
		{"precession", analysis.Unwrap(res.Precession)},
		{"obliquity", res.Obliquity},
		{"spin", res.Spin},
		{"tilt", res.Tilt},
	}
	if res.Tilts != nil {
		lines = append(lines, struct {
			name string
			xs   []float64
		}{"lambda1dot", res.Tilts.Lambda1Dot})
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SERIES\tFREQUENCY\tPERIOD\tPOWER\t")
	for _, l := range lines {
		pk, ok := analysis.DominantFrequency(res.Time, l.xs)
		if !ok {
			fmt.Fprintf(w, "%s\t-\t-\t-\t\n", l.name)
			continue
		}
		fmt.Fprintf(w, "%s\t%.6g\t%.6g\t%.4g\t\n", l.name, pk.Frequency, pk.Period, pk.Power)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if showPower && res.Len() >= 4 {
		ps := analysis.PowerSpectrum(analysis.Unwrap(res.Precession))
		graph := asciigraph.Plot(ps[1:max(2, len(ps)/4)],
			asciigraph.Height(15),
			asciigraph.Width(80),
			asciigraph.Caption("power spectrum (precession)"),
		)
		fmt.Println()
		fmt.Println(graph)
	}
	return nil
}

func phaseRun(cmd *cobra.Command, args []string) error {
	r, err := analyse(cmd, args)
	if err != nil {
		return err
	}
	res := r.res
	if res.Tilts == nil {
		return fmt.Errorf("no tilt series")
	}

	cosJ := make([]float64, len(res.Tilt))
	for i, j := range res.Tilt {
		cosJ[i] = math.Cos(j)
	}

	var p *analysis.Portrait
	if section {
		sinM := make([]float64, len(res.Elements[0]))
		for i, el := range res.Elements[0] {
			sinM[i] = math.Sin(el.MeanAnomaly)
		}
		p = analysis.Section(sinM, 0, res.Tilts.Conjugate, cosJ)
		p.XLabel, p.YLabel = "l", "cos J"
	} else {
		p = analysis.NewPortrait("l", "cos J", res.Tilts.Conjugate, cosJ)
	}

	fmt.Printf("phase portrait: %s (%d points)\n\n", r.src, len(p.Points))
	fmt.Println(analysis.PortraitToASCII(p, 70, 20))
	return nil
}

func comRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	root, err := fileRoot(cfg, args)
	if err != nil {
		return err
	}

	c, err := dataio.Dir{Root: root, NumPoints: cfg.NumBodies}.Load(cmd.Context())
	if err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return err
	}
	k := series.Stride(c.Central().Len(), cfg.MaxPoints)
	els, err := orbit.Barycentric(c, target, cfg.GravConst, cfg.ResolvedMass, k)
	if err != nil {
		return err
	}
	t := series.Pick(c.Central().Time, k)

	fmt.Printf("barycentre of the resolved body and centre, relative to point mass %d\n\n", target)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tA\tE\tI (deg)\tNODE (deg)\t")
	step := max(1, len(els)/max(1, rows))
	for i := 0; i < len(els); i += step {
		el := els[i]
		fmt.Fprintf(w, "%.6g\t%.6g\t%.4g\t%.4f\t%.4f\t\n",
			t[i], el.SemiMajorAxis, el.Eccentricity, el.Inclination*180/math.Pi, el.LongNode*180/math.Pi)
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSOURCE\tTIME\tBODIES\tSAMPLES\tSTRIDE\tDRIFT")

	for _, m := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%.3g\n",
			m.ID,
			m.Source,
			m.Timestamp.Format("2006-01-02 15:04:05"),
			m.NumBodies,
			m.Samples,
			m.Stride,
			m.Metrics["energy_drift"],
		)
	}

	return w.Flush()
}
