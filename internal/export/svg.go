package export

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/san-kum/orbspin/internal/viz"
)

// SVGOptions lays out the figure. Panels are stacked in two columns.
type SVGOptions struct {
	PanelWidth  int
	PanelHeight int
	Palette     []string // SVG colour names or #rrggbb
	Background  string
}

func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		PanelWidth:  480,
		PanelHeight: 180,
		Palette:     []string{"blue", "red", "green", "magenta", "cyan", "gold", "orange", "purple"},
		Background:  "#ffffff",
	}
}

const (
	margin   = 40
	titleGap = 16
	dotR     = 1.2
)

type frame struct {
	x, y, w, h     float64
	t0, t1, y0, y1 float64
}

func (f frame) px(t, v float64) (float64, float64) {
	x := f.x + (t-f.t0)/(f.t1-f.t0)*f.w
	y := f.y + f.h - (v-f.y0)/(f.y1-f.y0)*f.h
	return x, y
}

// bounds returns the y range to plot, padded by 10% when taken from the data.
func bounds(p viz.Panel) (lo, hi float64, ok bool) {
	if p.YMax > p.YMin {
		return p.YMin, p.YMax, true
	}
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, s := range p.Series {
		for _, v := range s.Y {
			if !math.IsNaN(v) && !math.IsInf(v, 0) {
				lo, hi = math.Min(lo, v), math.Max(hi, v)
			}
		}
	}
	if math.IsInf(lo, 1) {
		return 0, 0, false
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}
	return lo - span*0.1, hi + span*0.1, true
}

// PanelsToSVG draws every panel into one SVG document.
func PanelsToSVG(panels []viz.Panel, o SVGOptions) string {
	if len(o.Palette) == 0 {
		o.Palette = DefaultSVGOptions().Palette
	}
	rows := [2]int{}
	for _, p := range panels {
		rows[p.Column&1]++
	}
	nrows := max(rows[0], rows[1], 1)
	cellW := float64(o.PanelWidth + 2*margin)
	cellH := float64(o.PanelHeight + margin + titleGap)
	width, height := 2*cellW, float64(nrows)*cellH

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f" font-family="sans-serif" font-size="11">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, o.Background)

	next := [2]int{}
	for _, p := range panels {
		col := p.Column & 1
		row := next[col]
		next[col]++
		writePanel(&sb, p, o, float64(col)*cellW+margin, float64(row)*cellH+titleGap+margin/2)
	}
	sb.WriteString("</svg>\n")
	return sb.String()
}

func writePanel(sb *strings.Builder, p viz.Panel, o SVGOptions, x, y float64) {
	w, h := float64(o.PanelWidth), float64(o.PanelHeight)
	fmt.Fprintf(sb, `<text x="%.1f" y="%.1f" font-weight="bold">%s</text>
<rect x="%.1f" y="%.1f" width="%.0f" height="%.0f" fill="none" stroke="#888"/>
`, x, y-4, escape(p.Title), x, y, w, h)

	lo, hi, ok := bounds(p)
	if !ok || len(p.Time) < 2 || !(p.Time[len(p.Time)-1] > p.Time[0]) {
		fmt.Fprintf(sb, `<text x="%.1f" y="%.1f" fill="#c00">no data</text>
`, x+w/2-20, y+h/2)
		return
	}
	f := frame{x: x, y: y, w: w, h: h, t0: p.Time[0], t1: p.Time[len(p.Time)-1], y0: lo, y1: hi}
	fmt.Fprintf(sb, `<text x="%.1f" y="%.1f" text-anchor="end">%.4g</text>
<text x="%.1f" y="%.1f" text-anchor="end">%.4g</text>
`, x-4, y+8, hi, x-4, y+h, lo)

	for i, s := range p.Series {
		color := o.Palette[i%len(o.Palette)]
		if p.Kind == viz.KindScatter {
			writeDots(sb, f, p.Time, s.Y, color)
		} else {
			writePath(sb, f, p.Time, s.Y, color)
		}
		fmt.Fprintf(sb, `<text x="%.1f" y="%.1f" fill="%s">%s</text>
`, x+w-90, y+14+float64(i)*12, color, escape(s.Name))
	}
}

// writePath draws a polyline, lifting the pen over NaN gaps.
func writePath(sb *strings.Builder, f frame, t, ys []float64, color string) {
	var d strings.Builder
	pen := false
	for i := 0; i < min(len(t), len(ys)); i++ {
		if math.IsNaN(ys[i]) || math.IsInf(ys[i], 0) {
			pen = false
			continue
		}
		px, py := f.px(t[i], ys[i])
		if pen {
			fmt.Fprintf(&d, " L%.1f,%.1f", px, py)
		} else {
			fmt.Fprintf(&d, " M%.1f,%.1f", px, py)
			pen = true
		}
	}
	if d.Len() == 0 {
		return
	}
	fmt.Fprintf(sb, `<path fill="none" stroke="%s" stroke-width="1.2" d="%s"/>
`, color, strings.TrimSpace(d.String()))
}

func writeDots(sb *strings.Builder, f frame, t, ys []float64, color string) {
	fmt.Fprintf(sb, `<g fill="%s">
`, color)
	for i := 0; i < min(len(t), len(ys)); i++ {
		v := ys[i]
		if math.IsNaN(v) || v < f.y0 || v > f.y1 {
			continue
		}
		px, py := f.px(t[i], v)
		fmt.Fprintf(sb, `<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, px, py, dotR)
	}
	sb.WriteString("</g>\n")
}

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escape(s string) string { return escaper.Replace(s) }

func WriteSVG(w io.Writer, panels []viz.Panel, o SVGOptions) error {
	_, err := io.WriteString(w, PanelsToSVG(panels, o))
	return err
}

func SVGFile(path string, panels []viz.Panel, o SVGOptions) error {
	return toFile(path, func(w io.Writer) error { return WriteSVG(w, panels, o) })
}
