package viz

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

type RenderOptions struct {
	Width   int
	Height  int
	Palette []string // asciigraph colour names
	Theme   Theme
}

func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Width:   72,
		Height:  10,
		Palette: []string{"blue", "red", "green", "magenta", "cyan", "yellow", "orange", "purple"},
		Theme:   ThemeMinimal,
	}
}

// colors resolves the palette, skipping unknown names.
func (o RenderOptions) colors() []asciigraph.AnsiColor {
	var cs []asciigraph.AnsiColor
	for _, name := range o.Palette {
		if c, ok := asciigraph.ColorNames[strings.ToLower(name)]; ok {
			cs = append(cs, c)
		}
	}
	if len(cs) == 0 {
		cs = []asciigraph.AnsiColor{asciigraph.Default}
	}
	return cs
}

func colorStyle(c asciigraph.AnsiColor) lipgloss.Style {
	if c == asciigraph.Default {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(strconv.Itoa(int(c))))
}

func finite(xs []float64) bool {
	for _, x := range xs {
		if !math.IsNaN(x) && !math.IsInf(x, 0) {
			return true
		}
	}
	return false
}

// RenderPanel draws p as a titled chart.
func RenderPanel(p Panel, o RenderOptions) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(o.Theme.Primary).Render(p.Title)
	var caption string
	if n := len(p.Time); n > 0 {
		caption = fmt.Sprintf("t %.4g .. %.4g, %d samples", p.Time[0], p.Time[n-1], n)
	}
	muted := lipgloss.NewStyle().Foreground(o.Theme.Muted)

	var body string
	switch p.Kind {
	case KindScatter:
		body = renderScatter(p, o)
	default:
		body = renderLines(p, o)
	}
	if body == "" {
		body = lipgloss.NewStyle().Foreground(o.Theme.Error).Render("no data")
	}
	return strings.Join([]string{title + "  " + muted.Render(caption), body, legend(p, o)}, "\n")
}

func renderLines(p Panel, o RenderOptions) string {
	cs := o.colors()
	var data [][]float64
	var colors []asciigraph.AnsiColor
	for i, s := range p.Series {
		if len(s.Y) == 0 || !finite(s.Y) {
			continue
		}
		data = append(data, s.Y)
		colors = append(colors, cs[i%len(cs)])
	}
	if len(data) == 0 {
		return ""
	}
	opts := []asciigraph.Option{
		asciigraph.Height(o.Height),
		asciigraph.Width(o.Width),
		asciigraph.SeriesColors(colors...),
	}
	if p.YMax > p.YMin {
		opts = append(opts, asciigraph.LowerBound(p.YMin), asciigraph.UpperBound(p.YMax))
	}
	return asciigraph.PlotMany(data, opts...)
}

func renderScatter(p Panel, o RenderOptions) string {
	if len(p.Time) < 2 {
		return ""
	}
	y0, y1 := p.YMin, p.YMax
	if !(y1 > y0) {
		y0, y1 = math.Inf(1), math.Inf(-1)
		for _, s := range p.Series {
			for _, v := range s.Y {
				if !math.IsNaN(v) {
					y0, y1 = math.Min(y0, v), math.Max(y1, v)
				}
			}
		}
		if math.IsInf(y0, 1) {
			return ""
		}
		if y1 == y0 {
			y0, y1 = y0-1, y1+1
		}
	}

	c := NewCanvas(o.Width, o.Height)
	t0, t1 := p.Time[0], p.Time[len(p.Time)-1]
	drawn := false
	for i, s := range p.Series {
		if finite(s.Y) {
			c.Scatter(p.Time, s.Y, t0, t1, y0, y1, i)
			drawn = true
		}
	}
	if !drawn {
		return ""
	}

	cs := o.colors()
	label := lipgloss.NewStyle().Foreground(o.Theme.Muted)
	var b strings.Builder
	for r := 0; r < c.Height; r++ {
		switch r {
		case 0:
			b.WriteString(label.Render(fmt.Sprintf("%8.3f ┤", y1)))
		case c.Height - 1:
			b.WriteString(label.Render(fmt.Sprintf("%8.3f ┤", y0)))
		default:
			b.WriteString(label.Render("         │"))
		}
		for col := 0; col < c.Width; col++ {
			ch := string(c.Grid[r][col])
			if ci := c.Color[r][col]; ci >= 0 {
				ch = colorStyle(cs[ci%len(cs)]).Render(ch)
			}
			b.WriteString(ch)
		}
		if r < c.Height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func legend(p Panel, o RenderOptions) string {
	cs := o.colors()
	parts := make([]string, 0, len(p.Series))
	for i, s := range p.Series {
		parts = append(parts, colorStyle(cs[i%len(cs)]).Render("■ "+s.Name))
	}
	return strings.Join(parts, "  ")
}

// RenderAll draws every panel, left column panels first.
func RenderAll(panels []Panel, o RenderOptions) string {
	var left, right []string
	for _, p := range panels {
		if p.Column == 0 {
			left = append(left, RenderPanel(p, o))
		} else {
			right = append(right, RenderPanel(p, o))
		}
	}
	return strings.Join(append(left, right...), "\n\n") + "\n"
}
