package analysis

import (
	"math"
	"strings"
)

// Point is one (x, y) sample of a portrait.
type Point struct{ X, Y float64 }

// Portrait pairs two series of an analysed run, for instance the conjugate
// angle l against cos J in the Andoyer plane.
type Portrait struct {
	XLabel, YLabel string
	Points         []Point
}

// NewPortrait pairs xs and ys index by index, skipping NaN samples.
func NewPortrait(xLabel, yLabel string, xs, ys []float64) *Portrait {
	n := min(len(xs), len(ys))
	p := &Portrait{XLabel: xLabel, YLabel: yLabel, Points: make([]Point, 0, n)}
	for i := 0; i < n; i++ {
		if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
			continue
		}
		p.Points = append(p.Points, Point{X: xs[i], Y: ys[i]})
	}
	return p
}

// Section keeps the (xs, ys) samples at which cross passes upward through
// threshold, a stroboscopic map of the pair. With cross = sin(M) the samples
// fall on periapsis passages.
func Section(cross []float64, threshold float64, xs, ys []float64) *Portrait {
	n := min(len(cross), len(xs), len(ys))
	p := &Portrait{}
	for i := 1; i < n; i++ {
		if cross[i-1] < threshold && cross[i] >= threshold {
			if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
				continue
			}
			p.Points = append(p.Points, Point{X: xs[i], Y: ys[i]})
		}
	}
	return p
}

type box struct{ minX, maxX, minY, maxY float64 }

func (b box) col(x float64, width int) int {
	return int((x - b.minX) / (b.maxX - b.minX) * float64(width-1))
}

func (b box) row(y float64, height int) int {
	return height - 1 - int((y-b.minY)/(b.maxY-b.minY)*float64(height-1))
}

// bounds returns the extent of pts grown by pad of its range on every side.
func bounds(pts []Point, pad float64) box {
	b := box{pts[0].X, pts[0].X, pts[0].Y, pts[0].Y}
	for _, p := range pts[1:] {
		b.minX, b.maxX = math.Min(b.minX, p.X), math.Max(b.maxX, p.X)
		b.minY, b.maxY = math.Min(b.minY, p.Y), math.Max(b.maxY, p.Y)
	}
	dx, dy := b.maxX-b.minX, b.maxY-b.minY
	if dx == 0 {
		dx = 1
	}
	if dy == 0 {
		dy = 1
	}
	return box{b.minX - dx*pad, b.maxX + dx*pad, b.minY - dy*pad, b.maxY + dy*pad}
}

// PortraitToASCII draws the portrait on a width x height character grid,
// with the axes wherever they fall inside the view.
func PortraitToASCII(portrait *Portrait, width, height int) string {
	if portrait == nil || len(portrait.Points) == 0 || width < 2 || height < 2 {
		return ""
	}
	b := bounds(portrait.Points, 0.1)

	grid := make([][]rune, height)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", width))
	}
	set := func(r, c int, ch rune, over bool) {
		if r < 0 || r >= height || c < 0 || c >= width {
			return
		}
		if over || grid[r][c] == ' ' {
			grid[r][c] = ch
		}
	}

	for _, p := range portrait.Points {
		set(b.row(p.Y, height), b.col(p.X, width), '•', true)
	}
	if b.minX <= 0 && b.maxX >= 0 {
		c := b.col(0, width)
		for r := 0; r < height; r++ {
			set(r, c, '│', false)
		}
	}
	if b.minY <= 0 && b.maxY >= 0 {
		r := b.row(0, height)
		for c := 0; c < width; c++ {
			set(r, c, '─', false)
		}
	}

	var sb strings.Builder
	for _, r := range grid {
		sb.WriteString(string(r))
		sb.WriteByte('\n')
	}
	return sb.String()
}
