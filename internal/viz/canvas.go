package viz

import (
	"math"
	"strings"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleBlank = 0x2800

// Canvas is a character grid of Braille cells, 2x4 sub-pixels each.
// Every Set records a colour index so scatter series keep their colour.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Color         [][]int // series index per cell, -1 when empty
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: w, Height: h}
	c.Grid = make([][]rune, h)
	c.Color = make([][]int, h)
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Color[i] = make([]int, w)
	}
	c.Clear()
	return c
}

// Set turns on the sub-pixel (x, y) with colour index ci. The canvas is
// Width*2 by Height*4 sub-pixels; out of range points are dropped.
func (c *Canvas) Set(x, y, ci int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	c.Color[row][col] = ci
}

// Dots is the number of sub-pixels turned on in cell (row, col).
func (c *Canvas) Dots(row, col int) int {
	n := 0
	for p := c.Grid[row][col] - brailleBlank; p != 0; p &= p - 1 {
		n++
	}
	return n
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
			c.Color[i][j] = -1
		}
	}
}

// Scatter maps (xs[i], ys[i]) inside [x0, x1] x [y0, y1] onto the canvas.
// NaN samples are skipped.
func (c *Canvas) Scatter(xs, ys []float64, x0, x1, y0, y1 float64, ci int) {
	if !(x1 > x0) || !(y1 > y0) {
		return
	}
	pw := float64(c.Width*2 - 1)
	ph := float64(c.Height*4 - 1)
	n := min(len(xs), len(ys))
	for i := 0; i < n; i++ {
		x, y := xs[i], ys[i]
		if math.IsNaN(x) || math.IsNaN(y) || x < x0 || x > x1 || y < y0 || y > y1 {
			continue
		}
		px := int(math.Round((x - x0) / (x1 - x0) * pw))
		py := int(math.Round((y1 - y) / (y1 - y0) * ph))
		c.Set(px, py, ci)
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}
