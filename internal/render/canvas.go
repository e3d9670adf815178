package render

import (
	"strings"

	"github.com/san-kum/paperplane/internal/anim"
)

// Braille cells hold a 2x4 dot grid:
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
const brailleBlank = 0x2800

var brailleBits = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a terminal drawing surface with Width*2 x Height*4 dots.
// Cells may also hold a whole glyph which hides their dots.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	glyphs        map[[2]int]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		glyphs: make(map[[2]int]rune),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

// Set lights the dot at (x, y) in dot coordinates.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= brailleBits[y%4][x%2]
}

// Glyph places r in the cell containing dot (x, y).
func (c *Canvas) Glyph(x, y int, r rune) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.glyphs[[2]int{row, col}] = r
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
		}
	}
	clear(c.glyphs)
}

// DrawLine draws a line using Bresenham's algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Project maps a data point onto dot coordinates for an x range of
// [0, xMax] and the fixed y range [-1, 1]. ok is false outside the range.
func (c *Canvas) Project(pt anim.Point, xMax float64) (x, y int, ok bool) {
	if xMax <= 0 {
		xMax = DefaultXMax
	}
	w, h := c.Width*2, c.Height*4
	fx := pt.X / xMax
	fy := (1 - pt.Y) / 2
	x = int(fx * float64(w-1))
	y = int(fy * float64(h-1))
	ok = fx >= 0 && fx <= 1 && fy >= 0 && fy <= 1
	return x, y, ok
}

// DrawFrame clears the canvas and draws the path up to and including
// frame idx, with the marker glyph at the current position.
func (c *Canvas) DrawFrame(path []anim.Frame, idx int, xMax float64, marker rune) {
	c.Clear()
	mid := c.Height * 4 / 2
	for x := 0; x < c.Width*2; x += 3 {
		c.Set(x, mid)
	}
	if idx >= len(path) {
		idx = len(path) - 1
	}
	for i := 0; i < idx; i++ {
		x0, y0, ok0 := c.Project(path[i].Point, xMax)
		x1, y1, ok1 := c.Project(path[i+1].Point, xMax)
		if ok0 && ok1 {
			c.DrawLine(x0, y0, x1, y1)
		}
	}
	if idx >= 0 {
		if x, y, ok := c.Project(path[idx].Point, xMax); ok {
			c.Glyph(x, y, marker)
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for row, cells := range c.Grid {
		for col, r := range cells {
			if g, ok := c.glyphs[[2]int{row, col}]; ok {
				r = g
			}
			b.WriteRune(r)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
