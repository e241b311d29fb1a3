package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
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

const blank = 0x2800

// Cell is one character of the canvas: a braille dot pattern drawn in Fg
// over a solid Bg.
type Cell struct {
	Rune rune
	Fg   colorful.Color
	Bg   colorful.Color
}

type Canvas struct {
	Width, Height int
	Grid          [][]Cell
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]Cell, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]Cell, w)
	}
	c.Clear(colorful.Color{R: 1, G: 1, B: 1})
	return c
}

// SubWidth and SubHeight give the canvas size in dots.
func (c *Canvas) SubWidth() int  { return c.Width * 2 }
func (c *Canvas) SubHeight() int { return c.Height * 4 }

// Set lights the dot at (x, y) in dot coordinates and paints its cell in fg.
func (c *Canvas) Set(x, y int, fg colorful.Color) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	subX := x % 2
	subY := y % 4

	cell := &c.Grid[row][col]
	cell.Rune |= rune(pixelMap[subY][subX])
	cell.Fg = fg
}

// Lit reports whether the dot at (x, y) is set.
func (c *Canvas) Lit(x, y int) bool {
	if x < 0 || y < 0 || x/2 >= c.Width || y/4 >= c.Height {
		return false
	}
	return c.Grid[y/4][x/2].Rune&rune(pixelMap[y%4][x%2]) != 0
}

// Fill sets the background of the cell at (col, row).
func (c *Canvas) Fill(col, row int, bg colorful.Color) {
	if col < 0 || row < 0 || col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col].Bg = bg
}

// Clear resets every cell to an empty pattern on bg.
func (c *Canvas) Clear(bg colorful.Color) {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = Cell{Rune: blank, Fg: bg, Bg: bg}
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, fg colorful.Color) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0, fg)
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

// String returns the dot patterns without colour.
func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		for _, cell := range row {
			b.WriteRune(cell.Rune)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Render returns the canvas with every cell coloured. Runs of cells sharing
// colours are styled together.
func (c *Canvas) Render() string {
	var b strings.Builder
	for _, row := range c.Grid {
		start := 0
		for i := 1; i <= len(row); i++ {
			if i < len(row) && row[i].Fg == row[start].Fg && row[i].Bg == row[start].Bg {
				continue
			}
			run := make([]rune, 0, i-start)
			for _, cell := range row[start:i] {
				run = append(run, cell.Rune)
			}
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(row[start].Fg.Hex())).
				Background(lipgloss.Color(row[start].Bg.Hex()))
			b.WriteString(style.Render(string(run)))
			start = i
		}
		b.WriteString("\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
