package render

import (
	"github.com/gdamore/tcell/v2"
)

type cell struct {
	ch    rune
	style tcell.Style
	depth float64
	set   bool
}

// Buffer is an off-screen cell grid with painter-order depth: nearer
// writes win, equal depth last-writer wins
type Buffer struct {
	width, height int
	cells         []cell
}

func NewBuffer(width, height int) *Buffer {
	return &Buffer{
		width:  width,
		height: height,
		cells:  make([]cell, width*height),
	}
}

func (b *Buffer) Resize(width, height int) {
	b.width = width
	b.height = height
	b.cells = make([]cell, width*height)
}

func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = cell{}
	}
}

// Set writes a rune at depth; a cell already holding a strictly nearer
// rune is left alone
func (b *Buffer) Set(x, y int, ch rune, style tcell.Style, depth float64) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	c := &b.cells[y*b.width+x]
	if c.set && c.depth > depth {
		return
	}
	c.ch = ch
	c.style = style
	c.depth = depth
	c.set = true
}

// SetOver writes unconditionally, ignoring depth. Used for overlay text.
func (b *Buffer) SetOver(x, y int, ch rune, style tcell.Style) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.cells[y*b.width+x] = cell{ch: ch, style: style, depth: 1e9, set: true}
}

// Text draws a string at overlay depth
func (b *Buffer) Text(x, y int, s string, style tcell.Style) {
	for i, ch := range s {
		b.SetOver(x+i, y, ch, style)
	}
}

// Line draws a rune along a Bresenham segment between two cells
func (b *Buffer) Line(x0, y0, x1, y1 int, ch rune, style tcell.Style, depth float64) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		b.Set(x0, y0, ch, style, depth)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Flush paints the buffer to the screen and shows it
func (b *Buffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			if c.set {
				screen.SetContent(x, y, c.ch, nil, c.style)
			} else {
				screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
			}
		}
	}
	screen.Show()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
