package render

import "github.com/gdamore/tcell/v2"

// Cell is one composed terminal cell; a zero rune leaves the cell blank
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
}

// RenderBuffer is a compositor over a cell array with dirty tracking
type RenderBuffer struct {
	cells   []Cell
	touched []bool
	width   int
	height  int
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
		b.touched = make([]bool, size)
	} else {
		b.cells = b.cells[:size]
		b.touched = b.touched[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Size returns the buffer dimensions
func (b *RenderBuffer) Size() (int, int) { return b.width, b.height }

// Clear resets all cells to empty using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Fg: RgbHUDText, Bg: RgbBackground}
	b.touched[0] = false
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
	for filled := 1; filled < len(b.touched); filled *= 2 {
		copy(b.touched[filled:], b.touched[:filled])
	}
}

// inBounds returns true if in screen bounds
func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes a rune keeping the existing background; out of bounds is ignored
func (b *RenderBuffer) Set(x, y int, r rune, fg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx].Rune = r
	b.cells[idx].Fg = fg
	b.touched[idx] = true
}

// SetBg overrides the background of one cell
func (b *RenderBuffer) SetBg(x, y int, bg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx].Bg = bg
	b.touched[idx] = true
}

// SetString writes s left to right, clipping at the right edge
func (b *RenderBuffer) SetString(x, y int, s string, fg, bg RGB) int {
	n := 0
	for _, r := range s {
		b.Set(x+n, y, r, fg)
		b.SetBg(x+n, y, bg)
		n++
	}
	return n
}

// Get returns the cell at x, y, or a zero cell when out of bounds
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// Line rasterizes a Bresenham line between two cells, endpoints inclusive
func (b *RenderBuffer) Line(x0, y0, x1, y1 int, r rune, fg RGB) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		b.Set(x0, y0, r, fg)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// FlushTo writes every cell to screen; untouched cells get the background only
func (b *RenderBuffer) FlushTo(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			idx := y*b.width + x
			c := b.cells[idx]
			style := tcell.StyleDefault.Background(c.Bg.Tcell())
			r := ' '
			if b.touched[idx] && c.Rune != 0 {
				r = c.Rune
				style = style.Foreground(c.Fg.Tcell())
			}
			screen.SetContent(x, y, r, nil, style)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
