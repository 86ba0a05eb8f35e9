package core

import (
	"image/color"
	"strings"
)

// ShapeRune is the glyph used to fill sprite cells.
const ShapeRune = '█'

// Cell is a single character position on the screen.
type Cell struct {
	Rune rune
	FG   color.RGBA
	BG   color.RGBA
}

// Screen is a 2D character buffer that implements Canvas.
// It decouples game rendering from the terminal: the game draws in logical
// units and the screen maps them onto cells using its CellMetrics.
type Screen struct {
	width   int
	height  int
	metrics CellMetrics
	cells   [][]Cell
}

var _ Canvas = (*Screen)(nil)

// NewScreen creates a new screen buffer with the given dimensions in cells.
func NewScreen(width, height int, metrics CellMetrics) *Screen {
	s := &Screen{
		width:   width,
		height:  height,
		metrics: metrics.norm(),
	}
	s.allocate()
	s.Clear(color.RGBA{})
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in cells.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in cells.
func (s *Screen) Height() int {
	return s.height
}

// Metrics returns the logical size of one cell.
func (s *Screen) Metrics() CellMetrics {
	return s.metrics
}

// Size returns the surface dimensions in logical units.
func (s *Screen) Size() (float64, float64) {
	return s.metrics.SurfaceSize(s.width, s.height)
}

// Resize changes the screen dimensions. Content is discarded; the next
// frame repaints everything anyway.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear(color.RGBA{})
}

// Clear fills the entire screen with blank cells of the given color.
func (s *Screen) Clear(fill color.RGBA) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' ', FG: fill, BG: fill}
		}
	}
}

// SetCell places a cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetCell(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// GetCell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' '}
	}
	return s.cells[y][x]
}

// Get returns the rune at the given position.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// fillCell paints a shape cell, keeping the glyph and both colors in sync.
func (s *Screen) fillCell(fill color.RGBA) func(col, row int) {
	return func(col, row int) {
		s.SetCell(col, row, Cell{Rune: ShapeRune, FG: fill, BG: fill})
	}
}

// DrawRect fills the cells covered by r.
func (s *Screen) DrawRect(r Rect, fill color.RGBA) {
	s.metrics.RectCells(r, s.fillCell(fill))
}

// DrawEllipse fills the cells covered by the ellipse inscribed in r.
func (s *Screen) DrawEllipse(r Rect, fill color.RGBA) {
	s.metrics.EllipseCells(r, s.fillCell(fill))
}

// DrawText writes a string horizontally starting at the cell holding (x, y).
// The background under each character is preserved.
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y float64, text string, style TextStyle) {
	col, row := s.metrics.CellOf(x, y)
	i := 0
	for _, r := range text {
		bg := s.GetCell(col+i, row).BG
		s.SetCell(col+i, row, Cell{Rune: r, FG: style.Color, BG: bg})
		i++
	}
}

// String converts the screen buffer to plain text, one line per row.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height) // Pre-allocate for efficiency

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the specified row as plain text.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
