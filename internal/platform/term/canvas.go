// Package term hosts the game directly on a tcell screen, without the
// Bubble Tea runtime. The bottom row is kept for a status line.
package term

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// StatusRows is the number of rows below the play surface.
const StatusRows = 1

// Canvas draws onto a tcell screen, mapping logical units to cells.
type Canvas struct {
	screen  tcell.Screen
	metrics core.CellMetrics
	bg      color.RGBA
}

var _ core.Canvas = (*Canvas)(nil)

// NewCanvas wraps screen. Zero metrics fall back to one unit per cell.
func NewCanvas(screen tcell.Screen, metrics core.CellMetrics) *Canvas {
	if metrics.W <= 0 || metrics.H <= 0 {
		metrics = core.UnitCells
	}
	return &Canvas{screen: screen, metrics: metrics}
}

// Metrics returns the logical size of one cell.
func (c *Canvas) Metrics() core.CellMetrics {
	return c.metrics
}

// cells returns the play surface size in cells.
func (c *Canvas) cells() (int, int) {
	w, h := c.screen.Size()
	h -= StatusRows
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return w, h
}

// Size returns the play surface size in logical units.
func (c *Canvas) Size() (float64, float64) {
	return c.metrics.SurfaceSize(c.cells())
}

// Clear fills the play surface with blank cells of the given color.
func (c *Canvas) Clear(fill color.RGBA) {
	c.bg = fill
	style := tcell.StyleDefault.Foreground(rgb(fill)).Background(rgb(fill))
	w, h := c.cells()
	for y := range h {
		for x := range w {
			c.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// DrawRect fills the cells covered by r.
func (c *Canvas) DrawRect(r core.Rect, fill color.RGBA) {
	c.metrics.RectCells(r, c.fillCell(fill))
}

// DrawEllipse fills the cells covered by the ellipse inscribed in r.
func (c *Canvas) DrawEllipse(r core.Rect, fill color.RGBA) {
	c.metrics.EllipseCells(r, c.fillCell(fill))
}

// DrawText writes text starting at the cell holding (x, y), on the
// background of the last Clear.
func (c *Canvas) DrawText(x, y float64, text string, style core.TextStyle) {
	col, row := c.metrics.CellOf(x, y)
	st := tcell.StyleDefault.Foreground(rgb(style.Color)).Background(rgb(c.bg))
	i := 0
	for _, r := range text {
		c.set(col+i, row, r, st)
		i++
	}
}

func (c *Canvas) fillCell(fill color.RGBA) func(col, row int) {
	style := tcell.StyleDefault.Foreground(rgb(fill)).Background(rgb(fill))
	return func(col, row int) {
		c.set(col, row, core.ShapeRune, style)
	}
}

// set writes one cell, clipping to the play surface so sprites never
// paint over the status line.
func (c *Canvas) set(x, y int, r rune, style tcell.Style) {
	w, h := c.cells()
	if x < 0 || x >= w || y < 0 || y >= h {
		return
	}
	c.screen.SetContent(x, y, r, nil, style)
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
