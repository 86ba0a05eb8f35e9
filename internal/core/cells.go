package core

import "math"

// CellMetrics maps logical surface units onto a grid of terminal cells.
// W and H are the logical width and height of one cell.
type CellMetrics struct {
	W, H float64
}

// UnitCells is a 1:1 mapping where one logical unit is one cell.
var UnitCells = CellMetrics{W: 1, H: 1}

func (m CellMetrics) norm() CellMetrics {
	if m.W <= 0 {
		m.W = 1
	}
	if m.H <= 0 {
		m.H = 1
	}
	return m
}

// SurfaceSize converts a cell grid size into logical units.
func (m CellMetrics) SurfaceSize(cols, rows int) (float64, float64) {
	m = m.norm()
	return float64(cols) * m.W, float64(rows) * m.H
}

// CellOf returns the cell containing the logical point (x, y).
func (m CellMetrics) CellOf(x, y float64) (int, int) {
	m = m.norm()
	return int(math.Floor(x / m.W)), int(math.Floor(y / m.H))
}

// Center returns the logical coordinates of a cell's center.
// Backends use it to translate pointer presses into surface space.
func (m CellMetrics) Center(col, row int) (float64, float64) {
	m = m.norm()
	return (float64(col) + 0.5) * m.W, (float64(row) + 0.5) * m.H
}

// span returns the half-open cell range whose centers fall inside [lo, hi).
// A range narrower than one cell still covers the cell holding its midpoint.
func span(lo, hi, size float64) (int, int) {
	first := int(math.Ceil(lo/size - 0.5))
	last := int(math.Ceil(hi/size - 0.5))
	if last <= first {
		mid := int(math.Floor((lo + hi) / 2 / size))
		return mid, mid + 1
	}
	return first, last
}

// RectCells calls fn for every cell covered by r.
func (m CellMetrics) RectCells(r Rect, fn func(col, row int)) {
	if r.Empty() {
		return
	}
	m = m.norm()
	x0, x1 := span(r.X, r.Right(), m.W)
	y0, y1 := span(r.Y, r.Bottom(), m.H)
	for row := y0; row < y1; row++ {
		for col := x0; col < x1; col++ {
			fn(col, row)
		}
	}
}

// EllipseCells calls fn for every cell covered by the ellipse inscribed in r.
// At least the cell under the ellipse's center is always covered.
func (m CellMetrics) EllipseCells(r Rect, fn func(col, row int)) {
	if r.Empty() {
		return
	}
	m = m.norm()
	cx, cy := r.Center()
	rx, ry := r.W/2, r.H/2

	hit := false
	m.RectCells(r, func(col, row int) {
		px, py := m.Center(col, row)
		dx := (px - cx) / rx
		dy := (py - cy) / ry
		if dx*dx+dy*dy <= 1 {
			hit = true
			fn(col, row)
		}
	})
	if !hit {
		fn(m.CellOf(cx, cy))
	}
}
