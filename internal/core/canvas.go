package core

import "image/color"

// TextStyle describes how score text is drawn.
type TextStyle struct {
	Color color.RGBA
	Size  float64 // Text height in logical units; cell backends may ignore it
}

// Canvas is an immediate-mode drawing surface.
// Coordinates are logical surface units with the origin at the top-left.
// Nothing persists between frames; every frame redraws from scratch.
type Canvas interface {
	// Size returns the laid-out surface dimensions.
	// Zero means layout has not completed yet.
	Size() (w, h float64)

	// Clear fills the whole surface.
	Clear(fill color.RGBA)

	// DrawEllipse fills the ellipse inscribed in r.
	DrawEllipse(r Rect, fill color.RGBA)

	// DrawRect fills r.
	DrawRect(r Rect, fill color.RGBA)

	// DrawText draws text with its top-left corner at (x, y).
	DrawText(x, y float64, text string, style TextStyle)
}
