package core

import "image/color"

// Sprite is a moving rectangular region with a fill color.
// Size is fixed once set; position and velocity change every frame.
// The bounding box is always derived from position and size.
type Sprite struct {
	x, y   float64
	w, h   float64
	DX, DY float64 // Displacement per frame
	Fill   color.RGBA
}

// NewSprite creates a sprite of the given size at the origin, at rest.
func NewSprite(w, h float64, fill color.RGBA) *Sprite {
	s := &Sprite{Fill: fill}
	s.SetSize(w, h)
	return s
}

// SetSize sets the sprite dimensions. Call it before the sprite is used.
func (s *Sprite) SetSize(w, h float64) {
	s.w = w
	s.h = h
}

// SetLocation moves the top-left corner to (x, y).
func (s *Sprite) SetLocation(x, y float64) {
	s.x = x
	s.y = y
}

// SetVelocity sets the per-frame displacement.
func (s *Sprite) SetVelocity(dx, dy float64) {
	s.DX = dx
	s.DY = dy
}

// Move advances the sprite by one frame of velocity.
// No bounds checking is done here.
func (s *Sprite) Move() {
	s.x += s.DX
	s.y += s.DY
}

// Location returns the top-left corner.
func (s *Sprite) Location() (float64, float64) {
	return s.x, s.y
}

// Size returns the sprite dimensions.
func (s *Sprite) Size() (float64, float64) {
	return s.w, s.h
}

// Rect returns the bounding box used for all geometric queries.
func (s *Sprite) Rect() Rect {
	return Rect{X: s.x, Y: s.y, W: s.w, H: s.h}
}
