package core

import (
	"image/color"
	"testing"
)

func TestSpriteMove(t *testing.T) {
	s := NewSprite(10, 20, color.RGBA{A: 255})
	s.SetLocation(5, 5)
	s.SetVelocity(2.5, -1)

	s.Move()
	s.Move()

	x, y := s.Location()
	if x != 10 || y != 3 {
		t.Errorf("Location() = (%v, %v), expected (10, 3)", x, y)
	}

	r := s.Rect()
	if r.X != 10 || r.Y != 3 || r.W != 10 || r.H != 20 {
		t.Errorf("Rect() = %+v, expected {10 3 10 20}", r)
	}
}

func TestSpriteMoveDoesNotClamp(t *testing.T) {
	s := NewSprite(4, 4, color.RGBA{})
	s.SetLocation(1, 1)
	s.SetVelocity(-3, -3)
	s.Move()

	r := s.Rect()
	if r.Left() != -2 || r.Top() != -2 {
		t.Errorf("expected sprite to move off-surface to (-2, -2), got (%v, %v)", r.Left(), r.Top())
	}
}

func TestSpriteRectFollowsLocation(t *testing.T) {
	s := NewSprite(40, 300, color.RGBA{})
	s.SetLocation(440, 250)

	r := s.Rect()
	if r.Right() != 480 || r.Bottom() != 550 {
		t.Errorf("Right/Bottom = (%v, %v), expected (480, 550)", r.Right(), r.Bottom())
	}

	s.SetLocation(0, 0)
	if s.Rect().Right() != 40 {
		t.Errorf("Rect() did not follow SetLocation, Right() = %v", s.Rect().Right())
	}
}

func TestSpriteSizeStableAcrossMoves(t *testing.T) {
	s := NewSprite(100, 100, color.RGBA{})
	s.SetVelocity(7, -3)
	for range 50 {
		s.Move()
	}
	w, h := s.Size()
	if w != 100 || h != 100 {
		t.Errorf("Size() = (%v, %v), expected (100, 100)", w, h)
	}
}
