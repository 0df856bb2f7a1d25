package engine

import (
	"github.com/Kili03/tetris/constants"
	"github.com/Kili03/tetris/core"
)

// InBounds reports whether every occupied cell of the shape is inside the
// side and bottom walls. There is deliberately no upper limit: spawning
// and rotating may momentarily push cells above the visible board.
func (s *Shape) InBounds() bool {
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			if !s.Mask.At(x, y) {
				continue
			}
			boardX := s.Pos.X + x
			if boardX < 0 || boardX >= constants.BoardWidth || s.Pos.Y+y < 0 {
				return false
			}
		}
	}
	return true
}

// IntersectsAny reports whether the active shape (last in the list)
// overlaps any settled shape. Bounding boxes prune pairs that cannot
// touch; surviving pairs are compared cell-by-cell inside the overlap
// region. Boxes that merely touch yield an empty overlap and never
// collide.
func IntersectsAny(shapes []*Shape) bool {
	if len(shapes) == 0 {
		return false
	}

	current := shapes[len(shapes)-1]
	currentBox := current.Bounds()

	for _, other := range shapes[:len(shapes)-1] {
		otherBox := other.Bounds()

		if currentBox.MinX > otherBox.MaxX || currentBox.MaxX < otherBox.MinX {
			continue
		}
		if currentBox.MinY > otherBox.MaxY || currentBox.MaxY < otherBox.MinY {
			continue
		}

		if cellsCollide(currentBox.Intersect(otherBox), current, other) {
			return true
		}
	}
	return false
}

// cellsCollide tests whether a and b both occupy some board coordinate
// inside the overlap box
func cellsCollide(overlap core.Box, a, b *Shape) bool {
	for x := overlap.MinX; x < overlap.MaxX; x++ {
		for y := overlap.MinY; y < overlap.MaxY; y++ {
			if !a.Mask.At(x-a.Pos.X, y-a.Pos.Y) {
				continue
			}
			if !b.Mask.At(x-b.Pos.X, y-b.Pos.Y) {
				continue
			}
			return true
		}
	}
	return false
}
