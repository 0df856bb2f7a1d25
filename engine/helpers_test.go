package engine

import "github.com/Kili03/tetris/core"

// cellMask builds a mask from local (x, y) coordinates
func cellMask(cells ...[2]int) Mask {
	var m Mask
	for _, c := range cells {
		m[Index(c[0], c[1])] = true
	}
	return m
}

// shapeAt places a mask at a board position
func shapeAt(x, y int, mask Mask) *Shape {
	return &Shape{Pos: core.Vec2{X: x, Y: y}, Mask: mask}
}

// bottomRowMask covers all four cells of the lowest local row
func bottomRowMask() Mask {
	return cellMask([2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0}, [2]int{3, 0})
}
