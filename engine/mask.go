package engine

// Mask is one rotation state of a tetromino, a fixed 4x4 grid of cells.
// Cells are addressed by local (x, y) with y growing upward. The flat
// slot for a logical coordinate is 4*y + (3-x): column 3 maps to local
// x=0, so the mask is mirrored on the x-axis relative to naive row-major
// order. Storage, rotation, collision and row removal all depend on this
// mapping and must never diverge from it.
type Mask [16]bool

// Index converts a local (x, y) coordinate to its flat slot in the mask
func Index(x, y int) int {
	return 4*y + (3 - x)
}

// At reports whether the local cell (x, y) is occupied
func (m Mask) At(x, y int) bool {
	return m[Index(x, y)]
}

// Rotate returns the mask rotated 90 degrees within its 4x4 frame: the
// source cell at (x, y) lands at (y, 3-x). Pure and total; applying it
// four times restores the original mask.
func Rotate(m Mask) Mask {
	var out Mask
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			out[Index(y, 3-x)] = m[Index(x, y)]
		}
	}
	return out
}

// CellCount returns the number of occupied cells in the mask
func (m Mask) CellCount() int {
	n := 0
	for _, set := range m {
		if set {
			n++
		}
	}
	return n
}
