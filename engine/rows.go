package engine

import "github.com/Kili03/tetris/constants"

// ClearFullRows removes every fully occupied row from the board and
// returns how many rows were cleared. Rows are scanned bottom-up; for
// each candidate row every shape is classified as strictly above,
// strictly below, or cutting the row. Cutting shapes mark the board
// columns they cover at that row. When all columns are marked, shapes
// above shift down one row and cutting shapes have the row cut out of
// their local mask; the same row index is then re-examined because
// content has shifted into it. The board is never materialized as a
// grid — everything happens on the shapes' own 4x4 masks.
func ClearFullRows(shapes []*Shape) int {
	cleared := 0
	row := 0

	for row < constants.BoardHeight {
		var cutShapes []*Shape
		var aboveShapes []*Shape
		var columnFilled [constants.BoardWidth]bool

		for _, s := range shapes {
			switch {
			case s.Pos.Y > row:
				aboveShapes = append(aboveShapes, s)
			case s.Pos.Y+4 <= row:
				// strictly below, unaffected
			default:
				cutShapes = append(cutShapes, s)
				s.markColumns(row, &columnFilled)
			}
		}

		if !allFilled(columnFilled) {
			row++
			continue
		}

		for _, s := range aboveShapes {
			s.Pos.Y--
		}
		for _, s := range cutShapes {
			s.removeRow(row)
		}
		cleared++
	}

	return cleared
}

func allFilled(columns [constants.BoardWidth]bool) bool {
	for _, set := range columns {
		if !set {
			return false
		}
	}
	return true
}

// markColumns records, for every board column the shape covers, whether
// the shape has an occupied cell at the given board row
func (s *Shape) markColumns(row int, filled *[constants.BoardWidth]bool) {
	for x := 0; x < 4; x++ {
		col := s.Pos.X + x
		if col < 0 || col >= constants.BoardWidth {
			continue
		}
		if s.Mask.At(x, row-s.Pos.Y) {
			filled[col] = true
		}
	}
}

// removeRow cuts one board row out of the shape's local mask. Local rows
// above the removed one shift down a slot and the topmost local row
// becomes empty. The shape keeps its 4x4 frame and position; it is never
// reboxed.
func (s *Shape) removeRow(row int) {
	local := row - s.Pos.Y
	var out Mask

	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			switch {
			case y < local:
				out[Index(x, y)] = s.Mask.At(x, y)
			case y+1 < 4:
				out[Index(x, y)] = s.Mask.At(x, y+1)
			}
		}
	}

	s.Mask = out
}
