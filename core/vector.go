package core

// Vec2 is an integer position in board coordinates.
// Y grows upward; (0, 0) is the bottom-left cell of the board.
type Vec2 struct {
	X, Y int
}
