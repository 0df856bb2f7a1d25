package engine

import (
	"math/rand"

	"github.com/Kili03/tetris/constants"
	"github.com/Kili03/tetris/core"
)

// Color identifies the palette entry used to draw a shape
type Color uint8

const (
	ColorCyan Color = iota + 1
	ColorBlue
	ColorMagenta
	ColorYellow
	ColorGreen
	ColorRed
	ColorWhite
)

// Shape is a single tetromino instance. The last shape in the session's
// list is the active falling one; all earlier shapes are settled. Settled
// shapes stay independent objects for the rest of the session — a row
// clear may cut them down to irregular fragments, but they are never
// merged into a board grid.
type Shape struct {
	Pos   core.Vec2 // bottom-left corner of the 4x4 frame, board coords
	Mask  Mask
	Color Color
}

// shapeTable holds the seven tetrominoes. Mask literals are written in
// flat slot order: the bottom row (y=0) first, each row with x mirrored
// per the Index mapping.
var shapeTable = [...]struct {
	mask  Mask
	color Color
}{
	// I
	{Mask{
		false, false, false, false,
		true, true, true, true,
		false, false, false, false,
		false, false, false, false,
	}, ColorCyan},
	// J
	{Mask{
		false, false, false, false,
		false, true, false, false,
		false, true, true, true,
		false, false, false, false,
	}, ColorBlue},
	// L
	{Mask{
		false, false, false, false,
		false, false, true, false,
		true, true, true, false,
		false, false, false, false,
	}, ColorMagenta},
	// O
	{Mask{
		false, false, false, false,
		false, true, true, false,
		false, true, true, false,
		false, false, false, false,
	}, ColorYellow},
	// S
	{Mask{
		false, false, false, false,
		false, true, true, false,
		true, true, false, false,
		false, false, false, false,
	}, ColorGreen},
	// T
	{Mask{
		false, false, false, false,
		false, true, false, false,
		true, true, true, false,
		false, false, false, false,
	}, ColorRed},
	// Z
	{Mask{
		false, false, false, false,
		true, true, false, false,
		false, true, true, false,
		false, false, false, false,
	}, ColorWhite},
}

// SpawnPoint is where a fresh shape enters the board: centered, with its
// 4x4 frame flush against the top edge.
func SpawnPoint() core.Vec2 {
	return core.Vec2{
		X: constants.BoardWidth/2 - 2,
		Y: constants.BoardHeight - 4,
	}
}

// NewRandomShape returns one of the seven tetrominoes at the spawn point
func NewRandomShape() *Shape {
	def := &shapeTable[rand.Intn(len(shapeTable))]
	return &Shape{
		Pos:   SpawnPoint(),
		Mask:  def.mask,
		Color: def.color,
	}
}

// Bounds returns the bounding box of the shape's 4x4 frame
func (s *Shape) Bounds() core.Box {
	return core.Box{
		MinX: s.Pos.X,
		MaxX: s.Pos.X + 4,
		MinY: s.Pos.Y,
		MaxY: s.Pos.Y + 4,
	}
}
