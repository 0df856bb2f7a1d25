package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/Kili03/tetris/constants"
	"github.com/Kili03/tetris/core"
	"github.com/Kili03/tetris/engine"
)

// palette maps shape colors to terminal colors
var palette = map[engine.Color]tcell.Color{
	engine.ColorCyan:    tcell.ColorAqua,
	engine.ColorBlue:    tcell.ColorBlue,
	engine.ColorMagenta: tcell.ColorFuchsia,
	engine.ColorYellow:  tcell.ColorYellow,
	engine.ColorGreen:   tcell.ColorGreen,
	engine.ColorRed:     tcell.ColorRed,
	engine.ColorWhite:   tcell.ColorWhite,
}

// borderStyle is used for the well walls
var borderStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)

// Renderer draws read-only session snapshots onto a tcell screen. It
// contains no game logic. Draws that land outside the visible terminal
// are clipped by tcell, so an undersized window degrades gracefully
// instead of breaking the frame.
type Renderer struct {
	screen tcell.Screen
}

// New creates a renderer for the given screen
func New(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw renders the well, every shape and the side panel, then flips the
// frame to the terminal.
func (r *Renderer) Draw(g *engine.GameContext) {
	r.screen.Clear()

	r.drawBorders()
	for _, s := range g.Shapes {
		r.drawShape(s.Pos, s.Mask, s.Color)
	}
	r.drawPanel(g)

	r.screen.Show()
}

// drawBorders draws the walls of the playing field. The well including
// walls spans (BoardWidth+2) x (BoardHeight+2) block cells.
func (r *Renderer) drawBorders() {
	for x := 0; x < constants.BoardWidth+2; x++ {
		r.drawBlock(x*constants.BlockWidth, 0, borderStyle)
		r.drawBlock(x*constants.BlockWidth, constants.BoardHeight+1, borderStyle)
	}
	for y := 1; y < constants.BoardHeight+1; y++ {
		r.drawBlock(0, y, borderStyle)
		r.drawBlock(constants.BlockWidth*(constants.BoardWidth+1), y, borderStyle)
	}
}

// drawShape draws one shape's occupied cells. Board y grows upward, the
// terminal grows downward; row BoardHeight-(y) keeps the board bottom on
// the row just above the bottom wall.
func (r *Renderer) drawShape(pos core.Vec2, mask engine.Mask, color engine.Color) {
	style := tcell.StyleDefault.Foreground(palette[color])

	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			if !mask.At(x, y) {
				continue
			}
			row := constants.BoardHeight - (pos.Y + y)
			col := constants.BlockWidth * (pos.X + x + 1)
			r.drawBlock(col, row, style)
		}
	}
}

// drawPanel renders score, level, state banners, highscore and the next
// shape preview to the right of the well.
func (r *Renderer) drawPanel(g *engine.GameContext) {
	col := constants.BlockWidth * (constants.BoardWidth + 3)
	row := 0

	r.drawText(col, row, fmt.Sprintf("Score: %d", g.Points))

	row += 2
	r.drawText(col, row, fmt.Sprintf("Level: %d", g.Level))

	if g.Paused {
		row += 2
		r.drawText(col, row, "Paused...")
	}

	if !g.Started {
		row += 2
		r.drawText(col, row, "Press an arrow key to start!")
	}

	row += 2
	r.drawText(col, row, fmt.Sprintf("Highscore: %d", g.Highscore))

	row += 2
	r.drawText(col, row, "Next Block:")

	row += 4
	previewPos := core.Vec2{
		X: constants.BoardWidth + 2,
		Y: constants.BoardHeight - row,
	}
	r.drawShape(previewPos, g.NextShape.Mask, g.NextShape.Color)
}

// drawBlock writes the block glyphs for one cell at a terminal position.
// Rune offsets are counted per glyph, not per byte.
func (r *Renderer) drawBlock(col, row int, style tcell.Style) {
	offset := 0
	for _, ch := range constants.BlockSymbol {
		r.screen.SetContent(col+offset, row, ch, nil, style)
		offset++
	}
}

// drawText writes a plain string at a terminal position
func (r *Renderer) drawText(col, row int, text string) {
	offset := 0
	for _, ch := range text {
		r.screen.SetContent(col+offset, row, ch, nil, tcell.StyleDefault)
		offset++
	}
}
