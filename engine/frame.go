package engine

import "github.com/Kili03/tetris/input"

// Frame applies one command to the active shape. Non-directional
// commands are no-ops. A move that would leave the board or overlap a
// settled shape is rolled back to the pre-move snapshot; for lateral and
// rotation moves that is the end of it. A blocked downward step is the
// settle trigger: full rows are cleared, score and level update, the next
// shape spawns, the highscore ceiling rises, and if the fresh spawn
// already collides the session resets.
func (g *GameContext) Frame(cmd input.Command) {
	if !cmd.Directional() {
		return
	}

	shape := g.Active()

	// Snapshot for rollback if the move turns out to be illegal
	oldPos := shape.Pos
	oldMask := shape.Mask

	shape.apply(cmd)

	if shape.InBounds() && !IntersectsAny(g.Shapes) {
		// Legal move, nothing else happens this frame
		return
	}

	shape.Pos = oldPos
	shape.Mask = oldMask

	if cmd != input.CommandSoftDrop {
		return
	}

	// The shape settled where it is
	clearedRows := ClearFullRows(g.Shapes)
	g.applyPoints(clearedRows)
	g.applyLevel(clearedRows)

	if clearedRows > 0 && g.Sound != nil {
		g.Sound.RowsCleared(clearedRows)
	}

	g.Spawn()

	if g.Points > g.Highscore {
		g.Highscore = g.Points
	}

	// A spawn with no room means the board is full
	if IntersectsAny(g.Shapes) {
		if g.Sound != nil {
			g.Sound.GameOver()
		}
		g.Reset()
	}
}

// apply moves or rotates the shape per the command
func (s *Shape) apply(cmd input.Command) {
	switch cmd {
	case input.CommandMoveLeft:
		s.Pos.X--
	case input.CommandMoveRight:
		s.Pos.X++
	case input.CommandRotate:
		s.Mask = Rotate(s.Mask)
	case input.CommandSoftDrop:
		s.Pos.Y--
	}
}
