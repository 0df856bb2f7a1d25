package engine

import (
	"time"

	"github.com/Kili03/tetris/constants"
)

// Sound receives game events worth an audible cue.
// A nil Sound on the context disables feedback entirely.
type Sound interface {
	RowsCleared(count int)
	GameOver()
}

// GameContext owns all mutable state of one running session. A single
// instance is created at startup, mutated by exactly one goroutine, reset
// in place on game over and discarded at process exit.
type GameContext struct {
	Points      int
	Level       int
	ClearedRows int
	Highscore   int
	Paused      bool
	Started     bool

	// Shapes holds settled shapes plus the active one, which is always
	// the last element.
	Shapes    []*Shape
	NextShape *Shape

	Sound Sound
}

// NewGameContext creates a session with one falling shape, a pre-rolled
// next shape and the given persisted highscore.
func NewGameContext(highscore int) *GameContext {
	return &GameContext{
		Highscore: highscore,
		Shapes:    []*Shape{NewRandomShape()},
		NextShape: NewRandomShape(),
	}
}

// Active returns the currently falling shape
func (g *GameContext) Active() *Shape {
	return g.Shapes[len(g.Shapes)-1]
}

// Spawn promotes the pre-generated next shape to active and rolls a
// fresh next one
func (g *GameContext) Spawn() {
	g.Shapes = append(g.Shapes, g.NextShape)
	g.NextShape = NewRandomShape()
}

// Reset clears the session in place after the board fills up. The
// highscore survives; everything else starts over with a single fresh
// shape and the start banner showing again.
func (g *GameContext) Reset() {
	g.Points = 0
	g.Shapes = g.Shapes[:0]
	g.Spawn()
	g.Started = false
	g.Level = 0
	g.ClearedRows = 0
}

// rowFactor rewards clearing multiple rows with one drop
func rowFactor(rows int) int {
	switch rows {
	case 1:
		return 1
	case 2:
		return 3
	case 3:
		return 5
	case 4:
		return 8
	}
	return 0
}

// applyPoints adds the score for one clear pass. Must run before
// applyLevel: the multiplier uses the level the rows were cleared at.
func (g *GameContext) applyPoints(rows int) {
	g.Points += rowFactor(rows) * constants.PointsPerFullRow * (g.Level + 1)
}

// applyLevel accumulates cleared rows and recomputes the level from the
// session total. Level is always derived, never stepped independently.
func (g *GameContext) applyLevel(rows int) {
	g.ClearedRows += rows
	g.Level = g.ClearedRows / constants.RowsPerLevel
}

// DropInterval returns the forced-drop cadence: the game speeds up every
// ten cleared rows, floored at MinDropInterval.
func (g *GameContext) DropInterval() time.Duration {
	interval := constants.BaseDropInterval -
		time.Duration(g.ClearedRows/constants.RowsPerLevel)*constants.DropIntervalStep
	if interval < constants.MinDropInterval {
		interval = constants.MinDropInterval
	}
	return interval
}
