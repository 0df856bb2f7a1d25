package engine

import (
	"testing"

	"github.com/Kili03/tetris/input"
)

func testContext(shapes ...*Shape) *GameContext {
	return &GameContext{
		Shapes:    shapes,
		NextShape: NewRandomShape(),
	}
}

type soundRecorder struct {
	rows      []int
	gameOvers int
}

func (s *soundRecorder) RowsCleared(count int) { s.rows = append(s.rows, count) }
func (s *soundRecorder) GameOver()             { s.gameOvers++ }

func TestFrameIgnoresNonDirectional(t *testing.T) {
	square := cellMask([2]int{1, 1}, [2]int{2, 1}, [2]int{1, 2}, [2]int{2, 2})

	for _, cmd := range []input.Command{input.CommandNone, input.CommandPause, input.CommandQuit} {
		g := testContext(shapeAt(4, 8, square))
		before := *g.Active()

		g.Frame(cmd)

		if *g.Active() != before {
			t.Errorf("%v: active shape changed", cmd)
		}
		if len(g.Shapes) != 1 {
			t.Errorf("%v: shape list changed", cmd)
		}
	}
}

func TestFrameLateralAndRotation(t *testing.T) {
	square := cellMask([2]int{1, 1}, [2]int{2, 1}, [2]int{1, 2}, [2]int{2, 2})

	tests := []struct {
		name  string
		cmd   input.Command
		wantX int
		wantY int
	}{
		{"Move left", input.CommandMoveLeft, 3, 8},
		{"Move right", input.CommandMoveRight, 5, 8},
		{"Soft drop", input.CommandSoftDrop, 4, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := testContext(shapeAt(4, 8, square))

			g.Frame(tt.cmd)

			active := g.Active()
			if active.Pos.X != tt.wantX || active.Pos.Y != tt.wantY {
				t.Errorf("position = (%d, %d), want (%d, %d)",
					active.Pos.X, active.Pos.Y, tt.wantX, tt.wantY)
			}
			if len(g.Shapes) != 1 {
				t.Errorf("legal move must not settle the shape")
			}
		})
	}

	t.Run("Rotate", func(t *testing.T) {
		g := testContext(shapeAt(4, 8, square))
		before := g.Active().Mask

		g.Frame(input.CommandRotate)

		if g.Active().Mask != Rotate(before) {
			t.Errorf("mask was not rotated")
		}
	})
}

func TestFrameRejectsMoveThroughWall(t *testing.T) {
	edge := cellMask([2]int{0, 0}, [2]int{3, 0})

	tests := []struct {
		name string
		x    int
		cmd  input.Command
	}{
		{"Left wall", 0, input.CommandMoveLeft},
		{"Right wall", 9, input.CommandMoveRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := testContext(shapeAt(tt.x, 8, edge))

			g.Frame(tt.cmd)

			if g.Active().Pos.X != tt.x {
				t.Errorf("position changed to x=%d, want %d", g.Active().Pos.X, tt.x)
			}
			if len(g.Shapes) != 1 {
				t.Errorf("rejected lateral move must not settle the shape")
			}
		})
	}
}

func TestFrameBlockedDropSettles(t *testing.T) {
	g := testContext(shapeAt(4, 0, cellMask([2]int{0, 0})))
	next := g.NextShape

	g.Frame(input.CommandSoftDrop)

	if len(g.Shapes) != 2 {
		t.Fatalf("len(Shapes) = %d, want 2 after settling", len(g.Shapes))
	}
	if g.Shapes[0].Pos.Y != 0 {
		t.Errorf("settled shape moved to y=%d", g.Shapes[0].Pos.Y)
	}
	if g.Active() != next {
		t.Errorf("expected the next shape to become active")
	}
	if g.NextShape == next {
		t.Errorf("expected a fresh next shape")
	}
}

func TestFrameBlockedDropScoresFullRow(t *testing.T) {
	recorder := &soundRecorder{}
	g := testContext(
		shapeAt(0, 0, bottomRowMask()),
		shapeAt(4, 0, bottomRowMask()),
		shapeAt(8, 0, bottomRowMask()),
		shapeAt(12, 0, cellMask([2]int{0, 0})),
	)
	g.Sound = recorder

	g.Frame(input.CommandSoftDrop)

	if g.Points != 10 {
		t.Errorf("points = %d, want 10", g.Points)
	}
	if g.ClearedRows != 1 {
		t.Errorf("cleared rows = %d, want 1", g.ClearedRows)
	}
	if g.Highscore != 10 {
		t.Errorf("highscore = %d, want 10", g.Highscore)
	}
	if len(recorder.rows) != 1 || recorder.rows[0] != 1 {
		t.Errorf("sound events = %v, want one single-row clear", recorder.rows)
	}
}

func TestFrameSpawnCollisionResets(t *testing.T) {
	square := cellMask([2]int{1, 1}, [2]int{2, 1}, [2]int{1, 2}, [2]int{2, 2})
	recorder := &soundRecorder{}

	// A settled shape sits exactly on the spawn point, so the promoted
	// next shape has no room.
	blocker := &Shape{Pos: SpawnPoint(), Mask: square}
	g := testContext(blocker, shapeAt(4, 0, cellMask([2]int{0, 0})))
	g.NextShape = &Shape{Pos: SpawnPoint(), Mask: square}
	g.Points = 70
	g.ClearedRows = 7
	g.Started = true
	g.Highscore = 70
	g.Sound = recorder

	g.Frame(input.CommandSoftDrop)

	if g.Points != 0 || g.Level != 0 || g.ClearedRows != 0 {
		t.Errorf("session not reset: points=%d level=%d rows=%d",
			g.Points, g.Level, g.ClearedRows)
	}
	if g.Started {
		t.Errorf("expected Started=false after reset")
	}
	if len(g.Shapes) != 1 {
		t.Errorf("len(Shapes) = %d, want 1", len(g.Shapes))
	}
	if g.Highscore != 70 {
		t.Errorf("highscore = %d, want 70 preserved through reset", g.Highscore)
	}
	if recorder.gameOvers != 1 {
		t.Errorf("game over sounds = %d, want 1", recorder.gameOvers)
	}
}

func TestFrameRotationRevertedWhenBlocked(t *testing.T) {
	// A vertical bar near the right wall rotates into a horizontal bar
	// that would poke through the wall
	bar := cellMask([2]int{0, 0}, [2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3})
	g := testContext(shapeAt(10, 8, bar))
	before := *g.Active()

	g.Frame(input.CommandRotate)

	if *g.Active() != before {
		t.Errorf("blocked rotation must restore position and mask")
	}
	if len(g.Shapes) != 1 {
		t.Errorf("blocked rotation must not settle the shape")
	}
}
