package constants

import "time"

// Board Dimensions
// BoardWidth and BoardHeight must both be odd.
const (
	BoardWidth  = 13
	BoardHeight = 21
)

// Rendering
const (
	// BlockSymbol is the glyph pair used for one cell of a shape
	BlockSymbol = "██"

	// BlockWidth is the number of terminal columns per board column
	BlockWidth = 2
)

// Scoring & Leveling
const (
	// PointsPerFullRow is the base score for a single cleared row
	PointsPerFullRow = 10

	// RowsPerLevel is the number of cleared rows needed to advance one level
	RowsPerLevel = 10
)

// Game Loop Timing
const (
	// FrameInterval is the cadence of the render/auto-drop check loop
	FrameInterval = 10 * time.Millisecond

	// BaseDropInterval is the time between forced drops at level 0
	BaseDropInterval = time.Second

	// DropIntervalStep is how much the forced drop interval shrinks per level
	DropIntervalStep = 100 * time.Millisecond

	// MinDropInterval is the floor for the forced drop cadence
	MinDropInterval = 100 * time.Millisecond
)

// Persistence
const (
	// StatsDirName is the per-user config subdirectory for saved stats
	StatsDirName = "tetris"

	// StatsFileName is the saved stats file inside StatsDirName
	StatsFileName = "stats.json"
)
