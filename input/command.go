package input

// Command is the semantic action decoded from one key event
type Command uint8

const (
	CommandNone Command = iota

	// Gameplay commands, the only ones the per-frame update accepts
	CommandMoveLeft
	CommandMoveRight
	CommandRotate
	CommandSoftDrop

	// Session commands, handled by the loop outside the frame update
	CommandPause
	CommandQuit
)

// Directional reports whether the command drives gameplay logic.
// Everything else is ignored by the frame update.
func (c Command) Directional() bool {
	switch c {
	case CommandMoveLeft, CommandMoveRight, CommandRotate, CommandSoftDrop:
		return true
	}
	return false
}

// String returns the command name for diagnostics
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "None"
	case CommandMoveLeft:
		return "MoveLeft"
	case CommandMoveRight:
		return "MoveRight"
	case CommandRotate:
		return "Rotate"
	case CommandSoftDrop:
		return "SoftDrop"
	case CommandPause:
		return "Pause"
	case CommandQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
