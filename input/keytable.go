package input

import "github.com/gdamore/tcell/v2"

// Translate maps a tcell key event to a Command.
// Arrow keys drive the active shape, 'p' toggles pause, 'q', ESC and
// Ctrl+C quit. Every other key translates to CommandNone.
func Translate(ev *tcell.EventKey) Command {
	switch ev.Key() {
	case tcell.KeyLeft:
		return CommandMoveLeft
	case tcell.KeyRight:
		return CommandMoveRight
	case tcell.KeyUp:
		return CommandRotate
	case tcell.KeyDown:
		return CommandSoftDrop
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CommandQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return CommandQuit
		case 'p', 'P':
			return CommandPause
		}
	}
	return CommandNone
}
