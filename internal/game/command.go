package game

import "github.com/gdamore/tcell/v2"

// Command is an abstract player action.
type Command int

const (
	CommandNone Command = iota
	CommandMoveLeft
	CommandMoveDown
	CommandMoveUp
	CommandMoveRight
	CommandToggleFlag
	CommandOpen
	CommandQuit
)

// String returns a human-readable command name.
func (c Command) String() string {
	switch c {
	case CommandMoveLeft:
		return "move_left"
	case CommandMoveDown:
		return "move_down"
	case CommandMoveUp:
		return "move_up"
	case CommandMoveRight:
		return "move_right"
	case CommandToggleFlag:
		return "toggle_flag"
	case CommandOpen:
		return "open"
	case CommandQuit:
		return "quit"
	default:
		return "none"
	}
}

// ParseKey maps a typed character to a command. Unbound keys yield
// CommandNone.
func ParseKey(r rune) Command {
	switch r {
	case 'h':
		return CommandMoveLeft
	case 'j':
		return CommandMoveDown
	case 'k':
		return CommandMoveUp
	case 'l':
		return CommandMoveRight
	case 'm', 'f':
		return CommandToggleFlag
	case ' ', 'o':
		return CommandOpen
	case 'q':
		return CommandQuit
	default:
		return CommandNone
	}
}

// KeyCommand maps a terminal key event to a command. Arrow keys and Enter
// work alongside the letter bindings.
func KeyCommand(ev *tcell.EventKey) Command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CommandQuit
	case tcell.KeyLeft:
		return CommandMoveLeft
	case tcell.KeyDown:
		return CommandMoveDown
	case tcell.KeyUp:
		return CommandMoveUp
	case tcell.KeyRight:
		return CommandMoveRight
	case tcell.KeyEnter:
		return CommandOpen
	case tcell.KeyRune:
		return ParseKey(ev.Rune())
	default:
		return CommandNone
	}
}
