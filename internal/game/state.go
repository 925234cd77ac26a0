// Package game provides the minesweeper session, the round loop and the
// difficulty/size menu.
package game

// Outcome is the state of a session.
type Outcome int

const (
	// OutcomePlaying means the session still accepts commands.
	OutcomePlaying Outcome = iota
	// OutcomeWin means every cell is resolved and no mines are left unmarked.
	OutcomeWin
	// OutcomeLoss means a mine was opened or the player quit.
	OutcomeLoss
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomePlaying:
		return "playing"
	case OutcomeWin:
		return "win"
	case OutcomeLoss:
		return "loss"
	default:
		return "unknown"
	}
}

// Done reports whether o is terminal.
func (o Outcome) Done() bool {
	return o == OutcomeWin || o == OutcomeLoss
}

// Message returns the line shown to the player after a round.
func (o Outcome) Message() string {
	switch o {
	case OutcomeWin:
		return "Congratulations! You won"
	case OutcomeLoss:
		return "Sadge... You lost"
	default:
		return ""
	}
}
