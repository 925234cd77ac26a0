package game

import (
	"fmt"

	"github.com/samdwyer/termsweeper/internal/board"
)

// Config describes one round.
type Config struct {
	Size       int              // Board edge length, one of board.Sizes
	Difficulty board.Difficulty // Mine density preset
}

// Validate checks the round settings before a board is generated.
func (c Config) Validate() error {
	if !board.ValidSize(c.Size) {
		return fmt.Errorf("%w: %d", board.ErrInvalidSize, c.Size)
	}
	if !c.Difficulty.Valid() {
		return fmt.Errorf("%w: %d", board.ErrInvalidDifficulty, c.Difficulty)
	}
	return nil
}
