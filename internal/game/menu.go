package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/termsweeper/internal/board"
)

// selectRound asks for a difficulty and then a board size. It returns false
// when the player quits at either prompt.
func (g *Game) selectRound() (Config, bool) {
	var cfg Config

	ok := g.prompt("Select difficulty:", g.presets.DifficultyOptions(), func(r rune) bool {
		d := g.presets.DifficultyByKey(r)
		if d == nil {
			return false
		}
		cfg.Difficulty = board.Difficulty(d.Level)
		return true
	})
	if !ok {
		return cfg, false
	}

	ok = g.prompt("Select board size:", g.presets.SizeOptions(), func(r rune) bool {
		s := g.presets.SizeByKey(r)
		if s == nil {
			return false
		}
		cfg.Size = s.Size
		return true
	})
	if !ok {
		return cfg, false
	}

	g.log.WithField("size", cfg.Size).WithField("difficulty", cfg.Difficulty.String()).Debug("round selected")
	return cfg, true
}

// prompt draws a menu and reads keys until pick accepts one. It returns false
// on q, Esc, Ctrl-C or a closed screen. Other keys re-prompt.
func (g *Game) prompt(title string, options []string, pick func(r rune) bool) bool {
	for {
		g.renderer.RenderMenu(title, options)

		ev := g.nextKey()
		if ev == nil {
			return false
		}
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			if ev.Rune() == 'q' {
				return false
			}
			if pick(ev.Rune()) {
				return true
			}
		}
	}
}
