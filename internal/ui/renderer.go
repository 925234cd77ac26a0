package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/termsweeper/internal/board"
	"github.com/samdwyer/termsweeper/internal/gamedata"
)

const (
	// Rows above the grid: status line and help lines.
	headerRows = 3
	// Columns per cell: bracket, glyph, bracket.
	cellWidth = 3
)

// Renderer draws the board, menus and banners.
type Renderer struct {
	screen *Screen
	theme  gamedata.Theme
	help   []string
}

// NewRenderer creates a renderer for the given screen.
func NewRenderer(screen *Screen, theme gamedata.Theme, help []string) *Renderer {
	return &Renderer{screen: screen, theme: theme, help: help}
}

// CellGlyph returns the character shown for a cell: X for an exposed mine,
// the neighbour count for an open cell, F for a flag and ? otherwise.
func CellGlyph(c board.CellView) rune {
	switch {
	case c.Open && c.Mine:
		return 'X'
	case c.Open:
		return rune('0' + c.Neighbors)
	case c.Flagged:
		return 'F'
	default:
		return '?'
	}
}

// RenderBoard draws the status line, help and grid with the cursor.
func (r *Renderer) RenderBoard(view board.View, cursor board.Position) {
	r.screen.Clear()

	status := tcell.StyleDefault.Foreground(r.theme.Status)
	r.screen.DrawText(0, 0, fmt.Sprintf("x: %d, y: %d, mines: %d", cursor.X, cursor.Y, view.MinesRemaining), status)
	for i, line := range r.help {
		if i+1 >= headerRows {
			break
		}
		r.screen.DrawText(0, i+1, line, status)
	}

	bracket := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	cursorStyle := tcell.StyleDefault.Foreground(r.theme.Cursor).Bold(true)

	for y := 0; y < view.Size; y++ {
		row := headerRows + y
		for x := 0; x < view.Size; x++ {
			col := x * cellWidth
			c := view.At(x, y)

			left, right, style := '[', ']', bracket
			if cursor.X == x && cursor.Y == y {
				left, right, style = '(', ')', cursorStyle
			}
			r.screen.SetContent(col, row, left, style)
			r.screen.SetContent(col+1, row, CellGlyph(c), r.cellStyle(c))
			r.screen.SetContent(col+2, row, right, style)
		}
	}

	r.screen.Show()
}

func (r *Renderer) cellStyle(c board.CellView) tcell.Style {
	switch {
	case c.Open && c.Mine:
		return tcell.StyleDefault.Foreground(r.theme.Mine).Bold(true)
	case c.Open:
		return tcell.StyleDefault.Foreground(r.theme.Digits[c.Neighbors])
	case c.Flagged:
		return tcell.StyleDefault.Foreground(r.theme.Flag).Bold(true)
	default:
		return tcell.StyleDefault.Foreground(r.theme.Covered)
	}
}

// RenderBanner writes msg under a board of the given size, on top of what
// was last drawn.
func (r *Renderer) RenderBanner(boardSize int, msg string, won bool) {
	color := r.theme.Loss
	if won {
		color = r.theme.Win
	}
	row := headerRows + boardSize + 1
	r.screen.DrawText(0, row, msg, tcell.StyleDefault.Foreground(color).Bold(true))
	r.screen.DrawText(0, row+1, "press any key", tcell.StyleDefault.Foreground(r.theme.Status))
	r.screen.Show()
}

// RenderMenu clears the screen and draws a prompt with one option per line.
func (r *Renderer) RenderMenu(title string, options []string) {
	r.screen.Clear()

	style := tcell.StyleDefault.Foreground(r.theme.Status)
	r.screen.DrawText(0, 0, title, style.Bold(true))
	for i, opt := range options {
		r.screen.DrawText(2, i+1, opt, style)
	}
	r.screen.DrawText(0, len(options)+2, "[q] quit", style)

	r.screen.Show()
}
