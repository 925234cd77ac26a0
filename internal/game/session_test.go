package game

import (
	"context"
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/termsweeper/internal/board"
)

func newNullLogger() (*logrus.Logger, *test.Hook) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	return log, hook
}

func sessionOn(t *testing.T, size int, mines ...board.Position) *Session {
	t.Helper()
	b, err := board.FromMines(size, mines)
	require.NoError(t, err)
	log, _ := newNullLogger()
	s, err := NewSessionFromBoard(context.Background(), b, log)
	require.NoError(t, err)
	return s
}

func apply(s *Session, cmds ...Command) Outcome {
	ctx := context.Background()
	for _, cmd := range cmds {
		s.Apply(ctx, cmd)
	}
	return s.Outcome()
}

func TestNewSessionInvalidConfig(t *testing.T) {
	log, _ := newNullLogger()
	rng := rand.New(rand.NewSource(1))

	_, err := NewSession(context.Background(), Config{Size: 9, Difficulty: board.DifficultyEasy}, rng, log)
	assert.ErrorIs(t, err, board.ErrInvalidSize)

	_, err = NewSession(context.Background(), Config{Size: 8, Difficulty: 0}, rng, log)
	assert.ErrorIs(t, err, board.ErrInvalidDifficulty)
}

func TestNewSessionOpensSafeStart(t *testing.T) {
	log, hook := newNullLogger()
	rng := rand.New(rand.NewSource(99))

	for _, size := range board.Sizes {
		s, err := NewSession(context.Background(), Config{Size: size, Difficulty: board.DifficultyMedium}, rng, log)
		require.NoError(t, err)

		c := s.Board().Cell(s.Cursor())
		assert.True(t, c.Open, "size %d: start cell open", size)
		assert.False(t, c.Mine, "size %d: start cell is a mine", size)
		assert.Zero(t, s.Board().NeighborMineCount(s.Cursor(), true), "size %d", size)
		assert.Zero(t, s.Moves())
	}

	require.NotEmpty(t, hook.AllEntries())
	assert.Equal(t, "session started", hook.AllEntries()[0].Message)
}

func TestNewSessionReproducible(t *testing.T) {
	log, _ := newNullLogger()
	cfg := Config{Size: 16, Difficulty: board.DifficultyHard}

	s1, err := NewSession(context.Background(), cfg, rand.New(rand.NewSource(5)), log)
	require.NoError(t, err)
	s2, err := NewSession(context.Background(), cfg, rand.New(rand.NewSource(5)), log)
	require.NoError(t, err)

	assert.Equal(t, s1.View(), s2.View())
	assert.Equal(t, s1.Cursor(), s2.Cursor())
}

func TestSessionWinByFlaggingLastMine(t *testing.T) {
	s := sessionOn(t, 8, board.Position{X: 7, Y: 7})

	assert.Equal(t, board.Position{X: 0, Y: 0}, s.Cursor())
	assert.Equal(t, 63, s.Board().OpenCount())
	assert.Equal(t, OutcomePlaying, s.Outcome())

	// Wrap from (0,0) to (7,7).
	assert.Equal(t, OutcomePlaying, apply(s, CommandMoveLeft, CommandMoveUp))
	assert.Equal(t, board.Position{X: 7, Y: 7}, s.Cursor())

	assert.Equal(t, OutcomeWin, apply(s, CommandToggleFlag))
	assert.True(t, s.Done())
	assert.Equal(t, 3, s.Moves())
}

func TestSessionWinWithWrongFlag(t *testing.T) {
	b, err := board.FromMines(8, []board.Position{{X: 7, Y: 7}})
	require.NoError(t, err)
	b.ToggleFlag(board.Position{X: 0, Y: 1})

	log, _ := newNullLogger()
	s, err := NewSessionFromBoard(context.Background(), b, log)
	require.NoError(t, err)
	assert.Equal(t, 62, b.OpenCount())

	// (0,1) still carries a flag on a safe cell; full resolution is enough.
	assert.Equal(t, OutcomeWin, apply(s, CommandMoveLeft, CommandMoveUp, CommandToggleFlag))
}

func TestSessionOpenMineLoses(t *testing.T) {
	s := sessionOn(t, 8,
		board.Position{X: 2, Y: 0}, board.Position{X: 2, Y: 1}, board.Position{X: 2, Y: 2},
		board.Position{X: 1, Y: 2}, board.Position{X: 0, Y: 2},
	)
	require.Equal(t, 4, s.Board().OpenCount())

	assert.Equal(t, OutcomePlaying, apply(s, CommandMoveRight, CommandMoveRight))
	assert.Equal(t, OutcomeLoss, apply(s, CommandOpen))

	assert.True(t, s.Board().Cell(board.Position{X: 2, Y: 0}).Open)
	assert.Equal(t, 5, s.Board().OpenCount(), "only the mine was added")

	// Commands after the end change nothing.
	moves := s.Moves()
	assert.Equal(t, OutcomeLoss, apply(s, CommandMoveDown, CommandToggleFlag))
	assert.Equal(t, moves, s.Moves())
	assert.Equal(t, board.Position{X: 2, Y: 0}, s.Cursor())
}

func TestSessionOpenFlaggedCellIsSafe(t *testing.T) {
	s := sessionOn(t, 8, board.Position{X: 1, Y: 2}, board.Position{X: 7, Y: 7})
	start := s.Cursor()

	// Walk onto the mine, flag it, then try to open it.
	for s.Cursor() != (board.Position{X: 1, Y: 2}) {
		if s.Cursor().Y != 2 {
			apply(s, CommandMoveDown)
			continue
		}
		apply(s, CommandMoveRight)
	}
	assert.NotEqual(t, start, s.Cursor())

	assert.Equal(t, OutcomePlaying, apply(s, CommandToggleFlag, CommandOpen))
	assert.False(t, s.Board().Cell(s.Cursor()).Open)
}

func TestSessionQuitLoses(t *testing.T) {
	s := sessionOn(t, 8, board.Position{X: 7, Y: 7})

	assert.Equal(t, OutcomeLoss, apply(s, CommandQuit))
	assert.Equal(t, 1, s.Moves())
	assert.Equal(t, 63, s.Board().OpenCount())
}

func TestSessionIgnoresNone(t *testing.T) {
	s := sessionOn(t, 8, board.Position{X: 7, Y: 7})

	assert.Equal(t, OutcomePlaying, apply(s, CommandNone, CommandNone))
	assert.Zero(t, s.Moves())
}

func TestSessionFlagToggleAtCursor(t *testing.T) {
	s := sessionOn(t, 8, board.Position{X: 7, Y: 7})
	apply(s, CommandMoveLeft, CommandMoveUp, CommandMoveUp)

	p := board.Position{X: 7, Y: 6}
	require.Equal(t, p, s.Cursor())

	// (7,6) is open, so the flag never sticks.
	apply(s, CommandToggleFlag)
	assert.False(t, s.Board().Cell(p).Flagged)
	assert.Equal(t, OutcomePlaying, s.Outcome())
}

func TestSessionImmediateWin(t *testing.T) {
	s := sessionOn(t, 8)
	assert.Equal(t, OutcomeWin, s.Outcome())
	assert.Equal(t, 64, s.Board().OpenCount())
}

func TestSessionDegenerateStart(t *testing.T) {
	var mines []board.Position
	for _, y := range []int{1, 4, 7} {
		for _, x := range []int{1, 4, 7} {
			mines = append(mines, board.Position{X: x, Y: y})
		}
	}
	s := sessionOn(t, 8, mines...)

	assert.Equal(t, board.Position{X: 0, Y: 0}, s.Cursor())
	assert.Equal(t, 1, s.Board().OpenCount())
	assert.Equal(t, OutcomePlaying, s.Outcome())
}

func TestSessionAllMines(t *testing.T) {
	var mines []board.Position
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			mines = append(mines, board.Position{X: x, Y: y})
		}
	}
	b, err := board.FromMines(8, mines)
	require.NoError(t, err)
	log, _ := newNullLogger()

	_, err = NewSessionFromBoard(context.Background(), b, log)
	assert.ErrorIs(t, err, ErrNoSafeStart)
}

func TestSessionLogsOutcome(t *testing.T) {
	b, err := board.FromMines(8, []board.Position{{X: 7, Y: 7}})
	require.NoError(t, err)
	log, hook := newNullLogger()
	s, err := NewSessionFromBoard(context.Background(), b, log)
	require.NoError(t, err)

	apply(s, CommandQuit)

	last := hook.LastEntry()
	require.NotNil(t, last)
	assert.Equal(t, "session finished", last.Message)
	assert.Equal(t, "loss", last.Data["outcome"])
	assert.Equal(t, 1, last.Data["moves"])
}
