package game

import (
	"context"
	"errors"
	"math/rand"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/termsweeper/internal/board"
	"github.com/samdwyer/termsweeper/internal/telemetry"
)

// maxGenerationAttempts bounds how often a board without a safe start is
// thrown away before settling for any non-mine cell.
const maxGenerationAttempts = 100

// ErrNoSafeStart is returned when every generated board was all mines.
var ErrNoSafeStart = errors.New("no safe starting cell")

// Session is one playthrough: a board, a cursor and the outcome so far.
type Session struct {
	board   *board.Board
	cursor  Cursor
	outcome Outcome
	moves   int
	log     logrus.FieldLogger
	tracer  trace.Tracer
}

// NewSession generates a board for cfg and opens its first safe cell.
func NewSession(ctx context.Context, cfg Config, rng *rand.Rand, log logrus.FieldLogger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	tracer := telemetry.Tracer("session")
	ctx, span := tracer.Start(ctx, "session.start")
	defer span.End()

	b, start, attempts, err := generate(cfg, rng)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("board.size", cfg.Size),
		attribute.Int("board.difficulty", int(cfg.Difficulty)),
		attribute.Int("board.mines", b.MineCount()),
		attribute.Int("board.attempts", attempts),
		attribute.Int("start.x", start.X),
		attribute.Int("start.y", start.Y),
	)

	s := &Session{
		board:  b,
		cursor: NewCursor(start, cfg.Size),
		log: log.WithFields(logrus.Fields{
			"size":       cfg.Size,
			"difficulty": cfg.Difficulty.String(),
		}),
		tracer: tracer,
	}
	s.log.WithFields(logrus.Fields{
		"mines":    b.MineCount(),
		"attempts": attempts,
		"start_x":  start.X,
		"start_y":  start.Y,
	}).Info("session started")

	s.open(ctx, start)
	s.checkWin(ctx)
	return s, nil
}

// NewSessionFromBoard starts a session on a prepared board, opening its
// first safe cell (or first non-mine cell) just like NewSession.
func NewSessionFromBoard(ctx context.Context, b *board.Board, log logrus.FieldLogger) (*Session, error) {
	start, ok := startCell(b)
	if !ok {
		return nil, ErrNoSafeStart
	}
	s := &Session{
		board:  b,
		cursor: NewCursor(start, b.Size()),
		log:    log.WithField("size", b.Size()),
		tracer: telemetry.Tracer("session"),
	}
	s.open(ctx, start)
	s.checkWin(ctx)
	return s, nil
}

// generate draws boards until one has a safe starting cell. After
// maxGenerationAttempts it accepts the last board with any non-mine start.
func generate(cfg Config, rng *rand.Rand) (*board.Board, board.Position, int, error) {
	var b *board.Board
	for attempt := 1; attempt <= maxGenerationAttempts; attempt++ {
		var err error
		b, err = board.New(cfg.Size, cfg.Difficulty, rng)
		if err != nil {
			return nil, board.Position{}, attempt, err
		}
		if p, ok := b.FirstSafeCell(); ok {
			return b, p, attempt, nil
		}
	}
	if p, ok := b.FirstNonMineCell(); ok {
		return b, p, maxGenerationAttempts, nil
	}
	return nil, board.Position{}, maxGenerationAttempts, ErrNoSafeStart
}

func startCell(b *board.Board) (board.Position, bool) {
	if p, ok := b.FirstSafeCell(); ok {
		return p, true
	}
	return b.FirstNonMineCell()
}

// Apply executes one command and returns the resulting outcome. Commands
// after the session has ended, and CommandNone, change nothing.
func (s *Session) Apply(ctx context.Context, cmd Command) Outcome {
	if s.outcome.Done() || cmd == CommandNone {
		return s.outcome
	}
	s.moves++

	switch cmd {
	case CommandMoveLeft:
		s.cursor.Move(-1, 0)
	case CommandMoveRight:
		s.cursor.Move(1, 0)
	case CommandMoveUp:
		s.cursor.Move(0, -1)
	case CommandMoveDown:
		s.cursor.Move(0, 1)
	case CommandToggleFlag:
		s.board.ToggleFlag(s.cursor.Position())
	case CommandOpen:
		if !s.open(ctx, s.cursor.Position()) {
			s.finish(ctx, OutcomeLoss)
			return s.outcome
		}
	case CommandQuit:
		s.finish(ctx, OutcomeLoss)
		return s.outcome
	}

	s.checkWin(ctx)
	return s.outcome
}

// open reveals p and records how many cells the cascade uncovered.
func (s *Session) open(ctx context.Context, p board.Position) bool {
	_, span := s.tracer.Start(ctx, "session.open")
	defer span.End()

	before := s.board.OpenCount()
	safe := s.board.Open(p)
	opened := s.board.OpenCount() - before

	span.SetAttributes(
		attribute.Int("cell.x", p.X),
		attribute.Int("cell.y", p.Y),
		attribute.Int("cells.opened", opened),
		attribute.Bool("mine", !safe),
	)
	s.log.WithFields(logrus.Fields{
		"x":      p.X,
		"y":      p.Y,
		"opened": opened,
		"mine":   !safe,
	}).Debug("cell opened")

	return safe
}

func (s *Session) checkWin(ctx context.Context) {
	if s.board.AllResolved() && s.board.NetMinesRemaining() == 0 {
		s.finish(ctx, OutcomeWin)
	}
}

func (s *Session) finish(ctx context.Context, o Outcome) {
	s.outcome = o

	_, span := s.tracer.Start(ctx, "session.end")
	span.SetAttributes(
		attribute.String("outcome", o.String()),
		attribute.Int("moves", s.moves),
		attribute.Int("cells.open", s.board.OpenCount()),
		attribute.Int("cells.flagged", s.board.FlagCount()),
	)
	span.End()

	s.log.WithFields(logrus.Fields{
		"outcome": o.String(),
		"moves":   s.moves,
	}).Info("session finished")
}

// Board returns the session's board.
func (s *Session) Board() *board.Board {
	return s.board
}

// View returns a rendering snapshot of the board.
func (s *Session) View() board.View {
	return s.board.View()
}

// Cursor returns the selected cell.
func (s *Session) Cursor() board.Position {
	return s.cursor.Position()
}

// Outcome returns the current outcome.
func (s *Session) Outcome() Outcome {
	return s.outcome
}

// Done reports whether the session has ended.
func (s *Session) Done() bool {
	return s.outcome.Done()
}

// Moves returns the number of commands applied.
func (s *Session) Moves() int {
	return s.moves
}
