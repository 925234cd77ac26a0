package game

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/termsweeper/internal/gamedata"
	"github.com/samdwyer/termsweeper/internal/telemetry"
	"github.com/samdwyer/termsweeper/internal/ui"
)

// Game drives rounds on a terminal screen.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	presets  *gamedata.Presets
	rng      *rand.Rand
	log      logrus.FieldLogger

	// poll returns the next terminal event; nil means the screen is gone.
	poll func() tcell.Event
}

// New creates a game on the real terminal. seed drives mine placement.
func New(seed int64, log logrus.FieldLogger) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	g, err := NewWithScreen(screen, seed, log)
	if err != nil {
		screen.Close()
		return nil, err
	}
	return g, nil
}

// NewWithScreen creates a game on an already initialized screen.
func NewWithScreen(screen *ui.Screen, seed int64, log logrus.FieldLogger) (*Game, error) {
	presets, err := gamedata.LoadPresets()
	if err != nil {
		return nil, fmt.Errorf("load presets: %w", err)
	}
	theme, err := gamedata.LoadTheme()
	if err != nil {
		log.WithError(err).Warn("theme not loaded, using terminal palette")
	}

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, theme, presets.Help),
		presets:  presets,
		rng:      rand.New(rand.NewSource(seed)),
		log:      log,
		poll:     screen.PollEvent,
	}, nil
}

// Run shows the menu and plays rounds until the player quits from the menu.
// The screen is closed on return.
func (g *Game) Run(ctx context.Context) error {
	defer g.Close()

	for {
		cfg, ok := g.selectRound()
		if !ok {
			return nil
		}
		if _, err := g.Play(ctx, cfg); err != nil {
			return err
		}
	}
}

// Play runs a single round to its outcome and waits for a key before
// returning.
func (g *Game) Play(ctx context.Context, cfg Config) (Outcome, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.round")
	defer span.End()

	s, err := NewSession(ctx, cfg, g.rng, g.log)
	if err != nil {
		span.RecordError(err)
		return OutcomeLoss, fmt.Errorf("start round: %w", err)
	}

	for !s.Done() {
		g.renderer.RenderBoard(s.View(), s.Cursor())
		s.Apply(ctx, g.nextCommand())
	}

	outcome := s.Outcome()
	span.SetAttributes(
		attribute.String("outcome", outcome.String()),
		attribute.Int("moves", s.Moves()),
	)

	g.renderer.RenderBoard(s.View(), s.Cursor())
	g.renderer.RenderBanner(cfg.Size, outcome.Message(), outcome == OutcomeWin)
	g.waitKey()

	return outcome, nil
}

// nextCommand blocks until a key maps to a command. Resizes redraw the
// screen; a closed screen counts as quitting.
func (g *Game) nextCommand() Command {
	for {
		switch ev := g.poll().(type) {
		case nil:
			return CommandQuit
		case *tcell.EventKey:
			if cmd := KeyCommand(ev); cmd != CommandNone {
				return cmd
			}
		case *tcell.EventResize:
			g.screen.Sync()
		}
	}
}

// nextKey blocks until a key event arrives. It returns nil if the screen
// is closed.
func (g *Game) nextKey() *tcell.EventKey {
	for {
		switch ev := g.poll().(type) {
		case nil:
			return nil
		case *tcell.EventKey:
			return ev
		case *tcell.EventResize:
			g.screen.Sync()
		}
	}
}

func (g *Game) waitKey() {
	g.nextKey()
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
