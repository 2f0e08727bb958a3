package reversi

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// EventKind identifies what happened on the board.
type EventKind string

const (
	EventTurn     EventKind = "turn"
	EventPlaced   EventKind = "placed"
	EventFlipped  EventKind = "flipped"
	EventPass     EventKind = "pass"
	EventFinished EventKind = "finished"
)

// Event is a side effect of the game that presentation layers replay in order.
type Event struct {
	Kind EventKind `json:"kind"`

	// Position is set for placed and flipped events.
	Position Position `json:"position"`

	// Color is the color to move, the color placed, the color a piece flipped
	// to, the color that passed or the winner.
	Color CellState `json:"color"`

	// Result is only set for finished events.
	Result *Result `json:"result,omitempty"`
}

// Observer receives game events. Observers are called synchronously from the
// goroutine running the game, right after the board was changed.
type Observer interface {
	Observe(event Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(event Event)

// Observe calls f(event).
func (f ObserverFunc) Observe(event Event) {
	f(event)
}

// Result is the final score of a game.
type Result struct {
	Dark  int `json:"dark"`
	Light int `json:"light"`

	// Winner is Empty for a draw.
	Winner CellState `json:"winner"`
}

// NewResult counts the pieces on board.
func NewResult(board *Board) Result {
	result := Result{
		Dark:   board.Count(Dark),
		Light:  board.Count(Light),
		Winner: Empty,
	}

	switch {
	case result.Dark > result.Light:
		result.Winner = Dark
	case result.Light > result.Dark:
		result.Winner = Light
	}

	return result
}

// Game drives the turn loop: it asks the actor on turn for a move, applies the
// move and its captures to the board and hands the turn to the other color.
type Game struct {
	board  *Board
	actors map[CellState]Actor
	turn   CellState

	observers []Observer

	// flipDelay is waited before each flip, passDelay after a pass.
	flipDelay time.Duration
	passDelay time.Duration

	// consecutivePasses ends the game when both colors are stuck on a non-full board.
	consecutivePasses int

	finished bool
}

// Option configures a Game.
type Option func(*Game)

// WithObserver registers an observer for game events.
func WithObserver(observer Observer) Option {
	return func(g *Game) {
		g.observers = append(g.observers, observer)
	}
}

// WithFlipDelay sets the pause before each flipped piece.
func WithFlipDelay(d time.Duration) Option {
	return func(g *Game) {
		g.flipDelay = d
	}
}

// WithPassDelay sets the pause after a pass.
func WithPassDelay(d time.Duration) Option {
	return func(g *Game) {
		g.passDelay = d
	}
}

// NewGame creates a game on board. Dark moves first.
func NewGame(board *Board, dark, light Actor, opts ...Option) *Game {
	g := &Game{
		board: board,
		actors: map[CellState]Actor{
			Dark:  dark,
			Light: light,
		},
		turn: Dark,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Board returns a read-only view of the board.
func (g *Game) Board() BoardView {
	return g.board
}

// Turn returns the color to move.
func (g *Game) Turn() CellState {
	return g.turn
}

// Finished checks if the game is over.
func (g *Game) Finished() bool {
	return g.finished
}

// Run plays turns until the game is finished.
func (g *Game) Run(ctx context.Context) (Result, error) {
	for !g.finished {
		if _, err := g.Step(ctx); err != nil {
			return Result{}, err
		}
	}

	return NewResult(g.board), nil
}

// Step evaluates the phase for the color to move and acts on it. It returns
// the phase that was evaluated.
func (g *Game) Step(ctx context.Context) (TurnPhase, error) {
	if g.finished {
		return Finish, nil
	}

	phase := Phase(g.board, g.turn)

	switch phase {
	case Finish:
		g.finish()
		return phase, nil
	case Pass:
		return phase, g.pass(ctx)
	default:
		return phase, g.play(ctx)
	}
}

func (g *Game) play(ctx context.Context) error {
	actor := g.actors[g.turn]

	slog.Debug("waiting for move", "actor", actor.Name(), "color", g.turn)

	g.emit(Event{Kind: EventTurn, Color: g.turn})

	move, err := actor.NextMove(ctx, g.board, g.turn)
	if err != nil {
		return fmt.Errorf("failed to get move from %s: %w", actor.Name(), err)
	}

	if err = g.board.Place(move, g.turn); err != nil {
		return fmt.Errorf("failed to apply move of %s: %w", actor.Name(), err)
	}

	g.emit(Event{Kind: EventPlaced, Position: move, Color: g.turn})

	captures := Captures(g.board, MoveCandidate{Color: g.turn, Position: move})

	for _, pos := range captures {
		if g.flipDelay > 0 {
			time.Sleep(g.flipDelay)
		}

		if err = g.board.Flip(pos); err != nil {
			return fmt.Errorf("failed to flip %s: %w", pos, err)
		}

		g.emit(Event{Kind: EventFlipped, Position: pos, Color: g.turn})
	}

	slog.Info("turn", "actor", actor.Name(), "color", g.turn, "move", move, "flips", len(captures))

	g.consecutivePasses = 0
	g.turn = g.turn.Opponent()
	return nil
}

func (g *Game) pass(ctx context.Context) error {
	slog.Info("pass", "actor", g.actors[g.turn].Name(), "color", g.turn)

	g.emit(Event{Kind: EventPass, Color: g.turn})

	g.consecutivePasses++
	g.turn = g.turn.Opponent()

	// Neither color can move, but the board is not full.
	if g.consecutivePasses >= 2 {
		g.finish()
		return nil
	}

	return sleep(ctx, g.passDelay)
}

func (g *Game) finish() {
	g.finished = true

	result := NewResult(g.board)
	slog.Info("game finished", "dark", result.Dark, "light", result.Light, "winner", result.Winner)

	g.emit(Event{Kind: EventFinished, Color: result.Winner, Result: &result})
}

func (g *Game) emit(event Event) {
	for _, observer := range g.observers {
		observer.Observe(event)
	}
}
