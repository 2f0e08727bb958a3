package reversi

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Actor supplies the next move for a color. NextMove is only called when the
// color has at least one legal move, and may block until a move is available.
type Actor interface {
	// Name is used for logging.
	Name() string

	// NextMove returns a legal move for color on board.
	NextMove(ctx context.Context, board BoardView, color CellState) (Position, error)
}

// HumanInputActor waits for cell selections from an input source, such as a
// websocket client or a terminal. Illegal selections are dropped.
type HumanInputActor struct {
	name       string
	selections <-chan Position
}

// NewHumanInputActor creates a HumanInputActor reading from selections.
func NewHumanInputActor(name string, selections <-chan Position) *HumanInputActor {
	return &HumanInputActor{
		name:       name,
		selections: selections,
	}
}

// Name returns the name of the actor.
func (a *HumanInputActor) Name() string {
	return a.name
}

// NextMove blocks until a legal selection arrives. It only returns early if
// ctx is done or the selection channel is closed.
func (a *HumanInputActor) NextMove(ctx context.Context, board BoardView, color CellState) (Position, error) {
	for {
		select {
		case <-ctx.Done():
			return Position{}, ctx.Err()
		case pos, ok := <-a.selections:
			if !ok {
				return Position{}, fmt.Errorf("%s: %w", a.name, ErrInputClosed)
			}

			if !IsLegalMove(board, color, pos) {
				slog.Debug("ignoring illegal selection", "actor", a.name, "color", color, "position", pos)
				continue
			}

			return pos, nil
		}
	}
}

// FirstLegalMoveActor plays the first legal move it finds, scanning columns
// in the outer loop and rows in the inner loop.
type FirstLegalMoveActor struct {
	name string

	// delay pauses before each move so humans can follow the game.
	delay time.Duration
}

// NewFirstLegalMoveActor creates a FirstLegalMoveActor.
func NewFirstLegalMoveActor(name string, delay time.Duration) *FirstLegalMoveActor {
	return &FirstLegalMoveActor{
		name:  name,
		delay: delay,
	}
}

// Name returns the name of the actor.
func (a *FirstLegalMoveActor) Name() string {
	return a.name
}

// NextMove returns the first legal move, or ErrNoLegalMove if there is none.
func (a *FirstLegalMoveActor) NextMove(ctx context.Context, board BoardView, color CellState) (Position, error) {
	if err := sleep(ctx, a.delay); err != nil {
		return Position{}, err
	}

	var (
		move  Position
		found bool
	)

	forEachPosition(board, func(pos Position) bool {
		if IsLegalMove(board, color, pos) {
			move, found = pos, true
		}
		return !found
	})

	if !found {
		return Position{}, fmt.Errorf("%s playing %s: %w", a.name, color, ErrNoLegalMove)
	}

	return move, nil
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
