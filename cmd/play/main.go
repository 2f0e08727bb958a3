package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/reversi"
)

// terminal prints the board whenever the human is on turn and reads moves from stdin.
type terminal struct {
	board      *reversi.Board
	selections chan reversi.Position
}

func (t *terminal) Observe(event reversi.Event) {
	switch event.Kind {
	case reversi.EventTurn:
		if event.Color == reversi.Dark {
			t.board.Print(reversi.Dark)
			fmt.Print("your move: ")
		}
	case reversi.EventPlaced:
		fmt.Printf("%s plays %s\n", event.Color, event.Position)
	case reversi.EventPass:
		fmt.Printf("%s passes\n", event.Color)
	case reversi.EventFinished:
		t.board.Print(reversi.Empty)
	}
}

// readMoves sends every parsable line of stdin as a selection. Illegal
// selections are dropped by the human actor, which keeps waiting.
func (t *terminal) readMoves() {
	defer close(t.selections)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		pos, err := reversi.ParsePosition(scanner.Text())
		if err != nil {
			fmt.Printf("%v, try again: ", err)
			continue
		}

		t.selections <- pos
	}
}

func main() {
	config.SetLogLevel()
	cfg := config.LoadGameConfig()

	board, err := reversi.NewBoardStart(cfg.BoardWidth, cfg.BoardHeight)
	if err != nil {
		slog.Error("Failed to create board", "error", err)
		os.Exit(1)
	}

	term := &terminal{
		board:      board,
		selections: make(chan reversi.Position),
	}

	game := reversi.NewGame(board,
		reversi.NewHumanInputActor("Player", term.selections),
		reversi.NewFirstLegalMoveActor("CPU", cfg.AIDelay),
		reversi.WithObserver(term),
		reversi.WithFlipDelay(cfg.FlipDelay),
		reversi.WithPassDelay(cfg.PassDelay),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go term.readMoves()

	result, err := game.Run(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, reversi.ErrInputClosed) {
			return
		}
		slog.Error("Game stopped", "error", err)
		os.Exit(1)
	}

	winner := result.Winner.String()
	if result.Winner == reversi.Empty {
		winner = "draw"
	}

	fmt.Printf("dark %d - light %d, winner: %s\n", result.Dark, result.Light, winner)
}
