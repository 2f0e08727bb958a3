package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/reversi"
)

const (
	// HumanColor is played by the human, who moves first.
	HumanColor = reversi.Dark

	// SelectTimeout bounds how long a caller of Select waits for the human actor.
	SelectTimeout = 10 * time.Second

	recordTimeout    = 2 * time.Second
	subscriberBuffer = 256
)

var (
	// ErrNotAwaitingInput is returned when a cell is selected while the human is not on turn.
	ErrNotAwaitingInput = errors.New("not awaiting input")

	// ErrFinished is returned when a cell is selected after the game ended.
	ErrFinished = errors.New("game finished")
)

// Snapshot is the state of the session after the most recent event.
type Snapshot struct {
	ID         string             `json:"id"`
	Board      string             `json:"board"`
	Width      int                `json:"width"`
	Height     int                `json:"height"`
	Turn       reversi.CellState  `json:"turn"`
	LegalMoves []reversi.Position `json:"legal_moves"`
	Finished   bool               `json:"finished"`
	Result     *reversi.Result    `json:"result,omitempty"`
}

// Message is sent to subscribers for every game event.
type Message struct {
	Event    reversi.Event `json:"event"`
	Snapshot Snapshot      `json:"snapshot"`
}

// Recorder stores game events outside of the process.
type Recorder interface {
	Record(ctx context.Context, msg Message) error
}

// Session hosts the single game of this process: a human playing dark
// against the first-legal-move AI playing light.
type Session struct {
	id         string
	board      *reversi.Board
	game       *reversi.Game
	selections chan reversi.Position
	recorders  []Recorder
	done       chan struct{}

	// mu protects snapshot, awaiting and subscribers
	mu       sync.RWMutex
	snapshot Snapshot

	// awaiting is open while the human is on turn and closed once the human's
	// move is placed. It is nil while the human is not on turn.
	awaiting chan struct{}

	subscribers    map[int]chan Message
	nextSubscriber int
}

// New creates a session with a board in the start position.
func New(cfg config.GameConfig, recorders ...Recorder) (*Session, error) {
	board, err := reversi.NewBoardStart(cfg.BoardWidth, cfg.BoardHeight)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	s := &Session{
		id:          uuid.New().String(),
		board:       board,
		selections:  make(chan reversi.Position),
		recorders:   recorders,
		done:        make(chan struct{}),
		subscribers: make(map[int]chan Message),
	}

	human := reversi.NewHumanInputActor("Player", s.selections)
	ai := reversi.NewFirstLegalMoveActor("CPU", cfg.AIDelay)

	s.game = reversi.NewGame(board, human, ai,
		reversi.WithObserver(s),
		reversi.WithFlipDelay(cfg.FlipDelay),
		reversi.WithPassDelay(cfg.PassDelay),
	)

	s.snapshot = s.buildSnapshot(nil)

	return s, nil
}

// ID returns the session ID.
func (s *Session) ID() string {
	return s.id
}

// Done is closed when Run returns.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Run plays the game until it is finished or ctx is done.
func (s *Session) Run(ctx context.Context) (reversi.Result, error) {
	defer s.closeSubscribers()
	defer close(s.done)

	slog.Info("starting game", "id", s.id, "board", s.board.String())

	return s.game.Run(ctx)
}

// Select delivers a cell selection to the human actor. It is only accepted
// while the human is on turn, and blocks until the actor takes it, the turn
// ends or ctx is done. Legality is checked by the actor.
func (s *Session) Select(ctx context.Context, pos reversi.Position) error {
	select {
	case <-s.done:
		return ErrFinished
	default:
	}

	s.mu.RLock()
	awaiting := s.awaiting
	s.mu.RUnlock()

	if awaiting == nil {
		return ErrNotAwaitingInput
	}

	select {
	case s.selections <- pos:
		return nil
	case <-awaiting:
		return ErrNotAwaitingInput
	case <-s.done:
		return ErrFinished
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Snapshot returns the state after the most recent event.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshot
}

// Subscribe returns a channel receiving all future messages and a function to unsubscribe.
// Subscribers that fall too far behind are dropped and their channel is closed.
func (s *Session) Subscribe() (<-chan Message, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan Message, subscriberBuffer)

	select {
	case <-s.done:
		close(ch)
		return ch, func() {}
	default:
	}

	id := s.nextSubscriber
	s.nextSubscriber++
	s.subscribers[id] = ch

	unsubscribe := func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		if ch, ok := s.subscribers[id]; ok {
			delete(s.subscribers, id)
			close(ch)
		}
	}

	return ch, unsubscribe
}

// Observe is called by the game right after each board change. It runs on
// the game goroutine, so reading the board here is safe.
func (s *Session) Observe(event reversi.Event) {
	msg := Message{
		Event:    event,
		Snapshot: s.buildSnapshot(event.Result),
	}

	s.mu.Lock()
	s.snapshot = msg.Snapshot
	s.updateAwaiting(event)
	for id, ch := range s.subscribers {
		select {
		case ch <- msg:
		default:
			slog.Warn("dropping slow subscriber", "id", s.id, "subscriber", id)
			delete(s.subscribers, id)
			close(ch)
		}
	}
	s.mu.Unlock()

	s.record(msg)
}

// updateAwaiting tracks whether the human is on turn. It assumes mu is locked.
func (s *Session) updateAwaiting(event reversi.Event) {
	switch event.Kind {
	case reversi.EventTurn:
		if event.Color == HumanColor && s.awaiting == nil {
			s.awaiting = make(chan struct{})
		}
	case reversi.EventPlaced:
		if s.awaiting != nil {
			close(s.awaiting)
			s.awaiting = nil
		}
	}
}

func (s *Session) record(msg Message) {
	for _, recorder := range s.recorders {
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		if err := recorder.Record(ctx, msg); err != nil {
			slog.Error("failed to record event", "id", s.id, "event", msg.Event.Kind, "error", err)
		}
		cancel()
	}
}

func (s *Session) buildSnapshot(result *reversi.Result) Snapshot {
	width, height := s.board.Dimensions()

	turn := s.game.Turn()
	finished := s.game.Finished()

	legalMoves := []reversi.Position{}
	if !finished {
		legalMoves = append(legalMoves, reversi.LegalMoves(s.board, turn)...)
	}

	return Snapshot{
		ID:         s.id,
		Board:      s.board.String(),
		Width:      width,
		Height:     height,
		Turn:       turn,
		LegalMoves: legalMoves,
		Finished:   finished,
		Result:     result,
	}
}

func (s *Session) closeSubscribers() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, ch := range s.subscribers {
		delete(s.subscribers, id)
		close(ch)
	}
}
