package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofiber/contrib/websocket"
	"github.com/lk16/reversi/internal/session"
)

// Conn is the part of a websocket connection the handler uses.
type Conn interface {
	ReadMessage() (int, []byte, error)
	WriteMessage(messageType int, data []byte) error
}

type Handler struct {
	session *session.Session
	ws      Conn
}

// NewHandler creates a new Handler.
func NewHandler(ws Conn, session *session.Session) *Handler {
	return &Handler{session: session, ws: ws}
}

func (h *Handler) readMessage() (*Incoming, error) {
	var req Incoming

	msgType, msg, err := h.ws.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("ws read error: %w", err)
	}

	slog.Debug("read ws message", "msgType", msgType, "msg", msg)

	if msgType != websocket.TextMessage {
		return nil, fmt.Errorf("unexpected message type: %d", msgType)
	}

	if err = json.Unmarshal(msg, &req); err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return &req, nil
}

func (h *Handler) writeMessage(outgoing *Outgoing) error {
	msg, err := json.Marshal(outgoing)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	slog.Debug("write ws message", "msg", string(msg))

	if err = h.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
		return fmt.Errorf("write error: %w", err)
	}

	return nil
}

func (h *Handler) handleMessage(req *Incoming) (*Outgoing, error) {
	if req.Event == "" {
		return nil, errors.New("event field is either empty or missing")
	}

	switch req.Event {
	case EventSelectCell:
		return h.handleSelectCell(req)
	default:
		return nil, fmt.Errorf("unknown event: %s", req.Event)
	}
}

// Handle sends the current state, then streams game events to the client
// while forwarding its cell selections to the session. It returns when the
// connection fails or the game is over.
func (h *Handler) Handle() error {
	messages, unsubscribe := h.session.Subscribe()
	defer unsubscribe()

	replies := make(chan *Outgoing)
	readErr := make(chan error, 1)
	stop := make(chan struct{})
	defer close(stop)

	go func() {
		readErr <- h.readLoop(replies, stop)
	}()

	if err := h.writeMessage(&Outgoing{Event: EventState, Data: h.session.Snapshot()}); err != nil {
		return fmt.Errorf("ws write error: %w", err)
	}

	for {
		select {
		case err := <-readErr:
			return err
		case reply := <-replies:
			if err := h.writeMessage(reply); err != nil {
				return fmt.Errorf("ws write error: %w", err)
			}
		case msg, ok := <-messages:
			if !ok {
				return nil
			}

			outgoing := &Outgoing{Event: string(msg.Event.Kind), Data: msg}
			if err := h.writeMessage(outgoing); err != nil {
				return fmt.Errorf("ws write error: %w", err)
			}
		}
	}
}

// readLoop handles incoming messages. Replies go through Handle, which owns all writes.
func (h *Handler) readLoop(replies chan<- *Outgoing, stop <-chan struct{}) error {
	for {
		req, err := h.readMessage()
		if err != nil {
			return fmt.Errorf("ws read error: %w", err)
		}

		reply, err := h.handleMessage(req)
		if err != nil {
			reply = &Outgoing{ID: req.ID, Event: EventError, Data: err.Error()}
		}

		select {
		case replies <- reply:
		case <-stop:
			return nil
		}
	}
}

func (h *Handler) handleSelectCell(req *Incoming) (*Outgoing, error) {
	var reqData SelectCellRequest
	if err := json.Unmarshal(req.Data, &reqData); err != nil {
		return nil, fmt.Errorf("ws select cell unmarshal error: %w", err)
	}

	response := SelectCellResponse{Accepted: true}

	ctx, cancel := context.WithTimeout(context.Background(), session.SelectTimeout)
	defer cancel()

	if err := h.session.Select(ctx, reqData.Position); err != nil {
		response = SelectCellResponse{Accepted: false, Error: err.Error()}
	}

	outgoing := &Outgoing{
		ID:    req.ID,
		Event: EventSelected,
		Data:  response,
	}

	return outgoing, nil
}
