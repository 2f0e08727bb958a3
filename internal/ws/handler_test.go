package ws

import (
	"context"
	"encoding/json"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/reversi"
	"github.com/lk16/reversi/internal/session"
	"github.com/stretchr/testify/require"
)

// fakeConn replays incoming messages and records outgoing ones. Reads block
// until a message is available or incoming is closed.
type fakeConn struct {
	incoming chan []byte

	mu      sync.Mutex
	written []Outgoing
}

func newFakeConn(messages ...string) *fakeConn {
	conn := &fakeConn{incoming: make(chan []byte, len(messages))}
	for _, msg := range messages {
		conn.incoming <- []byte(msg)
	}
	return conn
}

func (c *fakeConn) ReadMessage() (int, []byte, error) {
	msg, ok := <-c.incoming
	if !ok {
		return 0, nil, io.EOF
	}
	if string(msg) == "binary" {
		return websocket.BinaryMessage, msg, nil
	}
	return websocket.TextMessage, msg, nil
}

func (c *fakeConn) WriteMessage(_ int, data []byte) error {
	var outgoing Outgoing
	if err := json.Unmarshal(data, &outgoing); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.written = append(c.written, outgoing)
	return nil
}

func (c *fakeConn) Written() []Outgoing {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]Outgoing(nil), c.written...)
}

func newTestSession(t *testing.T) *session.Session {
	t.Helper()

	s, err := session.New(config.GameConfig{BoardWidth: 4, BoardHeight: 4})
	require.NoError(t, err)
	return s
}

func TestHandle_SelectCellWhileNotAwaiting(t *testing.T) {
	conn := newFakeConn(`{"event":"select_cell","id":7,"data":{"position":{"col":0,"row":1}}}`)
	close(conn.incoming)

	h := NewHandler(conn, newTestSession(t))

	err := h.Handle()
	require.ErrorIs(t, err, io.EOF)

	written := conn.Written()
	require.Len(t, written, 2)
	require.Equal(t, EventState, written[0].Event)

	require.Equal(t, 7, written[1].ID)
	require.Equal(t, EventSelected, written[1].Event)
	require.Equal(t, map[string]any{
		"accepted": false,
		"error":    session.ErrNotAwaitingInput.Error(),
	}, written[1].Data)
}

func TestHandle_InvalidMessages(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"missing event", `{"id":1}`, "event field is either empty or missing"},
		{"unknown event", `{"event":"undo","id":1}`, "unknown event: undo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn := newFakeConn(tt.message)
			close(conn.incoming)

			h := NewHandler(conn, newTestSession(t))
			require.Error(t, h.Handle())

			written := conn.Written()
			require.Len(t, written, 2)
			require.Equal(t, EventError, written[1].Event)
			require.Equal(t, tt.want, written[1].Data)
		})
	}
}

func TestHandle_BinaryMessage(t *testing.T) {
	conn := newFakeConn("binary")

	h := NewHandler(conn, newTestSession(t))

	err := h.Handle()
	require.ErrorContains(t, err, "unexpected message type")
}

func TestHandle_StreamsGameEvents(t *testing.T) {
	conn := newFakeConn()
	defer close(conn.incoming)

	s := newTestSession(t)
	h := NewHandler(conn, s)

	done := make(chan error, 1)
	go func() {
		done <- h.Handle()
	}()

	require.Eventually(t, func() bool {
		return len(conn.Written()) == 1
	}, time.Second, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)

	require.NoError(t, <-done)

	written := conn.Written()
	require.Len(t, written, 2)
	require.Equal(t, EventState, written[0].Event)
	require.Equal(t, string(reversi.EventTurn), written[1].Event)
}
