package repository

import (
	"testing"

	"github.com/lk16/reversi/internal/reversi"
	"github.com/lk16/reversi/internal/session"
	"github.com/stretchr/testify/require"
)

func TestKeys(t *testing.T) {
	require.Equal(t, "reversi:events:abc", EventsChannel("abc"))
	require.Equal(t, "reversi:games:abc", GameKey("abc"))
}

func TestSnapshotFields(t *testing.T) {
	msg := session.Message{
		Event: reversi.Event{Kind: reversi.EventPlaced, Color: reversi.Dark},
		Snapshot: session.Snapshot{
			ID:     "abc",
			Board:  "--/XO",
			Width:  2,
			Height: 2,
			Turn:   reversi.Dark,
		},
	}

	require.Equal(t, map[string]any{
		"board":      "--/XO",
		"width":      2,
		"height":     2,
		"turn":       "dark",
		"finished":   false,
		"last_event": "placed",
	}, snapshotFields(msg))
}

func TestNewGameResult(t *testing.T) {
	tests := []struct {
		name   string
		msg    session.Message
		want   *GameResult
		wantOK bool
	}{
		{
			name:   "not finished",
			msg:    session.Message{Event: reversi.Event{Kind: reversi.EventPass}},
			want:   nil,
			wantOK: false,
		},
		{
			name: "light wins",
			msg: session.Message{
				Event: reversi.Event{
					Kind:   reversi.EventFinished,
					Result: &reversi.Result{Dark: 1, Light: 3, Winner: reversi.Light},
				},
				Snapshot: session.Snapshot{ID: "abc", Board: "XO/OO", Width: 2, Height: 2},
			},
			want: &GameResult{
				ID: "abc", Width: 2, Height: 2, Dark: 1, Light: 3, Winner: "light", FinalBoard: "XO/OO",
			},
			wantOK: true,
		},
		{
			name: "draw",
			msg: session.Message{
				Event: reversi.Event{
					Kind:   reversi.EventFinished,
					Result: &reversi.Result{Dark: 2, Light: 2, Winner: reversi.Empty},
				},
				Snapshot: session.Snapshot{ID: "def", Board: "XO/OX", Width: 2, Height: 2},
			},
			want: &GameResult{
				ID: "def", Width: 2, Height: 2, Dark: 2, Light: 2, Winner: "draw", FinalBoard: "XO/OX",
			},
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := newGameResult(tt.msg)
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.want, got)
		})
	}
}
