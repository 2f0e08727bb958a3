package ws

import (
	"encoding/json"

	"github.com/lk16/reversi/internal/reversi"
)

const (
	EventSelectCell = "select_cell"
	EventSelected   = "selected"
	EventState      = "state"
	EventError      = "error"
)

type Incoming struct {
	Event string          `json:"event"`
	ID    int             `json:"id"`
	Data  json.RawMessage `json:"data"`
}

type Outgoing struct {
	ID    int    `json:"id,omitempty"`
	Event string `json:"event"`
	Data  any    `json:"data"`
}

type SelectCellRequest struct {
	Position reversi.Position `json:"position"`
}

type SelectCellResponse struct {
	Accepted bool   `json:"accepted"`
	Error    string `json:"error,omitempty"`
}
