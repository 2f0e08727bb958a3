package reversi

import (
	"fmt"
	"strconv"
	"strings"
)

// CellState is the content of a single board cell.
type CellState int

const (
	Empty CellState = iota
	Dark
	Light
)

// Opponent returns the other piece color. Empty has no opponent and is returned as is.
func (c CellState) Opponent() CellState {
	switch c {
	case Dark:
		return Light
	case Light:
		return Dark
	default:
		return Empty
	}
}

func (c CellState) String() string {
	switch c {
	case Dark:
		return "dark"
	case Light:
		return "light"
	default:
		return "empty"
	}
}

// MarshalText encodes the state as its name, so it reads well in JSON.
func (c CellState) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a state name produced by MarshalText.
func (c *CellState) UnmarshalText(text []byte) error {
	switch string(text) {
	case "empty":
		*c = Empty
	case "dark":
		*c = Dark
	case "light":
		*c = Light
	default:
		return fmt.Errorf("unknown cell state: %q", text)
	}
	return nil
}

// symbol is the single character used by the board string codec.
func (c CellState) symbol() byte {
	switch c {
	case Dark:
		return 'X'
	case Light:
		return 'O'
	default:
		return '-'
	}
}

// Position is a 0-based (column, row) board coordinate.
type Position struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// Add returns the position shifted by other.
func (p Position) Add(other Position) Position {
	return Position{Col: p.Col + other.Col, Row: p.Row + other.Row}
}

// String returns the field notation of p, e.g. "c4" for column 2, row 3.
func (p Position) String() string {
	if p.Col < 0 || p.Col >= MaxWidth || p.Row < 0 {
		return fmt.Sprintf("(%d,%d)", p.Col, p.Row)
	}
	return fmt.Sprintf("%c%d", 'a'+p.Col, p.Row+1)
}

// ParsePosition converts field notation (e.g. "a1", "h8", "c10") to a Position.
// Range checks against a concrete board are left to the caller.
func ParsePosition(field string) (Position, error) {
	field = strings.ToLower(strings.TrimSpace(field))

	if len(field) < 2 {
		return Position{}, fmt.Errorf("invalid field: %q", field)
	}

	if field[0] < 'a' || field[0] > 'z' {
		return Position{}, fmt.Errorf("invalid field column: %q", field)
	}

	row, err := strconv.Atoi(field[1:])
	if err != nil || row < 1 {
		return Position{}, fmt.Errorf("invalid field row: %q", field)
	}

	return Position{Col: int(field[0] - 'a'), Row: row - 1}, nil
}

// MoveCandidate is a color to place combined with the target position.
type MoveCandidate struct {
	Color    CellState
	Position Position
}
