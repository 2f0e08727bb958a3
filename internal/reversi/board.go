package reversi

import (
	"fmt"
	"strings"
)

const (
	DefaultWidth  = 8
	DefaultHeight = 8

	// Field notation names columns a to z.
	MaxWidth  = 26
	MaxHeight = 26
)

// BoardView is the read-only contract of a board. Capture resolution, phase
// computation and actors only ever get a BoardView.
type BoardView interface {
	// Dimensions returns the width and height of the board.
	Dimensions() (width, height int)

	// IsInRange checks if a position lies on the board.
	IsInRange(pos Position) bool

	// StateAt returns the state of the cell at pos, or ErrOutOfRange.
	StateAt(pos Position) (CellState, error)
}

// Board is a mutable rectangular grid of cells. It is owned by a single Game.
type Board struct {
	width  int
	height int

	// cells is stored row-major: index = row*width + col
	cells []CellState
}

// NewBoardEmpty creates a board without any pieces.
func NewBoardEmpty(width, height int) (*Board, error) {
	if width < 1 || height < 1 || width > MaxWidth || height > MaxHeight {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidBoard, width, height)
	}

	return &Board{
		width:  width,
		height: height,
		cells:  make([]CellState, width*height),
	}, nil
}

// NewBoardStart creates a board with the four center cells seeded with the
// standard opening: light on the main diagonal, dark on the anti-diagonal.
func NewBoardStart(width, height int) (*Board, error) {
	if width < 2 || height < 2 || width%2 != 0 || height%2 != 0 {
		return nil, fmt.Errorf("%w: start position needs even dimensions of at least 2, got %dx%d",
			ErrInvalidBoard, width, height)
	}

	b, err := NewBoardEmpty(width, height)
	if err != nil {
		return nil, err
	}

	col, row := width/2-1, height/2-1

	b.set(Position{Col: col, Row: row}, Light)
	b.set(Position{Col: col + 1, Row: row}, Dark)
	b.set(Position{Col: col, Row: row + 1}, Dark)
	b.set(Position{Col: col + 1, Row: row + 1}, Light)

	return b, nil
}

// NewBoardFromString parses the encoding produced by Board.String: rows
// separated by '/', one of '-', 'X' (dark) or 'O' (light) per cell.
func NewBoardFromString(s string) (*Board, error) {
	rows := strings.Split(strings.TrimSpace(s), "/")
	width := len(rows[0])

	b, err := NewBoardEmpty(width, len(rows))
	if err != nil {
		return nil, err
	}

	for row, line := range rows {
		if len(line) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrInvalidBoard, row, len(line), width)
		}

		for col := 0; col < width; col++ {
			var state CellState
			switch line[col] {
			case '-', '.':
				state = Empty
			case 'X', 'x':
				state = Dark
			case 'O', 'o':
				state = Light
			default:
				return nil, fmt.Errorf("%w: unexpected cell %q at row %d", ErrInvalidBoard, line[col], row)
			}
			b.set(Position{Col: col, Row: row}, state)
		}
	}

	return b, nil
}

// Dimensions returns the width and height of the board.
func (b *Board) Dimensions() (int, int) {
	return b.width, b.height
}

// IsInRange checks if a position lies on the board.
func (b *Board) IsInRange(pos Position) bool {
	return pos.Col >= 0 && pos.Col < b.width && pos.Row >= 0 && pos.Row < b.height
}

// StateAt returns the state of the cell at pos.
func (b *Board) StateAt(pos Position) (CellState, error) {
	if !b.IsInRange(pos) {
		return Empty, fmt.Errorf("state at %s: %w", pos, ErrOutOfRange)
	}
	return b.cells[b.index(pos)], nil
}

// Place puts a piece of the given color on an empty cell.
func (b *Board) Place(pos Position, color CellState) error {
	if color != Dark && color != Light {
		return fmt.Errorf("place %s: %w: %s", pos, ErrInvalidColor, color)
	}

	state, err := b.StateAt(pos)
	if err != nil {
		return fmt.Errorf("place: %w", err)
	}

	if state != Empty {
		return fmt.Errorf("place %s: %w", pos, ErrOccupied)
	}

	b.set(pos, color)
	return nil
}

// Flip toggles the piece at pos between dark and light.
func (b *Board) Flip(pos Position) error {
	state, err := b.StateAt(pos)
	if err != nil {
		return fmt.Errorf("flip: %w", err)
	}

	if state == Empty {
		return fmt.Errorf("flip %s: %w", pos, ErrEmptyCell)
	}

	b.set(pos, state.Opponent())
	return nil
}

// Count returns the number of cells in the given state.
func (b *Board) Count(state CellState) int {
	count := 0
	for _, cell := range b.cells {
		if cell == state {
			count++
		}
	}
	return count
}

// String returns the board encoding, see NewBoardFromString.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < b.height; row++ {
		if row > 0 {
			sb.WriteByte('/')
		}
		for col := 0; col < b.width; col++ {
			sb.WriteByte(b.cells[row*b.width+col].symbol())
		}
	}
	return sb.String()
}

func (b *Board) index(pos Position) int {
	return pos.Row*b.width + pos.Col
}

// set writes a cell without any checks.
func (b *Board) set(pos Position, state CellState) {
	b.cells[b.index(pos)] = state
}
