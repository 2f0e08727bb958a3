package reversi

import "errors"

var (
	// ErrOutOfRange is returned for positions outside the board.
	ErrOutOfRange = errors.New("position out of range")

	// ErrOccupied is returned when placing onto a cell that already holds a piece.
	ErrOccupied = errors.New("cell is occupied")

	// ErrEmptyCell is returned when flipping a cell without a piece.
	ErrEmptyCell = errors.New("cell is empty")

	// ErrInvalidColor is returned when placing something other than a dark or light piece.
	ErrInvalidColor = errors.New("invalid piece color")

	// ErrNoLegalMove is returned when an actor is asked to move without any legal move.
	ErrNoLegalMove = errors.New("no legal move")

	// ErrInvalidBoard is returned for unusable board dimensions or encodings.
	ErrInvalidBoard = errors.New("invalid board")

	// ErrInputClosed is returned when the human input source stops delivering selections.
	ErrInputClosed = errors.New("input closed")
)
