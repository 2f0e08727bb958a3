package reversi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newBoardStart(t *testing.T) *Board {
	t.Helper()

	board, err := NewBoardStart(DefaultWidth, DefaultHeight)
	require.NoError(t, err)
	return board
}

func newBoardFromString(t *testing.T, s string) *Board {
	t.Helper()

	board, err := NewBoardFromString(s)
	require.NoError(t, err)
	return board
}

func TestLegalMoves_Opening(t *testing.T) {
	board := newBoardStart(t)

	moves := LegalMoves(board, Dark)
	require.ElementsMatch(t, []Position{
		{Col: 2, Row: 3},
		{Col: 3, Row: 2},
		{Col: 4, Row: 5},
		{Col: 5, Row: 4},
	}, moves)
}

func TestCaptures_Opening(t *testing.T) {
	board := newBoardStart(t)

	tests := []struct {
		name string
		move Position
		want []Position
	}{
		{"west of center", Position{Col: 2, Row: 3}, []Position{{Col: 3, Row: 3}}},
		{"east of center", Position{Col: 5, Row: 4}, []Position{{Col: 4, Row: 4}}},
		{"north of center", Position{Col: 3, Row: 2}, []Position{{Col: 3, Row: 3}}},
		{"corner", Position{Col: 0, Row: 0}, nil},
		{"adjacent own piece only", Position{Col: 5, Row: 2}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Captures(board, MoveCandidate{Color: Dark, Position: tt.move})
			require.Equal(t, tt.want, got)
		})
	}
}

func TestCaptures_DirectionOrder(t *testing.T) {
	board := newBoardFromString(t, "-------/XO-OOX-/--O----/--X----")

	got := Captures(board, MoveCandidate{Color: Dark, Position: Position{Col: 2, Row: 1}})

	// west first, then east nearest first, then south
	require.Equal(t, []Position{
		{Col: 1, Row: 1},
		{Col: 3, Row: 1},
		{Col: 4, Row: 1},
		{Col: 2, Row: 2},
	}, got)
}

func TestCaptures_DiagonalOrder(t *testing.T) {
	board := newBoardFromString(t, "X---X/-O-O-/-----/-O-O-/X---X")

	got := Captures(board, MoveCandidate{Color: Dark, Position: Position{Col: 2, Row: 2}})

	// NW, NE, SW, SE
	require.Equal(t, []Position{
		{Col: 1, Row: 1},
		{Col: 3, Row: 1},
		{Col: 1, Row: 3},
		{Col: 3, Row: 3},
	}, got)
}

func TestCaptures_AllDirections(t *testing.T) {
	board := newBoardFromString(t, "X-X-X/-OOO-/XO-OX/-OOO-/X-X-X")

	got := Captures(board, MoveCandidate{Color: Dark, Position: Position{Col: 2, Row: 2}})

	require.Equal(t, []Position{
		{Col: 1, Row: 2}, // W
		{Col: 3, Row: 2}, // E
		{Col: 2, Row: 1}, // N
		{Col: 2, Row: 3}, // S
		{Col: 1, Row: 1}, // NW
		{Col: 3, Row: 1}, // NE
		{Col: 1, Row: 3}, // SW
		{Col: 3, Row: 3}, // SE
	}, got)
}

func TestCaptures_RunWithoutAnchor(t *testing.T) {
	// east run hits the board edge, south run hits an empty cell
	board := newBoardFromString(t, "-OO/-O-/---")

	got := Captures(board, MoveCandidate{Color: Dark, Position: Position{Col: 0, Row: 0}})
	require.Empty(t, got)
}

func TestCaptures_DoesNotMutate(t *testing.T) {
	board := newBoardStart(t)
	before := board.String()

	move := MoveCandidate{Color: Dark, Position: Position{Col: 2, Row: 3}}
	first := Captures(board, move)
	second := Captures(board, move)

	require.Equal(t, first, second)
	require.Equal(t, before, board.String())
}

func TestCaptures_OriginOffBoard(t *testing.T) {
	board := newBoardFromString(t, "---/XO-/---")

	origin := Position{Col: -1, Row: 1}

	got := Captures(board, MoveCandidate{Color: Light, Position: origin})
	require.Equal(t, []Position{{Col: 0, Row: 1}}, got)

	require.False(t, IsLegalMove(board, Light, origin))
}

func TestCaptures_OccupiedOrigin(t *testing.T) {
	board := newBoardFromString(t, "XOX/---/---")

	// what-if evaluation from an occupied cell still reports the run
	got := Captures(board, MoveCandidate{Color: Dark, Position: Position{Col: 0, Row: 0}})
	require.Equal(t, []Position{{Col: 1, Row: 0}}, got)

	require.False(t, IsLegalMove(board, Dark, Position{Col: 0, Row: 0}))
}

func TestIsLegalMove(t *testing.T) {
	board := newBoardStart(t)

	require.True(t, IsLegalMove(board, Dark, Position{Col: 2, Row: 3}))
	require.True(t, IsLegalMove(board, Light, Position{Col: 2, Row: 4}))
	require.False(t, IsLegalMove(board, Dark, Position{Col: 2, Row: 4}))
	require.False(t, IsLegalMove(board, Dark, Position{Col: 3, Row: 3}))
	require.False(t, IsLegalMove(board, Dark, Position{Col: 8, Row: 3}))
	require.False(t, IsLegalMove(board, Empty, Position{Col: 2, Row: 3}))
}

func TestCaptures_EmptyColor(t *testing.T) {
	board := newBoardStart(t)

	got := Captures(board, MoveCandidate{Color: Empty, Position: Position{Col: 2, Row: 3}})
	require.Empty(t, got)
}
