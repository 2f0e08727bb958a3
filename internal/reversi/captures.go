package reversi

// directions lists the eight scan directions in the fixed order used for
// capture sets: W, E, N, S, NW, NE, SW, SE. Row numbers grow southwards.
var directions = [8]Position{
	{Col: -1, Row: 0},
	{Col: 1, Row: 0},
	{Col: 0, Row: -1},
	{Col: 0, Row: 1},
	{Col: -1, Row: -1},
	{Col: 1, Row: -1},
	{Col: -1, Row: 1},
	{Col: 1, Row: 1},
}

// Captures returns the opponent pieces that would be flipped if move was
// played on board. Runs are ordered by direction, then by distance from the
// move. The board is never modified, and the origin cell is not checked: use
// IsLegalMove for that.
func Captures(board BoardView, move MoveCandidate) []Position {
	if move.Color != Dark && move.Color != Light {
		return nil
	}

	var captured []Position

	for _, dir := range directions {
		captured = append(captured, capturesInDirection(board, move, dir)...)
	}

	return captured
}

// capturesInDirection walks from the move along dir and returns the run of
// opponent pieces if it is closed by a piece of the moving color.
func capturesInDirection(board BoardView, move MoveCandidate, dir Position) []Position {
	opponent := move.Color.Opponent()

	var run []Position
	for pos := move.Position.Add(dir); ; pos = pos.Add(dir) {
		state := stateOrEmpty(board, pos)

		switch state {
		case opponent:
			run = append(run, pos)
		case move.Color:
			return run
		default:
			return nil
		}
	}
}

// stateOrEmpty treats cells beyond the board as empty.
func stateOrEmpty(board BoardView, pos Position) CellState {
	if !board.IsInRange(pos) {
		return Empty
	}

	state, err := board.StateAt(pos)
	if err != nil {
		return Empty
	}
	return state
}

// IsLegalMove checks if color can be placed at pos: the cell must be on the
// board, empty, and the placement must capture at least one piece.
func IsLegalMove(board BoardView, color CellState, pos Position) bool {
	if color != Dark && color != Light {
		return false
	}

	state, err := board.StateAt(pos)
	if err != nil || state != Empty {
		return false
	}

	return len(Captures(board, MoveCandidate{Color: color, Position: pos})) > 0
}

// LegalMoves returns all legal moves for color. Columns form the outer loop,
// rows the inner loop.
func LegalMoves(board BoardView, color CellState) []Position {
	var moves []Position
	forEachPosition(board, func(pos Position) bool {
		if IsLegalMove(board, color, pos) {
			moves = append(moves, pos)
		}
		return true
	})
	return moves
}

// forEachPosition visits every board position column by column until visit returns false.
func forEachPosition(board BoardView, visit func(pos Position) bool) {
	width, height := board.Dimensions()
	for col := 0; col < width; col++ {
		for row := 0; row < height; row++ {
			if !visit(Position{Col: col, Row: row}) {
				return
			}
		}
	}
}
