package reversi

// TurnPhase is the outcome of evaluating a board for the color to move.
type TurnPhase int

const (
	// Continue means the color to move has at least one legal move.
	Continue TurnPhase = iota

	// Pass means the board has empty cells, but none of them is a legal move.
	Pass

	// Finish means no cell is empty.
	Finish
)

func (p TurnPhase) String() string {
	switch p {
	case Continue:
		return "continue"
	case Pass:
		return "pass"
	case Finish:
		return "finish"
	default:
		return "unknown"
	}
}

// Phase computes the turn phase for colorToMove by scanning the whole board.
// Nothing is cached between calls.
func Phase(board BoardView, colorToMove CellState) TurnPhase {
	hasEmpty := false
	forEachPosition(board, func(pos Position) bool {
		hasEmpty = stateOrEmpty(board, pos) == Empty
		return !hasEmpty
	})

	if !hasEmpty {
		return Finish
	}

	hasMove := false
	forEachPosition(board, func(pos Position) bool {
		hasMove = IsLegalMove(board, colorToMove, pos)
		return !hasMove
	})

	if !hasMove {
		return Pass
	}

	return Continue
}
