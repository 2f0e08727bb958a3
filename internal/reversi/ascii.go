package reversi

import (
	"fmt"
	"strings"
)

// ASCIIArtLines returns the ascii art lines for the board. Legal moves for
// colorToMove are marked with a dot; pass Empty to hide them.
func (b *Board) ASCIIArtLines(colorToMove CellState) []string {
	legal := make(map[Position]bool)
	for _, pos := range LegalMoves(b, colorToMove) {
		legal[pos] = true
	}

	lines := make([]string, 0, b.height+2)

	header := "   +-"
	for col := 0; col < b.width; col++ {
		header += fmt.Sprintf("%c-", 'a'+col)
	}
	lines = append(lines, header+"+")

	for row := 0; row < b.height; row++ {
		line := fmt.Sprintf("%2d | ", row+1)

		for col := 0; col < b.width; col++ {
			pos := Position{Col: col, Row: row}

			switch {
			case b.cells[b.index(pos)] == Light:
				line += "○ "
			case b.cells[b.index(pos)] == Dark:
				line += "● "
			case legal[pos]:
				line += "· "
			default:
				line += "  "
			}
		}

		lines = append(lines, line+"|")
	}

	lines = append(lines, "   +"+strings.Repeat("-", 2*b.width+1)+"+")

	return lines
}

// Print prints the board to the console.
func (b *Board) Print(colorToMove CellState) {
	for _, line := range b.ASCIIArtLines(colorToMove) {
		fmt.Println(line)
	}
}
