package genetic

import (
	"strings"
)

// Board renders a genome as a text board, one line per row, with ` Q ` for
// a queen and ` * ` for an empty square. Formatting beyond this plain grid
// is left to the presentation layer.
func Board(genome Genome) string {
	size := len(genome)
	var sb strings.Builder
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if genome[col] == row {
				sb.WriteString(" Q ")
			} else {
				sb.WriteString(" * ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
