// Package notation converts between console text and board moves.
// It never looks at a board: range and occupancy checks belong to placement.
package notation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/gridgames/internal/apperror"
	"github.com/rocketscienceinc/gridgames/internal/entity"
)

// ParseCell parses "row,col", e.g. "0,2".
func ParseCell(text string) (entity.Move, error) {
	parts := strings.Split(strings.TrimSpace(text), ",")
	if len(parts) != 2 {
		return entity.Move{}, fmt.Errorf("%w: expected row,col got %q", apperror.ErrInvalidInput, text)
	}

	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return entity.Move{}, fmt.Errorf("%w: row %q is not a number", apperror.ErrInvalidInput, parts[0])
	}

	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return entity.Move{}, fmt.Errorf("%w: column %q is not a number", apperror.ErrInvalidInput, parts[1])
	}

	return entity.Move{Row: row, Col: col}, nil
}

// ParseColumn reads the column letter at the start of text, 'a' being column 0.
// Anything after the letter, such as the row digit of "a1", is ignored.
func ParseColumn(text string) (int, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return 0, fmt.Errorf("%w: empty column", apperror.ErrInvalidInput)
	}

	letter := text[0]
	if letter < 'a' || letter > 'z' {
		return 0, fmt.Errorf("%w: %q is not a column letter", apperror.ErrInvalidInput, letter)
	}

	return int(letter - 'a'), nil
}

// Parse reads a move in the notation of placement.
func Parse(text string, placement entity.Placement) (entity.Move, error) {
	if placement == entity.PlacementDrop {
		col, err := ParseColumn(text)
		if err != nil {
			return entity.Move{}, err
		}

		return entity.Move{Col: col}, nil
	}

	return ParseCell(text)
}

// ColumnLetter returns the label of col, "a" for column 0.
func ColumnLetter(col int) string {
	return string(rune('a' + col))
}

// FormatMove renders move the way a player would type it: "row,col" for direct
// placement, column letter and 1-based row ("a1") for drop placement.
func FormatMove(move entity.Move, placement entity.Placement) string {
	if placement == entity.PlacementDrop {
		return ColumnLetter(move.Col) + strconv.Itoa(move.Row+1)
	}

	return strconv.Itoa(move.Row) + "," + strconv.Itoa(move.Col)
}

// FormatMoves joins the formatted moves with ", ".
func FormatMoves(moves []entity.Move, placement entity.Placement) string {
	formatted := make([]string, len(moves))
	for i, move := range moves {
		formatted[i] = FormatMove(move, placement)
	}

	return strings.Join(formatted, ", ")
}

// IsYes reports whether the answer to a yes/no prompt is yes.
func IsYes(text string) bool {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
