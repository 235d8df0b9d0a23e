package render

import (
	"strconv"
	"strings"

	"github.com/gookit/color"
	"github.com/rocketscienceinc/gridgames/internal/entity"
	"github.com/rocketscienceinc/gridgames/internal/notation"
)

var (
	markStyles = map[entity.Cell]color.Style{
		entity.Mark(entity.PlayerX): color.New(color.FgCyan),
		entity.Mark(entity.PlayerO): color.New(color.FgYellow),
	}
	lineStyle   = color.New(color.FgGreen, color.OpBold)
	promptStyle = color.New(color.FgRed)
	errorStyle  = color.New(color.FgLightRed)
)

// Renderer turns boards and messages into console text.
type Renderer struct {
	colorize bool
}

func New(colorize bool) *Renderer {
	return &Renderer{colorize: colorize}
}

// Board draws board. Direct boards list row 0 first under a column header,
// drop boards list the top row first over a lettered footer.
// Cells in highlight are emphasized when colors are enabled.
func (that *Renderer) Board(board *entity.Board, placement entity.Placement, highlight []entity.Move) string {
	marked := make(map[entity.Move]bool, len(highlight))
	for _, move := range highlight {
		marked[move] = true
	}

	separator := strings.Repeat("-", 5+4*board.Cols()) + "\n"

	var sb strings.Builder

	if placement == entity.PlacementDrop {
		for row := board.Rows() - 1; row >= 0; row-- {
			that.writeRow(&sb, board, row, strconv.Itoa(row+1), marked)
			sb.WriteString(separator)
		}

		sb.WriteString(header(board.Cols(), "R/C", notation.ColumnLetter))
		sb.WriteString(separator)

		return sb.String()
	}

	sb.WriteString(separator)
	sb.WriteString(header(board.Cols(), `R\C`, strconv.Itoa))
	sb.WriteString(separator)

	for row := 0; row < board.Rows(); row++ {
		that.writeRow(&sb, board, row, strconv.Itoa(row), marked)
		sb.WriteString(separator)
	}

	return sb.String()
}

// Prompt styles the text asking a player for input.
func (that *Renderer) Prompt(text string) string {
	return that.style(promptStyle, text)
}

// Error styles a rejected-input message.
func (that *Renderer) Error(text string) string {
	return that.style(errorStyle, text)
}

func (that *Renderer) writeRow(sb *strings.Builder, board *entity.Board, row int, label string, marked map[entity.Move]bool) {
	sb.WriteString("| " + label + " |")

	for col := 0; col < board.Cols(); col++ {
		cell, _ := board.Cell(row, col)

		sb.WriteString(" " + that.cell(cell, marked[entity.Move{Row: row, Col: col}]) + " |")
	}

	sb.WriteString("\n")
}

func (that *Renderer) cell(cell entity.Cell, highlighted bool) string {
	if cell.IsEmpty() {
		return " "
	}

	if highlighted {
		return that.style(lineStyle, string(cell))
	}

	return that.style(markStyles[cell], string(cell))
}

func (that *Renderer) style(style color.Style, text string) string {
	if !that.colorize {
		return text
	}

	return style.Sprint(text)
}

func header(cols int, corner string, label func(int) string) string {
	var sb strings.Builder

	sb.WriteString("|" + corner + "|")
	for col := 0; col < cols; col++ {
		sb.WriteString(" " + label(col) + " |")
	}
	sb.WriteString("\n")

	return sb.String()
}
