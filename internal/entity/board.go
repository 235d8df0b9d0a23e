package entity

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/gridgames/internal/apperror"
)

// Board is a fixed-size grid of cells. Row 0 is the bottom row for drop-style games.
type Board struct {
	rows  int
	cols  int
	cells [][]Cell
}

type boardJSON struct {
	Rows  int      `json:"rows"`
	Cols  int      `json:"cols"`
	Cells [][]Cell `json:"cells"`
}

// NewBoard returns an empty board of the given dimensions.
func NewBoard(rows, cols int) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", apperror.ErrInvalidDimensions, rows, cols)
	}

	cells := make([][]Cell, rows)
	for row := range cells {
		cells[row] = make([]Cell, cols)
	}

	return &Board{rows: rows, cols: cols, cells: cells}, nil
}

func (that *Board) Rows() int {
	return that.rows
}

func (that *Board) Cols() int {
	return that.cols
}

func (that *Board) IsInBounds(row, col int) bool {
	return row >= 0 && row < that.rows && col >= 0 && col < that.cols
}

// Cell returns the state of the cell at row, col.
func (that *Board) Cell(row, col int) (Cell, error) {
	if !that.IsInBounds(row, col) {
		return EmptyCell, fmt.Errorf("%w: row %d col %d", apperror.ErrOutOfBounds, row, col)
	}

	return that.cells[row][col], nil
}

// IsEmpty reports whether the cell is empty. Out-of-bounds cells are never empty.
func (that *Board) IsEmpty(row, col int) bool {
	return that.IsInBounds(row, col) && that.cells[row][col].IsEmpty()
}

// Holds reports whether the cell at row, col carries the mark of player.
func (that *Board) Holds(row, col int, player Player) bool {
	return that.IsInBounds(row, col) && that.cells[row][col] == Mark(player)
}

// Place sets the cell at row, col to the mark of player. The board is unchanged on error.
func (that *Board) Place(row, col int, player Player) error {
	if !player.IsValid() {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidPlayer, player)
	}

	if !that.IsInBounds(row, col) {
		return fmt.Errorf("%w: row %d col %d", apperror.ErrOutOfBounds, row, col)
	}

	if !that.cells[row][col].IsEmpty() {
		return fmt.Errorf("%w: row %d col %d", apperror.ErrCellOccupied, row, col)
	}

	that.cells[row][col] = Mark(player)

	return nil
}

// LowestEmptyRow scans col from the bottom up and returns the first empty row.
// ok is false when the column is full.
func (that *Board) LowestEmptyRow(col int) (int, bool, error) {
	if col < 0 || col >= that.cols {
		return 0, false, fmt.Errorf("%w: col %d", apperror.ErrOutOfBounds, col)
	}

	for row := 0; row < that.rows; row++ {
		if that.cells[row][col].IsEmpty() {
			return row, true, nil
		}
	}

	return 0, false, nil
}

// Drop places the mark of player in the lowest empty row of col and returns that row.
func (that *Board) Drop(col int, player Player) (int, error) {
	if !player.IsValid() {
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidPlayer, player)
	}

	row, ok, err := that.LowestEmptyRow(col)
	if err != nil {
		return 0, err
	}

	if !ok {
		return 0, fmt.Errorf("%w: col %d", apperror.ErrColumnFull, col)
	}

	that.cells[row][col] = Mark(player)

	return row, nil
}

func (that *Board) IsFull() bool {
	for _, row := range that.cells {
		for _, cell := range row {
			if cell.IsEmpty() {
				return false
			}
		}
	}

	return true
}

// AvailableMoves lists the legal moves at call time.
// Direct placement yields every empty cell in row-major order, drop placement
// yields the lowest empty cell of each non-full column in ascending column order.
func (that *Board) AvailableMoves(placement Placement) []Move {
	if placement == PlacementDrop {
		moves := make([]Move, 0, that.cols)
		for col := 0; col < that.cols; col++ {
			if row, ok, _ := that.LowestEmptyRow(col); ok {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}

		return moves
	}

	moves := make([]Move, 0, that.rows*that.cols)
	for row := 0; row < that.rows; row++ {
		for col := 0; col < that.cols; col++ {
			if that.cells[row][col].IsEmpty() {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}

	return moves
}

// Clone returns a deep copy of the board.
func (that *Board) Clone() *Board {
	cells := make([][]Cell, that.rows)
	for row := range cells {
		cells[row] = append([]Cell(nil), that.cells[row]...)
	}

	return &Board{rows: that.rows, cols: that.cols, cells: cells}
}

func (that *Board) MarshalJSON() ([]byte, error) {
	return json.Marshal(boardJSON{Rows: that.rows, Cols: that.cols, Cells: that.cells})
}

func (that *Board) UnmarshalJSON(data []byte) error {
	var raw boardJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to unmarshal board: %w", err)
	}

	if raw.Rows <= 0 || raw.Cols <= 0 || len(raw.Cells) != raw.Rows {
		return fmt.Errorf("%w: %dx%d with %d rows", apperror.ErrInvalidDimensions, raw.Rows, raw.Cols, len(raw.Cells))
	}

	for row, cells := range raw.Cells {
		if len(cells) != raw.Cols {
			return fmt.Errorf("%w: row %d has %d cells", apperror.ErrInvalidDimensions, row, len(cells))
		}

		for col, cell := range cells {
			if !cell.isValid() {
				return fmt.Errorf("%w: %q at row %d col %d", apperror.ErrInvalidPlayer, cell, row, col)
			}
		}
	}

	that.rows, that.cols, that.cells = raw.Rows, raw.Cols, raw.Cells

	return nil
}
