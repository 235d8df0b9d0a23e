package rules

import "github.com/rocketscienceinc/gridgames/internal/entity"

// direction is the row/col step between consecutive cells of a ray.
type direction struct {
	dRow int
	dCol int
}

var directions = []direction{
	{dRow: 0, dCol: 1},  // horizontal
	{dRow: 1, dCol: 0},  // vertical
	{dRow: 1, dCol: 1},  // diagonal up-right
	{dRow: -1, dCol: 1}, // diagonal up-left, read right to left
}

// HasWinningLine reports whether player holds runLength consecutive cells in any direction.
func HasWinningLine(board *entity.Board, player entity.Player, runLength int) bool {
	_, found := WinningLine(board, player, runLength)
	return found
}

// WinningLine returns the cells of the first run of runLength marks of player,
// scanning origins in row-major order.
func WinningLine(board *entity.Board, player entity.Player, runLength int) ([]entity.Move, bool) {
	if runLength <= 0 || !player.IsValid() {
		return nil, false
	}

	for row := 0; row < board.Rows(); row++ {
		for col := 0; col < board.Cols(); col++ {
			if !board.Holds(row, col, player) {
				continue
			}

			for _, dir := range directions {
				if isRay(board, player, row, col, dir, runLength) {
					return ray(row, col, dir, runLength), true
				}
			}
		}
	}

	return nil, false
}

// Evaluate derives the outcome after lastPlayer moved. A win is checked before
// fullness, so a full board with a winning line is a win.
func Evaluate(board *entity.Board, lastPlayer entity.Player, runLength int) entity.Outcome {
	if HasWinningLine(board, lastPlayer, runLength) {
		return entity.Win(lastPlayer)
	}

	if board.IsFull() {
		return entity.Draw()
	}

	return entity.InProgress()
}

func isRay(board *entity.Board, player entity.Player, row, col int, dir direction, runLength int) bool {
	steps := runLength - 1
	if !board.IsInBounds(row+dir.dRow*steps, col+dir.dCol*steps) {
		return false
	}

	for i := 1; i <= steps; i++ {
		if !board.Holds(row+dir.dRow*i, col+dir.dCol*i, player) {
			return false
		}
	}

	return true
}

func ray(row, col int, dir direction, runLength int) []entity.Move {
	cells := make([]entity.Move, runLength)
	for i := range cells {
		cells[i] = entity.Move{Row: row + dir.dRow*i, Col: col + dir.dCol*i}
	}

	return cells
}
