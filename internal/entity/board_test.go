package entity

import (
	"encoding/json"
	"testing"

	"github.com/rocketscienceinc/gridgames/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBoard(t *testing.T, rows, cols int) *Board {
	t.Helper()

	board, err := NewBoard(rows, cols)
	require.NoError(t, err)

	return board
}

func TestNewBoard(t *testing.T) {
	t.Run("Creates an empty board", func(t *testing.T) {
		// When: a 6x7 board is created
		board, err := NewBoard(6, 7)

		// Then: every cell is empty and dimensions match
		require.NoError(t, err)
		assert.Equal(t, 6, board.Rows())
		assert.Equal(t, 7, board.Cols())
		for row := 0; row < 6; row++ {
			for col := 0; col < 7; col++ {
				assert.True(t, board.IsEmpty(row, col))
			}
		}
	})

	t.Run("Rejects non-positive dimensions", func(t *testing.T) {
		for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, 7}} {
			// When: a board with invalid dimensions is created
			board, err := NewBoard(dims[0], dims[1])

			// Then: ErrInvalidDimensions is returned
			require.ErrorIs(t, err, apperror.ErrInvalidDimensions)
			assert.Nil(t, board)
		}
	})
}

func TestBoard_IsInBounds(t *testing.T) {
	board := newTestBoard(t, 3, 3)

	assert.True(t, board.IsInBounds(0, 0))
	assert.True(t, board.IsInBounds(2, 2))
	assert.False(t, board.IsInBounds(-1, 0))
	assert.False(t, board.IsInBounds(0, -1))
	assert.False(t, board.IsInBounds(3, 0))
	assert.False(t, board.IsInBounds(0, 3))
}

func TestBoard_Place(t *testing.T) {
	t.Run("Marks an empty cell", func(t *testing.T) {
		// Given: an empty 3x3 board
		board := newTestBoard(t, 3, 3)

		// When: X is placed at 1,2
		err := board.Place(1, 2, PlayerX)

		// Then: the cell holds X
		require.NoError(t, err)
		cell, err := board.Cell(1, 2)
		require.NoError(t, err)
		assert.Equal(t, Mark(PlayerX), cell)
		assert.False(t, board.IsEmpty(1, 2))
	})

	t.Run("Error on cell already occupied leaves the board unchanged", func(t *testing.T) {
		// Given: a board with X at 0,0
		board := newTestBoard(t, 3, 3)
		require.NoError(t, board.Place(0, 0, PlayerX))
		before := board.Clone()

		// When: O is placed on the same cell
		err := board.Place(0, 0, PlayerO)

		// Then: ErrCellOccupied is returned and nothing changed
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, before, board)
	})

	t.Run("Error on out of bounds leaves the board unchanged", func(t *testing.T) {
		// Given: a board with one mark
		board := newTestBoard(t, 3, 3)
		require.NoError(t, board.Place(1, 1, PlayerO))
		before := board.Clone()

		for _, move := range []Move{{Row: 3, Col: 0}, {Row: 0, Col: 3}, {Row: -1, Col: 1}, {Row: 1, Col: -1}} {
			// When: a mark is placed outside the grid
			err := board.Place(move.Row, move.Col, PlayerX)

			// Then: ErrOutOfBounds is returned and nothing changed
			require.ErrorIs(t, err, apperror.ErrOutOfBounds)
			assert.Equal(t, before, board)
		}
	})

	t.Run("Error on invalid player", func(t *testing.T) {
		board := newTestBoard(t, 3, 3)

		err := board.Place(0, 0, Player("Z"))

		require.ErrorIs(t, err, apperror.ErrInvalidPlayer)
		assert.True(t, board.IsEmpty(0, 0))
	})
}

func TestBoard_Cell(t *testing.T) {
	board := newTestBoard(t, 3, 3)

	_, err := board.Cell(5, 5)

	require.ErrorIs(t, err, apperror.ErrOutOfBounds)
	assert.False(t, board.IsEmpty(5, 5))
}

func TestBoard_LowestEmptyRow(t *testing.T) {
	t.Run("Empty column lands on the bottom row", func(t *testing.T) {
		board := newTestBoard(t, 6, 7)

		row, ok, err := board.LowestEmptyRow(3)

		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 0, row)
	})

	t.Run("Partially filled column lands above the top mark", func(t *testing.T) {
		// Given: two marks dropped in column 2
		board := newTestBoard(t, 6, 7)
		_, err := board.Drop(2, PlayerX)
		require.NoError(t, err)
		_, err = board.Drop(2, PlayerO)
		require.NoError(t, err)

		// When: the landing row is computed
		row, ok, err := board.LowestEmptyRow(2)

		// Then: it is row 2
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 2, row)
	})

	t.Run("Full column reports none", func(t *testing.T) {
		// Given: column 0 holds 6 marks
		board := newTestBoard(t, 6, 7)
		player := PlayerX
		for i := 0; i < 6; i++ {
			_, err := board.Drop(0, player)
			require.NoError(t, err)
			player = player.Opponent()
		}

		// When: the landing row is computed
		_, ok, err := board.LowestEmptyRow(0)

		// Then: no row is available
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Invalid column", func(t *testing.T) {
		board := newTestBoard(t, 6, 7)

		_, _, err := board.LowestEmptyRow(7)
		require.ErrorIs(t, err, apperror.ErrOutOfBounds)

		_, _, err = board.LowestEmptyRow(-1)
		require.ErrorIs(t, err, apperror.ErrOutOfBounds)
	})
}

func TestBoard_Drop(t *testing.T) {
	t.Run("Stacks marks from the bottom", func(t *testing.T) {
		board := newTestBoard(t, 6, 7)

		for want := 0; want < 4; want++ {
			row, err := board.Drop(2, PlayerO)
			require.NoError(t, err)
			assert.Equal(t, want, row)
		}

		for row := 0; row < 4; row++ {
			assert.True(t, board.Holds(row, 2, PlayerO))
		}
		assert.True(t, board.IsEmpty(4, 2))
	})

	t.Run("Error on column full leaves the board unchanged", func(t *testing.T) {
		// Given: a full column 6
		board := newTestBoard(t, 6, 7)
		player := PlayerX
		for i := 0; i < 6; i++ {
			_, err := board.Drop(6, player)
			require.NoError(t, err)
			player = player.Opponent()
		}
		before := board.Clone()

		// When: another mark is dropped
		_, err := board.Drop(6, PlayerX)

		// Then: ErrColumnFull is returned
		require.ErrorIs(t, err, apperror.ErrColumnFull)
		assert.Equal(t, before, board)
	})

	t.Run("Error on out of bounds column", func(t *testing.T) {
		board := newTestBoard(t, 6, 7)

		_, err := board.Drop(9, PlayerX)

		require.ErrorIs(t, err, apperror.ErrOutOfBounds)
	})
}

func TestBoard_IsFull(t *testing.T) {
	board := newTestBoard(t, 2, 2)
	assert.False(t, board.IsFull())

	require.NoError(t, board.Place(0, 0, PlayerX))
	require.NoError(t, board.Place(0, 1, PlayerO))
	require.NoError(t, board.Place(1, 0, PlayerX))
	assert.False(t, board.IsFull())

	require.NoError(t, board.Place(1, 1, PlayerO))
	assert.True(t, board.IsFull())
	assert.True(t, board.IsFull())
}

func TestBoard_AvailableMoves(t *testing.T) {
	t.Run("Empty direct board lists every cell", func(t *testing.T) {
		board := newTestBoard(t, 3, 3)

		moves := board.AvailableMoves(PlacementDirect)

		require.Len(t, moves, 9)
		assert.Equal(t, Move{Row: 0, Col: 0}, moves[0])
		assert.Equal(t, Move{Row: 2, Col: 2}, moves[8])
	})

	t.Run("Empty drop board lists one move per column", func(t *testing.T) {
		board := newTestBoard(t, 6, 7)

		moves := board.AvailableMoves(PlacementDrop)

		require.Len(t, moves, 7)
		for col, move := range moves {
			assert.Equal(t, Move{Row: 0, Col: col}, move)
		}
	})

	t.Run("Drop board skips full columns", func(t *testing.T) {
		// Given: column 1 is full and column 3 holds one mark
		board := newTestBoard(t, 6, 7)
		player := PlayerX
		for i := 0; i < 6; i++ {
			_, err := board.Drop(1, player)
			require.NoError(t, err)
			player = player.Opponent()
		}
		_, err := board.Drop(3, PlayerO)
		require.NoError(t, err)

		// When: available moves are listed
		moves := board.AvailableMoves(PlacementDrop)

		// Then: column 1 is absent and column 3 lands on row 1
		require.Len(t, moves, 6)
		assert.Equal(t, []Move{
			{Row: 0, Col: 0},
			{Row: 0, Col: 2},
			{Row: 1, Col: 3},
			{Row: 0, Col: 4},
			{Row: 0, Col: 5},
			{Row: 0, Col: 6},
		}, moves)
	})

	t.Run("Returns a snapshot", func(t *testing.T) {
		// Given: the moves of an empty board
		board := newTestBoard(t, 3, 3)
		moves := board.AvailableMoves(PlacementDirect)

		// When: a mark is placed afterwards
		require.NoError(t, board.Place(0, 0, PlayerX))

		// Then: the earlier listing is untouched and a new one shrinks
		assert.Len(t, moves, 9)
		assert.Len(t, board.AvailableMoves(PlacementDirect), 8)
	})
}

func TestBoard_JSON(t *testing.T) {
	t.Run("Decodes what it encodes", func(t *testing.T) {
		board := newTestBoard(t, 6, 7)
		_, err := board.Drop(4, PlayerX)
		require.NoError(t, err)

		data, err := json.Marshal(board)
		require.NoError(t, err)

		var decoded Board
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, board, &decoded)
	})

	t.Run("Rejects inconsistent dimensions", func(t *testing.T) {
		var decoded Board

		err := json.Unmarshal([]byte(`{"rows":2,"cols":2,"cells":[["",""]]}`), &decoded)

		require.ErrorIs(t, err, apperror.ErrInvalidDimensions)
	})

	t.Run("Rejects unknown marks", func(t *testing.T) {
		var decoded Board

		err := json.Unmarshal([]byte(`{"rows":1,"cols":2,"cells":[["X","Q"]]}`), &decoded)

		require.ErrorIs(t, err, apperror.ErrInvalidPlayer)
	})
}

func TestPlayer_Opponent(t *testing.T) {
	assert.Equal(t, PlayerO, PlayerX.Opponent())
	assert.Equal(t, PlayerX, PlayerO.Opponent())
	assert.False(t, Player("").IsValid())
}
