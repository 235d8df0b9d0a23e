package apperror

import "errors"

// Placement errors. The caller is expected to re-prompt on any of them.
var (
	ErrOutOfBounds  = errors.New("coordinates are out of bounds")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrColumnFull   = errors.New("column is full")
)

var (
	ErrInvalidPlayer     = errors.New("invalid player")
	ErrInvalidDimensions = errors.New("board dimensions must be positive")
	ErrGameFinished      = errors.New("game is already finished")
	ErrNotYourTurn       = errors.New("it's not your turn")
	ErrInvalidInput      = errors.New("invalid input")
	ErrUnknownVariant    = errors.New("unknown game variant")
	ErrInputClosed       = errors.New("input closed")
)
