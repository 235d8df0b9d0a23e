package game

import (
	"fmt"

	"github.com/rocketscienceinc/gridgames/internal/apperror"
	"github.com/rocketscienceinc/gridgames/internal/entity"
	"github.com/rocketscienceinc/gridgames/internal/rules"
)

// Game is one game of a variant: the board plus whose turn it is.
type Game struct {
	ID         string        `json:"id"`
	Variant    Variant       `json:"variant"`
	Board      *entity.Board `json:"board"`
	Turn       entity.Player `json:"turn"`
	LastPlayer entity.Player `json:"last_player,omitempty"`
}

// New returns a game with an empty board and X to move.
func New(id string, variant Variant) (*Game, error) {
	board, err := entity.NewBoard(variant.Rows, variant.Cols)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	return &Game{
		ID:      id,
		Variant: variant,
		Board:   board,
		Turn:    entity.PlayerX,
	}, nil
}

// MakeTurn applies a move of player and returns the cell actually marked and the
// resulting outcome. Drop variants only use move.Col.
func (that *Game) MakeTurn(player entity.Player, move entity.Move) (entity.Move, entity.Outcome, error) {
	if that.Outcome().IsFinished() {
		return entity.Move{}, that.Outcome(), apperror.ErrGameFinished
	}

	if that.Turn != player {
		return entity.Move{}, entity.InProgress(), apperror.ErrNotYourTurn
	}

	placed, err := that.place(player, move)
	if err != nil {
		return entity.Move{}, entity.InProgress(), fmt.Errorf("invalid turn: %w", err)
	}

	that.LastPlayer = player

	outcome := that.Outcome()
	if !outcome.IsFinished() {
		that.Turn = player.Opponent()
	}

	return placed, outcome, nil
}

// Outcome is recomputed from the board and the player who moved last.
func (that *Game) Outcome() entity.Outcome {
	if that.LastPlayer == "" {
		return entity.InProgress()
	}

	return rules.Evaluate(that.Board, that.LastPlayer, that.Variant.RunLength)
}

// WinningLine returns the cells of the line that ended the game, if any.
func (that *Game) WinningLine() []entity.Move {
	if that.LastPlayer == "" {
		return nil
	}

	line, _ := rules.WinningLine(that.Board, that.LastPlayer, that.Variant.RunLength)

	return line
}

// AvailableMoves lists the legal moves for the player on turn.
func (that *Game) AvailableMoves() []entity.Move {
	if that.Outcome().IsFinished() {
		return nil
	}

	return that.Board.AvailableMoves(that.Variant.Placement)
}

// Reset clears the board for a rematch. X moves first again.
func (that *Game) Reset() error {
	board, err := entity.NewBoard(that.Variant.Rows, that.Variant.Cols)
	if err != nil {
		return fmt.Errorf("failed to create board: %w", err)
	}

	that.Board = board
	that.Turn = entity.PlayerX
	that.LastPlayer = ""

	return nil
}

func (that *Game) place(player entity.Player, move entity.Move) (entity.Move, error) {
	if that.Variant.IsDrop() {
		row, err := that.Board.Drop(move.Col, player)
		if err != nil {
			return entity.Move{}, err
		}

		return entity.Move{Row: row, Col: move.Col}, nil
	}

	if err := that.Board.Place(move.Row, move.Col, player); err != nil {
		return entity.Move{}, err
	}

	return move, nil
}
