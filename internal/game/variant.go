package game

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/gridgames/internal/apperror"
	"github.com/rocketscienceinc/gridgames/internal/entity"
)

const (
	TicTacToeName   = "tictactoe"
	ConnectFourName = "connectfour"
)

// Variant fixes the shape and winning condition of a game.
type Variant struct {
	Name      string           `json:"name"`
	Rows      int              `json:"rows"`
	Cols      int              `json:"cols"`
	RunLength int              `json:"run_length"`
	Placement entity.Placement `json:"placement"`
}

var (
	TicTacToe = Variant{
		Name:      TicTacToeName,
		Rows:      3,
		Cols:      3,
		RunLength: 3,
		Placement: entity.PlacementDirect,
	}

	ConnectFour = Variant{
		Name:      ConnectFourName,
		Rows:      6,
		Cols:      7,
		RunLength: 4,
		Placement: entity.PlacementDrop,
	}
)

// VariantByName looks up one of the built-in variants, ignoring case.
func VariantByName(name string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case TicTacToeName:
		return TicTacToe, nil
	case ConnectFourName:
		return ConnectFour, nil
	default:
		return Variant{}, fmt.Errorf("%w: %q", apperror.ErrUnknownVariant, name)
	}
}

func (that Variant) IsDrop() bool {
	return that.Placement == entity.PlacementDrop
}
