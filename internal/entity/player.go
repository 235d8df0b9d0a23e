package entity

const (
	PlayerX Player = "X"
	PlayerO Player = "O"
)

// Player is one of the two sides of a game.
type Player string

func (that Player) IsValid() bool {
	return that == PlayerX || that == PlayerO
}

// Opponent returns the other player. An invalid player is returned unchanged.
func (that Player) Opponent() Player {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return that
	}
}

func (that Player) String() string {
	return string(that)
}
