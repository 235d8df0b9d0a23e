package entity

const (
	// PlacementDirect addresses a move by row and column.
	PlacementDirect Placement = "direct"
	// PlacementDrop addresses a move by column only, the mark falls to the lowest empty row.
	PlacementDrop Placement = "drop"
)

type Placement string

// Move is a target cell on the board.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}
