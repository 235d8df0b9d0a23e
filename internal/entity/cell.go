package entity

const EmptyCell Cell = ""

// Cell is either EmptyCell or the mark of a player.
type Cell string

// Mark returns the cell state holding the mark of player.
func Mark(player Player) Cell {
	return Cell(player)
}

func (that Cell) IsEmpty() bool {
	return that == EmptyCell
}

func (that Cell) isValid() bool {
	return that.IsEmpty() || Player(that).IsValid()
}
