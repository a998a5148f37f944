package entity

// WinCombos are the 8 winning lines of a 3x3 grid, indices are row-major.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// SubBoard is a 3x3 grid of cell marks.
type SubBoard [9]CellState

// Board holds the 9 sub-boards and their aggregate states as seen from the super-board.
type Board struct {
	Cells  [9]SubBoard
	States [9]CellState
}

// IsWonBy - reports whether player holds one of the winning lines. It works for
// sub-board cells and for the aggregate states alike.
func IsWonBy(states [9]CellState, player Player) bool {
	mark := Occupied(player)
	for _, combo := range WinCombos {
		if states[combo[0]] == mark && states[combo[1]] == mark && states[combo[2]] == mark {
			return true
		}
	}
	return false
}

// AllOccupied - reports whether no slot is Free. Tied slots count as filled.
func AllOccupied(states [9]CellState) bool {
	for _, state := range states {
		if state.IsFree() {
			return false
		}
	}
	return true
}

// subBoardState derives the aggregate state of a sub-board from its own cells.
func subBoardState(cells SubBoard) CellState {
	switch {
	case IsWonBy(cells, PlayerX):
		return Occupied(PlayerX)
	case IsWonBy(cells, PlayerO):
		return Occupied(PlayerO)
	case AllOccupied(cells):
		return Tied
	default:
		return Free
	}
}
