package entity

// Player marks a cell. The zero value is not a player.
type Player uint8

const (
	PlayerX Player = iota + 1
	PlayerO
)

// Other - returns the opponent.
func (that Player) Other() Player {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that Player) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return "?"
	}
}

// ParsePlayer accepts "x"/"X" and "o"/"O".
func ParsePlayer(s string) (Player, bool) {
	switch s {
	case "x", "X":
		return PlayerX, true
	case "o", "O":
		return PlayerO, true
	default:
		return 0, false
	}
}

type cellKind uint8

const (
	cellFree cellKind = iota
	cellOccupied
	cellTied
)

// CellState is one of Free, Occupied(player) or Tied. Tied is only used for
// the aggregate state of a sub-board. The zero value is Free.
type CellState struct {
	kind  cellKind
	owner Player
}

var (
	Free = CellState{}
	Tied = CellState{kind: cellTied}
)

func Occupied(player Player) CellState {
	return CellState{kind: cellOccupied, owner: player}
}

func (that CellState) IsFree() bool {
	return that.kind == cellFree
}

func (that CellState) IsTied() bool {
	return that.kind == cellTied
}

// Owner - returns the occupying player, ok is false for Free and Tied.
func (that CellState) Owner() (Player, bool) {
	if that.kind != cellOccupied {
		return 0, false
	}
	return that.owner, true
}

func (that CellState) String() string {
	switch that.kind {
	case cellOccupied:
		return that.owner.String()
	case cellTied:
		return " "
	default:
		return "*"
	}
}
