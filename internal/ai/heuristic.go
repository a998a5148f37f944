package ai

import "github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"

// WinningWeight is the score of a won game.
const WinningWeight = 10000

const (
	// subBoardWeight multiplies the cell weight of a won sub-board.
	subBoardWeight = 50

	wonSubBoardBonus    = 5
	centerSubBoardBonus = 10
	cornerSubBoardBonus = 3
	centerCellBonus     = 3
	freedomBonus        = 2
)

// Heuristic statically scores a position. Positive values favour maximizing.
type Heuristic func(node *entity.Game, maximizing entity.Player) int

var (
	CenterWeights = [9]int{40, 10, 40, 10, 45, 10, 40, 10, 40}
	CornerWeights = [9]int{45, 10, 45, 10, 15, 10, 45, 10, 45}

	CenterHeuristic = Weighted(CenterWeights)
	CornerHeuristic = Weighted(CornerWeights)
)

func dir(actual, maximizing entity.Player) int {
	if actual == maximizing {
		return 1
	}
	return -1
}

// terminalScore scores a finished game.
func terminalScore(node *entity.Game, maximizing entity.Player) int {
	if winner, ok := node.Winner(); ok {
		return dir(winner, maximizing) * WinningWeight
	}
	return 0
}

// Weighted scores won sub-boards by their position and single marks inside
// open sub-boards by the cell position.
func Weighted(weights [9]int) Heuristic {
	return func(node *entity.Game, maximizing entity.Player) int {
		if node.IsOver() {
			return terminalScore(node, maximizing)
		}

		score := 0
		for sub, state := range node.Board.States {
			if owner, ok := state.Owner(); ok {
				score += dir(owner, maximizing) * subBoardWeight * weights[sub]
				continue
			}

			if state.IsTied() {
				continue
			}

			for cell, mark := range node.Board.Cells[sub] {
				if owner, ok := mark.Owner(); ok {
					score += dir(owner, maximizing) * weights[cell]
				}
			}
		}

		return score
	}
}

// sequenceScore rewards lines holding two marks of one player and nothing of
// the other. A line sums +1/-1 per mark; only even sums count, which drops
// single marks and mixed lines.
func sequenceScore(states [9]entity.CellState, maximizing entity.Player) int {
	score := 0
	for _, combo := range entity.WinCombos {
		sum := 0
		for _, index := range combo {
			if owner, ok := states[index].Owner(); ok {
				sum += dir(owner, maximizing)
			}
		}

		if sum%2 == 0 {
			score += 2 * sum
		}
	}
	return score
}

// WinningSequenceHeuristic scores open lines on the super-board and inside
// every open sub-board, plus a bonus for controlling strong positions.
func WinningSequenceHeuristic(node *entity.Game, maximizing entity.Player) int {
	if node.IsOver() {
		return terminalScore(node, maximizing)
	}

	score := sequenceScore(node.Board.States, maximizing)

	for sub, state := range node.Board.States {
		if owner, ok := state.Owner(); ok {
			direction := dir(owner, maximizing)
			score += direction * wonSubBoardBonus

			switch {
			case sub == 4:
				score += direction * centerSubBoardBonus
			case isCorner(sub):
				score += direction * cornerSubBoardBonus
			}
			continue
		}

		if state.IsTied() {
			continue
		}

		cells := node.Board.Cells[sub]
		score += sequenceScore(cells, maximizing)

		for cell, mark := range cells {
			owner, ok := mark.Owner()
			if ok && (cell == 4 || sub == 4) {
				score += dir(owner, maximizing) * centerCellBonus
			}
		}
	}

	return score
}

// EverywhereHeuristic prefers positions where the player to move is free to
// pick any sub-board.
func EverywhereHeuristic(node *entity.Game, maximizing entity.Player) int {
	score := WinningSequenceHeuristic(node, maximizing)
	if !node.IsOver() && !node.IsFocused() {
		score += dir(node.Player, maximizing) * freedomBonus
	}
	return score
}

func isCorner(index int) bool {
	return index == 0 || index == 2 || index == 6 || index == 8
}
