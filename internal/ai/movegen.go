package ai

import "github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"

// GenerateChildren returns every position reachable in one move, ordered by
// (sub-board, cell). A finished game has no children.
func GenerateChildren(node *entity.Game) []entity.Game {
	if node.IsOver() {
		return nil
	}

	children := make([]entity.Game, 0, 9)
	for sub := 0; sub < 9; sub++ {
		for cell := 0; cell < 9; cell++ {
			if node.IndexIsPlayable(sub, cell) {
				child := *node
				child.PlayAt(sub, cell)
				children = append(children, child)
			}
		}
	}

	return children
}

// LegalMoves lists the moves behind GenerateChildren, in the same order.
func LegalMoves(node *entity.Game) []entity.Move {
	if node.IsOver() {
		return nil
	}

	moves := make([]entity.Move, 0, 9)
	for sub := 0; sub < 9; sub++ {
		for cell := 0; cell < 9; cell++ {
			if node.IndexIsPlayable(sub, cell) {
				moves = append(moves, entity.Move{Sub: sub, Cell: cell})
			}
		}
	}

	return moves
}

func mustHaveChildren(node *entity.Game, children []entity.Game) {
	if len(children) == 0 {
		panic("ai: no legal move in unfinished position " + node.Notation())
	}
}
