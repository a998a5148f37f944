package ai

import (
	"math"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
)

// Minimax explores the whole tree down to depth and returns the heuristic
// value from maximizing's point of view.
func Minimax(node *entity.Game, depth int, maximizing entity.Player, heuristic Heuristic) int {
	if node.IsOver() || depth == 0 {
		return heuristic(node, maximizing)
	}

	children := GenerateChildren(node)
	mustHaveChildren(node, children)

	if node.Player == maximizing {
		value := math.MinInt
		for i := range children {
			value = max(value, Minimax(&children[i], depth-1, maximizing, heuristic))
		}
		return value
	}

	value := math.MaxInt
	for i := range children {
		value = min(value, Minimax(&children[i], depth-1, maximizing, heuristic))
	}
	return value
}

// AlphaBeta returns the same value as Minimax for the window
// (math.MinInt, math.MaxInt) while skipping siblings that cannot change it.
func AlphaBeta(node *entity.Game, depth, alpha, beta int, maximizing entity.Player, heuristic Heuristic) int {
	if node.IsOver() || depth == 0 {
		return heuristic(node, maximizing)
	}

	children := GenerateChildren(node)
	mustHaveChildren(node, children)

	if node.Player == maximizing {
		value := math.MinInt
		for i := range children {
			value = max(value, AlphaBeta(&children[i], depth-1, alpha, beta, maximizing, heuristic))
			if value > beta {
				break
			}
			alpha = max(alpha, value)
		}
		return value
	}

	value := math.MaxInt
	for i := range children {
		value = min(value, AlphaBeta(&children[i], depth-1, alpha, beta, maximizing, heuristic))
		if value < alpha {
			break
		}
		beta = min(beta, value)
	}
	return value
}
