package ai

import (
	"math"
	"testing"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var heuristics = map[string]Heuristic{
	"center":           CenterHeuristic,
	"corner":           CornerHeuristic,
	"winning-sequence": WinningSequenceHeuristic,
	"everywhere":       EverywhereHeuristic,
}

func TestSearch_DepthZero(t *testing.T) {
	for name, heuristic := range heuristics {
		t.Run(name, func(t *testing.T) {
			for _, game := range randomPositions(t, 2, 20, 30) {
				for _, player := range []entity.Player{entity.PlayerX, entity.PlayerO} {
					// Given: the static value of a position
					expected := heuristic(game, player)

					// Then: depth 0 returns it unchanged
					assert.Equal(t, expected, Minimax(game, 0, player, heuristic))
					assert.Equal(t, expected, AlphaBeta(game, 0, math.MinInt, math.MaxInt, player, heuristic))
				}
			}
		})
	}
}

func TestSearch_TerminalNode(t *testing.T) {
	// Given: a game X has already won
	game := entity.MustParseNotation("xxx6/xxx6/xxx6/9/9/9/9/9/9 o -")

	// Then: any depth returns the static value
	assert.Equal(t, WinningWeight, Minimax(game, 4, entity.PlayerX, CenterHeuristic))
	assert.Equal(t, -WinningWeight, AlphaBeta(game, 4, math.MinInt, math.MaxInt, entity.PlayerO, CenterHeuristic))
}

func TestSearch_FindsWin(t *testing.T) {
	// Given: X can win the game by completing sub-board 2
	game := entity.MustParseNotation("xxx6/xxx6/xx7/o8/o8/o8/o8/9/9 x 2")

	// Then: one ply is enough to see it
	assert.Equal(t, WinningWeight, Minimax(game, 1, entity.PlayerX, CenterHeuristic))
	assert.Equal(t, WinningWeight, AlphaBeta(game, 1, math.MinInt, math.MaxInt, entity.PlayerX, CenterHeuristic))

	// Then: from O's side the position is lost
	assert.Equal(t, -WinningWeight, AlphaBeta(game, 1, math.MinInt, math.MaxInt, entity.PlayerO, CenterHeuristic))
}

func TestSearch_AlphaBetaMatchesMinimax(t *testing.T) {
	positions := randomPositions(t, 3, 12, 50)

	for name, heuristic := range heuristics {
		t.Run(name, func(t *testing.T) {
			for _, game := range positions {
				for depth := 1; depth <= 3; depth++ {
					for _, player := range []entity.Player{entity.PlayerX, entity.PlayerO} {
						// When: searching with and without pruning
						expected := Minimax(game, depth, player, heuristic)
						actual := AlphaBeta(game, depth, math.MinInt, math.MaxInt, player, heuristic)

						// Then: pruning never changes the value
						require.Equal(t, expected, actual, "position %s depth %d player %s", game.Notation(), depth, player)
					}
				}
			}
		})
	}
}

func TestSearch_DoesNotMutate(t *testing.T) {
	game := entity.NewGame()
	game.PlayAt(4, 4)
	before := *game

	AlphaBeta(game, 3, math.MinInt, math.MaxInt, entity.PlayerO, EverywhereHeuristic)
	Minimax(game, 2, entity.PlayerO, CenterHeuristic)

	assert.Equal(t, before, *game)
}
