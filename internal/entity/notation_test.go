package entity

import (
	"testing"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGame_Notation(t *testing.T) {
	t.Run("Starting position", func(t *testing.T) {
		assert.Equal(t, "9/9/9/9/9/9/9/9/9 x -", NewGame().Notation())
	})

	t.Run("After two moves", func(t *testing.T) {
		// Given: X plays 4/4 and O answers in 4/0
		game := NewGame()
		game.PlayAt(4, 4)
		game.PlayAt(4, 0)

		// Then: both marks and the focus on sub-board 0 are written
		assert.Equal(t, "9/9/9/9/o3x4/9/9/9/9 x 0", game.Notation())
	})
}

func TestParseNotation(t *testing.T) {
	t.Run("Round trip", func(t *testing.T) {
		// Given: a position in notation
		notation := "x8/9/9/9/o3x4/9/9/9/9 o 4"

		// When: parsing it
		game, err := ParseNotation(notation)

		// Then: the game reflects the notation and writes it back unchanged
		require.NoError(t, err)
		assert.Equal(t, Occupied(PlayerX), game.Board.Cells[0][0])
		assert.Equal(t, Occupied(PlayerO), game.Board.Cells[4][0])
		assert.Equal(t, PlayerO, game.Player)
		assert.Equal(t, 4, game.Focus)
		assert.Equal(t, Continue, game.State)
		assert.Equal(t, notation, game.Notation())
	})

	t.Run("Aggregate states are recomputed", func(t *testing.T) {
		game, err := ParseNotation("xxx6/ooo6/xoxoxooxo/9/9/9/9/9/9 x -")

		require.NoError(t, err)
		assert.Equal(t, Occupied(PlayerX), game.Board.States[0])
		assert.Equal(t, Occupied(PlayerO), game.Board.States[1])
		assert.Equal(t, Tied, game.Board.States[2])
		assert.Equal(t, Free, game.Board.States[3])
	})

	t.Run("Invalid notations", func(t *testing.T) {
		for _, notation := range []string{
			"",
			"9/9/9/9/9/9/9/9/9 x",
			"9/9/9/9/9/9/9/9 x -",
			"9/9/9/9/9/9/9/9/8 x -",
			"9/9/9/9/9/9/9/9/91 x -",
			"9/9/9/9/9/9/9/9/xxxxxxxxxx x -",
			"9/9/9/9/9/9/9/9/a8 x -",
			"9/9/9/9/9/9/9/9/9 z -",
			"9/9/9/9/9/9/9/9/9 x 9",
			"xxx6/9/9/9/9/9/9/9/9 o 0",
			"xxxooo3/9/9/9/9/9/9/9/9 x -",
		} {
			// When: parsing a malformed notation
			_, err := ParseNotation(notation)

			// Then: ErrInvalidNotation is returned
			require.ErrorIs(t, err, apperror.ErrInvalidNotation, "notation %q", notation)
		}
	})

	t.Run("Unreachable but well-formed positions are accepted", func(t *testing.T) {
		// Given: X has four more marks than O and the focus follows no O move
		notation := "xxoo5/xx7/xx7/9/9/9/9/9/9 o 5"

		// When: parsing it
		game, err := ParseNotation(notation)

		// Then: it loads as a playable position
		require.NoError(t, err)
		assert.Equal(t, PlayerO, game.Player)
		assert.Equal(t, 5, game.Focus)
		assert.False(t, game.IsOver())
		assert.Equal(t, notation, game.Notation())
	})
}
