package entity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/apperror"
)

// NoFocus means the player to move may play in any open sub-board.
const NoFocus = -1

var ErrInvalidCell = errors.New("invalid cell index")

// Move addresses one cell: the sub-board index and the cell index inside it.
type Move struct {
	Sub  int `json:"sub"`
	Cell int `json:"cell"`
}

// Game is a full game node. It only holds arrays and scalars, so a plain
// assignment is a deep copy.
type Game struct {
	Board  Board
	Player Player
	State  PlayingState
	Focus  int
}

func NewGame() *Game {
	return &Game{
		Player: PlayerX,
		State:  Continue,
		Focus:  NoFocus,
	}
}

func (that *Game) Reset() {
	*that = *NewGame()
}

func (that *Game) IsOver() bool {
	return that.State.IsTerminal()
}

// IsFocused - reports whether the player to move is constrained to one sub-board.
func (that *Game) IsFocused() bool {
	return that.Focus != NoFocus
}

// IndexIsPlayable - the sub-board must be open, the cell free, and the focus
// (if any) must name this sub-board.
func (that *Game) IndexIsPlayable(sub, cell int) bool {
	if !validIndex(sub) || !validIndex(cell) {
		return false
	}

	return that.Board.States[sub].IsFree() &&
		that.Board.Cells[sub][cell].IsFree() &&
		(that.Focus == NoFocus || that.Focus == sub)
}

// PlayAt applies a move that the caller already checked with IndexIsPlayable.
// It is the only place that writes State and Focus.
func (that *Game) PlayAt(sub, cell int) {
	that.Board.Cells[sub][cell] = Occupied(that.Player)

	switch {
	case IsWonBy(that.Board.Cells[sub], that.Player):
		that.Board.States[sub] = Occupied(that.Player)
	case AllOccupied(that.Board.Cells[sub]):
		that.Board.States[sub] = Tied
	}

	if that.Board.States[cell].IsFree() {
		that.Focus = cell
	} else {
		that.Focus = NoFocus
	}

	that.Player = that.Player.Other()
	that.State = that.CheckPlayingState()
}

// Play is the checked form of PlayAt.
func (that *Game) Play(sub, cell int) error {
	if that.IsOver() {
		return apperror.ErrGameFinished
	}

	if !validIndex(sub) || !validIndex(cell) {
		return fmt.Errorf("%w: sub %d cell %d", ErrInvalidCell, sub, cell)
	}

	if !that.IndexIsPlayable(sub, cell) {
		return fmt.Errorf("%w: sub %d cell %d", apperror.ErrInvalidMove, sub, cell)
	}

	that.PlayAt(sub, cell)

	return nil
}

// CheckPlayingState derives the playing state after a move. Only the player
// who just moved can have won.
func (that *Game) CheckPlayingState() PlayingState {
	mover := that.Player.Other()
	if IsWonBy(that.Board.States, mover) {
		return Win(mover)
	}

	if that.noMovesLeft() {
		return Tie
	}

	return Continue
}

// noMovesLeft - every aggregate slot is decided, or every open sub-board is full.
func (that *Game) noMovesLeft() bool {
	if AllOccupied(that.Board.States) {
		return true
	}

	for sub, state := range that.Board.States {
		if state.IsFree() && !AllOccupied(that.Board.Cells[sub]) {
			return false
		}
	}

	return true
}

// derivePlayingState recomputes the state without knowing who moved last.
func (that *Game) derivePlayingState() PlayingState {
	for _, player := range [2]Player{PlayerX, PlayerO} {
		if IsWonBy(that.Board.States, player) {
			return Win(player)
		}
	}

	if that.noMovesLeft() {
		return Tie
	}

	return Continue
}

// Winner - returns the winner of a finished game.
func (that *Game) Winner() (Player, bool) {
	return that.State.Winner()
}

func (that *Game) IsTie() bool {
	return that.State.IsTie()
}

// String renders the board as a 9x9 grid, sub-boards separated by bars.
func (that *Game) String() string {
	var builder strings.Builder

	for bigRow := 0; bigRow < 3; bigRow++ {
		if bigRow > 0 {
			builder.WriteString("---------------\n")
		}

		for row := 0; row < 3; row++ {
			for bigCol := 0; bigCol < 3; bigCol++ {
				if bigCol > 0 {
					builder.WriteString(" | ")
				}

				sub := that.Board.Cells[bigRow*3+bigCol]
				for col := 0; col < 3; col++ {
					builder.WriteString(sub[row*3+col].String())
				}
			}
			builder.WriteByte('\n')
		}
	}

	return builder.String()
}

func validIndex(index int) bool {
	return index >= 0 && index < 9
}
