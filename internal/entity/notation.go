package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/apperror"
)

// StartingPosition is the notation of an empty game with X to move.
const StartingPosition = "9/9/9/9/9/9/9/9/9 x -"

// Notation writes the game in a compact form:
//
//	<sub-board 0>/.../<sub-board 8> <x|o> <focus 0-8|->
//
// Each sub-board lists its cells in row-major order, 'x' and 'o' for marks and
// a digit for a run of empty cells. For example "x3o4" is an X in cell 0 and
// an O in cell 4.
func (that *Game) Notation() string {
	var builder strings.Builder

	for sub, cells := range that.Board.Cells {
		if sub > 0 {
			builder.WriteByte('/')
		}

		empty := 0
		for _, cell := range cells {
			player, ok := cell.Owner()
			if !ok {
				empty++
				continue
			}

			if empty > 0 {
				builder.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			builder.WriteString(strings.ToLower(player.String()))
		}

		if empty > 0 {
			builder.WriteString(strconv.Itoa(empty))
		}
	}

	builder.WriteByte(' ')
	builder.WriteString(strings.ToLower(that.Player.String()))

	builder.WriteByte(' ')
	if that.Focus == NoFocus {
		builder.WriteByte('-')
	} else {
		builder.WriteString(strconv.Itoa(that.Focus))
	}

	return builder.String()
}

// ParseNotation builds a game from its notation. Aggregate states and the
// playing state are recomputed from the cells.
//
// Only the shape is checked, not reachability: mark counts need not match the
// side to move and the focus need not follow from any last move. Such
// positions are still valid search inputs.
func ParseNotation(notation string) (*Game, error) {
	fields := strings.Fields(notation)
	if len(fields) != 3 {
		return nil, fmt.Errorf("%w: expected 3 fields, got %d", apperror.ErrInvalidNotation, len(fields))
	}

	subBoards := strings.Split(fields[0], "/")
	if len(subBoards) != 9 {
		return nil, fmt.Errorf("%w: expected 9 sub-boards, got %d", apperror.ErrInvalidNotation, len(subBoards))
	}

	game := NewGame()

	for sub, encoded := range subBoards {
		cells, err := parseSubBoard(encoded)
		if err != nil {
			return nil, fmt.Errorf("%w: sub-board %d: %w", apperror.ErrInvalidNotation, sub, err)
		}

		if IsWonBy(cells, PlayerX) && IsWonBy(cells, PlayerO) {
			return nil, fmt.Errorf("%w: sub-board %d won by both players", apperror.ErrInvalidNotation, sub)
		}

		game.Board.Cells[sub] = cells
		game.Board.States[sub] = subBoardState(cells)
	}

	player, ok := ParsePlayer(fields[1])
	if !ok {
		return nil, fmt.Errorf("%w: invalid side %q", apperror.ErrInvalidNotation, fields[1])
	}
	game.Player = player

	if fields[2] != "-" {
		focus, err := strconv.Atoi(fields[2])
		if err != nil || !validIndex(focus) {
			return nil, fmt.Errorf("%w: invalid focus %q", apperror.ErrInvalidNotation, fields[2])
		}

		if !game.Board.States[focus].IsFree() {
			return nil, fmt.Errorf("%w: focus %d names a closed sub-board", apperror.ErrInvalidNotation, focus)
		}
		game.Focus = focus
	}

	game.State = game.derivePlayingState()

	return game, nil
}

// MustParseNotation panics on invalid notation. Meant for fixtures.
func MustParseNotation(notation string) *Game {
	game, err := ParseNotation(notation)
	if err != nil {
		panic(err)
	}
	return game
}

func parseSubBoard(encoded string) (SubBoard, error) {
	var cells SubBoard

	index := 0
	for _, char := range encoded {
		switch {
		case char == 'x' || char == 'X' || char == 'o' || char == 'O':
			if index >= 9 {
				return cells, fmt.Errorf("too many cells in %q", encoded)
			}

			player, _ := ParsePlayer(string(char))
			cells[index] = Occupied(player)
			index++
		case char >= '1' && char <= '9':
			index += int(char - '0')
			if index > 9 {
				return cells, fmt.Errorf("too many cells in %q", encoded)
			}
		default:
			return cells, fmt.Errorf("unexpected %q in %q", char, encoded)
		}
	}

	if index != 9 {
		return cells, fmt.Errorf("expected 9 cells in %q, got %d", encoded, index)
	}

	return cells, nil
}
