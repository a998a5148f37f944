package service

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/ai"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
)

var ErrNoAvailableMoves = errors.New("no available moves")

type BotService interface {
	MakeTurn(game *entity.Game, level ai.Level) error
}

type botService struct {
	chooser ai.Chooser
}

func NewBotService(chooser ai.Chooser) BotService {
	return &botService{
		chooser: chooser,
	}
}

// MakeTurn replaces game with the position after the bot's move.
func (that *botService) MakeTurn(game *entity.Game, level ai.Level) error {
	if len(ai.LegalMoves(game)) == 0 {
		return ErrNoAvailableMoves
	}

	next, err := that.chooser.ChooseMove(game, level)
	if err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	*game = *next

	return nil
}
