package service

import (
	"fmt"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/ai"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
)

type GameService interface {
	NewGame() *entity.Game
	ParsePosition(notation string) (*entity.Game, error)

	IsLegal(game *entity.Game, sub, cell int) bool
	LegalMoves(game *entity.Game) []entity.Move
	ApplyMove(game *entity.Game, sub, cell int) (*entity.Game, error)
	ChooseAIMove(game *entity.Game, level ai.Level) (*entity.Game, error)

	IsTerminal(game *entity.Game) bool
	Winner(game *entity.Game) (entity.Player, bool)
	IsTie(game *entity.Game) bool
}

type gameService struct {
	botService BotService
}

func NewGameService(botService BotService) GameService {
	return &gameService{
		botService: botService,
	}
}

func (that *gameService) NewGame() *entity.Game {
	return entity.NewGame()
}

func (that *gameService) ParsePosition(notation string) (*entity.Game, error) {
	game, err := entity.ParseNotation(notation)
	if err != nil {
		return nil, fmt.Errorf("failed to parse position: %w", err)
	}
	return game, nil
}

func (that *gameService) IsLegal(game *entity.Game, sub, cell int) bool {
	return !game.IsOver() && game.IndexIsPlayable(sub, cell)
}

func (that *gameService) LegalMoves(game *entity.Game) []entity.Move {
	return ai.LegalMoves(game)
}

// ApplyMove returns the position after the move; game itself is left untouched.
func (that *gameService) ApplyMove(game *entity.Game, sub, cell int) (*entity.Game, error) {
	next := *game
	if err := next.Play(sub, cell); err != nil {
		return nil, fmt.Errorf("failed to apply move: %w", err)
	}
	return &next, nil
}

func (that *gameService) ChooseAIMove(game *entity.Game, level ai.Level) (*entity.Game, error) {
	next := *game
	if err := that.botService.MakeTurn(&next, level); err != nil {
		return nil, fmt.Errorf("failed to choose ai move: %w", err)
	}
	return &next, nil
}

func (that *gameService) IsTerminal(game *entity.Game) bool {
	return game.IsOver()
}

func (that *gameService) Winner(game *entity.Game) (entity.Player, bool) {
	return game.Winner()
}

func (that *gameService) IsTie(game *entity.Game) bool {
	return game.IsTie()
}
