package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/ai"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

var ErrInvalidArenaRequest = errors.New("invalid arena request")

type resultRepo interface {
	Save(ctx context.Context, result *entity.ArenaResult) error
	GetByID(ctx context.Context, id string) (*entity.ArenaResult, error)
	DeleteByID(ctx context.Context, id string) error
}

type ArenaRequest struct {
	XLevel   ai.Level
	OLevel   ai.Level
	Games    int
	Parallel int
}

// Arena plays machine-vs-machine series and keeps their tallies.
type Arena struct {
	logger     *slog.Logger
	chooser    ai.Chooser
	resultRepo resultRepo
}

func NewArena(logger *slog.Logger, chooser ai.Chooser, resultRepo resultRepo) *Arena {
	return &Arena{
		logger: logger.With("component", "arena"),

		chooser:    chooser,
		resultRepo: resultRepo,
	}
}

// Run plays request.Games games, at most request.Parallel at a time. The
// chooser is shared between fights and must be safe for concurrent use.
func (that *Arena) Run(ctx context.Context, request ArenaRequest) (*entity.ArenaResult, error) {
	log := that.logger.With("method", "Run")

	if request.Games <= 0 {
		return nil, fmt.Errorf("%w: games must be positive, got %d", ErrInvalidArenaRequest, request.Games)
	}

	startedAt := time.Now().UTC()
	outcomes := make([]entity.PlayingState, request.Games)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(max(request.Parallel, 1))

	for fight := range request.Games {
		if groupCtx.Err() != nil {
			break
		}

		group.Go(func() error {
			outcome, err := that.fight(groupCtx, request.XLevel, request.OLevel)
			if err != nil {
				return fmt.Errorf("fight %d: %w", fight, err)
			}

			outcomes[fight] = outcome
			log.Debug("fight finished", "fight", fight, "outcome", outcome.String())

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("arena stopped: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("arena stopped: %w", err)
	}

	result := &entity.ArenaResult{
		ID:         uuid.NewString(),
		XLevel:     request.XLevel.String(),
		OLevel:     request.OLevel.String(),
		Games:      request.Games,
		XWins:      lo.CountBy(outcomes, wonBy(entity.PlayerX)),
		OWins:      lo.CountBy(outcomes, wonBy(entity.PlayerO)),
		Ties:       lo.CountBy(outcomes, entity.PlayingState.IsTie),
		StartedAt:  startedAt,
		FinishedAt: time.Now().UTC(),
	}

	if err := that.resultRepo.Save(ctx, result); err != nil {
		return nil, fmt.Errorf("failed to save arena result: %w", err)
	}

	log.Info("arena finished",
		"id", result.ID,
		"x_level", result.XLevel,
		"o_level", result.OLevel,
		"games", result.Games,
		"x_wins", result.XWins,
		"o_wins", result.OWins,
		"ties", result.Ties,
	)

	return result, nil
}

func (that *Arena) GetResult(ctx context.Context, id string) (*entity.ArenaResult, error) {
	result, err := that.resultRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get arena result: %w", err)
	}

	return result, nil
}

func (that *Arena) DeleteResult(ctx context.Context, id string) error {
	if err := that.resultRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete arena result: %w", err)
	}

	that.logger.Info("arena result deleted", "method", "DeleteResult", "id", id)

	return nil
}

func (that *Arena) fight(ctx context.Context, xLevel, oLevel ai.Level) (entity.PlayingState, error) {
	game := entity.NewGame()

	for !game.IsOver() {
		if err := ctx.Err(); err != nil {
			return entity.Continue, err
		}

		level := xLevel
		if game.Player == entity.PlayerO {
			level = oLevel
		}

		next, err := that.chooser.ChooseMove(game, level)
		if err != nil {
			return entity.Continue, fmt.Errorf("%s failed to move: %w", game.Player, err)
		}

		game = next
	}

	return game.State, nil
}

func wonBy(player entity.Player) func(entity.PlayingState) bool {
	return func(state entity.PlayingState) bool {
		winner, ok := state.Winner()
		return ok && winner == player
	}
}
