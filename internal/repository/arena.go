package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
)

const arenaKeyPrefix = "arena:"

type ArenaRepository interface {
	Save(ctx context.Context, result *entity.ArenaResult) error
	GetByID(ctx context.Context, id string) (*entity.ArenaResult, error)
	DeleteByID(ctx context.Context, id string) error
}

type dbArena struct {
	client *redis.Client
}

func NewArenaRepository(client *redis.Client) ArenaRepository {
	return &dbArena{
		client: client,
	}
}

func (that *dbArena) Save(ctx context.Context, result *entity.ArenaResult) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal arena result: %w", err)
	}

	if err = that.client.Set(ctx, arenaKeyPrefix+result.ID, resultJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set arena result: %w", err)
	}

	return nil
}

func (that *dbArena) GetByID(ctx context.Context, id string) (*entity.ArenaResult, error) {
	response, err := that.client.Get(ctx, arenaKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrResultNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get arena result %s: %w", id, err)
	}

	var result entity.ArenaResult
	if err = json.Unmarshal(response, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal arena result: %w", err)
	}

	return &result, nil
}

// DeleteByID returns ErrResultNotFound when nothing was stored under id.
func (that *dbArena) DeleteByID(ctx context.Context, id string) error {
	deleted, err := that.client.Del(ctx, arenaKeyPrefix+id).Result()
	if err != nil {
		return fmt.Errorf("failed to delete arena result %s: %w", id, err)
	}

	if deleted == 0 {
		return apperror.ErrResultNotFound
	}

	return nil
}
