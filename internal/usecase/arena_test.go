package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/ai"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	errSearchFailed = errors.New("search failed")
	errRedisDown    = errors.New("redis down")
)

type memoryResultRepo struct {
	mu      sync.Mutex
	results map[string]*entity.ArenaResult
	saveErr error
}

func newMemoryResultRepo() *memoryResultRepo {
	return &memoryResultRepo{results: make(map[string]*entity.ArenaResult)}
}

func (that *memoryResultRepo) Save(_ context.Context, result *entity.ArenaResult) error {
	if that.saveErr != nil {
		return that.saveErr
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.results[result.ID] = result

	return nil
}

func (that *memoryResultRepo) GetByID(_ context.Context, id string) (*entity.ArenaResult, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	result, ok := that.results[id]
	if !ok {
		return nil, apperror.ErrResultNotFound
	}

	return result, nil
}

func (that *memoryResultRepo) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.results[id]; !ok {
		return apperror.ErrResultNotFound
	}

	delete(that.results, id)

	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func shallowSelector() *ai.Selector {
	return ai.NewSelector(testLogger(), map[ai.Level]ai.Profile{
		ai.LevelEasy:   {Depth: 1, Heuristic: ai.CornerHeuristic},
		ai.LevelMedium: {Depth: 1, Heuristic: ai.CenterHeuristic},
		ai.LevelHard:   {Depth: 1, Heuristic: ai.EverywhereHeuristic},
	}, ai.ZeroNoise{})
}

func TestArena_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("Plays every game and saves the tally", func(t *testing.T) {
		// Given: an arena over a deterministic selector
		repo := newMemoryResultRepo()
		arena := NewArena(testLogger(), shallowSelector(), repo)

		// When: running four fights two at a time
		result, err := arena.Run(ctx, ArenaRequest{
			XLevel:   ai.LevelHard,
			OLevel:   ai.LevelEasy,
			Games:    4,
			Parallel: 2,
		})

		// Then: every game is counted once and the result is stored
		require.NoError(t, err)
		assert.Equal(t, 4, result.Games)
		assert.Equal(t, 4, result.XWins+result.OWins+result.Ties)
		assert.Equal(t, "hard", result.XLevel)
		assert.Equal(t, "easy", result.OLevel)
		assert.False(t, result.FinishedAt.Before(result.StartedAt))

		_, err = uuid.Parse(result.ID)
		require.NoError(t, err)

		stored, err := arena.GetResult(ctx, result.ID)
		require.NoError(t, err)
		assert.Equal(t, result, stored)
	})

	t.Run("Identical fights without noise", func(t *testing.T) {
		// Given: no noise, so every fight replays the same game
		arena := NewArena(testLogger(), shallowSelector(), newMemoryResultRepo())

		// When: running three fights
		result, err := arena.Run(ctx, ArenaRequest{XLevel: ai.LevelMedium, OLevel: ai.LevelMedium, Games: 3, Parallel: 3})

		// Then: all three land in the same column
		require.NoError(t, err)
		assert.Contains(t, []int{result.XWins, result.OWins, result.Ties}, 3)
	})

	t.Run("Each side plays its own level", func(t *testing.T) {
		// Given: a chooser that records who asked for which level
		var mu sync.Mutex
		levels := map[entity.Player]map[ai.Level]bool{entity.PlayerX: {}, entity.PlayerO: {}}
		chooser := ai.ChooserFunc(func(node *entity.Game, level ai.Level) (*entity.Game, error) {
			mu.Lock()
			levels[node.Player][level] = true
			mu.Unlock()

			return shallowSelector().ChooseMove(node, level)
		})
		arena := NewArena(testLogger(), chooser, newMemoryResultRepo())

		// When: X plays easy against O on hard
		_, err := arena.Run(ctx, ArenaRequest{XLevel: ai.LevelEasy, OLevel: ai.LevelHard, Games: 1})

		// Then: neither side borrowed the other's level
		require.NoError(t, err)
		assert.Equal(t, map[ai.Level]bool{ai.LevelEasy: true}, levels[entity.PlayerX])
		assert.Equal(t, map[ai.Level]bool{ai.LevelHard: true}, levels[entity.PlayerO])
	})

	t.Run("Rejects an empty series", func(t *testing.T) {
		arena := NewArena(testLogger(), shallowSelector(), newMemoryResultRepo())

		_, err := arena.Run(ctx, ArenaRequest{XLevel: ai.LevelEasy, OLevel: ai.LevelEasy})

		require.ErrorIs(t, err, ErrInvalidArenaRequest)
	})

	t.Run("Chooser errors stop the arena", func(t *testing.T) {
		// Given: a chooser that fails
		repo := newMemoryResultRepo()
		arena := NewArena(testLogger(), ai.ChooserFunc(func(*entity.Game, ai.Level) (*entity.Game, error) {
			return nil, errSearchFailed
		}), repo)

		// When: running the arena
		_, err := arena.Run(ctx, ArenaRequest{XLevel: ai.LevelEasy, OLevel: ai.LevelEasy, Games: 5, Parallel: 2})

		// Then: the error surfaces and nothing is saved
		require.ErrorIs(t, err, errSearchFailed)
		assert.Empty(t, repo.results)
	})

	t.Run("Cancelled context", func(t *testing.T) {
		repo := newMemoryResultRepo()
		arena := NewArena(testLogger(), shallowSelector(), repo)
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := arena.Run(cancelled, ArenaRequest{XLevel: ai.LevelEasy, OLevel: ai.LevelEasy, Games: 2})

		require.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, repo.results)
	})

	t.Run("Save failure", func(t *testing.T) {
		repo := newMemoryResultRepo()
		repo.saveErr = errRedisDown
		arena := NewArena(testLogger(), shallowSelector(), repo)

		_, err := arena.Run(ctx, ArenaRequest{XLevel: ai.LevelEasy, OLevel: ai.LevelEasy, Games: 1})

		require.ErrorIs(t, err, errRedisDown)
	})
}

func TestArena_GetResult(t *testing.T) {
	arena := NewArena(testLogger(), shallowSelector(), newMemoryResultRepo())

	_, err := arena.GetResult(context.Background(), "missing")

	require.ErrorIs(t, err, apperror.ErrResultNotFound)
}

func TestArena_DeleteResult(t *testing.T) {
	ctx := context.Background()

	t.Run("Removes a stored result", func(t *testing.T) {
		// Given: a finished series
		arena := NewArena(testLogger(), shallowSelector(), newMemoryResultRepo())
		result, err := arena.Run(ctx, ArenaRequest{XLevel: ai.LevelEasy, OLevel: ai.LevelEasy, Games: 1})
		require.NoError(t, err)

		// When: deleting it
		err = arena.DeleteResult(ctx, result.ID)

		// Then: it can no longer be read
		require.NoError(t, err)
		_, err = arena.GetResult(ctx, result.ID)
		require.ErrorIs(t, err, apperror.ErrResultNotFound)
	})

	t.Run("Unknown result", func(t *testing.T) {
		arena := NewArena(testLogger(), shallowSelector(), newMemoryResultRepo())

		err := arena.DeleteResult(ctx, "missing")

		require.ErrorIs(t, err, apperror.ErrResultNotFound)
	})
}
