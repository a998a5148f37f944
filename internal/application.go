package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/ai"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/config"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/repository"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/repository/storage"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/service"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/usecase"
	"github.com/rocketscienceinc/ultimate-tictactoe/transport/rest"
)

var (
	ErrAddrNotFound = errors.New("redis address string is empty")
	ErrUnknownMode  = errors.New("unknown mode")
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	selector := ai.NewSelector(logger, ai.DefaultProfiles(), ai.NewRandomNoise(conf.Engine.NoiseSeed))

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	arena := usecase.NewArena(logger, selector, repository.NewArenaRepository(redisStorage.Connection))

	switch conf.Mode {
	case config.ModeServe:
		return runServer(ctx, logger, conf, selector, arena)
	case config.ModeArena:
		return runArena(ctx, logger, conf, arena)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, conf.Mode)
	}
}

func runServer(ctx context.Context, logger *slog.Logger, conf *config.Config, chooser ai.Chooser, arena *usecase.Arena) error {
	log := logger.With("component", "app")

	gameService := service.NewGameService(service.NewBotService(chooser))

	log.Info("Starting HTTP server", "port", conf.HTTPPort)
	if err := rest.Start(ctx, conf.HTTPPort, rest.NewRouter(logger, gameService, arena)); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("HTTP server stopped")

	return nil
}

func runArena(ctx context.Context, logger *slog.Logger, conf *config.Config, arena *usecase.Arena) error {
	log := logger.With("component", "app")

	xLevel, err := ai.ParseLevel(conf.Arena.XLevel)
	if err != nil {
		return fmt.Errorf("arena x-level: %w", err)
	}

	oLevel, err := ai.ParseLevel(conf.Arena.OLevel)
	if err != nil {
		return fmt.Errorf("arena o-level: %w", err)
	}

	result, err := arena.Run(ctx, usecase.ArenaRequest{
		XLevel:   xLevel,
		OLevel:   oLevel,
		Games:    conf.Arena.Games,
		Parallel: conf.Arena.Parallel,
	})
	if err != nil {
		return fmt.Errorf("arena failed: %w", err)
	}

	log.Info("Arena result",
		"id", result.ID,
		"x_win_rate", result.XWinRate(),
		"o_win_rate", result.OWinRate(),
		"tie_rate", result.TieRate(),
	)

	return nil
}
