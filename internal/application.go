package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/gridgames/internal/apperror"
	"github.com/rocketscienceinc/gridgames/internal/config"
	"github.com/rocketscienceinc/gridgames/internal/game"
	"github.com/rocketscienceinc/gridgames/internal/render"
	"github.com/rocketscienceinc/gridgames/internal/repository"
	"github.com/rocketscienceinc/gridgames/internal/repository/storage"
	"github.com/rocketscienceinc/gridgames/internal/usecase"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the console game on in/out until the players quit or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	variant, err := game.VariantByName(conf.Game)
	if err != nil {
		return fmt.Errorf("could not select game: %w", err)
	}

	gameRepo, closeRepo, err := newGameRepository(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeRepo()

	gameManager := usecase.NewGameManager(logger, gameRepo, render.New(!conf.NoColor), variant)

	// run the game loop
	loopErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting game", "game", variant.Name, "storage", conf.Storage.Driver)
		loopErrCh <- gameManager.Run(ctx, in, out)
	}()

	select {
	case err = <-loopErrCh:
		if errors.Is(err, apperror.ErrInputClosed) {
			log.Info("Input closed, shutting down")
			return nil
		}

		if err != nil {
			return fmt.Errorf("game loop error: %w", err)
		}

		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

func newGameRepository(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.GameRepository, func(), error) {
	if conf.Storage.Driver != config.StorageRedis {
		return repository.NewMemoryGameRepository(), func() {}, nil
	}

	redisAddrString := conf.Storage.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return nil, nil, ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeStorage := func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	return repository.NewGameRepository(redisStorage.Connection), closeStorage, nil
}
