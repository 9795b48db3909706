package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/config"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/pkg/random"
	"github.com/rocketscienceinc/tictactoe/internal/repository"
	"github.com/rocketscienceinc/tictactoe/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe/internal/transport/terminal"
	"github.com/rocketscienceinc/tictactoe/internal/usecase"
)

// RunApp - runs the interactive game until the player quits or a signal arrives.
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

	mode, err := entity.ParseMode(conf.Mode)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	scoreRepo, closeRepo, err := OpenScoreRepository(ctx, logger, conf)
	if err != nil {
		return err
	}
	defer closeRepo()

	scoreKeeper := usecase.NewScoreKeeper(logger, scoreRepo)
	scoreKeeper.Load(ctx)

	gameEngine := tictactoe.NewGameEngine(logger, scoreKeeper, random.New())
	gameEngine.SetMode(mode)

	renderer := terminal.NewRenderer(out, scoreKeeper, !color.NoColor)
	gameEngine.Subscribe(renderer)

	log.Info("Starting game session", "mode", mode, "storage", conf.Storage.Driver)
	session := terminal.NewSession(logger, gameEngine, scoreKeeper, renderer, out, conf.ComputerDelay)
	if err = session.Run(ctx, in); err != nil {
		return fmt.Errorf("game session failed: %w", err)
	}

	log.Info("Game session finished")

	return nil
}

// ShowScores - prints the stored tally without starting a game.
func ShowScores(ctx context.Context, logger *slog.Logger, conf *config.Config, out io.Writer) error {
	scoreRepo, closeRepo, err := OpenScoreRepository(ctx, logger, conf)
	if err != nil {
		return err
	}
	defer closeRepo()

	tally := usecase.NewScoreKeeper(logger, scoreRepo).Load(ctx)
	_, err = fmt.Fprintf(out, "X: %d\nO: %d\nTies: %d\n", tally.X, tally.O, tally.Ties)

	return err
}

// ClearScores - removes the stored tally.
func ClearScores(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	scoreRepo, closeRepo, err := OpenScoreRepository(ctx, logger, conf)
	if err != nil {
		return err
	}
	defer closeRepo()

	return usecase.NewScoreKeeper(logger, scoreRepo).Clear(ctx)
}

// OpenScoreRepository - builds the repository for the configured storage driver.
// The returned func releases its connection and is never nil.
func OpenScoreRepository(ctx context.Context, logger *slog.Logger, conf *config.Config) (repository.ScoreRepository, func(), error) {
	log := logger.With("component", "app")

	switch conf.Storage.Driver {
	case config.DriverRedis:
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return nil, func() {}, apperror.ErrAddrNotFound
		}

		redisStorage, err := storage.New(ctx, redisAddrString)
		if err != nil {
			return nil, func() {}, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		closeRedis := func() {
			if err := redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}

		return repository.NewRedisScoreRepository(redisStorage, conf.Storage.Key), closeRedis, nil
	case config.DriverFile:
		path := conf.Storage.File
		if path == "" {
			var err error
			if path, err = repository.DefaultScoresFile(); err != nil {
				return nil, func() {}, err
			}
		}
		log.Debug("using scores file", "path", path)

		return repository.NewFileScoreRepository(path, conf.Storage.Key), func() {}, nil
	case config.DriverMemory:
		return repository.NewMemoryScoreRepository(conf.Storage.Key), func() {}, nil
	default:
		return nil, func() {}, fmt.Errorf("%w: %q", apperror.ErrUnknownStorageDriver, conf.Storage.Driver)
	}
}
