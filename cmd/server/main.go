package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/KirkDiggler/dicesim/internal/common/clock"
	"github.com/KirkDiggler/dicesim/internal/common/logger"
	"github.com/KirkDiggler/dicesim/internal/common/uuid"
	"github.com/KirkDiggler/dicesim/internal/config"
	"github.com/KirkDiggler/dicesim/internal/dice"
	"github.com/KirkDiggler/dicesim/internal/handlers/discord"
	"github.com/KirkDiggler/dicesim/internal/handlers/web"
	"github.com/KirkDiggler/dicesim/internal/repositories/history"
	"github.com/KirkDiggler/dicesim/internal/services/roller"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger, err := logger.New(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	if err := run(cfg, zapLogger); err != nil {
		zapLogger.Fatal("dicesim stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	// Initialize the history repository
	historyRepo, closeHistory, err := newHistoryRepository(cfg)
	if err != nil {
		return err
	}
	defer closeHistory()

	// Initialize the roller service, owned by this process for its lifetime
	rollerSvc, err := roller.New(&roller.Config{
		HistoryRepo:   historyRepo,
		DiceRoller:    dice.New(&dice.Config{Seed: cfg.DiceSeed}),
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
		Logger:        logger,
		RecentLimit:   cfg.History.Recent,
	})
	if err != nil {
		return fmt.Errorf("failed to create roller service: %w", err)
	}

	server, err := web.New(&web.Config{
		Addr:          cfg.HTTPAddr,
		HistoryLimit:  cfg.History.Recent,
		RollerService: rollerSvc,
		Logger:        logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create web server: %w", err)
	}

	if err := server.Start(); err != nil {
		return err
	}

	var bot *discord.Bot
	if cfg.Discord.Enabled() {
		bot, err = discord.New(&discord.Config{
			Token:         cfg.Discord.Token,
			ApplicationID: cfg.Discord.ApplicationID,
			GuildID:       cfg.Discord.GuildID,
			RollerService: rollerSvc,
			Logger:        logger,
		})
		if err != nil {
			return fmt.Errorf("failed to create Discord bot: %w", err)
		}

		if err := bot.Start(); err != nil {
			return fmt.Errorf("failed to start Discord bot: %w", err)
		}
	}

	logger.Info("dicesim started",
		zap.String("addr", server.Addr()),
		zap.String("history_backend", cfg.History.Backend),
		zap.Bool("discord", bot != nil),
	)

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	logger.Info("shutting down")

	if bot != nil {
		if err := bot.Stop(); err != nil {
			logger.Warn("error stopping Discord bot", zap.Error(err))
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	return server.Stop(ctx)
}

// newHistoryRepository builds the configured history backend and a func that
// releases it
func newHistoryRepository(cfg *config.Config) (history.Repository, func(), error) {
	switch cfg.History.Backend {
	case config.HistoryBackendRedis:
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		// Test Redis connection
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			redisClient.Close()
			return nil, nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}

		repo, err := history.NewRedis(&history.Config{
			RedisClient: redisClient,
			Key:         cfg.History.Key,
			Capacity:    cfg.History.Capacity,
		})
		if err != nil {
			redisClient.Close()
			return nil, nil, fmt.Errorf("failed to create history repository: %w", err)
		}

		return repo, func() { _ = redisClient.Close() }, nil
	default:
		repo, err := history.NewMemory(&history.MemoryConfig{
			Capacity: cfg.History.Capacity,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create history repository: %w", err)
		}

		return repo, func() {}, nil
	}
}
