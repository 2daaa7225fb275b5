package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"goalbot/internal/bot"
	"goalbot/internal/config"
	"goalbot/internal/handler"
	"goalbot/internal/repository/postgres"
	"goalbot/internal/service"
	"goalbot/internal/transport/telegram"

	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Goal Bot")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully",
		zap.Duration("poll_timeout", cfg.Bot.PollTimeout),
		zap.Duration("session_ttl", cfg.Bot.SessionTTL),
	)

	// Connect to database with retries
	db, err := connectDatabase(cfg.DSN(), logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connection established")

	if err := runMigrations(db, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize repositories
	userRepo := postgres.NewBotUserRepo(db)
	goalRepo := postgres.NewGoalRepo(db)

	// Initialize services
	identityService := service.NewIdentityService(userRepo, cfg.Bot.VerificationCodeLength, logger)
	goalService := service.NewGoalService(goalRepo)
	maintenanceService := service.NewMaintenanceService(userRepo, cfg.Bot.VerificationCodeTTL, logger)

	client, err := telegram.NewClient(cfg.BotToken, cfg.Bot.PollTimeout, logger)
	if err != nil {
		logger.Fatal("Failed to create telegram client", zap.Error(err))
	}

	logger.Info("Telegram client initialized")

	h := handler.NewHandler(identityService, goalService, logger)
	engine := bot.NewEngine(client, identityService, h, handler.NewSessionStore(), logger, bot.Options{
		RetryDelay: cfg.Bot.RetryDelay,
		SessionTTL: cfg.Bot.SessionTTL,
	})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go runCleanupJob(ctx, maintenanceService, logger)

	done := make(chan error, 1)
	go func() {
		logger.Info("Bot started successfully")
		done <- engine.Run(ctx)
	}()

	<-ctx.Done()
	logger.Info("Shutdown signal received, stopping bot...")

	// getUpdates is not cancellable, so the engine may still be inside a long poll
	select {
	case err := <-done:
		if err != nil {
			logger.Error("Bot stopped with error", zap.Error(err))
			return
		}
		logger.Info("Bot stopped gracefully")
	case <-time.After(10 * time.Second):
		logger.Warn("Bot did not stop in time")
	}
}

// connectDatabase connects to PostgreSQL with retries
func connectDatabase(dsn string, logger *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(retryDelay)
			continue
		}

		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			time.Sleep(retryDelay)
			continue
		}

		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(2)
		db.SetConnMaxLifetime(5 * time.Minute)

		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// runMigrations applies pending migrations from ./migrations
func runMigrations(db *sql.DB, logger *zap.Logger) error {
	driver, err := postgresdb.WithInstance(db, &postgresdb.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	err = m.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		logger.Info("No new migrations to apply")
	case err != nil:
		return fmt.Errorf("failed to run migrations: %w", err)
	default:
		logger.Info("Migrations applied successfully")
	}

	return nil
}

// runCleanupJob clears expired verification codes at startup and then daily
func runCleanupJob(ctx context.Context, maintenance *service.MaintenanceService, logger *zap.Logger) {
	if err := maintenance.CleanupStaleCodes(ctx); err != nil {
		logger.Error("Failed to run initial cleanup", zap.Error(err))
	}

	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Cleanup job stopped")
			return
		case <-ticker.C:
			logger.Info("Running scheduled cleanup")
			if err := maintenance.CleanupStaleCodes(ctx); err != nil {
				logger.Error("Failed to run scheduled cleanup", zap.Error(err))
			}
		}
	}
}
