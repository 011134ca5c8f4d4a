package main

import (
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flashcarder/internal/config"
	"flashcarder/internal/domain"
	"flashcarder/internal/handler"
	"flashcarder/internal/middleware"
	"flashcarder/internal/service"
	"flashcarder/internal/storage"
	filestorage "flashcarder/internal/storage/file"
	pgstorage "flashcarder/internal/storage/postgres"
	"flashcarder/internal/translator"

	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Flashcarder Bot")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully",
		zap.String("storage_backend", cfg.StorageBackend),
	)

	// Set up the persistence slot
	wordStorage, cleanup, err := buildStorage(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to set up storage", zap.Error(err))
	}
	defer cleanup()

	// Initialize the word store; missing or corrupt data degrades to empty
	store := service.NewWordStore(wordStorage, logger)
	store.Init()

	store.Subscribe(func(words []domain.Word) {
		logger.Info("Word collection updated", zap.Int("count", len(words)))
	})

	// Translation gateway
	trans := translator.NewClient(cfg.TranslateAPIURL, cfg.TranslateAPIKey)

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized")

	bot.Use(middleware.OwnerOnly(cfg.OwnerChatID, logger))

	// Initialize handler
	h := handler.NewHandler(bot, store, trans, logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	bot.Stop()

	logger.Info("Bot stopped gracefully")
}

// buildStorage creates the configured persistence backend. The returned
// cleanup closes whatever the backend holds open.
func buildStorage(cfg *config.Config, logger *zap.Logger) (storage.WordStorage, func(), error) {
	switch cfg.StorageBackend {
	case config.BackendFile:
		logger.Info("Using file storage", zap.String("path", cfg.WordsFile))
		return filestorage.New(cfg.WordsFile), func() {}, nil

	case config.BackendPostgres:
		db, err := connectDatabase(cfg.DSN(), logger)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to database: %w", err)
		}

		if err := runMigrations(db, logger); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("run migrations: %w", err)
		}

		logger.Info("Using postgres storage")
		return pgstorage.NewSlotStorage(db), func() { db.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend: %s", cfg.StorageBackend)
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

		// Test connection
		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			time.Sleep(retryDelay)
			continue
		}

		// Connection successful
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)

		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB, logger *zap.Logger) error {
	driver, err := postgresdb.WithInstance(db, &postgresdb.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Database migrations completed")

	return nil
}
