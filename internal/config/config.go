package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Storage backend names accepted in STORAGE_BACKEND
const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
)

// Config holds all application configuration
type Config struct {
	BotToken    string
	OwnerChatID int64

	TranslateAPIURL string
	TranslateAPIKey string

	StorageBackend string
	WordsFile      string
	Database       DatabaseConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:        os.Getenv("BOT_TOKEN"),
		TranslateAPIURL: getEnv("TRANSLATE_API_URL", "https://libretranslate.com/translate"),
		TranslateAPIKey: os.Getenv("TRANSLATE_API_KEY"),
		StorageBackend:  getEnv("STORAGE_BACKEND", BackendFile),
		WordsFile:       getEnv("WORDS_FILE", "words.json"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "flashcarder"),
			User:     getEnv("DB_USER", "flashcarder"),
			Password: os.Getenv("DB_PASSWORD"),
		},
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}

	ownerStr := os.Getenv("OWNER_CHAT_ID")
	if ownerStr == "" {
		return nil, fmt.Errorf("OWNER_CHAT_ID is required")
	}
	ownerID, err := strconv.ParseInt(ownerStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("OWNER_CHAT_ID must be a numeric chat id: %w", err)
	}
	cfg.OwnerChatID = ownerID

	switch cfg.StorageBackend {
	case BackendFile:
		// No further settings needed
	case BackendPostgres:
		if cfg.Database.Password == "" {
			return nil, fmt.Errorf("DB_PASSWORD is required for the postgres backend")
		}
	default:
		return nil, fmt.Errorf("STORAGE_BACKEND must be %q or %q, got %q",
			BackendFile, BackendPostgres, cfg.StorageBackend)
	}

	return cfg, nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
