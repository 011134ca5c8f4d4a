package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		setEnv       bool
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			setEnv:       true,
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable not set",
			key:          "TEST_KEY_NOT_SET",
			defaultValue: "default",
			setEnv:       false,
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				os.Setenv(tt.key, tt.envValue)
				defer os.Unsetenv(tt.key)
			}

			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "testuser",
			Password: "testpass",
			Name:     "testdb",
		},
	}

	dsn := cfg.DSN()
	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	assert.Equal(t, expected, dsn)
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"BOT_TOKEN", "OWNER_CHAT_ID", "TRANSLATE_API_URL", "TRANSLATE_API_KEY",
		"STORAGE_BACKEND", "WORDS_FILE",
		"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_PASSWORD",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_MissingBotToken(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "BOT_TOKEN")
}

func TestLoad_MissingOwnerChatID(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("BOT_TOKEN", "test_token")

	cfg, err := Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "OWNER_CHAT_ID")
}

func TestLoad_InvalidOwnerChatID(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("OWNER_CHAT_ID", "not-a-number")

	cfg, err := Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "OWNER_CHAT_ID")
}

func TestLoad_WithDefaults(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("OWNER_CHAT_ID", "123456789")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Equal(t, "test_token", cfg.BotToken)
	assert.Equal(t, int64(123456789), cfg.OwnerChatID)
	assert.Equal(t, "https://libretranslate.com/translate", cfg.TranslateAPIURL)
	assert.Equal(t, BackendFile, cfg.StorageBackend)
	assert.Equal(t, "words.json", cfg.WordsFile)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "flashcarder", cfg.Database.Name)
	assert.Equal(t, "flashcarder", cfg.Database.User)
}

func TestLoad_PostgresBackendRequiresPassword(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("OWNER_CHAT_ID", "123456789")
	t.Setenv("STORAGE_BACKEND", BackendPostgres)

	cfg, err := Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "DB_PASSWORD")

	t.Setenv("DB_PASSWORD", "secret")

	cfg, err = Load()

	assert.NoError(t, err)
	assert.Equal(t, BackendPostgres, cfg.StorageBackend)
}

func TestLoad_UnknownBackend(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("OWNER_CHAT_ID", "123456789")
	t.Setenv("STORAGE_BACKEND", "redis")

	cfg, err := Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "STORAGE_BACKEND")
}
