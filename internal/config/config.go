package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken string
	Database DatabaseConfig
	Bot      BotConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// BotConfig holds polling and dialog settings
type BotConfig struct {
	PollTimeout            time.Duration
	RetryDelay             time.Duration
	SessionTTL             time.Duration
	VerificationCodeLength int
	VerificationCodeTTL    time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	pollTimeout, err := getEnvInt("POLL_TIMEOUT", 60)
	if err != nil {
		return nil, err
	}
	retryDelay, err := getEnvInt("RETRY_DELAY", 1)
	if err != nil {
		return nil, err
	}
	sessionTTL, err := getEnvInt("SESSION_TTL", 30)
	if err != nil {
		return nil, err
	}
	codeLength, err := getEnvInt("VERIFICATION_CODE_LENGTH", 12)
	if err != nil {
		return nil, err
	}
	codeTTL, err := getEnvInt("VERIFICATION_CODE_TTL", 24)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		BotToken: os.Getenv("BOT_TOKEN"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "goalbot"),
			User:     getEnv("DB_USER", "goalbot"),
			Password: os.Getenv("DB_PASSWORD"),
		},
		Bot: BotConfig{
			PollTimeout:            time.Duration(pollTimeout) * time.Second,
			RetryDelay:             time.Duration(retryDelay) * time.Second,
			SessionTTL:             time.Duration(sessionTTL) * time.Minute,
			VerificationCodeLength: codeLength,
			VerificationCodeTTL:    time.Duration(codeTTL) * time.Hour,
		},
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}
	if pollTimeout < 1 {
		return nil, fmt.Errorf("POLL_TIMEOUT must be positive, got %d", pollTimeout)
	}
	if retryDelay < 1 {
		return nil, fmt.Errorf("RETRY_DELAY must be positive, got %d", retryDelay)
	}
	if sessionTTL < 0 {
		return nil, fmt.Errorf("SESSION_TTL must not be negative, got %d", sessionTTL)
	}
	if codeTTL < 1 {
		return nil, fmt.Errorf("VERIFICATION_CODE_TTL must be positive, got %d", codeTTL)
	}
	if codeLength < 6 || codeLength > 32 {
		return nil, fmt.Errorf("VERIFICATION_CODE_LENGTH must be between 6 and 32, got %d", codeLength)
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

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}
