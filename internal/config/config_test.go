package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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
				t.Setenv(tt.key, tt.envValue)
			}

			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name          string
		envValue      string
		expected      int
		expectedError bool
	}{
		{name: "unset uses default", envValue: "", expected: 60},
		{name: "valid number", envValue: "15", expected: 15},
		{name: "not a number", envValue: "soon", expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_INT_KEY", tt.envValue)

			n, err := getEnvInt("TEST_INT_KEY", 60)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "TEST_INT_KEY")
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, n)
			}
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

// clearEnv blanks every variable Load reads; t.Setenv restores them afterwards
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"BOT_TOKEN", "DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_PASSWORD",
		"POLL_TIMEOUT", "RETRY_DELAY", "SESSION_TTL",
		"VERIFICATION_CODE_LENGTH", "VERIFICATION_CODE_TTL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_WithDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("DB_PASSWORD", "test_db_password")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test_token", cfg.BotToken)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "goalbot", cfg.Database.Name)
	assert.Equal(t, "goalbot", cfg.Database.User)
	assert.Equal(t, 60*time.Second, cfg.Bot.PollTimeout)
	assert.Equal(t, time.Second, cfg.Bot.RetryDelay)
	assert.Equal(t, 30*time.Minute, cfg.Bot.SessionTTL)
	assert.Equal(t, 12, cfg.Bot.VerificationCodeLength)
	assert.Equal(t, 24*time.Hour, cfg.Bot.VerificationCodeTTL)
}

// SESSION_TTL=0 turns session pruning off
func TestLoad_ZeroSessionTTL(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("DB_PASSWORD", "test_db_password")
	t.Setenv("SESSION_TTL", "0")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Zero(t, cfg.Bot.SessionTTL)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("DB_PASSWORD", "test_db_password")
	t.Setenv("POLL_TIMEOUT", "25")
	t.Setenv("SESSION_TTL", "5")
	t.Setenv("VERIFICATION_CODE_LENGTH", "8")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 25*time.Second, cfg.Bot.PollTimeout)
	assert.Equal(t, 5*time.Minute, cfg.Bot.SessionTTL)
	assert.Equal(t, 8, cfg.Bot.VerificationCodeLength)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		expectedMsg string
	}{
		{
			name:        "missing bot token",
			env:         map[string]string{"DB_PASSWORD": "pw"},
			expectedMsg: "BOT_TOKEN",
		},
		{
			name:        "missing db password",
			env:         map[string]string{"BOT_TOKEN": "token"},
			expectedMsg: "DB_PASSWORD",
		},
		{
			name:        "non-numeric poll timeout",
			env:         map[string]string{"BOT_TOKEN": "token", "DB_PASSWORD": "pw", "POLL_TIMEOUT": "long"},
			expectedMsg: "POLL_TIMEOUT",
		},
		{
			name:        "zero poll timeout",
			env:         map[string]string{"BOT_TOKEN": "token", "DB_PASSWORD": "pw", "POLL_TIMEOUT": "0"},
			expectedMsg: "POLL_TIMEOUT",
		},
		{
			name:        "negative retry delay",
			env:         map[string]string{"BOT_TOKEN": "token", "DB_PASSWORD": "pw", "RETRY_DELAY": "-1"},
			expectedMsg: "RETRY_DELAY",
		},
		{
			name:        "zero retry delay",
			env:         map[string]string{"BOT_TOKEN": "token", "DB_PASSWORD": "pw", "RETRY_DELAY": "0"},
			expectedMsg: "RETRY_DELAY",
		},
		{
			name:        "negative session ttl",
			env:         map[string]string{"BOT_TOKEN": "token", "DB_PASSWORD": "pw", "SESSION_TTL": "-5"},
			expectedMsg: "SESSION_TTL",
		},
		{
			name:        "zero code ttl",
			env:         map[string]string{"BOT_TOKEN": "token", "DB_PASSWORD": "pw", "VERIFICATION_CODE_TTL": "0"},
			expectedMsg: "VERIFICATION_CODE_TTL",
		},
		{
			name:        "negative code ttl",
			env:         map[string]string{"BOT_TOKEN": "token", "DB_PASSWORD": "pw", "VERIFICATION_CODE_TTL": "-24"},
			expectedMsg: "VERIFICATION_CODE_TTL",
		},
		{
			name:        "code too short",
			env:         map[string]string{"BOT_TOKEN": "token", "DB_PASSWORD": "pw", "VERIFICATION_CODE_LENGTH": "4"},
			expectedMsg: "VERIFICATION_CODE_LENGTH",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				os.Setenv(k, v)
			}

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.expectedMsg)
		})
	}
}
