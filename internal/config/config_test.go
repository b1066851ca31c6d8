package config

import (
	"os"
	"testing"

	"github.com/dts-gxu/CiJingTong/internal/memory"

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

func TestGetEnvInt(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	n, err := getEnvInt("TEST_INT", 7)
	assert.NoError(t, err)
	assert.Equal(t, 42, n)

	n, err = getEnvInt("TEST_INT_NOT_SET", 7)
	assert.NoError(t, err)
	assert.Equal(t, 7, n)

	t.Setenv("TEST_INT_BAD", "many")
	_, err = getEnvInt("TEST_INT_BAD", 7)
	assert.Error(t, err)
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

func setRequiredEnv(t *testing.T) {
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("BOT_PASSWORD", "test_password")
	t.Setenv("DB_PASSWORD", "test_db_password")
}

func TestLoad_MissingRequiredFields(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("BOT_TOKEN", "")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "BOT_TOKEN")
}

func TestLoad_MissingBotPassword(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("BOT_PASSWORD", "")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "BOT_PASSWORD")
}

func TestLoad_MissingDBPassword(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_PASSWORD", "")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "DB_PASSWORD")
}

func TestLoad_WithDefaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_PORT", "")
	t.Setenv("DB_NAME", "")
	t.Setenv("DB_USER", "")
	t.Setenv("GROUP_SIZE", "")
	t.Setenv("DAILY_LIMIT", "")
	t.Setenv("SESSION_LIMIT", "")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Equal(t, "test_token", cfg.BotToken)
	assert.Equal(t, "test_password", cfg.BotPassword)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "cijingtong", cfg.Database.Name)
	assert.Equal(t, "cijingtong", cfg.Database.User)
	assert.Equal(t, 7, cfg.GroupSize)
	assert.Equal(t, memory.DefaultLimits, cfg.Limits)
}

func TestLoad_LimitOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DAILY_LIMIT", "50")
	t.Setenv("SESSION_LIMIT", "25")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, memory.Limits{Daily: 50, Session: 25}, cfg.Limits)
}

func TestLoad_RejectsNonPositiveLimits(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DAILY_LIMIT", "0")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
}
