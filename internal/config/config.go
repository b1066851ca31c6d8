package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/dts-gxu/CiJingTong/internal/memory"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken    string
	BotPassword string
	GroupSize   int
	Limits      memory.Limits
	Database    DatabaseConfig
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

	groupSize, err := getEnvInt("GROUP_SIZE", 7)
	if err != nil {
		return nil, err
	}
	daily, err := getEnvInt("DAILY_LIMIT", memory.DefaultLimits.Daily)
	if err != nil {
		return nil, err
	}
	session, err := getEnvInt("SESSION_LIMIT", memory.DefaultLimits.Session)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		BotToken:    os.Getenv("BOT_TOKEN"),
		BotPassword: os.Getenv("BOT_PASSWORD"),
		GroupSize:   groupSize,
		Limits:      memory.Limits{Daily: daily, Session: session},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "cijingtong"),
			User:     getEnv("DB_USER", "cijingtong"),
			Password: os.Getenv("DB_PASSWORD"),
		},
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.BotPassword == "" {
		return nil, fmt.Errorf("BOT_PASSWORD is required")
	}
	if cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}
	if cfg.GroupSize <= 0 {
		return nil, fmt.Errorf("GROUP_SIZE must be positive")
	}
	if cfg.Limits.Daily <= 0 || cfg.Limits.Session <= 0 {
		return nil, fmt.Errorf("DAILY_LIMIT and SESSION_LIMIT must be positive")
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
