package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Economy defaults. Overridable per deployment, but the observable
// numeric behavior matches the launched values: users start with 1000
// stars and items sell back at 70% of face value.
const (
	DefaultSellRatio       = 0.7
	DefaultStartingBalance = 1000
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	Version     string

	BotToken string // Telegram bot token; also keys initData verification

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	SellRatio       float64 // Fraction of item price returned on sell
	StartingBalance int64   // Stars granted on first authenticated contact
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", "INFO"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		Environment: getEnv("ENVIRONMENT", "dev"),
		Version:     getEnv("VERSION", "dev"),
		BotToken:    getEnv("BOT_TOKEN", ""),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", "postgres"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBName:      getEnv("DB_NAME", "giftbattle"),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	ratioStr := getEnv("SELL_RATIO", "")
	if ratioStr == "" {
		cfg.SellRatio = DefaultSellRatio
	} else {
		ratio, err := strconv.ParseFloat(ratioStr, 64)
		if err != nil || ratio <= 0 || ratio > 1 {
			return nil, fmt.Errorf("invalid SELL_RATIO value %q", ratioStr)
		}
		cfg.SellRatio = ratio
	}

	balanceStr := getEnv("STARTING_BALANCE", "")
	if balanceStr == "" {
		cfg.StartingBalance = DefaultStartingBalance
	} else {
		balance, err := strconv.ParseInt(balanceStr, 10, 64)
		if err != nil || balance < 0 {
			return nil, fmt.Errorf("invalid STARTING_BALANCE value %q", balanceStr)
		}
		cfg.StartingBalance = balance
	}

	// initData verification is keyed by the bot token; without it every
	// request would be rejected
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN environment variable must be set")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
