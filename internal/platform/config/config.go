package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// BaseCurrencyCode is the code rate snapshots are expressed against.
	BaseCurrencyCode string

	// Rate limiting
	RateLimitEnabled bool
	RateLimitPeriod  string
	RateLimitCount   int64
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("BASE_CURRENCY_CODE", "USD")
	viper.SetDefault("RATE_LIMIT_ENABLED", true)
	viper.SetDefault("RATE_LIMIT_PERIOD", "1m")
	viper.SetDefault("RATE_LIMIT_COUNT", 120)

	// Environment variables override both defaults and .env file values.
	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.BaseCurrencyCode = viper.GetString("BASE_CURRENCY_CODE")
	if cfg.BaseCurrencyCode == "" {
		cfg.BaseCurrencyCode = "USD"
		log.Printf("Warning: BASE_CURRENCY_CODE not set. Defaulting to %s.\n", cfg.BaseCurrencyCode)
	}

	cfg.RateLimitEnabled = viper.GetBool("RATE_LIMIT_ENABLED")
	cfg.RateLimitPeriod = viper.GetString("RATE_LIMIT_PERIOD")
	cfg.RateLimitCount = viper.GetInt64("RATE_LIMIT_COUNT")

	return cfg, nil
}
