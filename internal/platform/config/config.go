package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	SQLitePath   string
	Port         string
	IsProduction bool

	// BusinessTimezone decides which calendar day "today" is; the till lives
	// on this clock, not the server's.
	BusinessTimezone string

	// Elevation token config
	ElevationTokenSecret string
	ElevationTokenExpiry time.Duration
	ElevationTokenIssuer string

	// RolloverCheckInterval is how often the watcher polls for a date change.
	RolloverCheckInterval time.Duration

	// Rate limit for the PIN endpoints, e.g. "5-M" (5 per minute).
	PINRateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("SQLITE_PATH", "fin.db")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("BUSINESS_TIMEZONE", "Asia/Kolkata")
	viper.SetDefault("ELEVATION_TOKEN_SECRET", "insecure-elevation-secret-change-me")
	viper.SetDefault("ELEVATION_TOKEN_EXPIRY", "30m")
	viper.SetDefault("ELEVATION_TOKEN_ISSUER", "fin-backend")
	viper.SetDefault("ROLLOVER_CHECK_INTERVAL", "1m")
	viper.SetDefault("PIN_RATE_LIMIT", "5-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.SQLitePath = viper.GetString("SQLITE_PATH")
	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.BusinessTimezone = viper.GetString("BUSINESS_TIMEZONE")
	cfg.PINRateLimit = viper.GetString("PIN_RATE_LIMIT")

	cfg.ElevationTokenSecret = viper.GetString("ELEVATION_TOKEN_SECRET")
	if cfg.ElevationTokenSecret == "insecure-elevation-secret-change-me" {
		log.Println("Warning: ELEVATION_TOKEN_SECRET not set. Using default insecure key.")
	}

	expiryStr := viper.GetString("ELEVATION_TOKEN_EXPIRY")
	expiry, err := time.ParseDuration(expiryStr)
	if err != nil {
		expiry = 30 * time.Minute
		log.Printf("Warning: Invalid value for ELEVATION_TOKEN_EXPIRY ('%s'). Defaulting to %s.\n", expiryStr, expiry)
	}
	cfg.ElevationTokenExpiry = expiry

	cfg.ElevationTokenIssuer = viper.GetString("ELEVATION_TOKEN_ISSUER")

	intervalStr := viper.GetString("ROLLOVER_CHECK_INTERVAL")
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		interval = time.Minute
		log.Printf("Warning: Invalid value for ROLLOVER_CHECK_INTERVAL ('%s'). Defaulting to %s.\n", intervalStr, interval)
	}
	cfg.RolloverCheckInterval = interval

	return cfg, nil
}
