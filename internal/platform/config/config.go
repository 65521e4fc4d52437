package config

import (
	"fmt"
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Record stores the service can run on.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// Config holds application configuration.
type Config struct {
	Port            string
	IsProduction    bool
	LogLevel        slog.Level
	ShutdownTimeout time.Duration

	StoreDriver   string
	DatabaseURL   string
	RunMigrations bool

	JWTSecret string
	JWTIssuer string

	RateLimit          string // ulule formatted rate, e.g. "100-M"
	CORSAllowedOrigins []string

	PosthogAPIKey   string
	PosthogEndpoint string

	// LedgerImplicitMatch attaches transactions to a counterparty ledger by subcategory name.
	LedgerImplicitMatch bool
}

// LoadConfig loads configuration from environment variables and .env file if present.
// Invalid values fall back to their defaults with a warning.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	viper.SetDefault("STORE_DRIVER", StoreMemory)
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("RUN_MIGRATIONS", true)
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("JWT_ISSUER", "")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")
	viper.SetDefault("LEDGER_IMPLICIT_MATCH", true)

	viper.AutomaticEnv()

	cfg := &Config{
		IsProduction:        viper.GetBool("IS_PRODUCTION"),
		DatabaseURL:         viper.GetString("PGSQL_URL"),
		RunMigrations:       viper.GetBool("RUN_MIGRATIONS"),
		JWTIssuer:           viper.GetString("JWT_ISSUER"),
		RateLimit:           viper.GetString("RATE_LIMIT"),
		PosthogAPIKey:       viper.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint:     viper.GetString("POSTHOG_ENDPOINT"),
		LedgerImplicitMatch: viper.GetBool("LEDGER_IMPLICIT_MATCH"),
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	levelStr := viper.GetString("LOG_LEVEL")
	if err := cfg.LogLevel.UnmarshalText([]byte(levelStr)); err != nil {
		cfg.LogLevel = slog.LevelInfo
		log.Printf("Warning: Invalid value for LOG_LEVEL ('%s'). Defaulting to %s.\n", levelStr, cfg.LogLevel)
	}

	shutdownStr := viper.GetString("SHUTDOWN_TIMEOUT")
	shutdownTimeout, err := time.ParseDuration(shutdownStr)
	if err != nil || shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
		log.Printf("Warning: Invalid value for SHUTDOWN_TIMEOUT ('%s'). Defaulting to %s.\n", shutdownStr, shutdownTimeout)
	}
	cfg.ShutdownTimeout = shutdownTimeout

	cfg.StoreDriver = strings.ToLower(strings.TrimSpace(viper.GetString("STORE_DRIVER")))
	switch cfg.StoreDriver {
	case StoreMemory, StorePostgres:
	default:
		log.Printf("Warning: Invalid value for STORE_DRIVER ('%s'). Defaulting to %s.\n", cfg.StoreDriver, StoreMemory)
		cfg.StoreDriver = StoreMemory
	}
	if cfg.StoreDriver == StorePostgres && cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("PGSQL_URL is required when STORE_DRIVER is %s", StorePostgres)
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	if cfg.RateLimit == "" {
		cfg.RateLimit = "100-M"
		log.Printf("Warning: RATE_LIMIT not set. Defaulting to %s.\n", cfg.RateLimit)
	}

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	if cfg.PosthogAPIKey == "" {
		log.Println("Warning: POSTHOG_API_KEY not set. Usage analytics are disabled.")
	}

	return cfg, nil
}
