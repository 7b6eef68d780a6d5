package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL        string
	Port               string
	IsProduction       bool
	EnableDBCheck      bool
	MigrationsPath     string
	AuthEnabled        bool
	JWTSecret          string
	CORSAllowedOrigins []string
	RateLimit          string // ulule/limiter formatted rate, e.g. "100-M"
	PosthogAPIKey      string
	DefaultPageSize    int
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("AUTH_ENABLED", false)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("DEFAULT_PAGE_SIZE", 20)
	v.AutomaticEnv()

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{
		DatabaseURL:     v.GetString("PGSQL_URL"),
		Port:            v.GetString("PORT"),
		IsProduction:    v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:   v.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath:  v.GetString("MIGRATIONS_PATH"),
		AuthEnabled:     v.GetBool("AUTH_ENABLED"),
		JWTSecret:       v.GetString("JWT_SECRET"),
		RateLimit:       v.GetString("RATE_LIMIT"),
		PosthogAPIKey:   v.GetString("POSTHOG_API_KEY"),
		DefaultPageSize: v.GetInt("DEFAULT_PAGE_SIZE"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if cfg.AuthEnabled && cfg.JWTSecret == "" {
		log.Println("Warning: AUTH_ENABLED is true but JWT_SECRET is empty. All requests will be rejected.")
	}

	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = 20
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg
}
