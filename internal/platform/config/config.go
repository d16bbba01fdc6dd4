package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application, read from environment
// variables (optionally seeded from a .env file in development).
type Config struct {
	DatabaseURL string
	Port        string
	IsProd      bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	DefaultAdminStaffCode string
	DefaultAdminPassword  string
	DefaultStaffPassword  string

	LoginRateLimit string
}

// LoadConfig reads configuration via viper. A missing .env file is fine in
// production where variables come from the environment directly.
func LoadConfig(logger *slog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, relying on environment variables")
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("JWT_EXPIRY_DURATION", "8h")
	v.SetDefault("JWT_ISSUER", "gsn-school-app")
	v.SetDefault("DEFAULT_ADMIN_STAFF_CODE", "GSN-A-001")
	v.SetDefault("DEFAULT_STAFF_PASSWORD", "changeme")
	v.SetDefault("LOGIN_RATE_LIMIT", "5-M")

	cfg := &Config{
		DatabaseURL:           v.GetString("PGSQL_URL"),
		Port:                  v.GetString("PORT"),
		IsProd:                v.GetBool("IS_PRODUCTION"),
		JWTSecret:             v.GetString("JWT_SECRET"),
		JWTExpiryDuration:     v.GetDuration("JWT_EXPIRY_DURATION"),
		JWTIssuer:             v.GetString("JWT_ISSUER"),
		DefaultAdminStaffCode: v.GetString("DEFAULT_ADMIN_STAFF_CODE"),
		DefaultAdminPassword:  v.GetString("DEFAULT_ADMIN_PASSWORD"),
		DefaultStaffPassword:  v.GetString("DEFAULT_STAFF_PASSWORD"),
		LoginRateLimit:        v.GetString("LOGIN_RATE_LIMIT"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("PGSQL_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.DefaultAdminPassword == "" && !cfg.IsProd {
		cfg.DefaultAdminPassword = "admin"
	}
	if cfg.DefaultAdminPassword == "" {
		return nil, fmt.Errorf("DEFAULT_ADMIN_PASSWORD is required in production")
	}

	return cfg, nil
}
