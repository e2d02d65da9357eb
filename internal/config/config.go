package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"palmtec-registry/internal/pkg/logger"
)

// Config holds all configuration for the application
type Config struct {
	AppMode        string
	Port           string
	AllowedOrigins string
	Database       DatabaseConfig
	JWT            JWTConfig
	Cookie         CookieConfig
	StockWatch     StockWatchConfig
	Seed           SeedConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	RefreshSecret    string
	AccessTokenMins  int
	RefreshTokenDays int
}

// CookieConfig holds cookie configuration
type CookieConfig struct {
	Secure   bool
	SameSite string
	Domain   string
}

// StockWatchConfig controls the scheduled check of available serial numbers
type StockWatchConfig struct {
	Enabled   bool
	Schedule  string
	Threshold int64
}

// SeedConfig names an account created at startup when it does not exist.
// Seeding is skipped when Username is empty.
type SeedConfig struct {
	Username string
	Email    string
	Password string
}

// AccessTTL returns the access token lifetime
func (j JWTConfig) AccessTTL() time.Duration {
	return time.Duration(j.AccessTokenMins) * time.Minute
}

// RefreshTTL returns the refresh token lifetime
func (j JWTConfig) RefreshTTL() time.Duration {
	return time.Duration(j.RefreshTokenDays) * 24 * time.Hour
}

// Global config instance
var AppConfig *Config

// LoadEnvFile loads .env from the working directory into the process
// environment without overriding variables already set. It reports whether
// the file was read.
func LoadEnvFile() bool {
	return godotenv.Load() == nil
}

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	if !LoadEnvFile() {
		logger.Warn(".env file not found, using environment variables")
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	// Trim spaces for Windows compatibility
	appMode := strings.TrimSpace(v.GetString("APP_MODE"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	prefix := "DEV_"
	if appMode == "prod" {
		prefix = "PROD_"
	}

	config := &Config{
		AppMode:        appMode,
		Port:           v.GetString("PORT"),
		AllowedOrigins: v.GetString("ALLOWED_ORIGINS"),
		Database:       loadDatabaseConfig(v, prefix),
		JWT:            loadJWTConfig(v, prefix),
		Cookie:         loadCookieConfig(v, prefix),
		StockWatch:     loadStockWatchConfig(v),
		Seed:           loadSeedConfig(v),
	}

	if config.IsProd() && (config.JWT.Secret == defaultSecret || config.JWT.RefreshSecret == defaultRefreshSecret) {
		return nil, fmt.Errorf("%sJWT_SECRET and %sJWT_REFRESH_SECRET must be set in prod mode", prefix, prefix)
	}

	AppConfig = config
	return config, nil
}

const (
	defaultSecret        = "default_secret"
	defaultRefreshSecret = "default_refresh_secret"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_MODE", "dev")
	v.SetDefault("PORT", "8000")

	for _, prefix := range []string{"DEV_", "PROD_"} {
		v.SetDefault(prefix+"DB_HOST", "localhost")
		v.SetDefault(prefix+"DB_PORT", "3306")
		v.SetDefault(prefix+"DB_USER", "root")
		v.SetDefault(prefix+"DB_PASS", "")
		v.SetDefault(prefix+"DB_NAME", "palmtec")
		v.SetDefault(prefix+"JWT_SECRET", defaultSecret)
		v.SetDefault(prefix+"JWT_REFRESH_SECRET", defaultRefreshSecret)
		v.SetDefault(prefix+"COOKIE_SECURE", false)
	}

	v.SetDefault("DB_MAX_OPEN_CONNS", 100)
	v.SetDefault("DB_MAX_IDLE_CONNS", 10)
	v.SetDefault("DB_CONN_MAX_LIFETIME", time.Hour)

	v.SetDefault("ACCESS_TOKEN_MINUTES", 60)
	v.SetDefault("REFRESH_TOKEN_DAYS", 7)
	v.SetDefault("COOKIE_SAMESITE", "Lax")
	v.SetDefault("COOKIE_DOMAIN", "")
	v.SetDefault("ALLOWED_ORIGINS", "")

	v.SetDefault("STOCK_WATCH_ENABLED", true)
	v.SetDefault("STOCK_WATCH_SCHEDULE", "30 8 * * *")
	v.SetDefault("STOCK_WATCH_THRESHOLD", 50)
}

func loadDatabaseConfig(v *viper.Viper, prefix string) DatabaseConfig {
	return DatabaseConfig{
		Host:     v.GetString(prefix + "DB_HOST"),
		Port:     v.GetString(prefix + "DB_PORT"),
		User:     v.GetString(prefix + "DB_USER"),
		Password: v.GetString(prefix + "DB_PASS"),
		DBName:   v.GetString(prefix + "DB_NAME"),

		MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
		ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
	}
}

func loadJWTConfig(v *viper.Viper, prefix string) JWTConfig {
	return JWTConfig{
		Secret:           v.GetString(prefix + "JWT_SECRET"),
		RefreshSecret:    v.GetString(prefix + "JWT_REFRESH_SECRET"),
		AccessTokenMins:  v.GetInt("ACCESS_TOKEN_MINUTES"),
		RefreshTokenDays: v.GetInt("REFRESH_TOKEN_DAYS"),
	}
}

func loadCookieConfig(v *viper.Viper, prefix string) CookieConfig {
	return CookieConfig{
		Secure:   v.GetBool(prefix + "COOKIE_SECURE"),
		SameSite: v.GetString("COOKIE_SAMESITE"),
		Domain:   v.GetString("COOKIE_DOMAIN"),
	}
}

func loadStockWatchConfig(v *viper.Viper) StockWatchConfig {
	return StockWatchConfig{
		Enabled:   v.GetBool("STOCK_WATCH_ENABLED"),
		Schedule:  v.GetString("STOCK_WATCH_SCHEDULE"),
		Threshold: v.GetInt64("STOCK_WATCH_THRESHOLD"),
	}
}

func loadSeedConfig(v *viper.Viper) SeedConfig {
	return SeedConfig{
		Username: strings.TrimSpace(v.GetString("SEED_ADMIN_USERNAME")),
		Email:    v.GetString("SEED_ADMIN_EMAIL"),
		Password: v.GetString("SEED_ADMIN_PASSWORD"),
	}
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	if c.AllowedOrigins != "" {
		return c.AllowedOrigins
	}
	// Vite dev server of the web client
	return "http://localhost:5173"
}
