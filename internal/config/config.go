package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	ServiceName string
	Version     string
	Environment string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	DBMaxConns int

	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	APIKey         string // API key for authentication
	TrustedProxies []string

	XPRulesPath       string
	XPRulesSchemaPath string

	CacheSize int
	CacheTTL  time.Duration

	// DailyResetLocation is the time zone whose midnight starts a new XP day
	DailyResetLocation *time.Location
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "text"),
		ServiceName:       getEnv("SERVICE_NAME", DefaultServiceName),
		Version:           getEnv("VERSION", "dev"),
		Environment:       getEnv("ENVIRONMENT", "dev"),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "skillquest"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		APIKey:            getEnv("API_KEY", ""),
		TrustedProxies:    getEnvAsList("TRUSTED_PROXIES"),
		XPRulesPath:       getEnv("XP_RULES_PATH", ConfigPathXPRules),
		XPRulesSchemaPath: getEnv("XP_RULES_SCHEMA_PATH", ConfigPathXPRulesSchema),
		CacheSize:         getEnvAsInt("CACHE_SIZE", DefaultCacheSize),
	}

	portStr := getEnv("PORT", strconv.Itoa(DefaultPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	ttl, err := time.ParseDuration(getEnv("CACHE_TTL", DefaultCacheTTL))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL value: %w", err)
	}
	cfg.CacheTTL = ttl

	if cfg.DBMaxConnIdleTime, err = time.ParseDuration(getEnv("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime)); err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONN_IDLE_TIME value: %w", err)
	}
	if cfg.DBMaxConnLifetime, err = time.ParseDuration(getEnv("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime)); err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONN_LIFETIME value: %w", err)
	}

	loc, err := time.LoadLocation(getEnv("XP_RESET_TIMEZONE", DefaultResetTimezone))
	if err != nil {
		return nil, fmt.Errorf("invalid XP_RESET_TIMEZONE value: %w", err)
	}
	cfg.DailyResetLocation = loc

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
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

// getEnvAsInt retrieves an integer environment variable, falling back on missing or invalid values
func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getEnvAsList splits a comma separated environment variable, dropping empty entries
func getEnvAsList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	var out []string
	for _, part := range splitAndTrim(value) {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
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
