package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	BaseURL string

	PageLoadTimeout time.Duration
	SearchTimeout   time.Duration
	PriceTimeout    time.Duration

	MaxRetries   int
	RetryBackoff time.Duration

	TypeDelayMin time.Duration
	TypeDelayMax time.Duration

	Headless  bool
	ChromeBin string

	OutputPath string

	PostgresEnabled  bool
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		BaseURL: getEnv("REDFIN_BASE_URL", "https://www.redfin.com"),

		PageLoadTimeout: getEnvDuration("PAGE_LOAD_TIMEOUT_MS", 30_000),
		SearchTimeout:   getEnvDuration("SEARCH_TIMEOUT_MS", 10_000),
		PriceTimeout:    getEnvDuration("PRICE_TIMEOUT_MS", 20_000),

		MaxRetries:   getEnvInt("MAX_RETRIES", 3),
		RetryBackoff: getEnvDuration("RETRY_BACKOFF_MS", 2000),

		TypeDelayMin: getEnvDuration("TYPE_DELAY_MIN_MS", 100),
		TypeDelayMax: getEnvDuration("TYPE_DELAY_MAX_MS", 200),

		Headless:  getEnvBool("HEADLESS", true),
		ChromeBin: getEnv("CHROME_BIN", ""),

		OutputPath: getEnv("OUTPUT_PATH", "median_prices.json"),

		PostgresEnabled:  getEnvBool("POSTGRES_ENABLED", false),
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "scraper"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "scraper123"),
		PostgresDB:       getEnv("POSTGRES_DB", "housing_db"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
	}
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return "host=" + c.PostgresHost +
		" port=" + c.PostgresPort +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" sslmode=" + c.PostgresSSLMode
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("[config] Invalid int for %s: %q — using %d", key, v, fallback)
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		log.Printf("[config] Invalid bool for %s: %q — using %v", key, v, fallback)
	}
	return fallback
}

func getEnvDuration(key string, fallbackMs int) time.Duration {
	return time.Duration(getEnvInt(key, fallbackMs)) * time.Millisecond
}
