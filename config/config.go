package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	Env           string
	LogLevel      string
	AllowedOrigin string
	// Catalog snapshot (products + categories), loaded once at startup
	CatalogPath string
	// Directory holding the durable cart/wishlist collections
	DataDir string
	// Cache TTLs
	CacheCategoryTTL time.Duration
	CacheProductTTL  time.Duration
	// Query defaults
	DefaultPageSize int
	FeaturedLimit   int
	// Business Rules
	MaxCartQuantity int
}

func LoadConfig() *Config {
	// 1. Check if a specific config file is requested via env var
	configFile := os.Getenv("CONFIG_FILE")
	if configFile != "" {
		if err := godotenv.Load(configFile); err != nil {
			log.Printf("Warning: Failed to load config file '%s': %v", configFile, err)
		} else {
			log.Printf("Loaded configuration from %s", configFile)
		}
	} else {
		// 2. Default fallback: Try loading .env (standard local dev)
		// We don't error here because in docker/prod envs, .env might not exist,
		// and we rely on system env vars.
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found or error loading it, relying on system env vars")
		}
	}

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "http://localhost:3000"),

		CatalogPath: getEnv("CATALOG_PATH", "data/catalog.json"),
		DataDir:     getEnv("DATA_DIR", "data/store"),

		// Cache defaults: 30m Category, 10m Product
		CacheCategoryTTL: getDurationEnv("CACHE_CATEGORY_TTL", 30*time.Minute),
		CacheProductTTL:  getDurationEnv("CACHE_PRODUCT_TTL", 10*time.Minute),

		// Query defaults: 12 per page, 8 featured/new-arrival items
		DefaultPageSize: getIntEnv("DEFAULT_PAGE_SIZE", 12),
		FeaturedLimit:   getIntEnv("FEATURED_LIMIT", 8),

		// Business rules: 1000 max quantity per cart line
		MaxCartQuantity: getIntEnv("MAX_CART_QUANTITY", 1000),
	}

	cfg.Validate()
	return cfg
}

func (c *Config) Validate() {
	if c.CatalogPath == "" {
		log.Fatal("CRITICAL: CATALOG_PATH is required (static catalog snapshot)")
	}
	if c.DataDir == "" {
		log.Fatal("CRITICAL: DATA_DIR is required (durable cart/wishlist storage)")
	}
	if c.DefaultPageSize < 1 {
		log.Fatal("CRITICAL: DEFAULT_PAGE_SIZE must be a positive integer")
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Printf("Invalid duration for %s, using fallback", key)
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
		log.Printf("Invalid int for %s, using fallback", key)
	}
	return fallback
}
