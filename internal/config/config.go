package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string

	// Game lifetime before eviction from the registry.
	GameTTL time.Duration

	// Optional Redis. When set, the registry and the rate limiter use it;
	// otherwise games live in process memory and limiting is in-memory.
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Optional Postgres for the analytics game log.
	DatabaseURL string

	APIRateLimit  int
	APIRateWindow time.Duration

	LogLevel string
	LogJSON  bool
}

// Load reads the config from env. Nothing is strictly required: the server
// runs self-contained with in-memory state when Redis and Postgres are not
// configured.
func Load() *Config {
	_ = godotenv.Load()

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	ttl := 24 * time.Hour
	if v := os.Getenv("GAME_TTL_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			ttl = time.Duration(n) * time.Hour
		}
	}

	redisDB := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			redisDB = n
		}
	}

	apiRateLimit := 60
	if v := os.Getenv("API_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			apiRateLimit = n
		}
	}

	apiRateWindow := time.Minute
	if v := os.Getenv("API_RATE_WINDOW_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			apiRateWindow = time.Duration(n) * time.Second
		}
	}

	return &Config{
		AppPort:       port,
		GameTTL:       ttl,
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		APIRateLimit:  apiRateLimit,
		APIRateWindow: apiRateWindow,
		LogLevel:      os.Getenv("LOG_LEVEL"),
		LogJSON:       os.Getenv("LOG_JSON") == "true",
	}
}
