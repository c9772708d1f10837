package config

import (
	"os"
	"strconv"

	"briks_webapp/internal/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort     string
	DatabaseURL string // empty selects the in-memory store
	JWTSecret   string
	SeedDemo    bool // load the demo catalogue on startup (memory store)

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	APIRateLimit   int
	APIRateWindow  int // seconds
	AuthRateLimit  int
	AuthRateWindow int // seconds

	LogLevel string
	LogJSON  bool
}

// Load reads configuration from the environment (.env honored if present).
func Load() *Config {
	_ = godotenv.Load()

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logger.Fatal("JWT_SECRET is not set")
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	redisDB := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			redisDB = n
		}
	}

	return &Config{
		AppPort:     port,
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   jwtSecret,
		SeedDemo:    os.Getenv("SEED_DEMO") != "false",

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,

		APIRateLimit:   intEnv("API_RATE_LIMIT", 60),
		APIRateWindow:  intEnv("API_RATE_WINDOW_SECONDS", 60),
		AuthRateLimit:  intEnv("AUTH_RATE_LIMIT", 10),
		AuthRateWindow: intEnv("AUTH_RATE_WINDOW_SECONDS", 60),

		LogLevel: os.Getenv("LOG_LEVEL"),
		LogJSON:  os.Getenv("LOG_JSON") == "true",
	}
}

func intEnv(name string, def int) int {
	if v := os.Getenv(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
