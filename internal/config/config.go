package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	GinMode     string
	LogLevel    string
	DatabaseURL string
	RedisURL    string // пустой — blacklist токенов отключен

	JWTSecret string
	JWTTTL    time.Duration

	// Окно, в пределах которого пользователь считается онлайн
	OnlineWindow time.Duration

	RateLimitRPS   float64
	RateLimitBurst int
}

// Load читает конфигурацию из окружения. .env.local имеет приоритет над .env.
func Load() *Config {
	if err := godotenv.Load(".env.local"); err != nil {
		godotenv.Load()
	}

	return &Config{
		Port:           getEnv("PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		RedisURL:       os.Getenv("REDIS_URL"),
		JWTSecret:      getEnv("JWT_SECRET", "projectconnect-dev-secret"),
		JWTTTL:         getDuration("JWT_TTL", 24*time.Hour),
		OnlineWindow:   getDuration("ONLINE_WINDOW", 2*time.Minute),
		RateLimitRPS:   getFloat("RATE_LIMIT_RPS", 20),
		RateLimitBurst: getInt("RATE_LIMIT_BURST", 40),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func getFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
