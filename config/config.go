package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	Env              string
	DBPath           string
	LogLevel         string
	CORSOrigins      string
	NotificationFeed int
	TokenTTL         time.Duration
}

var AppConfig *Config

func Load() {
	_ = godotenv.Load()

	AppConfig = &Config{
		Port:             GetEnv("PORT", "3000"),
		Env:              GetEnv("ENV", "development"),
		DBPath:           GetEnv("DB_PATH", "./data/varnix-dashboard.db"),
		LogLevel:         strings.ToLower(GetEnv("LOG_LEVEL", "info")),
		CORSOrigins:      GetEnv("CORS_ORIGINS", "*"),
		NotificationFeed: GetEnvInt("NOTIFICATION_FEED_SIZE", 50),
		TokenTTL:         time.Duration(GetEnvInt("TOKEN_TTL_HOURS", 24*30)) * time.Hour,
	}

	if AppConfig.NotificationFeed <= 0 {
		log.Fatal("NOTIFICATION_FEED_SIZE must be positive")
	}
	if AppConfig.TokenTTL <= 0 {
		log.Fatal("TOKEN_TTL_HOURS must be positive")
	}
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvInt falls back to defaultValue when the variable is unset or not a number.
func GetEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("invalid %s=%q, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}
