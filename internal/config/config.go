package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string
	MySQLDSN   string
	RedisAddr  string
	RedisDB    int
	RedisPass  string

	// SessionTTLMinutes bounds how long an idle session survives in Redis.
	SessionTTLMinutes int

	// Static access-policy accounts. These are deliberately separate from the
	// database-backed user directory; see internal/auth.
	AdminUsername string
	AdminPassword string
	UserUsername  string
	UserPassword  string
}

// Load builds Config from environment with sensible defaults.
// A .env file in the working directory is honored when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		MySQLDSN:          getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/eshop?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:           getEnvInt("REDIS_DB", 0),
		RedisPass:         os.Getenv("REDIS_PASSWORD"),
		SessionTTLMinutes: getEnvInt("SESSION_TTL_MINUTES", 60),
		AdminUsername:     getEnv("POLICY_ADMIN_USERNAME", "admin"),
		AdminPassword:     getEnv("POLICY_ADMIN_PASSWORD", "admin123"),
		UserUsername:      getEnv("POLICY_USER_USERNAME", "user"),
		UserPassword:      getEnv("POLICY_USER_PASSWORD", "user123"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
