package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env          string
	ListenAddr   string
	DatabaseURL  string
	RedisAddr    string
	JWTSecret    string
	AdminAPIKey  string
	UploadDir    string
	StoreTimeout time.Duration
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func Load() (Config, error) {
	// .env is a local-dev convenience; absence is not an error.
	_ = godotenv.Load()

	cfg := Config{
		Env:          getenv("APP_ENV", "development"),
		ListenAddr:   getenv("LISTEN_ADDR", ":8080"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		RedisAddr:    os.Getenv("REDIS_ADDR"),
		JWTSecret:    getenv("SECRET_KEY", "dev-secret-do-not-use-in-production"),
		AdminAPIKey:  os.Getenv("ADMIN_API_KEY"),
		UploadDir:    getenv("UPLOAD_DIR", "uploads"),
		StoreTimeout: getenvDuration("STORE_TIMEOUT", 5*time.Second),
	}
	if cfg.DatabaseURL == "" {
		// Not fatal for early local runs; warn via error value so callers can decide.
		return cfg, fmt.Errorf("DATABASE_URL not set")
	}
	return cfg, nil
}

func getenvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
