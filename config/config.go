package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	BotToken  string
	AdminID   int64
	AccessKey string
	DBDriver  string
	DBDSN     string
	LogLevel  string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	token := os.Getenv("BOT_TOKEN")
	rawAdmin := os.Getenv("ADMIN_ID")
	accessKey := os.Getenv("ACCESS_KEY")
	if token == "" || rawAdmin == "" || accessKey == "" {
		return nil, errors.New("BOT_TOKEN, ADMIN_ID and ACCESS_KEY must be set")
	}

	adminID, err := strconv.ParseInt(rawAdmin, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid ADMIN_ID: %w", err)
	}

	return &Config{
		BotToken:  token,
		AdminID:   adminID,
		AccessKey: accessKey,
		DBDriver:  getEnv("DB_DRIVER", "sqlite"),
		DBDSN:     getEnv("DB_DSN", "bot.db"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
	}, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
