package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL      string
	Port             string
	Env              string
	JWTSecret        string
	OpenAIKey        string
	WhatsAppStoreURL string
	DigestSchedule   string
	AppBaseURL       string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ .env file not found, using system environment variables")
	}

	cfg := &Config{
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		Port:             os.Getenv("PORT"),
		Env:              os.Getenv("ENV"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		OpenAIKey:        os.Getenv("OPENAI_API_KEY"),
		WhatsAppStoreURL: os.Getenv("WHATSAPP_STORE_URL"),
		DigestSchedule:   os.Getenv("DIGEST_SCHEDULE"),
		AppBaseURL:       os.Getenv("APP_BASE_URL"),
	}

	// Default values
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.DigestSchedule == "" {
		// Every morning at 05:00 server time
		cfg.DigestSchedule = "0 5 * * *"
	}
	if cfg.AppBaseURL == "" {
		cfg.AppBaseURL = "http://localhost:" + cfg.Port
	}
	if cfg.WhatsAppStoreURL == "" {
		// Default to main database if not specified
		cfg.WhatsAppStoreURL = cfg.DatabaseURL
	}

	return cfg
}
