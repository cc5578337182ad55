package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	// ListenAddr is the address the HTTP server binds to.
	ListenAddr string
	// AppBaseURL is the externally visible base URL, used in reset links.
	AppBaseURL string
	// AuthAPIURL is the base URL of the remote authentication API.
	AuthAPIURL string
	// SessionSecret signs the session and flash cookies.
	SessionSecret string
}

// New loads configuration from environment variables.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		ListenAddr:    getEnv("LISTEN_ADDR", ":8080"),
		AppBaseURL:    getEnv("APP_BASE_URL", "http://localhost:8080"),
		AuthAPIURL:    os.Getenv("AUTH_API_URL"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
	}

	if cfg.AuthAPIURL == "" || cfg.SessionSecret == "" {
		log.Fatal("Required environment variables AUTH_API_URL or SESSION_SECRET are not set.")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
