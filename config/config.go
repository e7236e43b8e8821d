package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server Settings
	AppPort     string
	HOST        string
	DatabaseURL string

	// Bootstrap admin account
	AdminUsername string
	AdminPassword string

	// Drop and recreate all tables on startup when true
	ResetDB bool

	// Local directory for uploaded images
	UploadDir string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	config := &Config{
		AppPort:     getEnv("PORT", "5000"),
		HOST:        getEnv("HOST", "0.0.0.0"),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),

		ResetDB: os.Getenv("RESET_DB") == "true",

		UploadDir: getEnv("UPLOAD_DIR", "./uploads"),
	}

	return config
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
