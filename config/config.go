package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Environment string

	// Relational store (users, mentorship requests)
	DatabaseURL string

	// Document store (chat messages)
	MongoURI      string
	MongoDatabase string

	JWTSecret      string
	AllowedOrigins string
}

func Load() *Config {
	// .env is optional; real deployments set plain environment variables
	if err := godotenv.Load(".env"); err == nil {
		log.Println("Loaded configuration from .env file")
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENV", "development"),

		DatabaseURL: getEnv("DATABASE_URL", "user:password@tcp(localhost:3306)/alumniconnect?charset=utf8mb4&parseTime=True&loc=Local"),

		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGO_DATABASE", "alumniconnect"),

		JWTSecret:      getEnv("JWT_SECRET", "your-secret-key"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
