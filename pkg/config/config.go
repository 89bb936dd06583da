package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	// Server
	Port string

	// Database
	MongoURL string
	DBName   string

	// Sessions
	JWTSecret string

	// Uploads: "local" writes under UploadDir, "cloudinary" delegates to the
	// remote image host.
	UploadBackend string
	UploadDir     string
	CloudinaryURL string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using environment variables")
	}

	return &Config{
		Port:          getEnv("PORT", "8080"),
		MongoURL:      getEnv("MONGODB_URL", "mongodb://localhost:27017"),
		DBName:        getEnv("MONGODB_DATABASE", "couponpro"),
		JWTSecret:     getEnv("JWT_SECRET", "dev-secret-change-me"),
		UploadBackend: getEnv("UPLOAD_BACKEND", "local"),
		UploadDir:     getEnv("UPLOAD_DIR", "public/uploads"),
		CloudinaryURL: getEnv("CLOUDINARY_URL", ""),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
