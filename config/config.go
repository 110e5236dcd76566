package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all process-wide settings. It is loaded once in main and
// passed into constructors; nothing reads the environment after startup.
type Config struct {
	Port              string
	MongoURI          string
	DBName            string
	JWTSecret         string
	SendGridKey       string
	EmailSender       string
	AdminOnlyProducts bool
}

// Load reads .env (if present) and the environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	return &Config{
		Port:              getEnv("PORT", "5000"),
		MongoURI:          getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:            getEnv("DB_NAME", "ecommerce-app"),
		JWTSecret:         os.Getenv("JWT_SECRET_KEY"),
		SendGridKey:       os.Getenv("SENDGRID_API_KEY"),
		EmailSender:       getEnv("EMAIL_SENDER", "no-reply@shopcart.local"),
		AdminOnlyProducts: os.Getenv("ADMIN_ONLY_PRODUCTS") == "true",
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
