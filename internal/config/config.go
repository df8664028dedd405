package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI string
	DBName   string

	// AI Configuration
	GeminiAPIKey string
	GeminiModel  string // "gemini-2.5-flash" by default

	// SMTP for career-addition request mails
	SMTPServer   string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string
	AdminEmail   string

	Port string
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
		log.Println("Attempting to load from parent directory...")
		err = godotenv.Load("../../.env")
		if err != nil {
			log.Println("Warning: Could not load .env file, using environment variables")
		}
	}

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-2.5-flash" // default model
	}

	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "prism_careers"
	}

	smtpServer := os.Getenv("SMTP_SERVER")
	if smtpServer == "" {
		smtpServer = "smtp.gmail.com"
	}
	smtpPort := os.Getenv("SMTP_PORT")
	if smtpPort == "" {
		smtpPort = "587"
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return &Config{
		MongoURI:     os.Getenv("MONGODB_URI"),
		DBName:       dbName,
		GeminiAPIKey: os.Getenv("GOOGLE_API_KEY"),
		GeminiModel:  model,
		SMTPServer:   smtpServer,
		SMTPPort:     smtpPort,
		SMTPUser:     os.Getenv("SMTP_USER"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		AdminEmail:   os.Getenv("ADMIN_EMAIL"),
		Port:         port,
	}
}
