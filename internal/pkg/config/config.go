package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/carbonkhet/carbonkhet/internal/pkg/models"
)

func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "carbonkhet-auth")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 5000)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 0)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 0)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 10)

	// Mongo config; empty URI selects the in-memory store
	configs.Mongo.URI = GetEnv("MONGO_URI", "")
	configs.Mongo.Database = GetEnv("MONGO_DATABASE", "carbonkhet")
	configs.Mongo.Timeout = GetEnvAsInt("MONGO_TIMEOUT", 10)

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Expiration = GetEnvAsInt("JWT_EXPIRATION", 168) // 7 days
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "carbonkhet")

	// Admin bootstrap config
	configs.Admin.Email = GetEnv("ADMIN_EMAIL", "")
	configs.Admin.Password = GetEnv("ADMIN_PASSWORD", "")
	configs.Admin.Name = GetEnv("ADMIN_NAME", "Administrator")

	// SMTP config; empty host or from-address selects the console fallback
	configs.SMTP.Host = GetEnv("SMTP_HOST", "")
	configs.SMTP.Port = GetEnvAsInt("SMTP_PORT", 587)
	configs.SMTP.Username = GetEnv("SMTP_USERNAME", "")
	configs.SMTP.Password = GetEnv("SMTP_PASSWORD", "")
	configs.SMTP.From = GetEnv("SMTP_FROM", "")

	// Client config
	configs.Client.BaseURL = GetEnv("CLIENT_URL", "http://localhost:3000")

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
