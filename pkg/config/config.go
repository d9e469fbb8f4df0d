package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	Client ClientConfig
}

type ServerConfig struct {
	Port string
}

type ClientConfig struct {
	BaseURL string
}

func Load() *Config {
	godotenv.Load() // optional .env file

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "5000"),
		},
		Client: ClientConfig{
			BaseURL: getEnv("API_URL", "http://localhost:5000/api"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
