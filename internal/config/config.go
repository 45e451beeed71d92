package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderOllama     = "ollama"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
)

type Config struct {
	Server ServerConfig
	Model  ModelConfig
	Client ClientConfig
}

type ServerConfig struct {
	Port         string
	Env          string
	BodyLimit    int64
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// ModelConfig selects the language-model backend. The model name and
// sampling temperature are fixed per backend and are not configurable.
type ModelConfig struct {
	Provider         string
	OllamaURL        string
	GeminiAPIKey     string
	OpenRouterURL    string
	OpenRouterAPIKey string
}

// ClientConfig is read by the presentation CLI.
type ClientConfig struct {
	APIURL  string
	Timeout time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8000"),
			Env:          getEnv("ENV", "development"),
			BodyLimit:    getEnvAsInt64("BODY_LIMIT", 10485760),
			ReadTimeout:  getEnvAsDuration("READ_TIMEOUT", "30s"),
			WriteTimeout: getEnvAsDuration("WRITE_TIMEOUT", "30s"),
		},
		Model: ModelConfig{
			Provider:         strings.ToLower(getEnv("MODEL_PROVIDER", ProviderOllama)),
			OllamaURL:        getEnv("OLLAMA_URL", "http://localhost:11434"),
			GeminiAPIKey:     getEnv("GEMINI_API_KEY", ""),
			OpenRouterURL:    getEnv("OPENROUTER_URL", "https://openrouter.ai/api/v1"),
			OpenRouterAPIKey: getEnv("OPENROUTER_API_KEY", ""),
		},
		Client: ClientConfig{
			APIURL:  getEnv("ANALYZER_API_URL", "http://127.0.0.1:8000/analyze/"),
			Timeout: getEnvAsDuration("ANALYZER_TIMEOUT", "120s"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
