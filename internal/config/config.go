package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration.
type Config struct {
	Port          string
	AllowedOrigin string
	LogLevel      string

	OpenAI    OpenAIConfig
	Proximity ProximityConfig
}

// OpenAIConfig configures the advisory gateway.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration

	// Generation budgets, in tokens. The short budget serves generic
	// operator prompts, the long budget serves structured neighborhood
	// analyses.
	MaxTokensPrompt int
	MaxTokensReview int
}

// ProximityConfig configures sensor selection around a point.
type ProximityConfig struct {
	RadiusKm float64
}

// Load reads the configuration from environment variables.
// A .env file is honored when present but not required.
func Load() (Config, error) {
	// Load .env file if it exists (ignore error if not present)
	_ = godotenv.Load()

	cfg := Config{
		Port:          getEnv("PORT", "3002"),
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "http://localhost:5173"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		OpenAI: OpenAIConfig{
			APIKey:          os.Getenv("OPENAI_API_KEY"),
			BaseURL:         getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Model:           getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
			Timeout:         getEnvAsDuration("AI_TIMEOUT", 60*time.Second),
			MaxTokensPrompt: getEnvAsInt("AI_MAX_TOKENS_PROMPT", 100),
			MaxTokensReview: getEnvAsInt("AI_MAX_TOKENS_REVIEW", 300),
		},
		Proximity: ProximityConfig{
			RadiusKm: getEnvAsFloat("PROXIMITY_RADIUS_KM", 2),
		},
	}

	if cfg.OpenAI.APIKey == "" {
		return Config{}, fmt.Errorf("OpenAI configuration is incomplete. Please set the OPENAI_API_KEY environment variable")
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, err := strconv.ParseFloat(getEnv(key, ""), 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, err := time.ParseDuration(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}
