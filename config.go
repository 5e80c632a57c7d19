package scholarseeker

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	// DefaultBaseURL is the Perplexity-compatible completion endpoint.
	DefaultBaseURL = "https://api.perplexity.ai"
	DefaultModel   = "llama-3.1-sonar-large-128k-online"
)

// Config is the environment-supplied configuration. The credential comes
// from the hosting environment's secret store; nothing here persists it.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	GuardModel  string
	MaxAttempts int
}

// LoadConfig reads configuration from a .env file when present, falling
// back to process environment variables.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file, falling back to environment variables")
	}

	maxAttempts, err := strconv.Atoi(getEnv("SCHOLARSEEKER_MAX_ATTEMPTS", "3"))
	if err != nil || maxAttempts <= 0 {
		maxAttempts = 3
	}

	return &Config{
		APIKey:      getEnv("PERPLEXITY_API_KEY", ""),
		BaseURL:     getEnv("PERPLEXITY_BASE_URL", DefaultBaseURL),
		Model:       getEnv("SCHOLARSEEKER_MODEL", DefaultModel),
		GuardModel:  getEnv("SCHOLARSEEKER_GUARD_MODEL", ""),
		MaxAttempts: maxAttempts,
	}
}

// LLMConfig converts the environment configuration into the client config.
func (c *Config) LLMConfig() LLMConfig {
	return LLMConfig{
		APIKey:     c.APIKey,
		BaseURL:    c.BaseURL,
		Model:      c.Model,
		GuardModel: c.GuardModel,
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
