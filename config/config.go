package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App    AppConfig
	Server ServerConfig
	OpenAI OpenAIConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
	// QuestionBankPath points to an optional YAML overlay of
	// employer-specific questions. Empty means built-in bank only.
	QuestionBankPath string
	// MaxRecommendations truncates API recommendation payloads.
	MaxRecommendations int
}

type ServerConfig struct {
	Port string
}

type OpenAIConfig struct {
	// APIKey enables LLM rationale refinement when set.
	APIKey string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	maxRecs, err := strconv.Atoi(getEnv("MAX_RECOMMENDATIONS", "15"))
	if err != nil || maxRecs < 1 {
		maxRecs = 15
	}

	cfg := &Config{
		App: AppConfig{
			Name:               getEnv("APP_NAME", "Benefits Advisor API"),
			Version:            getEnv("APP_VERSION", "1.0.0"),
			Environment:        getEnv("APP_ENV", "development"),
			QuestionBankPath:   getEnv("QUESTION_BANK_PATH", ""),
			MaxRecommendations: maxRecs,
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		OpenAI: OpenAIConfig{
			APIKey: getEnv("OPENAI_API_KEY", ""),
		},
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}
