package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	EnvTelegramToken  = "TELEGRAM_BOT_TOKEN"
	EnvTelegramChatID = "TELEGRAM_CHAT_ID"
	EnvOpenRouterKey  = "OPENROUTER_API_KEY"
)

type Config struct {
	TelegramToken  string
	TelegramChatID string
	OpenRouterKey  string

	OpenRouterBaseURL string
	Model             string
	ServerPort        string
	SearchTimeout     time.Duration
	QueryPause        time.Duration
	LLMTimeout        time.Duration
	MinSearchResults  int
	LogLevel          string
	LogFile           string
}

// Load reads configuration from the environment. The three credentials are
// required; the returned error names exactly the ones that are missing or
// empty after trimming.
func Load() (*Config, error) {
	cfg := fromEnv()

	var missing []string
	if cfg.TelegramToken == "" {
		missing = append(missing, EnvTelegramToken)
	}
	if cfg.TelegramChatID == "" {
		missing = append(missing, EnvTelegramChatID)
	}
	if cfg.OpenRouterKey == "" {
		missing = append(missing, EnvOpenRouterKey)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing environment variables: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// LoadAssistant is the order-assistant variant: only the model key is
// required. Telegram credentials stay optional and merely enable the
// summary notification.
func LoadAssistant() (*Config, error) {
	cfg := fromEnv()
	if cfg.OpenRouterKey == "" {
		return nil, fmt.Errorf("missing environment variables: %s", EnvOpenRouterKey)
	}
	return cfg, nil
}

func fromEnv() *Config {
	return &Config{
		TelegramToken:  cleanEnv(EnvTelegramToken),
		TelegramChatID: cleanEnv(EnvTelegramChatID),
		OpenRouterKey:  cleanEnv(EnvOpenRouterKey),

		OpenRouterBaseURL: getEnv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
		Model:             getEnv("OPENROUTER_MODEL", "minimax/minimax-m2:free"),
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		SearchTimeout:     getEnvAsDuration("SEARCH_TIMEOUT", 15*time.Second),
		QueryPause:        getEnvAsDuration("QUERY_PAUSE", 3*time.Second),
		LLMTimeout:        getEnvAsDuration("LLM_TIMEOUT", 60*time.Second),
		MinSearchResults:  getEnvAsInt("MIN_SEARCH_RESULTS", 4),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFile:           getEnv("LOG_FILE", ""),
	}
}

// cleanEnv strips surrounding whitespace and quote characters that tend to
// leak in from CI secret stores.
func cleanEnv(key string) string {
	v := strings.TrimSpace(os.Getenv(key))
	v = strings.Trim(v, `"'`)
	return strings.TrimSpace(v)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
