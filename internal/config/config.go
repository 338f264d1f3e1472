// Package config provides configuration for the application
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dailyenglish/backend/internal/models"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	Logging    LoggingConfig
	CORS       CORSConfig
	App        AppConfig
	OpenRouter OpenRouterConfig
	Discord    DiscordConfig
	Scheduler  SchedulerConfig
}

// ServerConfig holds server settings
type ServerConfig struct {
	Port int
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string
}

// CORSConfig holds CORS settings
type CORSConfig struct {
	AllowedOrigins []string
}

// AppConfig holds application identity settings forwarded to OpenRouter
// for attribution
type AppConfig struct {
	BaseURL string
	Title   string
}

// OpenRouterConfig holds the generator API settings
type OpenRouterConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	MaxTokens   int
	Temperature float32
}

// DiscordConfig holds webhook destinations and the challenge start date
type DiscordConfig struct {
	// Webhooks are the named destinations the daily challenge fans out to.
	Webhooks []models.WebhookConfig

	// ReportWebhookURL receives the working-day progress report.
	ReportWebhookURL string

	// ChallengeStartDate anchors the working-day counter.
	ChallengeStartDate time.Time
}

// SchedulerConfig holds the in-process cron settings
type SchedulerConfig struct {
	Enabled       bool
	ChallengeTime string
	ReportTime    string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	godotenv.Load()

	cfg := &Config{}

	// Server configuration
	serverPortStr := os.Getenv("SERVER_PORT")
	if serverPortStr == "" {
		serverPortStr = "8080" // default port
	}
	serverPort, err := strconv.Atoi(serverPortStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}
	cfg.Server.Port = serverPort

	// Logging configuration
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info" // default level
	}
	cfg.Logging.Level = logLevel

	// CORS configuration
	cfg.CORS.AllowedOrigins = parseOrigins(os.Getenv("CORS_ALLOWED_ORIGINS"))

	// Application identity
	appURL := os.Getenv("APP_URL")
	if appURL == "" {
		appURL = fmt.Sprintf("http://localhost:%d", cfg.Server.Port)
	}
	cfg.App.BaseURL = appURL

	appTitle := os.Getenv("APP_TITLE")
	if appTitle == "" {
		appTitle = "Daily English"
	}
	cfg.App.Title = appTitle

	// OpenRouter configuration
	apiKey := os.Getenv("OPENROUTER_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENROUTER_API_KEY is required")
	}
	cfg.OpenRouter.APIKey = apiKey

	cfg.OpenRouter.BaseURL = os.Getenv("OPENROUTER_BASE_URL")

	model := os.Getenv("OPENROUTER_MODEL")
	if model == "" {
		model = "openai/gpt-4.1-mini" // default model
	}
	cfg.OpenRouter.Model = model

	maxTokensStr := os.Getenv("OPENROUTER_MAX_TOKENS")
	if maxTokensStr == "" {
		maxTokensStr = "400000"
	}
	maxTokens, err := strconv.Atoi(maxTokensStr)
	if err != nil {
		return nil, fmt.Errorf("invalid OPENROUTER_MAX_TOKENS: %w", err)
	}
	cfg.OpenRouter.MaxTokens = maxTokens

	temperatureStr := os.Getenv("OPENROUTER_TEMPERATURE")
	if temperatureStr == "" {
		temperatureStr = "1.2"
	}
	temperature, err := strconv.ParseFloat(temperatureStr, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid OPENROUTER_TEMPERATURE: %w", err)
	}
	cfg.OpenRouter.Temperature = float32(temperature)

	// Discord configuration
	webhooks, err := parseWebhooks(os.Getenv("DISCORD_WEBHOOKS"))
	if err != nil {
		return nil, err
	}
	cfg.Discord.Webhooks = webhooks

	cfg.Discord.ReportWebhookURL = os.Getenv("REPORT_WEBHOOK_URL")

	startDateStr := os.Getenv("CHALLENGE_START_DATE")
	if startDateStr == "" {
		startDateStr = "2025-11-13" // default start date
	}
	startDate, err := time.ParseInLocation("2006-01-02", startDateStr, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid CHALLENGE_START_DATE: %w", err)
	}
	cfg.Discord.ChallengeStartDate = startDate

	// Scheduler configuration
	cfg.Scheduler.Enabled = os.Getenv("SCHEDULER_ENABLED") == "true"

	challengeTime := os.Getenv("SCHEDULER_CHALLENGE_TIME")
	if challengeTime == "" {
		challengeTime = "13:00"
	}
	cfg.Scheduler.ChallengeTime = challengeTime

	reportTime := os.Getenv("SCHEDULER_REPORT_TIME")
	if reportTime == "" {
		reportTime = "13:30"
	}
	cfg.Scheduler.ReportTime = reportTime

	return cfg, nil
}

// parseOrigins parses a comma-separated origin list, defaulting to allow
// all origins when unset (for development)
func parseOrigins(raw string) []string {
	if raw == "" {
		return []string{"*"}
	}

	origins := strings.Split(raw, ",")
	parsed := make([]string, 0, len(origins))
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			parsed = append(parsed, origin)
		}
	}
	if len(parsed) == 0 {
		return []string{"*"}
	}
	return parsed
}

// parseWebhooks parses the DISCORD_WEBHOOKS variable: comma-separated
// entries of the form "Name|https://discord.com/api/webhooks/...". A bare
// URL without a name is allowed; the URL doubles as the name.
func parseWebhooks(raw string) ([]models.WebhookConfig, error) {
	if raw == "" {
		return nil, nil
	}

	entries := strings.Split(raw, ",")
	webhooks := make([]models.WebhookConfig, 0, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		name, url, found := strings.Cut(entry, "|")
		if !found {
			webhooks = append(webhooks, models.WebhookConfig{Name: entry, URL: entry})
			continue
		}

		name = strings.TrimSpace(name)
		url = strings.TrimSpace(url)
		if url == "" {
			return nil, fmt.Errorf("invalid DISCORD_WEBHOOKS entry: %q", entry)
		}
		webhooks = append(webhooks, models.WebhookConfig{Name: name, URL: url})
	}

	return webhooks, nil
}
