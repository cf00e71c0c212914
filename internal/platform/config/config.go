package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// Gemini analysis service
	GeminiAPIKey  string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel   string `mapstructure:"GEMINI_MODEL"`
	GeminiBaseURL string `mapstructure:"GEMINI_BASE_URL"`

	// AlertDebounce is the settling period after record mutations before
	// the background alert refresh fires.
	AlertDebounce time.Duration

	// RateLimit is the limiter-formatted rate applied to the forecast
	// endpoint (e.g. "10-M" for 10 requests per minute).
	RateLimit string

	CORSAllowedOrigins string `mapstructure:"CORS_ALLOWED_ORIGINS"`

	PosthogAPIKey string `mapstructure:"POSTHOG_API_KEY"`

	// LoadDemoData seeds the in-memory store with a demo dataset on boot.
	LoadDemoData bool
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	viper.SetDefault("GEMINI_BASE_URL", "")
	viper.SetDefault("ALERT_DEBOUNCE", "1s")
	viper.SetDefault("RATE_LIMIT", "10-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("LOAD_DEMO_DATA", false)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.GeminiAPIKey = viper.GetString("GEMINI_API_KEY")
	if cfg.GeminiAPIKey == "" {
		log.Println("Warning: GEMINI_API_KEY not set. AI alerts and forecasts will not function.")
	}
	cfg.GeminiModel = viper.GetString("GEMINI_MODEL")
	cfg.GeminiBaseURL = viper.GetString("GEMINI_BASE_URL")

	debounceStr := viper.GetString("ALERT_DEBOUNCE")
	debounce, err := time.ParseDuration(debounceStr)
	if err != nil || debounce <= 0 {
		debounce = time.Second
		if debounceStr != "" {
			log.Printf("Warning: Invalid value for ALERT_DEBOUNCE ('%s'). Defaulting to %s.\n", debounceStr, debounce.String())
		}
	}
	cfg.AlertDebounce = debounce

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.CORSAllowedOrigins = viper.GetString("CORS_ALLOWED_ORIGINS")
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")
	cfg.LoadDemoData = viper.GetBool("LOAD_DEMO_DATA")

	return cfg, nil
}
