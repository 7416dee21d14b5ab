package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config aggregates all application configuration
type Config struct {
	Log      LogConfig      `yaml:"log"`
	Scraper  ScraperConfig  `yaml:"scraper"`
	Exchange ExchangeConfig `yaml:"exchange"`
	Search   SearchConfig   `yaml:"search"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

type ScraperConfig struct {
	BaseURL           string  `yaml:"base_url" env:"SCRAPER_BASE_URL" env-default:"https://flights-scraper.fly.dev"`
	TimeoutSeconds    int     `yaml:"timeout_seconds" env:"SCRAPER_TIMEOUT_SECONDS" env-default:"45"`
	RequestsPerSecond float64 `yaml:"requests_per_second" env:"SCRAPER_REQUESTS_PER_SECOND" env-default:"1"`
	Burst             int     `yaml:"burst" env:"SCRAPER_BURST" env-default:"3"`
}

type ExchangeConfig struct {
	BaseURL         string `yaml:"base_url" env:"EXCHANGE_BASE_URL" env-default:"https://api.frankfurter.app"`
	TimeoutSeconds  int    `yaml:"timeout_seconds" env:"EXCHANGE_TIMEOUT_SECONDS" env-default:"10"`
	CacheTTLMinutes int    `yaml:"cache_ttl_minutes" env:"EXCHANGE_CACHE_TTL_MINUTES" env-default:"60"`
}

type SearchConfig struct {
	MaxAttempts         int `yaml:"max_attempts" env:"SEARCH_MAX_ATTEMPTS" env-default:"3"`
	RetryBackoffSeconds int `yaml:"retry_backoff_seconds" env:"SEARCH_RETRY_BACKOFF_SECONDS" env-default:"2"`
}

// Load reads configuration from config.yaml and environment variables
// Priority: Env Vars > Config File > Defaults
func Load() (*Config, error) {
	var cfg Config

	err := cleanenv.ReadConfig("config.yaml", &cfg)
	if err != nil {
		// If file doesn't exist, just read env vars
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to read env config: %w", err)
		}
	}

	return &cfg, nil
}
