package config

import (
	"github.com/spf13/viper"
)

// Config stores all configuration for the application.
type Config struct {
	PostgresURL        string `mapstructure:"POSTGRES_URL"`
	RedisAddr          string `mapstructure:"REDIS_ADDR"`
	ServerPort         string `mapstructure:"SERVER_PORT"`
	ScrapeWorkers      int    `mapstructure:"SCRAPE_WORKERS"`
	ScrapeTimeout      int    `mapstructure:"SCRAPE_TIMEOUT"`
	FetchTimeout       int    `mapstructure:"FETCH_TIMEOUT"`
	DetailFetchDelayMS int    `mapstructure:"DETAIL_FETCH_DELAY_MS"`
	TranslateDelayMS   int    `mapstructure:"TRANSLATE_DELAY_MS"`
	TranslateEndpoint  string `mapstructure:"TRANSLATE_ENDPOINT"`
	RescrapeHours      int    `mapstructure:"RESCRAPE_HOURS"`
	UserAgent          string `mapstructure:"USER_AGENT"`
	RenderJS           bool   `mapstructure:"RENDER_JS"`
}

// Load reads configuration from file or environment variables.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	// Attempt to read the .env file, but don't fail if it's not present
	// This allows configuration purely through environment variables in production
	_ = viper.ReadInConfig()

	// Set default values
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SCRAPE_WORKERS", 2)
	viper.SetDefault("SCRAPE_TIMEOUT", 600) // in seconds, whole category incl. detail pages
	viper.SetDefault("FETCH_TIMEOUT", 30)   // in seconds, single page
	viper.SetDefault("DETAIL_FETCH_DELAY_MS", 50)
	viper.SetDefault("TRANSLATE_DELAY_MS", 100)
	viper.SetDefault("TRANSLATE_ENDPOINT", "https://translate.googleapis.com/translate_a/single")
	viper.SetDefault("RESCRAPE_HOURS", 48)
	viper.SetDefault("USER_AGENT", "Mozilla/5.0")
	viper.SetDefault("RENDER_JS", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
