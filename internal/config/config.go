package config

import (
	"github.com/spf13/viper"
)

// Config stores all configuration for the application.
type Config struct {
	ServerPort        string `mapstructure:"SERVER_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	SerpAPIKey        string `mapstructure:"SERPAPI_KEY"`
	FetchTimeout      int    `mapstructure:"FETCH_TIMEOUT_SECONDS"`
	SearchResultLimit int    `mapstructure:"SEARCH_RESULT_LIMIT"`
}

// Load reads configuration from file or environment variables.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	// Attempt to read the .env file, but don't fail if it's not present
	// This allows configuration purely through environment variables in production
	_ = viper.ReadInConfig()

	// Set default values. An empty DATABASE_URL selects the embedded
	// SQLite store; an empty SERPAPI_KEY skips the search API and leaves
	// corroboration to the scrape fallback.
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("SERPAPI_KEY", "")
	viper.SetDefault("FETCH_TIMEOUT_SECONDS", 10)
	viper.SetDefault("SEARCH_RESULT_LIMIT", 6)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
