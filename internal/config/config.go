package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/amaumene/trakt-mcp/internal/pagination"
)

// Config holds all application configuration
type Config struct {
	// Trakt
	TraktClientID     string
	TraktClientSecret string
	TraktAPIURL       string

	// Pagination
	DefaultLimit  int // items returned when a tool call gives no limit
	MaxPageSize   int // largest page the Trakt API accepts
	FetchAllLimit int // item cap for limit=0 ("fetch all") requests
	MaxPages      int // page-fetch ceiling per call

	// Paths
	TokenFile string // $CONFIG_DIR/token.json

	// Logging
	LogLevel string
}

// Load loads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Setup viper FIRST to load .env file
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Load .env file if it exists (ignore if not found)
	_ = viper.ReadInConfig()

	// Set defaults
	viper.SetDefault("TRAKT_API_URL", "https://api.trakt.tv")
	viper.SetDefault("DEFAULT_LIMIT", pagination.DefaultLimit)
	viper.SetDefault("MAX_PAGE_SIZE", pagination.DefaultMaxPageSize)
	viper.SetDefault("FETCH_ALL_LIMIT", pagination.DefaultFetchAllLimit)
	viper.SetDefault("MAX_PAGES", pagination.DefaultMaxPages)
	viper.SetDefault("LOG_LEVEL", "info")

	// NOW read CONFIG_DIR from viper (which has loaded .env file)
	configDir := viper.GetString("CONFIG_DIR")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(homeDir, ".config", "trakt-mcp")
	} else {
		// Convert relative path to absolute path
		absPath, err := filepath.Abs(configDir)
		if err != nil {
			return nil, fmt.Errorf("failed to get absolute path for CONFIG_DIR: %w", err)
		}
		configDir = absPath
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	config := &Config{
		// Trakt
		TraktClientID:     viper.GetString("TRAKT_CLIENT_ID"),
		TraktClientSecret: viper.GetString("TRAKT_CLIENT_SECRET"),
		TraktAPIURL:       viper.GetString("TRAKT_API_URL"),

		// Pagination
		DefaultLimit:  viper.GetInt("DEFAULT_LIMIT"),
		MaxPageSize:   viper.GetInt("MAX_PAGE_SIZE"),
		FetchAllLimit: viper.GetInt("FETCH_ALL_LIMIT"),
		MaxPages:      viper.GetInt("MAX_PAGES"),

		// Paths
		TokenFile: filepath.Join(configDir, "token.json"),

		// Logging
		LogLevel: viper.GetString("LOG_LEVEL"),
	}

	// Validate required fields
	if config.TraktClientID == "" {
		return nil, fmt.Errorf("TRAKT_CLIENT_ID is required")
	}
	if config.TraktClientSecret == "" {
		return nil, fmt.Errorf("TRAKT_CLIENT_SECRET is required")
	}

	return config, nil
}

// Pagination returns the pagination constants as a pagination.Config.
func (c *Config) Pagination() pagination.Config {
	return pagination.Config{
		DefaultLimit:  c.DefaultLimit,
		MaxPageSize:   c.MaxPageSize,
		FetchAllLimit: c.FetchAllLimit,
		MaxPages:      c.MaxPages,
	}
}
