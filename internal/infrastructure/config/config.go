package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for our application
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Engine  EngineConfig  `mapstructure:"engine"`
	Log     LogConfig     `mapstructure:"log"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host     string `mapstructure:"host"`
	HTTPPort int    `mapstructure:"http_port"`
}

// CatalogConfig selects the language catalog source.
type CatalogConfig struct {
	// Source is "embedded" or "sqlite".
	Source string `mapstructure:"source"`
	// Path is the sqlite database file; ignored for the embedded source.
	Path string `mapstructure:"path"`
}

// EngineConfig tunes the scoring pipeline.
type EngineConfig struct {
	Weights WeightsConfig `mapstructure:"weights"`
	// TopK is the default recommendation count served to callers.
	TopK int `mapstructure:"top_k"`
}

// WeightsConfig distributes the match score across the five dimensions.
type WeightsConfig struct {
	CulturalMatch   float64 `mapstructure:"cultural_match"`
	DifficultyFit   float64 `mapstructure:"difficulty_fit"`
	GoalAlignment   float64 `mapstructure:"goal_alignment"`
	TimeFeasibility float64 `mapstructure:"time_feasibility"`
	PracticalValue  float64 `mapstructure:"practical_value"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Enable reading from environment variables
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read configuration file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "localhost")
	viper.SetDefault("server.http_port", 8080)

	// Catalog defaults
	viper.SetDefault("catalog.source", "embedded")
	viper.SetDefault("catalog.path", "languages.db")

	// Engine defaults
	viper.SetDefault("engine.weights.cultural_match", 0.30)
	viper.SetDefault("engine.weights.difficulty_fit", 0.25)
	viper.SetDefault("engine.weights.goal_alignment", 0.20)
	viper.SetDefault("engine.weights.time_feasibility", 0.15)
	viper.SetDefault("engine.weights.practical_value", 0.10)
	viper.SetDefault("engine.top_k", 6)

	// Log defaults
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "json")
}

// Validate rejects configurations the engine must not start with.
func (c *Config) Validate() error {
	switch c.Catalog.Source {
	case "embedded", "sqlite":
	default:
		return fmt.Errorf("unknown catalog source %q", c.Catalog.Source)
	}
	if c.Catalog.Source == "sqlite" && c.Catalog.Path == "" {
		return fmt.Errorf("catalog path required for the sqlite source")
	}
	if c.Engine.TopK <= 0 {
		return fmt.Errorf("engine top_k must be positive, got %d", c.Engine.TopK)
	}

	w := c.Engine.Weights
	sum := w.CulturalMatch + w.DifficultyFit + w.GoalAlignment + w.TimeFeasibility + w.PracticalValue
	if diff := sum - 1.0; diff > 1e-9 || diff < -1e-9 {
		return fmt.Errorf("engine weights sum to %.4f, want 1.0", sum)
	}
	return nil
}
