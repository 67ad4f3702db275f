// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter      string `mapstructure:"delimiter" yaml:"delimiter"`
		IncludeHeaders bool   `mapstructure:"include_headers" yaml:"include_headers"`
	} `mapstructure:"csv" yaml:"csv"`

	AI struct {
		Enabled          bool   `mapstructure:"enabled" yaml:"enabled"`
		Model            string `mapstructure:"model" yaml:"model"`
		TimeoutSeconds   int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
		FallbackCategory string `mapstructure:"fallback_category" yaml:"fallback_category"`
		APIKey           string `mapstructure:"api_key" yaml:"-"` // Never serialize API key
	} `mapstructure:"ai" yaml:"ai"`

	Cache struct {
		ClassificationTTLMinutes int `mapstructure:"classification_ttl_minutes" yaml:"classification_ttl_minutes"`
		CategoryListTTLMinutes   int `mapstructure:"category_list_ttl_minutes" yaml:"category_list_ttl_minutes"`
	} `mapstructure:"cache" yaml:"cache"`

	Categorization struct {
		ConfidenceThreshold float64 `mapstructure:"confidence_threshold" yaml:"confidence_threshold"`
	} `mapstructure:"categorization" yaml:"categorization"`

	Parser struct {
		MaxItemPrice int `mapstructure:"max_item_price" yaml:"max_item_price"`
		MinYear      int `mapstructure:"min_year" yaml:"min_year"`
		MaxYear      int `mapstructure:"max_year" yaml:"max_year"`
	} `mapstructure:"parser" yaml:"parser"`

	Data struct {
		CategoriesFile   string `mapstructure:"categories_file" yaml:"categories_file"`
		AliasesFile      string `mapstructure:"aliases_file" yaml:"aliases_file"`
		StoreFormatsFile string `mapstructure:"store_formats_file" yaml:"store_formats_file"`
	} `mapstructure:"data" yaml:"data"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then an optional config.yaml, then RECEIPT_-prefixed env vars.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.receipt-csv")
	v.AddConfigPath(".receipt-csv")
	v.AddConfigPath(".")

	v.SetEnvPrefix("RECEIPT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			Logger.Warnf("error reading config file %s: %v", v.ConfigFileUsed(), err)
		}
	}

	// The API key always comes from the unprefixed environment variable.
	if err := v.BindEnv("ai.api_key", "GEMINI_API_KEY"); err != nil {
		Logger.Warnf("failed to bind GEMINI_API_KEY environment variable: %v", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")
	v.SetDefault("csv.include_headers", true)

	v.SetDefault("ai.enabled", false)
	v.SetDefault("ai.model", "gemini-2.0-flash")
	v.SetDefault("ai.timeout_seconds", 10)
	v.SetDefault("ai.fallback_category", "その他")

	v.SetDefault("cache.classification_ttl_minutes", 15)
	v.SetDefault("cache.category_list_ttl_minutes", 30)

	v.SetDefault("categorization.confidence_threshold", 0.6)

	v.SetDefault("parser.max_item_price", 50000)
	v.SetDefault("parser.min_year", 2020)
	v.SetDefault("parser.max_year", 2030)

	v.SetDefault("data.categories_file", "categories.yaml")
	v.SetDefault("data.aliases_file", "aliases.yaml")
	v.SetDefault("data.store_formats_file", "store_formats.yaml")
}

// validateConfig performs sanity checks on values that would otherwise fail
// deep inside the pipeline.
func validateConfig(c *Config) error {
	if c.AI.TimeoutSeconds <= 0 {
		return fmt.Errorf("ai.timeout_seconds must be positive, got %d", c.AI.TimeoutSeconds)
	}
	if c.Cache.ClassificationTTLMinutes <= 0 {
		return fmt.Errorf("cache.classification_ttl_minutes must be positive, got %d", c.Cache.ClassificationTTLMinutes)
	}
	if c.Cache.CategoryListTTLMinutes <= 0 {
		return fmt.Errorf("cache.category_list_ttl_minutes must be positive, got %d", c.Cache.CategoryListTTLMinutes)
	}
	if c.Categorization.ConfidenceThreshold < 0 || c.Categorization.ConfidenceThreshold > 1 {
		return fmt.Errorf("categorization.confidence_threshold must be in [0,1], got %f", c.Categorization.ConfidenceThreshold)
	}
	if c.Parser.MaxItemPrice <= 0 {
		return fmt.Errorf("parser.max_item_price must be positive, got %d", c.Parser.MaxItemPrice)
	}
	if c.Parser.MinYear > c.Parser.MaxYear {
		return fmt.Errorf("parser.min_year %d exceeds parser.max_year %d", c.Parser.MinYear, c.Parser.MaxYear)
	}
	return nil
}
