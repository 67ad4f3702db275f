package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfig_Defaults(t *testing.T) {
	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "gemini-2.0-flash", cfg.AI.Model)
	assert.Equal(t, 10, cfg.AI.TimeoutSeconds)
	assert.Equal(t, "その他", cfg.AI.FallbackCategory)
	assert.Equal(t, 15, cfg.Cache.ClassificationTTLMinutes)
	assert.Equal(t, 30, cfg.Cache.CategoryListTTLMinutes)
	assert.Equal(t, 0.6, cfg.Categorization.ConfidenceThreshold)
	assert.Equal(t, 50000, cfg.Parser.MaxItemPrice)
	assert.Equal(t, 2020, cfg.Parser.MinYear)
	assert.Equal(t, 2030, cfg.Parser.MaxYear)
	assert.False(t, cfg.AI.Enabled)
}

func TestInitializeConfig_EnvOverride(t *testing.T) {
	require.NoError(t, os.Setenv("RECEIPT_LOG_LEVEL", "debug"))
	defer func() { _ = os.Unsetenv("RECEIPT_LOG_LEVEL") }()

	cfg, err := InitializeConfig()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestInitializeConfig_GeminiAPIKeyBinding(t *testing.T) {
	require.NoError(t, os.Setenv("GEMINI_API_KEY", "test-key-123"))
	defer func() { _ = os.Unsetenv("GEMINI_API_KEY") }()

	cfg, err := InitializeConfig()
	require.NoError(t, err)
	assert.Equal(t, "test-key-123", cfg.AI.APIKey)
}

func TestValidateConfig(t *testing.T) {
	base := func() *Config {
		c := &Config{}
		c.AI.TimeoutSeconds = 10
		c.Cache.ClassificationTTLMinutes = 15
		c.Cache.CategoryListTTLMinutes = 30
		c.Categorization.ConfidenceThreshold = 0.6
		c.Parser.MaxItemPrice = 50000
		c.Parser.MinYear = 2020
		c.Parser.MaxYear = 2030
		return c
	}

	assert.NoError(t, validateConfig(base()))

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero timeout", func(c *Config) { c.AI.TimeoutSeconds = 0 }},
		{"zero classification ttl", func(c *Config) { c.Cache.ClassificationTTLMinutes = 0 }},
		{"zero list ttl", func(c *Config) { c.Cache.CategoryListTTLMinutes = 0 }},
		{"threshold above one", func(c *Config) { c.Categorization.ConfidenceThreshold = 1.5 }},
		{"zero item price", func(c *Config) { c.Parser.MaxItemPrice = 0 }},
		{"inverted year window", func(c *Config) { c.Parser.MinYear = 2031 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(c)
			assert.Error(t, validateConfig(c))
		})
	}
}
