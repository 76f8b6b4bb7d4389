package config

import (
	"fmt"
	"os"
)

// Provider names accepted in the `provider` field.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

type Config struct {
	InputDir       string `yaml:"input_dir"`
	OutputDir      string `yaml:"output_dir"`
	ChunkSize      int    `yaml:"chunk_size"`
	MaxWorkers     int    `yaml:"max_workers"`
	APIKey         string `yaml:"api_key"`
	BaseURL        string `yaml:"base_url"`
	Model          string `yaml:"model"`
	Prompt         string `yaml:"prompt"`
	Provider       string `yaml:"provider"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	ExportDocx     bool   `yaml:"export_docx"`

	Logging LoggingConfig `yaml:"logging"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Validate checks required fields and bounds, and applies defaults.
// Bounds are rejected here so a bad chunk size fails at startup, not mid-run.
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return fmt.Errorf("input_dir is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	if c.ChunkSize <= 0 {
		return fmt.Errorf("chunk_size must be a positive integer, got %d", c.ChunkSize)
	}
	if c.MaxWorkers <= 0 {
		return fmt.Errorf("max_workers must be a positive integer, got %d", c.MaxWorkers)
	}
	if c.Prompt == "" {
		return fmt.Errorf("prompt is required")
	}

	if c.Provider == "" {
		c.Provider = ProviderOpenAI
	}
	if c.Provider != ProviderOpenAI && c.Provider != ProviderGemini {
		return fmt.Errorf("provider must be %q or %q, got %q", ProviderOpenAI, ProviderGemini, c.Provider)
	}

	if c.APIKey == "" {
		// Fall back to the environment so keys stay out of config files
		if key := os.Getenv("SUBTRANS_API_KEY"); key != "" {
			c.APIKey = key
		} else if key := os.Getenv("OPENAI_API_KEY"); key != "" {
			c.APIKey = key
		}
	}
	if c.APIKey == "" {
		return fmt.Errorf("api_key is required (config file, SUBTRANS_API_KEY or OPENAI_API_KEY)")
	}

	if c.Provider == ProviderOpenAI && c.BaseURL == "" {
		return fmt.Errorf("base_url is required for the openai provider")
	}

	if c.Model == "" {
		c.Model = "deepseek-chat"
	}
	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = 90
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("timeout_seconds must be positive, got %d", c.TimeoutSeconds)
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}
