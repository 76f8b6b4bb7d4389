package config

import (
	"os"
	"testing"
)

func validConfig() Config {
	return Config{
		InputDir:   "data/input",
		OutputDir:  "data/output",
		ChunkSize:  30,
		MaxWorkers: 4,
		APIKey:     "sk-test",
		BaseURL:    "https://api.deepseek.com",
		Prompt:     "Translate the following subtitles into Chinese.",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "missing input dir",
			mutate:  func(c *Config) { c.InputDir = "" },
			wantErr: true,
		},
		{
			name:    "missing output dir",
			mutate:  func(c *Config) { c.OutputDir = "" },
			wantErr: true,
		},
		{
			name:    "zero chunk size",
			mutate:  func(c *Config) { c.ChunkSize = 0 },
			wantErr: true,
		},
		{
			name:    "negative chunk size",
			mutate:  func(c *Config) { c.ChunkSize = -5 },
			wantErr: true,
		},
		{
			name:    "zero max workers",
			mutate:  func(c *Config) { c.MaxWorkers = 0 },
			wantErr: true,
		},
		{
			name:    "missing prompt",
			mutate:  func(c *Config) { c.Prompt = "" },
			wantErr: true,
		},
		{
			name:    "unknown provider",
			mutate:  func(c *Config) { c.Provider = "anthropic" },
			wantErr: true,
		},
		{
			name:    "openai provider requires base url",
			mutate:  func(c *Config) { c.BaseURL = "" },
			wantErr: true,
		},
		{
			name:    "gemini provider works without base url",
			mutate:  func(c *Config) { c.Provider = ProviderGemini; c.BaseURL = "" },
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Provider != ProviderOpenAI {
		t.Errorf("Provider = %v, want %v", cfg.Provider, ProviderOpenAI)
	}
	if cfg.Model != "deepseek-chat" {
		t.Errorf("Model = %v, want deepseek-chat", cfg.Model)
	}
	if cfg.TimeoutSeconds != 90 {
		t.Errorf("TimeoutSeconds = %v, want 90", cfg.TimeoutSeconds)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %v, want info", cfg.Logging.Level)
	}
}

func TestLoad(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
input_dir: "data/input"
output_dir: "data/output"
chunk_size: 30
max_workers: 4
api_key: "sk-test"
base_url: "https://api.deepseek.com"
model: "deepseek-chat"
prompt: "Translate the following subtitles into Chinese."

logging:
  level: "debug"
  format: "text"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.InputDir != "data/input" {
		t.Errorf("InputDir = %v, want %v", cfg.InputDir, "data/input")
	}
	if cfg.ChunkSize != 30 {
		t.Errorf("ChunkSize = %v, want 30", cfg.ChunkSize)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %v, want debug", cfg.Logging.Level)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
