package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type ServerConfig struct {
	Port           string   `toml:"port"`
	AllowedOrigins []string `toml:"allowed_origins"`
	ReportsDir     string   `toml:"reports_dir"`
}

type LLMConfig struct {
	Provider    string `toml:"provider"`
	Model       string `toml:"model"`
	MapperModel string `toml:"mapper_model"`
	APIKey      string `toml:"api_key"`
	BaseURL     string `toml:"base_url"`
}

type GeneratorConfig struct {
	DefaultSampleSize int `toml:"default_sample_size"`
	MaxSampleSize     int `toml:"max_sample_size"`
}

type PromptsConfig struct {
	Interpret string `toml:"interpret"`
	Mapping   string `toml:"mapping"`
}

type Config struct {
	Server    ServerConfig    `toml:"server"`
	LLM       LLMConfig       `toml:"llm"`
	Generator GeneratorConfig `toml:"generator"`
	Prompts   PromptsConfig   `toml:"prompts"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns the configuration used when no config file is present.
// The demo is expected to come up in a usable state without one.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "5000"
	}
	if len(c.Server.AllowedOrigins) == 0 {
		c.Server.AllowedOrigins = []string{"http://localhost:3000"}
	}
	if c.Server.ReportsDir == "" {
		c.Server.ReportsDir = "reports"
	}
	if c.LLM.Provider == "" {
		c.LLM.Provider = "ollama"
	}
	if c.LLM.BaseURL == "" && c.LLM.Provider == "ollama" {
		c.LLM.BaseURL = "http://localhost:11434"
	}
	if c.LLM.Model == "" {
		c.LLM.Model = "gemma:2b"
	}
	if c.LLM.MapperModel == "" {
		c.LLM.MapperModel = "phi3:mini"
	}
	if c.Generator.DefaultSampleSize == 0 {
		c.Generator.DefaultSampleSize = 10
	}
	if c.Generator.MaxSampleSize == 0 {
		c.Generator.MaxSampleSize = 100
	}
	if c.Prompts.Interpret == "" {
		c.Prompts.Interpret = DefaultInterpretPrompt
	}
	if c.Prompts.Mapping == "" {
		c.Prompts.Mapping = DefaultMappingPrompt
	}
}
