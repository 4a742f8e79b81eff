// Package config provides configuration loading and structs for the Kotae CLI and server.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
type Config struct {
	Debug      bool             `yaml:"debug"`
	Document   DocumentConfig   `yaml:"document"`
	Chunking   ChunkingConfig   `yaml:"chunking"`
	Embedding  EmbeddingConfig  `yaml:"embedding"`
	Retrieval  RetrievalConfig  `yaml:"retrieval"`
	Generation GenerationConfig `yaml:"generation"`
	History    HistoryConfig    `yaml:"history"`
	Server     ServerConfig     `yaml:"server"`
}

// DocumentConfig names the source document and whether to reload it on change.
type DocumentConfig struct {
	Path  string `yaml:"path"`
	Watch bool   `yaml:"watch"`
}

// ChunkingConfig holds the chunker parameters. Size is the chunk budget in
// characters; Overlap is the number of trailing sentences carried into the
// next chunk.
type ChunkingConfig struct {
	Size    int `yaml:"size"`
	Overlap int `yaml:"overlap"`
}

// EmbeddingConfig selects and configures the embedding backend.
// Provider is one of "onnx", "ollama", "openai", or "mock".
type EmbeddingConfig struct {
	Provider   string `yaml:"provider"`
	ModelPath  string `yaml:"model_path"` // onnx
	Model      string `yaml:"model"`      // ollama / openai model name
	ServerURL  string `yaml:"server_url"` // ollama server or openai base URL
	APIKey     string `yaml:"api_key"`    // openai
	Dimensions int    `yaml:"dimensions"`
	MaxTokens  int    `yaml:"max_tokens"`
	CacheSize  int    `yaml:"cache_size"`
}

// RetrievalConfig holds retrieval parameters.
type RetrievalConfig struct {
	TopK int `yaml:"top_k"`
}

// GenerationConfig selects and configures the answer generator.
// Provider is one of "ollama", "openai", or "template".
type GenerationConfig struct {
	Provider    string   `yaml:"provider"`
	Model       string   `yaml:"model"`
	ServerURL   string   `yaml:"server_url"`
	APIKey      string   `yaml:"api_key"`
	Temperature *float64 `yaml:"temperature"`
	MaxTokens   int      `yaml:"max_tokens"`
	TopK        int      `yaml:"top_k"`
	TopP        float64  `yaml:"top_p"`
}

// TemperatureOrDefault returns the sampling temperature; 0 is a valid
// setting, so absence is distinguished with a pointer.
func (g *GenerationConfig) TemperatureOrDefault() float64 {
	if g.Temperature != nil {
		return *g.Temperature
	}
	return 0.7
}

// HistoryConfig holds the Q&A transcript store settings.
type HistoryConfig struct {
	Enabled      *bool  `yaml:"enabled"`
	DatabasePath string `yaml:"database_path"`
}

// EnabledOrDefault returns whether history is recorded; defaults to true when unset.
func (h *HistoryConfig) EnabledOrDefault() bool {
	if h.Enabled != nil {
		return *h.Enabled
	}
	return true
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// Load reads and parses the config file at path, expands paths, and applies defaults.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)

	configDir := filepath.Dir(path)
	if cfg.Document.Path != "" {
		cfg.Document.Path = expandPath(cfg.Document.Path, configDir)
	}
	cfg.Embedding.ModelPath = expandPath(cfg.Embedding.ModelPath, configDir)
	cfg.History.DatabasePath = expandPath(cfg.History.DatabasePath, configDir)

	return &cfg, nil
}

// Save writes the config to path. Used by the init subcommand to write a
// starter config.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// expandPath converts a path to absolute. Paths starting with "./" are relative to configDir;
// "~/" and other relative paths are relative to the home directory.
func expandPath(path string, configDir string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "./") || path == "." {
		return filepath.Join(configDir, path)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, strings.TrimPrefix(path, "~/"))
	}
	return path
}
