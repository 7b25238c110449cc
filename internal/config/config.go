// Package config loads application configuration from an optional YAML file
// layered with environment variables (and a .env file when present).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// RunnerConfig configures the external model runner connection.
type RunnerConfig struct {
	URL         string `yaml:"url"`
	TimeoutSecs int    `yaml:"timeout_secs"`
}

// IngestConfig configures document ingestion and retrieval.
type IngestConfig struct {
	DocumentsDir    string `yaml:"documents_dir"`
	UploadDir       string `yaml:"upload_dir"`
	Watch           bool   `yaml:"watch"`
	TopK            int    `yaml:"top_k"`
	MaxContextChars int    `yaml:"max_context_chars"`
}

// StoreConfig selects the document store backend.
type StoreConfig struct {
	Type string `yaml:"type"` // memory | sqlite
	Path string `yaml:"path"` // data directory for sqlite
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Config is the root application configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Runner RunnerConfig `yaml:"runner"`
	Ingest IngestConfig `yaml:"ingest"`
	Store  StoreConfig  `yaml:"store"`
	Log    LogConfig    `yaml:"log"`
}

// Load reads configuration from path (missing file falls back to defaults),
// then applies environment overrides and validates. A .env file in the
// working directory is loaded first when present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	applyEnvOverrides(cfg)
	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the loaded configuration for usable values.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server addr is required")
	}
	if c.Runner.URL == "" {
		return fmt.Errorf("runner url is required")
	}
	if c.Store.Type != "memory" && c.Store.Type != "sqlite" {
		return fmt.Errorf("unknown store type %q", c.Store.Type)
	}
	return nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{Addr: ":8080"},
		Runner: RunnerConfig{URL: "http://localhost:5000", TimeoutSecs: 300},
		Ingest: IngestConfig{
			DocumentsDir:    "./documents",
			UploadDir:       "./uploads",
			Watch:           true,
			TopK:            1,
			MaxContextChars: 1000,
		},
		Store: StoreConfig{Type: "memory", Path: "./data"},
		Log:   LogConfig{Level: "info"},
	}
}

func applyEnvOverrides(cfg *Config) {
	cfg.Server.Addr = getEnv("ADDR", cfg.Server.Addr)
	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Addr = ":" + port
	}
	cfg.Runner.URL = getEnv("RUNNER_URL", cfg.Runner.URL)
	cfg.Runner.TimeoutSecs = getEnvAsInt("RUNNER_TIMEOUT_SECS", cfg.Runner.TimeoutSecs)
	cfg.Ingest.DocumentsDir = getEnv("DOCUMENTS_DIR", cfg.Ingest.DocumentsDir)
	cfg.Ingest.UploadDir = getEnv("UPLOAD_DIR", cfg.Ingest.UploadDir)
	cfg.Store.Type = getEnv("STORE_TYPE", cfg.Store.Type)
	cfg.Store.Path = getEnv("STORE_PATH", cfg.Store.Path)
	cfg.Log.Level = getEnv("LOG_LEVEL", cfg.Log.Level)
}

func applyDefaults(cfg *Config) {
	if cfg.Ingest.TopK <= 0 {
		cfg.Ingest.TopK = 1
	}
	if cfg.Ingest.MaxContextChars <= 0 {
		cfg.Ingest.MaxContextChars = 1000
	}
	if cfg.Runner.TimeoutSecs <= 0 {
		cfg.Runner.TimeoutSecs = 300
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
