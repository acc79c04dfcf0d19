package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config содержит настройки клиента синхронизации
type Config struct {
	ServerURL     string        `yaml:"server_url"`
	DBPath        string        `yaml:"db_path"`
	NodeID        string        `yaml:"node_id"`
	MaxRetries    int           `yaml:"max_retries"`
	ProbeInterval time.Duration `yaml:"probe_interval"`
}

// Default returns the configuration defaults
func Default() Config {
	return Config{
		ServerURL:     "http://localhost:8080",
		DBPath:        "docsync-client.db",
		MaxRetries:    5,
		ProbeInterval: 15 * time.Second,
	}
}

// Load reads the YAML config file at path over the defaults.
// Отсутствующий файл — не ошибка: действуют значения по умолчанию.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate проверяет согласованность настроек
func (c *Config) Validate() error {
	if c.ServerURL == "" {
		return fmt.Errorf("server_url is required")
	}
	if c.DBPath == "" {
		return fmt.Errorf("db_path is required")
	}
	if c.MaxRetries < 1 {
		return fmt.Errorf("max_retries must be at least 1")
	}
	if c.ProbeInterval < time.Second {
		return fmt.Errorf("probe_interval must be at least 1s")
	}
	return nil
}
