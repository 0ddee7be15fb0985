package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config defines server configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Transport TransportConfig `yaml:"transport"`
	Data      DataConfig      `yaml:"data"`
	Log       LogConfig       `yaml:"log"`
	Auth      AuthConfig      `yaml:"auth"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type TransportConfig struct {
	Mode string `yaml:"mode"` // "stdio" or "http"
}

type DataConfig struct {
	Dir     string `yaml:"dir"`
	Profile string `yaml:"profile"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type AuthConfig struct {
	Enabled bool   `yaml:"enabled"`
	APIKey  string `yaml:"api_key"`
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Transport: TransportConfig{
			Mode: "stdio",
		},
		Data: DataConfig{
			Dir:     "./data",
			Profile: "test",
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	if path := os.Getenv("LOCALMEM_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if mode := os.Getenv("LOCALMEM_TRANSPORT"); mode != "" {
		cfg.Transport.Mode = mode
	}
	if host := os.Getenv("LOCALMEM_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("LOCALMEM_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid LOCALMEM_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if dir := os.Getenv("LOCALMEM_DATA_DIR"); dir != "" {
		cfg.Data.Dir = dir
	}
	if profile := os.Getenv("LOCALMEM_PROFILE"); profile != "" {
		cfg.Data.Profile = profile
	}
	if level := os.Getenv("LOCALMEM_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if enabled := os.Getenv("LOCALMEM_AUTH_ENABLED"); enabled != "" {
		parsed, err := strconv.ParseBool(enabled)
		if err != nil {
			return Config{}, fmt.Errorf("invalid LOCALMEM_AUTH_ENABLED: %w", err)
		}
		cfg.Auth.Enabled = parsed
	}
	if key := os.Getenv("LOCALMEM_API_KEY"); key != "" {
		cfg.Auth.APIKey = key
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
