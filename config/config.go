package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all configurable settings for passaudit.
type Config struct {
	LogFile        string  `yaml:"log_file"`
	LogLevel       string  `yaml:"log_level"`
	Production     bool    `yaml:"production"`
	ReportWidth    int     `yaml:"report_width"`
	GenerateLength int     `yaml:"generate_length"`
	MinEntropyBits float64 `yaml:"min_entropy_bits"`
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		LogFile:        "passaudit.log",
		LogLevel:       "info",
		Production:     false,
		ReportWidth:    72,
		GenerateLength: 20,
		MinEntropyBits: 60,
	}
}

// Load reads the configuration from the specified path or the default path if empty.
func Load(path string) (*Config, error) {
	cfg := NewDefaultConfig()

	if path == "" {
		var err error
		path, err = DefaultConfigPath()
		if err != nil {
			return nil, err
		}
	}

	if _, err := os.Stat(path); err == nil {
		if err := loadConfigFromFile(path, cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	loadConfigFromEnv(cfg)

	return cfg, nil
}

// DefaultConfigPath returns the OS-specific path for the config file.
func DefaultConfigPath() (string, error) {
	var path string
	switch runtime.GOOS {
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			return "", fmt.Errorf("APPDATA environment variable not set")
		}
		path = filepath.Join(appData, "PassAudit", "passaudit-config.yaml")
	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		path = filepath.Join(homeDir, "Library", "Application Support", "PassAudit", "passaudit-config.yaml")
	case "linux":
		path = filepath.Join("/etc", "passaudit", "passaudit-config.yaml")
	default:
		return "", fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
	return path, nil
}

// loadConfigFromFile reads the configuration from the specified file path and unmarshal it into the Config struct.
func loadConfigFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file '%s': %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config from file '%s': %w", path, err)
	}
	return nil
}

// loadConfigFromEnv populates the Config struct with values from environment variables.
func loadConfigFromEnv(cfg *Config) {
	if logFile := os.Getenv("PASSAUDIT_LOG_FILE"); logFile != "" {
		cfg.LogFile = logFile
	}
	if logLevel := os.Getenv("PASSAUDIT_LOG_LEVEL"); logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if genLen := os.Getenv("PASSAUDIT_GENERATE_LENGTH"); genLen != "" {
		if n, err := strconv.Atoi(genLen); err == nil && n > 0 {
			cfg.GenerateLength = n
		}
	}
}

// WriteConfigToFile writes the given config to path, or to the default
// config path when path is empty.
func WriteConfigToFile(cfg *Config, path string) error {
	if path == "" {
		var err error
		path, err = DefaultConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get default config path: %w", err)
		}
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
