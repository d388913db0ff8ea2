package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults used when the config file omits a field
const (
	DefaultLanguage             = "en"
	DefaultMaxVideos            = 10
	DefaultPacingMs             = 500
	DefaultTranscriptTimeoutSec = 5
	DefaultOutputDir            = "yt-scribe-output"
)

// Config holds all configuration for the application
type Config struct {
	APIKey               string `yaml:"api_key"`
	Language             string `yaml:"language"`
	MaxVideos            int    `yaml:"max_videos"`
	PacingMs             int    `yaml:"pacing_ms"`
	TranscriptTimeoutSec int    `yaml:"transcript_timeout_s"`
	OutputDir            string `yaml:"output_dir"`
}

// NewConfig loads configuration with the following priority:
// Environment variables > Config file (required)
func NewConfig() (*Config, error) {
	// Load from config file (required)
	config := &Config{}
	if err := loadConfigFile(config); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("configuration file not found. Please run 'ytscribe config init' to create it")
		}
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	// Apply environment variables (can override config file)
	if envKey := os.Getenv("YOUTUBE_API_KEY"); envKey != "" {
		config.APIKey = envKey
	}
	if envLang := os.Getenv("YTSCRIBE_LANG"); envLang != "" {
		config.Language = envLang
	}

	config.applyDefaults()

	return config, nil
}

// applyDefaults fills zero-valued fields with defaults
func (c *Config) applyDefaults() {
	if c.Language == "" {
		c.Language = DefaultLanguage
	}
	if c.MaxVideos == 0 {
		c.MaxVideos = DefaultMaxVideos
	}
	if c.PacingMs == 0 {
		c.PacingMs = DefaultPacingMs
	}
	if c.TranscriptTimeoutSec == 0 {
		c.TranscriptTimeoutSec = DefaultTranscriptTimeoutSec
	}
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
}

// Pacing returns the inter-video pacing delay
func (c *Config) Pacing() time.Duration {
	return time.Duration(c.PacingMs) * time.Millisecond
}

// TranscriptTimeout returns the per-video transcript resolution budget
func (c *Config) TranscriptTimeout() time.Duration {
	return time.Duration(c.TranscriptTimeoutSec) * time.Second
}

// InitConfig creates a new configuration file with an example API key entry
func InitConfig(apiKey string) error {
	configDir, err := getConfigDir()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath, err := getConfigFilePath()
	if err != nil {
		return err
	}

	// Check if config file already exists
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("configuration file already exists: %s", configPath)
	}

	if apiKey == "" {
		apiKey = "your-youtube-data-api-key"
	}

	// Prepare YAML content with comments
	yamlContent := fmt.Sprintf(`# yt-scribe configuration file
# Get an API key at https://console.cloud.google.com/ (YouTube Data API v3)

api_key: "%s"
language: "%s"
max_videos: %d
pacing_ms: %d
transcript_timeout_s: %d
output_dir: "%s"
`, apiKey, DefaultLanguage, DefaultMaxVideos, DefaultPacingMs, DefaultTranscriptTimeoutSec, DefaultOutputDir)

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetConfigPath returns the path to the configuration file
func GetConfigPath() (string, error) {
	return getConfigFilePath()
}

// getConfigDir returns the configuration directory path (~/.yt-scribe)
func getConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".yt-scribe"), nil
}

// getConfigFilePath returns the full path to the config file
func getConfigFilePath() (string, error) {
	configDir, err := getConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.yaml"), nil
}

// loadConfigFile loads configuration from ~/.yt-scribe/config.yaml
func loadConfigFile(config *Config) error {
	configPath, err := getConfigFilePath()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}
