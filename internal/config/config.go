package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	// GitHub
	GitHubToken string
	Owner       string
	Repo        string

	// Slack
	SlackToken   string
	SlackChannel string

	// API Server
	APIPort string
	APIHost string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	return &Config{
		GitHubToken:  getEnv("GITHUB_TOKEN", ""),
		Owner:        getEnv("GITHUB_OWNER", "leyangloh"),
		Repo:         getEnv("GITHUB_REPO", "FakeProgress"),
		SlackToken:   getEnv("SLACK_BOT_TOKEN", ""),
		SlackChannel: getEnv("SLACK_CHANNEL", getEnv("SLACK_USER_ID", "")),
		APIPort:      getEnv("API_PORT", "8080"),
		APIHost:      getEnv("API_HOST", "localhost"),
	}, nil
}

// getEnv returns the value of an environment variable or a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Validate validates the configuration needed to fetch progress data
func (c *Config) Validate() error {
	if c.GitHubToken == "" {
		return &ConfigError{Field: "GITHUB_TOKEN", Message: "GitHub token is required"}
	}
	if c.Owner == "" {
		return &ConfigError{Field: "GITHUB_OWNER", Message: "repository owner is required"}
	}
	if c.Repo == "" {
		return &ConfigError{Field: "GITHUB_REPO", Message: "repository name is required"}
	}
	return nil
}

// ValidateDelivery validates the additional configuration needed to
// deliver a report to Slack. Dry runs don't need any of this.
func (c *Config) ValidateDelivery() error {
	if c.SlackToken == "" {
		return &ConfigError{Field: "SLACK_BOT_TOKEN", Message: "Slack bot token is required"}
	}
	if c.SlackChannel == "" {
		return &ConfigError{Field: "SLACK_CHANNEL", Message: "Slack channel or user ID is required"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
