// Package config provides centralized configuration management for the application.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/danielolaszy/labelcheck/internal/logging"
)

// Config holds all configuration parameters for the application.
type Config struct {
	GitHub GitHubConfig
	Jira   JiraConfig
	Trello TrelloConfig
}

// GitHubConfig holds GitHub specific configuration.
type GitHubConfig struct {
	Token        string
	Organization string
	Domain       string
}

// JiraConfig holds JIRA specific configuration.
type JiraConfig struct {
	BaseURL  string
	Username string
	Token    string
}

// TrelloConfig holds Trello specific configuration.
type TrelloConfig struct {
	APIKey string
	Token  string
}

// LoadConfig loads configuration from environment variables. When envFile is
// non-empty it is read as a dotenv document first; values already present in
// the process environment take precedence over file values.
func LoadConfig(envFile string) (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	if envFile != "" {
		v.SetConfigFile(envFile)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read environment file %s: %w", envFile, err)
		}
		logging.Debug("loaded environment file", "path", envFile)
	}

	config := &Config{
		GitHub: GitHubConfig{
			Token:        v.GetString("GITHUB_TOKEN"),
			Organization: v.GetString("GITHUB_ORGANIZATION"),
			Domain:       v.GetString("GITHUB_DOMAIN"),
		},
		Jira: JiraConfig{
			BaseURL:  v.GetString("JIRA_URL"),
			Username: v.GetString("JIRA_USERNAME"),
			Token:    v.GetString("JIRA_TOKEN"),
		},
		Trello: TrelloConfig{
			APIKey: v.GetString("TRELLO_API_KEY"),
			Token:  v.GetString("TRELLO_TOKEN"),
		},
	}

	if config.GitHub.Domain == "" {
		config.GitHub.Domain = "github.com"
	}

	logging.Debug("configuration loaded",
		"github_token", logging.MaskSensitive(config.GitHub.Token),
		"github_organization", config.GitHub.Organization,
		"github_domain", config.GitHub.Domain)

	return config, nil
}

// ValidateGitHubConfig ensures that all configuration values required for
// GitHub verification are provided.
func ValidateGitHubConfig(config *Config) error {
	var missingVars []string

	if config.GitHub.Token == "" {
		missingVars = append(missingVars, "GITHUB_TOKEN")
	}
	if config.GitHub.Organization == "" {
		missingVars = append(missingVars, "GITHUB_ORGANIZATION")
	}

	if len(missingVars) > 0 {
		return fmt.Errorf("missing required environment variables: %v", missingVars)
	}

	return nil
}

// ValidateJiraConfig validates JIRA-specific configuration.
func ValidateJiraConfig(config *Config) error {
	var missingVars []string

	if config.Jira.BaseURL == "" {
		missingVars = append(missingVars, "JIRA_URL")
	}
	if config.Jira.Username == "" {
		missingVars = append(missingVars, "JIRA_USERNAME")
	}
	if config.Jira.Token == "" {
		missingVars = append(missingVars, "JIRA_TOKEN")
	}

	if len(missingVars) > 0 {
		return fmt.Errorf("missing required environment variables: %v", missingVars)
	}

	return nil
}

// ValidateTrelloConfig validates Trello-specific configuration.
func ValidateTrelloConfig(config *Config) error {
	var missingVars []string

	if config.Trello.APIKey == "" {
		missingVars = append(missingVars, "TRELLO_API_KEY")
	}
	if config.Trello.Token == "" {
		missingVars = append(missingVars, "TRELLO_TOKEN")
	}

	if len(missingVars) > 0 {
		return fmt.Errorf("missing required environment variables: %v", missingVars)
	}

	return nil
}
