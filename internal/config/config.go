package config

import (
	"os"
	"time"
	_ "time/tzdata" // zone database for hosts without one

	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Dataset holds the credentials for one Notion database
type Dataset struct {
	Name       string
	Token      string
	DatabaseID string
	// TokenVar and DatabaseVar name the environment variables, for error messages.
	TokenVar    string
	DatabaseVar string
}

// Configured reports whether both the token and the database id are set
func (d Dataset) Configured() bool {
	return d.Token != "" && d.DatabaseID != ""
}

// Config holds the application configuration
type Config struct {
	// Environment is "development" or "production"
	Environment string

	// Notion
	Team            Dataset
	Events          Dataset
	UpstreamTimeout time.Duration

	// Site
	Timezone      string
	ResourcesFile string

	// GitHub copy of resources.json
	GitHubToken         string
	ResourcesGitHubRepo string // "owner/repo"
	ResourcesGitHubPath string
	ResourcesGitHubRef  string

	// API Server
	APIPort string
	APIHost string

	// CLI
	APIEndpoint string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	timeout, err := time.ParseDuration(getEnv("UPSTREAM_TIMEOUT", "15s"))
	if err != nil {
		return nil, &ConfigError{Field: "UPSTREAM_TIMEOUT", Message: err.Error()}
	}

	return &Config{
		Environment: getEnv("APP_ENV", EnvDevelopment),
		Team: Dataset{
			Name:        "team",
			Token:       getEnv("NOTION_API_TOKEN", ""),
			DatabaseID:  getEnv("NOTION_DATABASE_ID", ""),
			TokenVar:    "NOTION_API_TOKEN",
			DatabaseVar: "NOTION_DATABASE_ID",
		},
		Events: Dataset{
			Name:        "events",
			Token:       getEnv("NOTION_EVENTS_API_TOKEN", ""),
			DatabaseID:  getEnv("NOTION_EVENTS_DATABASE_ID", ""),
			TokenVar:    "NOTION_EVENTS_API_TOKEN",
			DatabaseVar: "NOTION_EVENTS_DATABASE_ID",
		},
		UpstreamTimeout:     timeout,
		Timezone:            getEnv("SITE_TIMEZONE", "America/New_York"),
		ResourcesFile:       getEnv("RESOURCES_FILE", "./public/resources.json"),
		GitHubToken:         getEnv("GITHUB_TOKEN", ""),
		ResourcesGitHubRepo: getEnv("RESOURCES_GITHUB_REPO", ""),
		ResourcesGitHubPath: getEnv("RESOURCES_GITHUB_PATH", "public/resources.json"),
		ResourcesGitHubRef:  getEnv("RESOURCES_GITHUB_REF", ""),
		APIPort:             getEnv("API_PORT", "8080"),
		APIHost:             getEnv("API_HOST", "localhost"),
		APIEndpoint:         getEnv("API_ENDPOINT", "http://localhost:8080"),
	}, nil
}

// getEnv returns the value of an environment variable or a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsProduction reports whether mock data must not be served
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// Location resolves Timezone, falling back to UTC
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Validate validates the configuration.
// Missing Notion credentials are not an error here; the handlers decide
// between mock data and a configuration error per request.
func (c *Config) Validate() error {
	if c.Environment != EnvDevelopment && c.Environment != EnvProduction {
		return &ConfigError{Field: "APP_ENV", Message: "must be 'development' or 'production'"}
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return &ConfigError{Field: "SITE_TIMEZONE", Message: err.Error()}
	}
	if c.UpstreamTimeout <= 0 {
		return &ConfigError{Field: "UPSTREAM_TIMEOUT", Message: "must be positive"}
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
