// Package config provides application configuration loading from environment variables.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	Users  UsersConfig
	Teams  TeamsConfig
	HTTP   HTTPClientConfig
	Log    LogConfig
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host string `validate:"required"`
	Port string `validate:"required,numeric"`
}

// UsersConfig contains Users Service endpoints.
type UsersConfig struct {
	BaseURL          string `validate:"required,url"`
	BySlackNamesPath string `validate:"required,startswith=/"`
	ByUUIDsPath      string `validate:"required,startswith=/"`
}

// TeamsConfig contains Teams Service endpoints.
// An empty operation path disables that operation.
type TeamsConfig struct {
	BaseURL        string `validate:"required,url"`
	APIVersion     string `validate:"required"`
	ActivatePath   string `validate:"omitempty,startswith=/"`
	DeactivatePath string `validate:"omitempty,startswith=/"`
	GetPath        string `validate:"omitempty,startswith=/"`
}

// HTTPClientConfig contains outbound HTTP client settings.
type HTTPClientConfig struct {
	Timeout time.Duration `validate:"gt=0"`
}

// LogConfig contains logger settings.
type LogConfig struct {
	Level  string `validate:"oneof=trace debug info warn warning error fatal panic off none"`
	Format string `validate:"oneof=json console"`
}

// Load reads configuration from environment variables.
// Returns error if required variables are not set or values are invalid.
func Load() (*Config, error) {
	_ = godotenv.Load()

	serverHost, err := getRequiredEnv("SERVER_HOST")
	if err != nil {
		return nil, err
	}

	serverPort, err := getRequiredEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}

	usersBaseURL, err := getRequiredEnv("USERS_BASE_URL")
	if err != nil {
		return nil, err
	}

	teamsBaseURL, err := getRequiredEnv("TEAMS_BASE_URL")
	if err != nil {
		return nil, err
	}

	timeout, err := time.ParseDuration(getEnv("HTTP_CLIENT_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_CLIENT_TIMEOUT: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: serverHost,
			Port: serverPort,
		},
		Users: UsersConfig{
			BaseURL:          usersBaseURL,
			BySlackNamesPath: getEnv("USERS_BY_SLACK_NAMES_PATH", "/users/usersBySlackNames"),
			ByUUIDsPath:      getEnv("USERS_BY_UUIDS_PATH", "/users/nameByUuids"),
		},
		Teams: TeamsConfig{
			BaseURL:        teamsBaseURL,
			APIVersion:     getEnv("TEAMS_API_VERSION", "v1"),
			ActivatePath:   getEnv("TEAMS_ACTIVATE_PATH", "/teams"),
			DeactivatePath: getEnv("TEAMS_DEACTIVATE_PATH", "/teams"),
			GetPath:        getEnv("TEAMS_GET_PATH", "/teams/users"),
		},
		HTTP: HTTPClientConfig{
			Timeout: timeout,
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Addr returns host:port the server listens on.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// getRequiredEnv reads required environment variable or returns error.
func getRequiredEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("required environment variable %s is not set", key)
	}
	return value, nil
}

// getEnv reads optional environment variable with a fallback.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
