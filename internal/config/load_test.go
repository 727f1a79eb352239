package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets up environment variables for testing and returns a cleanup
// function restoring the previous values.
func setupEnv(t *testing.T, envVars map[string]string) func() {
	originalValues := make(map[string]string)
	for name := range envVars {
		originalValues[name] = os.Getenv(name)
	}

	for name, value := range envVars {
		err := os.Setenv(name, value)
		require.NoError(t, err, "Failed to set environment variable %s", name)
	}

	return func() {
		for name, value := range originalValues {
			if value == "" {
				os.Unsetenv(name)
			} else {
				os.Setenv(name, value)
			}
		}
	}
}

// TestLoadDefaults verifies that Load falls back to the documented defaults
// when no environment variables are set.
func TestLoadDefaults(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"TASKDESK_SERVER_PORT":       "",
		"TASKDESK_SERVER_LOG_LEVEL":  "",
		"TASKDESK_DATABASE_HOST":     "",
		"TASKDESK_DATABASE_USER":     "",
		"TASKDESK_DATABASE_PASSWORD": "",
		"TASKDESK_DATABASE_DATABASE": "",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg, "Load() should return a non-nil config")
	assert.Equal(t, 8080, cfg.Server.Port, "Default server port should be 8080")
	assert.Equal(t, "info", cfg.Server.LogLevel, "Default log level should be 'info'")
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "task_db", cfg.Database.Database)
}

// TestLoadFromEnv verifies that Load reads values from environment variables.
func TestLoadFromEnv(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"TASKDESK_SERVER_PORT":       "9090",
		"TASKDESK_SERVER_LOG_LEVEL":  "debug",
		"TASKDESK_DATABASE_HOST":     "localhost",
		"TASKDESK_DATABASE_PORT":     "15432",
		"TASKDESK_DATABASE_USER":     "taskdesk",
		"TASKDESK_DATABASE_PASSWORD": "s3cret",
		"TASKDESK_DATABASE_DATABASE": "tasks_test",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with valid environment variables")
	require.NotNil(t, cfg, "Load() should return a non-nil config")
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 15432, cfg.Database.Port)
	assert.Equal(t, "taskdesk", cfg.Database.User)
	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Equal(t, "tasks_test", cfg.Database.Database)
}

// TestLoadInvalidValues verifies that validation rejects out-of-range or
// unknown settings.
func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
	}{
		{
			name: "port_out_of_range",
			envVars: map[string]string{
				"TASKDESK_SERVER_PORT": "70000",
			},
		},
		{
			name: "unknown_log_level",
			envVars: map[string]string{
				"TASKDESK_SERVER_LOG_LEVEL": "verbose",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanup := setupEnv(t, tt.envVars)
			defer cleanup()

			cfg, err := Load()

			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestDatabaseConfigURL(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db",
		Port:     5432,
		User:     "postgres",
		Password: "example",
		Database: "task_db",
	}

	assert.Equal(t,
		"postgres://postgres:example@db:5432/task_db?sslmode=disable",
		cfg.URL())
}
