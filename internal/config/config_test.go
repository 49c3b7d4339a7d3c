package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("SERVER_HOST", "0.0.0.0")
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("USERS_BASE_URL", "http://users.local")
	t.Setenv("TEAMS_BASE_URL", "http://teams.local")
}

func TestLoad(t *testing.T) {
	t.Run("success - defaults applied", func(t *testing.T) {
		setRequiredEnv(t)

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
		assert.Equal(t, "/users/usersBySlackNames", cfg.Users.BySlackNamesPath)
		assert.Equal(t, "/users/nameByUuids", cfg.Users.ByUUIDsPath)
		assert.Equal(t, "v1", cfg.Teams.APIVersion)
		assert.Equal(t, "/teams", cfg.Teams.ActivatePath)
		assert.Equal(t, "/teams/users", cfg.Teams.GetPath)
		assert.Equal(t, 10*time.Second, cfg.HTTP.Timeout)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "json", cfg.Log.Format)
	})

	t.Run("success - overrides", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("HTTP_CLIENT_TIMEOUT", "3s")
		t.Setenv("TEAMS_GET_PATH", "")
		t.Setenv("LOG_FORMAT", "console")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 3*time.Second, cfg.HTTP.Timeout)
		assert.Empty(t, cfg.Teams.GetPath)
		assert.Equal(t, "console", cfg.Log.Format)
	})

	t.Run("error - missing required variable", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("TEAMS_BASE_URL", "")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "TEAMS_BASE_URL")
	})

	t.Run("error - invalid url", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("USERS_BASE_URL", "not a url")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid configuration")
	})

	t.Run("error - invalid timeout", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("HTTP_CLIENT_TIMEOUT", "soon")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP_CLIENT_TIMEOUT")
	})

	t.Run("error - unknown log format", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("LOG_FORMAT", "xml")

		_, err := Load()
		require.Error(t, err)
	})
}
