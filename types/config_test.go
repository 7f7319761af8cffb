package types

import (
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PINBOARD_LISTEN",
		"PINBOARD_ALLOW_SIGNUP",
		"PINBOARD_FREE_TAGS",
		"PINBOARD_CSRF",
		"PINBOARD_SECURE_COOKIE",
		"PINBOARD_LOG_LEVEL",
		"PINBOARD_DB_DRIVER",
		"PINBOARD_DB_DSN",
	} {
		t.Setenv(k, "")
	}
}

func TestConfigFromEnv_Defaults(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("PINBOARD_LISTEN", ":8080")
	t.Setenv("PINBOARD_ALLOW_SIGNUP", "true")
	t.Setenv("PINBOARD_FREE_TAGS", "false")
	t.Setenv("PINBOARD_CSRF", "true")
	t.Setenv("PINBOARD_SECURE_COOKIE", "false")
	t.Setenv("PINBOARD_LOG_LEVEL", "debug")
	t.Setenv("PINBOARD_DB_DRIVER", "sqlite")
	t.Setenv("PINBOARD_COOKIE_STORE_SECRET", "secret")
	t.Setenv("PINBOARD_DB_PATH", filepath.Join(t.TempDir(), "pinboard.db"))

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Listen)
	assert.True(t, cfg.AllowSignup)
	assert.True(t, cfg.CSRF)
	assert.False(t, cfg.FreeTags)
	assert.Equal(t, logrus.DebugLevel, cfg.LogLevel)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, []byte("secret"), cfg.CookieSecret)
	assert.NotContains(t, cfg.String(), "secret")
}

func TestConfigFromEnv_CollectsErrors(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("PINBOARD_ALLOW_SIGNUP", "maybe")
	t.Setenv("PINBOARD_LOG_LEVEL", "info")
	t.Setenv("PINBOARD_COOKIE_STORE_SECRET", "")
	t.Setenv("PINBOARD_DB_DRIVER", "sqlite")
	t.Setenv("PINBOARD_DB_PATH", "/does/not/exist/pinboard.db")

	_, err := ConfigFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PINBOARD_ALLOW_SIGNUP")
	assert.Contains(t, err.Error(), "PINBOARD_COOKIE_STORE_SECRET")
	assert.Contains(t, err.Error(), "PINBOARD_DB_PATH")
}

func TestConfigFromEnv_PostgresNeedsDSN(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("PINBOARD_ALLOW_SIGNUP", "true")
	t.Setenv("PINBOARD_FREE_TAGS", "false")
	t.Setenv("PINBOARD_CSRF", "true")
	t.Setenv("PINBOARD_SECURE_COOKIE", "false")
	t.Setenv("PINBOARD_LOG_LEVEL", "info")
	t.Setenv("PINBOARD_COOKIE_STORE_SECRET", "secret")
	t.Setenv("PINBOARD_DB_DRIVER", "postgres")

	_, err := ConfigFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PINBOARD_DB_DSN")

	t.Setenv("PINBOARD_DB_DSN", "host=localhost user=pinboard password=hunter2")
	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.NotContains(t, cfg.String(), "hunter2")
}
