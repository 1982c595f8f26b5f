package config

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("PORT", "")
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("EMAIL_PROVIDER", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("SES_INSECURE_SKIP_VERIFY", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, StoreMemory, cfg.StoreDriver)
	require.NotEmpty(t, cfg.DBUrl)
	require.Equal(t, "noop", cfg.Email.Provider)
	require.Empty(t, cfg.CORSAllowedOrigins)
	require.False(t, cfg.Email.SESInsecureSkipVerify)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("PORT", "9000")
	t.Setenv("STORE_DRIVER", " Postgres ")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173, ,https://mergington.edu")
	t.Setenv("EMAIL_PROVIDER", "ses")
	t.Setenv("SES_INSECURE_SKIP_VERIFY", "true")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "9000", cfg.Port)
	require.Equal(t, StorePostgres, cfg.StoreDriver)
	require.Equal(t, []string{"http://localhost:5173", "https://mergington.edu"}, cfg.CORSAllowedOrigins)
	require.Equal(t, "ses", cfg.Email.Provider)
	require.True(t, cfg.Email.SESInsecureSkipVerify)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("GO_ENV", "production")

	t.Run("unknown store driver", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "redis")
		_, err := Load()
		require.Error(t, err)
	})

	t.Run("bad bool", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "")
		t.Setenv("SES_INSECURE_SKIP_VERIFY", "maybe")
		_, err := Load()
		require.Error(t, err)
	})
}

func TestNewLoggerTo(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf, "production", "warn")

	require.False(t, logger.Enabled(context.Background(), slog.LevelInfo))
	require.True(t, logger.Enabled(context.Background(), slog.LevelWarn))

	logger.Warn("careful", "activity", "Chess Club")
	require.Contains(t, buf.String(), `"msg":"careful"`)
	require.Contains(t, buf.String(), `"activity":"Chess Club"`)

	buf.Reset()
	NewLoggerTo(&buf, "development", "").Info("hello")
	require.Contains(t, buf.String(), "msg=hello")
}
