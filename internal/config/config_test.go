package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trustrent-backend/internal/config"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := config.Parse([]byte("server:\n  host: localhost\n"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 8081, cfg.Server.GRPCPort)
	assert.Equal(t, "http://localhost:8080", cfg.Server.BaseURL)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "static", cfg.Advisor.Provider)
	assert.Equal(t, 30, cfg.Advisor.TimeoutSeconds)
	assert.Equal(t, "./reports", cfg.Reports.Dir)
	assert.Equal(t, 15, cfg.Reports.LinkExpiryMinutes)
	assert.Equal(t, "TrustRent", cfg.Email.FromName)
	assert.Equal(t, "log", cfg.Email.Provider)
	assert.Equal(t, "0 0 9 * * *", cfg.Scheduler.SendRentReminders)
	assert.Equal(t, 3, cfg.Scheduler.ReminderLeadDays)
	assert.False(t, cfg.Rent.StrictAmount)
	assert.Equal(t, "localhost:8080", cfg.GetServerAddress())
	assert.Equal(t, "localhost:8081", cfg.GetGRPCAddress())
}

func TestParse_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ADVISOR_PROVIDER", "gemini")
	t.Setenv("ADVISOR_API_KEY", "key-from-env")
	t.Setenv("SERVER_BASE_URL", "https://rent.example.com/")

	cfg, err := config.Parse([]byte("server:\n  port: 8080\nadvisor:\n  provider: static\n"))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 9091, cfg.Server.GRPCPort)
	assert.Equal(t, "https://rent.example.com", cfg.Server.BaseURL)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "gemini", cfg.Advisor.Provider)
	assert.Equal(t, "key-from-env", cfg.Advisor.APIKey)
	assert.Equal(t, "gemini-2.0-flash", cfg.Advisor.Model)
}

func TestParse_EmailProviderFromKey(t *testing.T) {
	cfg, err := config.Parse([]byte("email:\n  sendgrid_api_key: SG.abc\n"))
	require.NoError(t, err)
	assert.Equal(t, "sendgrid", cfg.Email.Provider)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"bad port", "server:\n  port: 70000\n", "invalid server port"},
		{"unknown provider", "advisor:\n  provider: oracle\n", "unsupported advisor provider"},
		{"http without endpoint", "advisor:\n  provider: http\n", "endpoint is required"},
		{"gemini without key", "advisor:\n  provider: gemini\n", "api key is required"},
		{"short secret", "reports:\n  signing_secret: short\n", "at least 32 characters"},
		{"lead days", "scheduler:\n  reminder_lead_days: 40\n", "invalid reminder lead days"},
		{"gmail without credentials", "email:\n  provider: gmail\n", "gmail credentials file is required"},
		{"sendgrid without key", "email:\n  provider: sendgrid\n", "sendgrid api key is required"},
		{"unknown email provider", "email:\n  provider: pigeon\n", "unsupported email provider"},
		{"malformed", "server: [", "failed to parse config file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("dev config", func(t *testing.T) {
		cfg, err := config.Load(filepath.Join("..", "..", "config", "config.dev.yaml"))
		require.NoError(t, err)
		assert.Equal(t, 8081, cfg.Server.GRPCPort)
		assert.True(t, cfg.Scheduler.Enabled)
	})

	t.Run("file on disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("rent:\n  strict_amount: true\n"), 0o600))
		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.True(t, cfg.Rent.StrictAmount)
	})
}
