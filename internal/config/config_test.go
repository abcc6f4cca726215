package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
server:
  port: 9090
  host: "0.0.0.0"

database:
  url: "postgres://localhost/marketing_iq_test"

redis:
  addr: "localhost:6380"
  db: 2

openai:
  enabled: true
  api_key: "test-api-key"
  model: "gpt-4o-mini"

scoring:
  target_roas: 350
  target_roi: 120

alerts:
  roas_warning: 2.5
  utilization_high: 90
`
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err)

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "postgres://localhost/marketing_iq_test", cfg.Database.URL)
	assert.Equal(t, "localhost:6380", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.True(t, cfg.OpenAI.Enabled)
	assert.Equal(t, "test-api-key", cfg.OpenAI.APIKey)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
	assert.Equal(t, 350.0, cfg.Scoring.TargetROAS)
	assert.Equal(t, 120.0, cfg.Scoring.TargetROI)
	assert.Equal(t, 2.5, cfg.Alerts.ROASWarning)
	assert.Equal(t, 90.0, cfg.Alerts.UtilizationHigh)
}

func TestLoadDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("server:\n  port: 0\n"), 0644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "gpt-4o", cfg.OpenAI.Model)
	assert.Equal(t, 400.0, cfg.Scoring.TargetROAS)
	assert.Equal(t, 100.0, cfg.Scoring.TargetROI)
	assert.Equal(t, 50.0, cfg.Scoring.TargetCPA)
	assert.Equal(t, 500.0, cfg.Scoring.AverageCLV)
	assert.Equal(t, 1.0, cfg.Alerts.ROASCritical)
	assert.Equal(t, 2.0, cfg.Alerts.ROASWarning)
	assert.Equal(t, 50.0, cfg.Alerts.ROIWarning)
	assert.Equal(t, 95.0, cfg.Alerts.UtilizationHigh)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	assert.Error(t, err)
}

func TestLoadFromEnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env-host/marketing_iq")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("OPENAI_API_KEY", "env-key")
	t.Setenv("SERVER_PORT", "7070")

	cfg, err := LoadFromEnv(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "postgres://env-host/marketing_iq", cfg.Database.URL)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, "env-key", cfg.OpenAI.APIKey)
	assert.True(t, cfg.OpenAI.Enabled)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "gpt-4o", cfg.OpenAI.Model)
}
