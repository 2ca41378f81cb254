package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BACKEND_BASE_URL", "http://127.0.0.1:5001")
	t.Setenv("BACKEND_TIMEOUT_SECONDS", "not-a-number")
	t.Setenv("OTEL_ENABLED", "")

	cfg := Load()

	assert.Equal(t, "http://127.0.0.1:5001", cfg.Backend.BaseURL)
	assert.Equal(t, 0, cfg.Backend.TimeoutSeconds)
	assert.False(t, cfg.Tracing.Enabled)
	assert.Equal(t, 50*1024*1024, cfg.App.UploadMaxBytes)
	assert.Equal(t, 500, cfg.App.DropSettleMillis)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	t.Setenv("GO_ENV", "production")
	t.Setenv("BACKEND_TIMEOUT_SECONDS", "30")
	t.Setenv("OTEL_ENABLED", "true")
	t.Setenv("DROP_DIR", "/tmp/drop")

	cfg := Load()

	assert.Equal(t, "8080", cfg.App.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 30, cfg.Backend.TimeoutSeconds)
	assert.True(t, cfg.Tracing.Enabled)
	assert.Equal(t, "/tmp/drop", cfg.App.DropDir)
}
