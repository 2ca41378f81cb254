package bootstrap

import (
	"context"
	"testing"

	"ai-docqa-client/internal/config"
	"ai-docqa-client/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContainer(t *testing.T) {
	tests := []struct {
		name        string
		dropDir     string
		wantWatcher bool
	}{
		{"without drop folder", "", false},
		{"with drop folder", t.TempDir(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{
				App:     config.AppConfig{DropDir: tt.dropDir, DropSettleMillis: 10},
				Backend: config.BackendConfig{BaseURL: "http://127.0.0.1:1/"},
			}

			c := NewContainer(cfg, logger.NewNopLogger())
			assert.Equal(t, "http://127.0.0.1:1", c.Backend.BaseURL)
			assert.Equal(t, tt.wantWatcher, c.DropWatcher != nil)

			ctx, cancel := context.WithCancel(context.Background())
			require.NoError(t, c.Start(ctx))
			cancel()
			assert.NoError(t, c.Close())
		})
	}
}
