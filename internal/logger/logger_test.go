package logger

import (
	"testing"

	"github.com/diegoclair/slack-greet-bot/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.LogConfig
		wantLevel zapcore.Level
		wantErr   bool
	}{
		{name: "Should build a production logger", cfg: config.LogConfig{Level: "info"}, wantLevel: zapcore.InfoLevel},
		{name: "Should build a development logger", cfg: config.LogConfig{Level: "debug", Development: true}, wantLevel: zapcore.DebugLevel},
		{name: "Should reject an unknown level", cfg: config.LogConfig{Level: "loud"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.True(t, log.Core().Enabled(tt.wantLevel))
			assert.False(t, log.Core().Enabled(tt.wantLevel-1))
		})
	}
}
