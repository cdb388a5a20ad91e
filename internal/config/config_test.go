package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("SLACK_BOT_TOKEN", "xoxb-test")
	t.Setenv("SLACK_APP_TOKEN", "xapp-test")
	t.Setenv("GREET_CHANNELS", "C111,C222")
	t.Setenv("GREET_START_CRON", "0 9 * * 1-5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "xoxb-test", cfg.Slack.BotToken)
	assert.True(t, cfg.UseSocketMode())
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "Asia/Tokyo", cfg.Calendar.Timezone)
	assert.Equal(t, "memory", cfg.Cache.Driver)
	assert.Equal(t, []string{"C111", "C222"}, cfg.Schedule.Channels)
	assert.True(t, cfg.Schedule.Enabled())
	require.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Slack:    SlackConfig{BotToken: "xoxb", AppToken: "xapp", SocketMode: true},
			Calendar: CalendarConfig{Timezone: "Asia/Tokyo"},
			Cache:    CacheConfig{Driver: "memory"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name: "Should accept a socket mode config",
		},
		{
			name:    "Should require a bot token",
			mutate:  func(c *Config) { c.Slack.BotToken = "" },
			wantErr: "SLACK_BOT_TOKEN",
		},
		{
			name: "Should require a signing secret without socket mode",
			mutate: func(c *Config) {
				c.Slack.SocketMode = false
			},
			wantErr: "SLACK_SIGNING_SECRET",
		},
		{
			name:    "Should reject an unknown timezone",
			mutate:  func(c *Config) { c.Calendar.Timezone = "Mars/Olympus" },
			wantErr: "TIMEZONE",
		},
		{
			name:    "Should reject an unknown cache driver",
			mutate:  func(c *Config) { c.Cache.Driver = "redis" },
			wantErr: "CACHE_DRIVER",
		},
		{
			name:    "Should require channels when a cron is set",
			mutate:  func(c *Config) { c.Schedule.EndCron = "0 18 * * *" },
			wantErr: "GREET_CHANNELS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			if tt.mutate != nil {
				tt.mutate(cfg)
			}

			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
