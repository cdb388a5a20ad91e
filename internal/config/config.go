package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
)

type Config struct {
	Slack    SlackConfig
	Sheet    SheetConfig
	Calendar CalendarConfig
	Server   ServerConfig
	Cache    CacheConfig
	Schedule ScheduleConfig
	Log      LogConfig
}

type SlackConfig struct {
	BotToken      string  `env:"SLACK_BOT_TOKEN"`
	AppToken      string  `env:"SLACK_APP_TOKEN"`
	SigningSecret string  `env:"SLACK_SIGNING_SECRET"`
	SocketMode    bool    `env:"SLACK_SOCKET_MODE" envDefault:"true"`
	UpdateRPS     float64 `env:"SLACK_UPDATE_RPS" envDefault:"1"`
	UpdateBurst   int     `env:"SLACK_UPDATE_BURST" envDefault:"5"`
}

type SheetConfig struct {
	SpreadsheetID string `env:"GOOGLE_SHEET_ID_WFO"`
	APIKey        string `env:"GOOGLE_API_KEY"`
}

type CalendarConfig struct {
	HolidayAPIURL string `env:"HOLIDAY_API_URL" envDefault:"https://holidays-jp.github.io/api/v1"`
	Timezone      string `env:"TIMEZONE" envDefault:"Asia/Tokyo"`
}

type ServerConfig struct {
	Port string `env:"PORT" envDefault:"3000"`
}

type CacheConfig struct {
	Driver       string        `env:"CACHE_DRIVER" envDefault:"memory"`
	DatabasePath string        `env:"DATABASE_PATH" envDefault:"./cache.db"`
	PurgeEvery   time.Duration `env:"CACHE_PURGE_INTERVAL" envDefault:"10m"`
}

// ScheduleConfig enables the built-in cron trigger. Leave the crons empty
// when greetings are triggered externally through the HTTP endpoints.
type ScheduleConfig struct {
	Channels  []string `env:"GREET_CHANNELS" envSeparator:","`
	StartCron string   `env:"GREET_START_CRON"`
	EndCron   string   `env:"GREET_END_CRON"`
}

type LogConfig struct {
	Level       string `env:"LOG_LEVEL" envDefault:"info"`
	Development bool   `env:"LOG_DEVELOPMENT" envDefault:"false"`
}

func Load() (*Config, error) {
	cfg := &Config{}

	sections := []struct {
		name   string
		target any
	}{
		{"slack", &cfg.Slack},
		{"sheet", &cfg.Sheet},
		{"calendar", &cfg.Calendar},
		{"server", &cfg.Server},
		{"cache", &cfg.Cache},
		{"schedule", &cfg.Schedule},
		{"log", &cfg.Log},
	}
	for _, s := range sections {
		if err := env.Parse(s.target); err != nil {
			return nil, fmt.Errorf("parsing %s config: %w", s.name, err)
		}
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Slack.BotToken == "" {
		return fmt.Errorf("SLACK_BOT_TOKEN is required")
	}
	if !c.UseSocketMode() && c.Slack.SigningSecret == "" {
		return fmt.Errorf("SLACK_SIGNING_SECRET is required when socket mode is disabled")
	}
	if _, err := time.LoadLocation(c.Calendar.Timezone); err != nil {
		return fmt.Errorf("invalid TIMEZONE %q: %w", c.Calendar.Timezone, err)
	}
	switch c.Cache.Driver {
	case "memory", "sqlite":
	default:
		return fmt.Errorf("invalid CACHE_DRIVER %q. Use 'memory' or 'sqlite'", c.Cache.Driver)
	}
	if c.Schedule.Enabled() && len(c.Schedule.Channels) == 0 {
		return fmt.Errorf("GREET_CHANNELS is required when a greet cron is set")
	}
	return nil
}

// UseSocketMode reports whether events arrive over Socket Mode instead of
// the HTTP Events API endpoint.
func (c *Config) UseSocketMode() bool {
	return c.Slack.SocketMode && c.Slack.AppToken != ""
}

// Location returns the timezone greetings and spreadsheet dates are computed in.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Calendar.Timezone)
}

func (s ScheduleConfig) Enabled() bool {
	return s.StartCron != "" || s.EndCron != ""
}
