// internal/config/config.go
package config

import "time"

// Config is the full runtime configuration.
// Secrets come from the environment; everything else has a default and
// may be overridden by an optional YAML file or HOMEWATCH_* variables.
type Config struct {
	API      APIConfig      `mapstructure:"api" yaml:"api"`
	Telegram TelegramConfig `mapstructure:"telegram" yaml:"telegram"`
	Poll     PollConfig     `mapstructure:"poll" yaml:"poll"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
}

// ---- STATUS API ----

type APIConfig struct {
	Endpoint string        `mapstructure:"endpoint" yaml:"endpoint"`
	Token    string        `mapstructure:"token" yaml:"-"` // PRACTICUM_TOKEN, never written to file
	Timeout  time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// ---- TELEGRAM ----

type TelegramConfig struct {
	Token   string        `mapstructure:"token" yaml:"-"`   // TELEGRAM_TOKEN
	ChatID  string        `mapstructure:"chat_id" yaml:"-"` // TELEGRAM_CHAT_ID
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// ---- POLL ----

type PollConfig struct {
	// Interval is the unconditional pause between cycles.
	Interval time.Duration `mapstructure:"interval" yaml:"interval"`
	// Lookback seeds the initial watermark at now-Lookback.
	Lookback time.Duration `mapstructure:"lookback" yaml:"lookback"`
}

// ---- LOG ----

type LogConfig struct {
	File       string `mapstructure:"file" yaml:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" yaml:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days" yaml:"max_age_days"`
}

// Default returns the built-in configuration, before file and env layers.
func Default() Config {
	return Config{
		API: APIConfig{
			Endpoint: "https://practicum.yandex.ru/api/user_api/homework_statuses/",
			Timeout:  30 * time.Second,
		},
		Telegram: TelegramConfig{
			Timeout: 10 * time.Second,
		},
		Poll: PollConfig{
			Interval: 600 * time.Second,
			Lookback: 2678400 * time.Second, // one month
		},
		Log: LogConfig{
			File:       "homewatch.log",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}
