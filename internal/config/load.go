// internal/config/load.go
package config

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/tamzrod/homewatch/internal/apperr"
)

// Environment variable names for the three required secrets. These are
// the canonical names from the service documentation and are bound
// explicitly, outside the HOMEWATCH_ prefix.
const (
	EnvAPIToken       = "PRACTICUM_TOKEN"
	EnvTelegramToken  = "TELEGRAM_TOKEN"
	EnvTelegramChatID = "TELEGRAM_CHAT_ID"
)

func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("HOMEWATCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Secrets keep their canonical, unprefixed names.
	_ = v.BindEnv("api.token", EnvAPIToken)
	_ = v.BindEnv("telegram.token", EnvTelegramToken)
	_ = v.BindEnv("telegram.chat_id", EnvTelegramChatID)

	return v
}

func setDefaults(v *viper.Viper) {
	def := Default()

	v.SetDefault("api.endpoint", def.API.Endpoint)
	v.SetDefault("api.timeout", def.API.Timeout)
	v.SetDefault("telegram.timeout", def.Telegram.Timeout)
	v.SetDefault("poll.interval", def.Poll.Interval)
	v.SetDefault("poll.lookback", def.Poll.Lookback)
	v.SetDefault("log.file", def.Log.File)
	v.SetDefault("log.max_size_mb", def.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", def.Log.MaxBackups)
	v.SetDefault("log.max_age_days", def.Log.MaxAgeDays)
}

// Load reads configuration with precedence env > file > defaults.
// path is the YAML config file; empty means "defaults + env only".
// A missing file at a non-empty path is an error: the operator asked
// for it explicitly.
func Load(path string) (*Config, error) {
	v := newViperInstance()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if stderrors.As(err, &notFound) {
				return nil, fmt.Errorf("%w: config file not found: %s", apperr.ErrConfig, path)
			}
			return nil, apperr.Wrapf(err, "read config file %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, apperr.Wrap(err, "unmarshal config")
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
