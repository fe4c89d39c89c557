// internal/config/validate.go
package config

import (
	"fmt"
	"strings"

	"github.com/tamzrod/homewatch/internal/apperr"
)

// Validate checks configuration correctness.
// It performs declarative validation only and MUST NOT mutate cfg.
// All missing secrets are reported together so the operator fixes the
// environment in one pass.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("%w: nil config", apperr.ErrConfig)
	}

	var missing []string
	if cfg.API.Token == "" {
		missing = append(missing, EnvAPIToken)
	}
	if cfg.Telegram.Token == "" {
		missing = append(missing, EnvTelegramToken)
	}
	if cfg.Telegram.ChatID == "" {
		missing = append(missing, EnvTelegramChatID)
	}
	if len(missing) > 0 {
		return fmt.Errorf(
			"%w: missing required environment variables: %s",
			apperr.ErrConfig, strings.Join(missing, ", "),
		)
	}

	if cfg.API.Endpoint == "" {
		return fmt.Errorf("%w: api.endpoint must not be empty", apperr.ErrConfig)
	}
	if cfg.API.Timeout <= 0 {
		return fmt.Errorf("%w: api.timeout must be > 0", apperr.ErrConfig)
	}
	if cfg.Telegram.Timeout <= 0 {
		return fmt.Errorf("%w: telegram.timeout must be > 0", apperr.ErrConfig)
	}
	if cfg.Poll.Interval <= 0 {
		return fmt.Errorf("%w: poll.interval must be > 0", apperr.ErrConfig)
	}
	if cfg.Poll.Lookback < 0 {
		return fmt.Errorf("%w: poll.lookback must be >= 0", apperr.ErrConfig)
	}

	return nil
}
