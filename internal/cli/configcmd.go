// internal/cli/configcmd.go
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tamzrod/homewatch/internal/config"
)

const configFileHeader = `# homewatch configuration.
# Secrets are NOT read from this file; set PRACTICUM_TOKEN,
# TELEGRAM_TOKEN and TELEGRAM_CHAT_ID in the environment.
`

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration helpers",
	}
	cmd.AddCommand(newConfigInitCmd())
	return cmd
}

// starterConfig mirrors config.Config with durations as strings, so the
// generated file reads "600s" instead of nanosecond integers.
type starterConfig struct {
	API struct {
		Endpoint string `yaml:"endpoint"`
		Timeout  string `yaml:"timeout"`
	} `yaml:"api"`
	Telegram struct {
		Timeout string `yaml:"timeout"`
	} `yaml:"telegram"`
	Poll struct {
		Interval string `yaml:"interval"`
		Lookback string `yaml:"lookback"`
	} `yaml:"poll"`
	Log config.LogConfig `yaml:"log"`
}

func starterFromDefaults() starterConfig {
	def := config.Default()

	var s starterConfig
	s.API.Endpoint = def.API.Endpoint
	s.API.Timeout = def.API.Timeout.String()
	s.Telegram.Timeout = def.Telegram.Timeout.String()
	s.Poll.Interval = def.Poll.Interval.String()
	s.Poll.Lookback = def.Poll.Lookback.String()
	s.Log = def.Log
	return s
}

func newConfigInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [path]",
		Short: "Write a starter config file with the built-in defaults",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "homewatch.yaml"
			if len(args) == 1 {
				path = args[0]
			}

			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("refusing to overwrite existing %s", path)
			}

			data, err := yaml.Marshal(starterFromDefaults())
			if err != nil {
				return fmt.Errorf("render default config: %w", err)
			}

			if err := os.WriteFile(path, append([]byte(configFileHeader), data...), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}

			cmd.Printf("wrote %s\n", path)
			return nil
		},
	}
}
