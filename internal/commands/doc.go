// Package commands provides the command-line interface for the aesctr tool.
//
// It implements commands for:
//   - encryption
//   - decryption
//   - digests and digest verification
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding through cobra and viper.
package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/aesctr/internal/config"
)

// EnvPrefix prefixes every environment variable the commands read, e.g. AESCTR_PASSWORD.
const EnvPrefix = "AESCTR"

// preRun returns a PreRunE handler that merges flags and environment into cfg,
// resolves positional args into cfg.Files and validates the configuration.
// With fallback set, an empty argument list becomes the current directory.
func preRun(cfg *config.Config, fallback bool) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := bind(cmd, cfg); err != nil {
			return err
		}

		if len(args) == 0 && fallback && !cfg.Text {
			cfg.Files = []string{"."}
		} else {
			cfg.Files = args
		}

		return cfg.Validate()
	}
}

// bind loads the command's flags, overridden by AESCTR_* environment variables
// where the flag was not set explicitly, into cfg.
func bind(cmd *cobra.Command, cfg *config.Config) error {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}

	return nil
}
