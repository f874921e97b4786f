package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/aesctr/internal/config"
	"github.com/idelchi/aesctr/internal/logic"
)

// NewDecryptCommand creates a new cobra command for the decrypt subcommand.
func NewDecryptCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "decrypt [flags] [paths...]",
		Aliases: []string{"dec"},
		Short:   "Decrypt files or text",
		Long: `Decrypts the given files. Directories, the current one by default, are searched
for files ending in the encrypted suffix.`,
		Args:    cobra.ArbitraryArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := preRun(cfg, true)(cmd, args); err != nil {
				return err
			}

			cfg.Decrypt = true

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cfg.Text {
				return logic.RunText(cfg, cmd.OutOrStdout())
			}

			return logic.Run(cfg)
		},
	}

	fileFlags(cmd)
	filterFlags(cmd)

	return cmd
}
