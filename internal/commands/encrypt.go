package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/aesctr/internal/config"
	"github.com/idelchi/aesctr/internal/logic"
)

// NewEncryptCommand creates a new cobra command for the encrypt subcommand.
func NewEncryptCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "encrypt [flags] paths...",
		Aliases: []string{"enc"},
		Short:   "Encrypt files or text",
		Example: `  aesctr encrypt -p 1234 notes.txt secrets/
  aesctr encrypt -p 1234 --text "hello"`,
		Args:    cobra.MinimumNArgs(1),
		PreRunE: preRun(cfg, false),
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
