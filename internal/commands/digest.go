package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/aesctr/internal/config"
	"github.com/idelchi/aesctr/internal/logic"
)

// NewDigestCommand creates a new cobra command for the digest subcommand.
func NewDigestCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "digest [flags] paths...",
		Aliases: []string{"sum"},
		Short:   "Print the digest of files or text",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: preRun(cfg, false),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return logic.RunDigest(cfg, cmd.OutOrStdout())
		},
	}

	cmd.Flags().Bool("legacy", false, "Use the legacy digest format")
	filterFlags(cmd)

	return cmd
}

// NewVerifyCommand creates a new cobra command for the verify subcommand.
func NewVerifyCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "verify [flags] --expected DIGEST path",
		Short:   "Check a file or text against an expected digest",
		Args:    cobra.ExactArgs(1),
		PreRunE: preRun(cfg, false),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return logic.RunVerify(cfg, cmd.OutOrStdout())
		},
	}

	cmd.Flags().Bool("legacy", false, "Use the legacy digest format")
	cmd.Flags().StringP("expected", "e", "", "Expected digest")

	return cmd
}
