package commands

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/idelchi/aesctr/internal/config"
)

// NewRootCommand creates the root command with common configuration.
// It sets up environment variable binding and flag handling.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "aesctr [flags] command [flags]",
		Short: "Password-based AES-256 counter mode encryption",
		Long: `Encrypts and decrypts files or text with AES-256 in counter mode, keyed by a password.
Ciphertext is written as dash-delimited hex with the nonce embedded in front.
Also computes and verifies SHA-256 style digests.

Every flag can be set through an environment variable prefixed with AESCTR_,
for example AESCTR_PASSWORD or AESCTR_ENCRYPT_EXT.`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}

	root.PersistentFlags().IntP("parallel", "j", runtime.NumCPU(), "Number of parallel workers, defaults to number of CPUs")
	root.PersistentFlags().BoolP("quiet", "q", false, "Suppress non-error output")
	root.PersistentFlags().BoolP("text", "t", false, "Treat arguments as literal text instead of paths")

	root.PersistentFlags().String("encrypt-ext", ".enc", "Suffix to append to encrypted files")
	root.PersistentFlags().
		String("decrypt-ext", "", "Suffix to append to decrypted files, after stripping the encrypted suffix")

	root.AddCommand(
		NewEncryptCommand(cfg),
		NewDecryptCommand(cfg),
		NewDigestCommand(cfg),
		NewVerifyCommand(cfg),
	)

	return root
}

// fileFlags registers the flags shared by encrypt and decrypt.
func fileFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("password", "p", "", "Password to derive the key from")
	cmd.Flags().StringP("password-file", "f", "", "Path to a file holding the password on its first line")

	cmd.Flags().BoolP("delete", "d", false, "Delete the original file after successful encryption/decryption")
	cmd.Flags().Bool("dry", false, "List the files that would be processed without processing them")
	cmd.Flags().Bool("stats", false, "Print a summary after processing")
	cmd.Flags().Bool("preserve-timestamps", false, "Copy the modification time of the input to the output")
}

// filterFlags registers the directory walking patterns.
func filterFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceP("include", "i", nil, "Only process walked files matching these find -path patterns")
	cmd.Flags().StringSliceP("exclude", "x", nil, "Skip walked files matching these find -path patterns")
	cmd.Flags().String("include-from", "", "Read include patterns from a JSONC array file")
	cmd.Flags().String("exclude-from", "", "Read exclude patterns from a JSONC array file")
}
