package logic

import (
	"fmt"
	"io"

	"github.com/idelchi/aesctr/internal/config"
	"github.com/idelchi/aesctr/internal/encryption"
)

// RunText encrypts or decrypts each positional argument as a literal string,
// writing one result per line to out.
func RunText(cfg *config.Config, out io.Writer) error {
	password, err := cfg.ReadPassword()
	if err != nil {
		return err
	}

	for _, arg := range cfg.Files {
		var result string

		if cfg.Decrypt {
			result, err = encryption.Decrypt(arg, password)
		} else {
			result, err = encryption.Encrypt(arg, password)
		}

		if err != nil {
			return fmt.Errorf("processing text argument: %w", err)
		}

		fmt.Fprintln(out, result)
	}

	return nil
}
