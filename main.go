// Command aesctr encrypts and decrypts files or text with a password-derived
// AES-256 key in counter mode, and computes SHA-256 style digests.
package main

import (
	"fmt"
	"os"

	"github.com/idelchi/aesctr/internal/commands"
	"github.com/idelchi/aesctr/internal/config"
)

// version is set at build time through -ldflags.
var version = "unknown - unofficial & generated by unknown"

func main() {
	var cfg config.Config

	if err := commands.NewRootCommand(&cfg, version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)

		os.Exit(1)
	}
}
