package logic

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/idelchi/aesctr/internal/config"
	"github.com/idelchi/aesctr/internal/filter"
	"github.com/idelchi/aesctr/pkg/digest"
)

var (
	// ErrMismatch is returned by RunVerify when the computed digest differs from the expected one.
	ErrMismatch = errors.New("digest mismatch")

	// ErrNoExpected is returned by RunVerify when no expected digest was given.
	ErrNoExpected = errors.New("no expected digest given (use --expected)")
)

type entry struct {
	name    string
	message string
	digest  string
}

// RunDigest prints "<digest>  <name>" for every argument, in argument order.
func RunDigest(cfg *config.Config, out io.Writer) error {
	entries, err := digests(cfg)
	if err != nil {
		return err
	}

	for _, e := range entries {
		fmt.Fprintf(out, "%s  %s\n", e.digest, e.name)
	}

	return nil
}

// RunVerify computes the digest of the single argument and compares it with cfg.Expected.
func RunVerify(cfg *config.Config, out io.Writer) error {
	if cfg.Expected == "" {
		return ErrNoExpected
	}

	entries, err := digests(cfg)
	if err != nil {
		return err
	}

	expected := strings.ToLower(strings.TrimSpace(cfg.Expected))

	var failed int

	for _, e := range entries {
		if !digest.MatchesVariant(e.message, expected, variantOf(cfg)) {
			failed++

			fmt.Fprintf(out, "%s: FAILED\n", e.name)

			continue
		}

		if !cfg.Quiet {
			fmt.Fprintf(out, "%s: OK\n", e.name)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrMismatch, failed, len(entries))
	}

	return nil
}

// digests computes the digest of every argument concurrently.
func digests(cfg *config.Config) ([]entry, error) {
	variant := variantOf(cfg)

	if cfg.Text {
		entries := make([]entry, len(cfg.Files))

		for i, message := range cfg.Files {
			entries[i] = entry{
				name:    fmt.Sprintf("%q", message),
				message: message,
				digest:  digest.SumVariant(message, variant),
			}
		}

		return entries, nil
	}

	includes, excludes, hasIncludes, err := patterns(cfg)
	if err != nil {
		return nil, err
	}

	files, _, err := filter.Resolve(cfg.Files, includes, excludes, hasIncludes)
	if err != nil {
		return nil, fmt.Errorf("resolving files: %w", err)
	}

	entries := make([]entry, len(files))

	group := errgroup.Group{}
	group.SetLimit(max(1, cfg.Parallel))

	for i, file := range files {
		group.Go(func() error {
			data, err := os.ReadFile(filepath.Clean(file))
			if err != nil {
				return fmt.Errorf("reading %q: %w", file, err)
			}

			entries[i] = entry{name: file, message: string(data), digest: digest.SumVariant(string(data), variant)}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return entries, nil
}

func variantOf(cfg *config.Config) digest.Variant {
	if cfg.Legacy {
		return digest.VariantLegacy
	}

	return digest.VariantStandard
}
