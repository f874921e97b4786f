// Package logic implements the core business logic for the encryption/decryption.
package logic

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/aesctr/internal/config"
	"github.com/idelchi/aesctr/internal/encryption"
	"github.com/idelchi/aesctr/internal/filter"
	"github.com/idelchi/aesctr/pkg/pathmatch"
)

// Run encrypts or decrypts the files named by cfg.Files.
func Run(cfg *config.Config) error {
	password, err := cfg.ReadPassword()
	if err != nil {
		return err
	}

	scanned, excluded, start, done, err := preamble(cfg)
	if done || err != nil {
		return err
	}

	proc, err := encryption.NewProcessor(cfg, password)
	if err != nil {
		return fmt.Errorf("creating processor: %w", err)
	}

	processed, errored, totalSize, err := proc.ProcessFiles()

	if cfg.Stats {
		printStats(os.Stderr, scanned, excluded, processed, errored, totalSize, time.Since(start))
	}

	if err != nil {
		return fmt.Errorf("running logic: %w", err)
	}

	return nil
}

// preamble resolves files and handles dry run. Returns done=true if dry run was executed.
func preamble(cfg *config.Config) (int, int, time.Time, bool, error) {
	start := time.Now()

	scanned, err := resolveFiles(cfg)
	if err != nil {
		return 0, 0, start, false, fmt.Errorf("resolving files: %w", err)
	}

	excluded := scanned - len(cfg.Files)

	if cfg.Dry {
		dryRun(cfg, scanned, excluded, start)

		return scanned, excluded, start, true, nil
	}

	return scanned, excluded, start, false, nil
}

// resolveFiles expands directory arguments in place, applying include/exclude patterns.
// Without explicit includes, decryption picks up files carrying the encrypted suffix;
// encryption always skips them.
// Returns the total number of files scanned before filtering.
func resolveFiles(cfg *config.Config) (int, error) {
	includes, excludes, hasIncludes, err := patterns(cfg)
	if err != nil {
		return 0, err
	}

	sealed := "*" + pathmatch.Escape(cfg.EncryptSuffix)

	switch {
	case !cfg.Decrypt:
		excludes = append(excludes, sealed)
	case !hasIncludes:
		includes = append(includes, sealed)
		hasIncludes = true
	}

	files, scanned, err := filter.Resolve(cfg.Files, includes, excludes, hasIncludes)
	if err != nil {
		return scanned, fmt.Errorf("filtering files: %w", err)
	}

	cfg.Files = files

	return scanned, nil
}

// patterns merges inline and file-based include/exclude patterns.
// hasIncludes is set as soon as includes were asked for, even if the list is empty.
func patterns(cfg *config.Config) (includes, excludes []string, hasIncludes bool, err error) {
	includes = append(includes, cfg.Include...)
	excludes = append(excludes, cfg.Exclude...)

	if cfg.IncludeFrom != "" {
		loaded, err := filter.LoadPatterns(cfg.IncludeFrom)
		if err != nil {
			return nil, nil, false, fmt.Errorf("loading include patterns: %w", err)
		}

		includes = append(includes, loaded...)
	}

	if cfg.ExcludeFrom != "" {
		loaded, err := filter.LoadPatterns(cfg.ExcludeFrom)
		if err != nil {
			return nil, nil, false, fmt.Errorf("loading exclude patterns: %w", err)
		}

		excludes = append(excludes, loaded...)
	}

	hasIncludes = len(cfg.Include) > 0 || cfg.IncludeFrom != ""

	return includes, excludes, hasIncludes, nil
}

// dryRun previews what would be processed without actually encrypting/decrypting.
func dryRun(cfg *config.Config, scanned, excluded int, start time.Time) {
	var totalSize int64

	for _, file := range cfg.Files {
		if !cfg.Quiet {
			fmt.Printf("Processed %q -> %q\n", file, encryption.OutputPath(file, cfg)) //nolint:forbidigo
		}

		if cfg.Stats {
			if info, err := os.Stat(file); err == nil {
				totalSize += info.Size()
			}
		}
	}

	if cfg.Stats {
		printStats(os.Stderr, scanned, excluded, len(cfg.Files), 0, totalSize, time.Since(start))
	}
}

func printStats(w io.Writer, scanned, excluded, processed, errored int, totalSize int64, duration time.Duration) {
	fmt.Fprintf(w, "\nStats\n")
	fmt.Fprintf(w, "  Scanned:   %d\n", scanned)
	fmt.Fprintf(w, "  Excluded:  %d\n", excluded)
	fmt.Fprintf(w, "  Processed: %d\n", processed)
	fmt.Fprintf(w, "  Errors:    %d\n", errored)
	//nolint:gosec // totalSize is always non-negative (sum of file sizes)
	fmt.Fprintf(w, "  Size:      %s\n", humanize.IBytes(uint64(max(0, totalSize))))
	fmt.Fprintf(w, "  Duration:  %s\n", duration.Round(time.Millisecond))
}
