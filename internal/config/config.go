// Package config holds the command-line configuration and its validation.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds every setting the commands read from flags and environment variables.
type Config struct {
	// Password source, at most one of the two
	Password     string `label:"--password"      mapstructure:"password"      validate:"exclusive=PasswordFile"`
	PasswordFile string `label:"--password-file" mapstructure:"password-file"`

	// Processing
	Parallel           int  `label:"--parallel" mapstructure:"parallel" validate:"min=1"`
	Quiet              bool `mapstructure:"quiet"`
	Delete             bool `mapstructure:"delete"`
	Dry                bool `mapstructure:"dry"`
	Stats              bool `mapstructure:"stats"`
	PreserveTimestamps bool `mapstructure:"preserve-timestamps"`

	// Directory walking: find -path style patterns, inline or from JSONC files
	Include     []string `mapstructure:"include"`
	Exclude     []string `mapstructure:"exclude"`
	IncludeFrom string   `label:"--include-from" mapstructure:"include-from" validate:"omitempty,file"`
	ExcludeFrom string   `label:"--exclude-from" mapstructure:"exclude-from" validate:"omitempty,file"`

	// Output naming
	EncryptSuffix string `label:"--encrypt-ext" mapstructure:"encrypt-ext" validate:"required"`
	DecryptSuffix string `label:"--decrypt-ext" mapstructure:"decrypt-ext"`

	// Treat positional arguments as literal messages instead of paths
	Text bool `mapstructure:"text"`

	// Digest options
	Legacy   bool   `mapstructure:"legacy"`
	Expected string `label:"--expected" mapstructure:"expected"`

	// Set by the command, not by flags
	Decrypt bool     `mapstructure:"-"`
	Files   []string `label:"paths"    mapstructure:"-" validate:"min=1"`
}

// Validate validates the configuration against the struct tags.
func (c *Config) Validate() error {
	validate, err := NewValidator()
	if err != nil {
		return err
	}

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validating configuration: %w", err)
	}

	return nil
}

// ReadPassword returns the configured password, reading the password file if one is set.
// It returns an empty string when no password was supplied.
func (c *Config) ReadPassword() (string, error) {
	if c.Password != "" || c.PasswordFile == "" {
		return c.Password, nil
	}

	data, err := os.ReadFile(c.PasswordFile)
	if err != nil {
		return "", fmt.Errorf("reading password file: %w", err)
	}

	line, _, _ := strings.Cut(string(data), "\n")

	return strings.TrimSuffix(line, "\r"), nil
}
