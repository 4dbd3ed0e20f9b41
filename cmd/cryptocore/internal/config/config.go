// Package config defines the cryptocore CLI's validated configuration,
// populated from cobra flags via viper and checked with
// go-playground/validator before any file is touched.
package config

import (
	"encoding/hex"
	"fmt"
	"runtime"

	"github.com/go-playground/validator/v10"
)

// Config is the flat set of options shared by the encrypt and decrypt
// subcommands. mapstructure tags match the flag names viper binds against.
type Config struct {
	// Password derives the key (and, for algorithms that use one, the IV) via
	// OpenSSL-compatible EVP_BytesToKey. Mutually exclusive with Key.
	Password string

	// Key is a hex-encoded raw key, used instead of password-based
	// derivation when set. Mutually exclusive with Password.
	Key string `mapstructure:"key"`

	// IV is a hex-encoded initialization vector, required alongside Key
	// for algorithms that need one (mirrors openssl enc -K/-iv). Ignored
	// in password mode, where the IV is derived.
	IV string `mapstructure:"iv"`

	// Algorithm names an entry in the serializable algorithm registry,
	// e.g. "aes-256-cbc", "aes-128-ctr", "rc4", "chacha20".
	Algorithm string `mapstructure:"algorithm" validate:"required"`

	// Decrypt runs the pipeline in reverse; set by the decrypt subcommand.
	Decrypt bool

	// Parallel bounds concurrent file processing.
	Parallel int `mapstructure:"parallel" validate:"min=1"`

	// OutExt is appended to encrypt output filenames, or stripped from
	// decrypt output filenames when it matches the input's suffix.
	OutExt string `mapstructure:"out-ext"`

	// Files is the positional list of paths to process.
	Files []string `validate:"min=1"`
}

// Default returns a Config with the CLI's documented flag defaults.
func Default() *Config {
	return &Config{
		Algorithm: "aes-256-cbc",
		Parallel:  runtime.NumCPU(),
		OutExt:    ".enc",
	}
}

// Validate checks struct tags and the cross-field rules validator tags
// can't express: password/key mutual exclusion and key hex well-formedness.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("validating configuration: %w", err)
	}

	if c.Password == "" && c.Key == "" {
		return fmt.Errorf("one of --password or --key is required")
	}
	if c.Password != "" && c.Key != "" {
		return fmt.Errorf("--password and --key are mutually exclusive")
	}

	if c.Key != "" {
		if _, err := hex.DecodeString(c.Key); err != nil {
			return fmt.Errorf("invalid --key hex encoding: %w", err)
		}
	}

	if c.IV != "" {
		if c.Key == "" {
			return fmt.Errorf("--iv is only valid together with --key")
		}
		if _, err := hex.DecodeString(c.IV); err != nil {
			return fmt.Errorf("invalid --iv hex encoding: %w", err)
		}
	}

	return nil
}
