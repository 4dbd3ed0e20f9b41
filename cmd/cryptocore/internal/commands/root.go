// Package commands wires cryptocore's cobra command tree to the
// validated config and the runner that drives the cipher pipeline.
package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lihongjie0209/cryptocore/cmd/cryptocore/internal/config"
)

// NewRootCommand builds the cryptocore root command with its encrypt and
// decrypt subcommands and the persistent flags they share.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	root := &cobra.Command{
		Use:     "cryptocore",
		Version: version,
		Short:   "Symmetric cipher pipeline CLI",
		Long: `cryptocore drives the buffered block-cipher pipeline directly from the
command line: password- or raw-key-based encryption and decryption,
OpenSSL-compatible wire format, and a choice of block modes.`,
		TraverseChildren: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			viper.SetEnvPrefix(cmd.Root().Name())
			viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
			viper.AutomaticEnv()

			if err := viper.BindPFlags(cmd.Flags()); err != nil {
				return fmt.Errorf("binding flags: %w", err)
			}

			if err := viper.Unmarshal(cfg); err != nil {
				return fmt.Errorf("unmarshaling configuration: %w", err)
			}

			return nil
		},
	}

	root.PersistentFlags().StringP("password", "p", "", "Password for OpenSSL-compatible key derivation")
	root.PersistentFlags().StringP("key", "k", "", "Hex-encoded raw key, instead of a password")
	root.PersistentFlags().String("iv", "", "Hex-encoded IV, required with --key for algorithms that need one")
	root.PersistentFlags().StringP("algorithm", "a", "aes-256-cbc", "Cipher algorithm (aes-128/192/256-cbc, aes-128/256-ecb, aes-128-cfb, aes-128-ofb, aes-128/256-ctr, rc4, chacha20)")
	root.PersistentFlags().IntP("parallel", "j", cfg.Parallel, "Number of files to process concurrently")
	root.PersistentFlags().String("out-ext", ".enc", "Suffix appended on encrypt, stripped on decrypt")

	root.AddCommand(NewEncryptCommand(cfg), NewDecryptCommand(cfg))

	root.CompletionOptions.DisableDefaultCmd = true
	root.SetVersionTemplate("{{ .Version }}\n")

	return root
}
