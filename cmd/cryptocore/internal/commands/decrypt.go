package commands

import (
	"github.com/spf13/cobra"

	"github.com/lihongjie0209/cryptocore/cmd/cryptocore/internal/config"
)

// NewDecryptCommand creates the decrypt subcommand.
func NewDecryptCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "decrypt [flags] files...",
		Aliases: []string{"dec"},
		Short:   "Decrypt files",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg.Files = args
			cfg.Decrypt = true

			if err := cfg.Validate(); err != nil {
				return err
			}

			return runAndReport(cfg)
		},
	}
}
