package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lihongjie0209/cryptocore/cmd/cryptocore/internal/config"
	"github.com/lihongjie0209/cryptocore/cmd/cryptocore/internal/runner"
)

// NewEncryptCommand creates the encrypt subcommand.
func NewEncryptCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "encrypt [flags] files...",
		Aliases: []string{"enc"},
		Short:   "Encrypt files",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg.Files = args
			cfg.Decrypt = false

			if err := cfg.Validate(); err != nil {
				return err
			}

			return runAndReport(cfg)
		},
	}
}

func runAndReport(cfg *config.Config) error {
	results, runErr := runner.Run(cfg)
	for _, r := range results {
		if r.Error != nil {
			fmt.Printf("FAILED %s: %v\n", r.Input, r.Error)
			continue
		}
		fmt.Printf("%s -> %s\n", r.Input, r.Output)
	}

	return runErr
}
