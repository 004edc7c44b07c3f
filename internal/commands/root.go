// Package commands implements the spendwise CLI.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/cleared-dev/spendwise/internal/buildinfo"
	"github.com/cleared-dev/spendwise/internal/config"
)

// globalOptions holds persistent flags shared by every subcommand.
type globalOptions struct {
	configPath string
	user       string
	root       string
	format     string
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "spendwise",
		Short:   "Personal expense tracker",
		Long:    "Record expenses per user, list them, and see where the money goes.",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", config.DefaultPath, "config file")
	pf.StringVarP(&opts.user, "user", "u", "", "ledger owner (default: user.default from config)")
	pf.StringVar(&opts.root, "root", "", "storage root directory (overrides config)")
	pf.StringVar(&opts.format, "format", "", "storage format: csv, yaml or sqlite (overrides config)")

	rootCmd.AddCommand(
		newAddCommand(opts),
		newListCommand(opts),
		newSummaryCommand(opts),
		newCategoriesCommand(opts),
		newImportCommand(opts),
		newExportCommand(opts),
		newConfigCommand(opts),
	)

	return rootCmd
}
