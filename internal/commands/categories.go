package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/spendwise/internal/categories"
)

func newCategoriesCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the categories offered for new expenses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolveConfig()
			if err != nil {
				return err
			}
			for _, c := range categories.NewCatalog(cfg.Categories).All() {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}
