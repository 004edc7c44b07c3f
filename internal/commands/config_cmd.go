package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/spendwise/internal/config"
)

func newConfigCommand(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the resolved configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolveConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "  Config file: %s\n", opts.configPath)
			if _, err := os.Stat(opts.configPath); err == nil {
				fmt.Fprintln(out, "  Status: loaded")
			} else {
				fmt.Fprintln(out, "  Status: using defaults (no config file)")
			}
			fmt.Fprintln(out)

			fmt.Fprintln(out, "  [Storage]")
			fmt.Fprintf(out, "    Root:   %s\n", cfg.Storage.Root)
			fmt.Fprintf(out, "    Format: %s\n", cfg.Storage.Format)
			fmt.Fprintln(out)

			fmt.Fprintln(out, "  [User]")
			if cfg.User.Default != "" {
				fmt.Fprintf(out, "    Default: %s\n", cfg.User.Default)
			} else {
				fmt.Fprintln(out, "    Default: not set")
			}
			fmt.Fprintln(out)

			fmt.Fprintln(out, "  [Display]")
			fmt.Fprintf(out, "    Currency:   %s\n", cfg.Display.Currency)
			fmt.Fprintf(out, "    Min amount: %.2f\n", cfg.Input.MinAmount)
			if len(cfg.Categories) > 0 {
				fmt.Fprintf(out, "    Categories: %s\n", strings.Join(cfg.Categories, ", "))
			} else {
				fmt.Fprintln(out, "    Categories: built-in defaults")
			}
			fmt.Fprintln(out)

			fmt.Fprintln(out, "  [Log]")
			fmt.Fprintf(out, "    Level: %s\n", cfg.Log.Level)
			return nil
		},
	}

	cmd.AddCommand(newConfigInitCommand(opts))
	return cmd
}

func newConfigInitCommand(opts *globalOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.configPath
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("checking config: %w", err)
			}

			cfg := config.Default()
			if opts.user != "" {
				cfg.User.Default = opts.user
			}
			if opts.root != "" {
				cfg.Storage.Root = opts.root
			}
			if opts.format != "" {
				cfg.Storage.Format = opts.format
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := config.Save(path, cfg); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}
