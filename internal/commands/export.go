package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/spendwise/internal/ledger"
)

func newExportCommand(opts *globalOptions) *cobra.Command {
	var to string
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the user's ledger in a file format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			codec, err := ledger.CodecByName(to)
			if err != nil {
				return err
			}

			s, err := opts.open(true)
			if err != nil {
				return err
			}
			defer s.Close()

			l, err := s.store.Load(s.user)
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if outPath != "" && outPath != "-" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("creating export file: %w", err)
				}
				defer f.Close()
				w = f
			}

			if err := codec.Encode(w, l.Expenses); err != nil {
				return fmt.Errorf("exporting ledger: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "csv", "output format: csv or yaml")
	cmd.Flags().StringVarP(&outPath, "out", "o", "-", "output file (- for stdout)")

	return cmd
}
