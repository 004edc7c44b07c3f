package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cleared-dev/spendwise/internal/importer"
)

func newImportCommand(opts *globalOptions) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import [directory]",
		Short: "Import ledger files (.csv, .yaml) into the user's ledger",
		Long: "Appends every expense found in the .csv and .yaml ledger files of a directory\n" +
			"to the user's ledger, then moves each file to <directory>/processed/.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "import"
			if len(args) > 0 {
				dir = args[0]
			}
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			s, err := opts.open(true)
			if err != nil {
				return err
			}
			defer s.Close()

			return runImport(cmd, s, absDir, dryRun)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "read files without changing anything")

	return cmd
}

func runImport(cmd *cobra.Command, s *session, dir string, dryRun bool) error {
	out := cmd.OutOrStdout()

	files, err := importer.DefaultRegistry().Scan(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintf(out, "No ledger files found in %s\n", dir)
		return nil
	}

	total := 0
	for _, f := range files {
		if dryRun {
			expenses, err := importer.Read(f)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Would import %d expenses from %s\n", len(expenses), f.Name)
			total += len(expenses)
			continue
		}

		n, err := importer.ImportFile(s.store, s.user, f)
		total += n
		if err != nil {
			s.log.Error("import failed", zap.String("file", f.Name), zap.Int("imported", n), zap.Error(err))
			return err
		}
		if err := importer.MarkProcessed(dir, f.Name); err != nil {
			return err
		}
		s.log.Info("file imported", zap.String("file", f.Name), zap.Int("records", n), zap.String("user", s.user))
		fmt.Fprintf(out, "Imported %d expenses from %s\n", n, f.Name)
	}

	fmt.Fprintf(out, "%d expenses from %d files\n", total, len(files))
	return nil
}
