package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/spendwise/internal/cli"
	"github.com/cleared-dev/spendwise/internal/model"
)

const noExpensesMessage = "No expenses recorded yet."

func newListCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show all recorded expenses",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(true)
			if err != nil {
				return err
			}
			defer s.Close()

			l, err := s.store.Load(s.user)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if l.IsEmpty() {
				fmt.Fprintln(out, noExpensesMessage)
				return nil
			}

			fmt.Fprint(out, cli.RenderTable(expenseTable(l, s.cfg.Display.Currency)))
			fmt.Fprintf(out, "  %s expenses\n", cli.FormatNumber(int64(l.Len())))
			return nil
		},
	}
}

func expenseTable(l model.Ledger, currency string) cli.Table {
	rows := make([][]string, 0, l.Len())
	for _, e := range l.Expenses {
		rows = append(rows, []string{
			cli.FormatDate(e.Date),
			string(e.Category),
			cli.FormatAmount(e.Amount, currency),
			e.Description,
		})
	}
	return cli.Table{
		Title:   "All Expenses: " + l.User,
		Headers: model.Columns,
		Rows:    rows,
		Right:   []bool{false, false, true, false},
	}
}
