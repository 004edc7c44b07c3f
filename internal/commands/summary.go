package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/spendwise/internal/advice"
	"github.com/cleared-dev/spendwise/internal/cli"
	"github.com/cleared-dev/spendwise/internal/summary"
)

const chartWidth = 30

func newSummaryCommand(opts *globalOptions) *cobra.Command {
	var period string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Spending by category with a savings suggestion",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			since, err := summary.PeriodStart(period, time.Now())
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

			out := cmd.OutOrStdout()
			expenses := summary.Filter(l.Expenses, since)
			if len(expenses) == 0 {
				fmt.Fprintln(out, noExpensesMessage)
				return nil
			}

			currency := s.cfg.Display.Currency
			report := summary.Summarize(expenses)

			fmt.Fprintln(out)
			fmt.Fprintln(out, cli.RenderTitle("Expense Summary & Next Month Prediction"))
			fmt.Fprintln(out)

			bars := make([]cli.Bar, 0, len(report.Breakdown))
			rows := make([][]string, 0, len(report.Breakdown)+2)
			total := report.Total.InexactFloat64()
			for _, ct := range report.Breakdown {
				amt := cli.FormatAmount(ct.Amount, currency)
				bars = append(bars, cli.Bar{
					Label: string(ct.Category),
					Value: ct.Amount.InexactFloat64(),
					Text:  amt,
				})
				share := 0.0
				if total > 0 {
					share = ct.Amount.InexactFloat64() / total
				}
				rows = append(rows, []string{string(ct.Category), amt, cli.FormatPercent(share)})
			}
			rows = append(rows, []string{"---"}, []string{"Total", cli.FormatAmount(report.Total, currency), cli.FormatPercent(1)})

			fmt.Fprint(out, cli.RenderBarChart(bars, chartWidth))
			fmt.Fprintln(out)
			fmt.Fprint(out, cli.RenderTable(cli.Table{
				Headers: []string{"Category", "Amount", "Share"},
				Rows:    rows,
			}))
			fmt.Fprintln(out)
			fmt.Fprint(out, cli.RenderKeyValue("Total spent:", cli.FormatAmount(report.Total, currency)))
			fmt.Fprint(out, cli.RenderKeyValue("Estimated spend next month (same trend):", cli.FormatAmount(report.Projected, currency)))
			fmt.Fprintln(out)
			fmt.Fprintln(out, "  Smart Savings Suggestion")
			fmt.Fprintln(out, cli.RenderTip(advice.Advisor{Currency: currency}.Suggest(expenses)))
			return nil
		},
	}

	cmd.Flags().StringVar(&period, "period", summary.PeriodAll, "time window: all, week, month or year")

	return cmd
}
