package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cleared-dev/spendwise/internal/categories"
	"github.com/cleared-dev/spendwise/internal/model"
)

const inputDateFormat = "2006-01-02"

// addInput holds the raw values for a new expense, from flags or the form.
type addInput struct {
	date        string
	category    string
	amount      string
	description string
}

func newAddCommand(opts *globalOptions) *cobra.Command {
	var in addInput
	var interactive bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new expense",
		Example: `  spendwise add -u alice --category Food --amount 12.50 --description "lunch, office"
  spendwise add -u alice -i`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(true)
			if err != nil {
				return err
			}
			defer s.Close()

			if interactive {
				if err := runAddForm(&in, s.catalog, s.cfg.Input.MinAmount); err != nil {
					if errors.Is(err, huh.ErrUserAborted) {
						fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
						return nil
					}
					return err
				}
			}

			e, err := buildExpense(in, s.catalog, s.cfg.Input.MinAmount)
			if err != nil {
				return err
			}
			if !s.catalog.Exists(string(e.Category)) {
				s.log.Warn("category not in catalog", zap.String("category", string(e.Category)))
			}

			if err := s.store.Append(s.user, e); err != nil {
				s.log.Error("append failed", zap.String("user", s.user), zap.Error(err))
				return fmt.Errorf("saving expense: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Expense added successfully!")
			return nil
		},
	}

	cmd.Flags().StringVar(&in.date, "date", time.Now().Format(inputDateFormat), "expense date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&in.category, "category", "c", "", "expense category")
	cmd.Flags().StringVarP(&in.amount, "amount", "a", "", "amount spent")
	cmd.Flags().StringVarP(&in.description, "description", "d", "", "free-text description")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "fill in the expense with a form")

	return cmd
}

// buildExpense validates raw input. Catalog categories are normalised to
// their catalog spelling; other labels are kept as typed.
func buildExpense(in addInput, catalog *categories.Catalog, minAmount float64) (model.Expense, error) {
	date, err := parseInputDate(in.date)
	if err != nil {
		return model.Expense{}, err
	}

	label := strings.TrimSpace(in.category)
	if label == "" {
		return model.Expense{}, errors.New("category is required")
	}
	cat := model.Category(label)
	if known, ok := catalog.Lookup(label); ok {
		cat = known
	}

	amount, err := parseInputAmount(in.amount, minAmount)
	if err != nil {
		return model.Expense{}, err
	}

	return model.Expense{
		Date:        date,
		Category:    cat,
		Amount:      amount,
		Description: strings.TrimSpace(in.description),
	}, nil
}

func parseInputDate(s string) (time.Time, error) {
	d, err := time.Parse(inputDateFormat, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	return d, nil
}

func parseInputAmount(s string, minAmount float64) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Decimal{}, errors.New("amount is required")
	}
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q", s)
	}
	floor := decimal.NewFromFloat(minAmount)
	if amount.LessThan(floor) {
		return decimal.Decimal{}, fmt.Errorf("amount must be at least %s", floor.StringFixed(2))
	}
	return amount, nil
}

func runAddForm(in *addInput, catalog *categories.Catalog, minAmount float64) error {
	if in.category == "" {
		in.category = string(catalog.All()[0])
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Date").
				Placeholder(inputDateFormat).
				Value(&in.date).
				Validate(func(s string) error {
					_, err := parseInputDate(s)
					return err
				}),
			huh.NewSelect[string]().
				Title("Category").
				Options(huh.NewOptions(catalog.Strings()...)...).
				Value(&in.category),
			huh.NewInput().
				Title("Amount").
				Value(&in.amount).
				Validate(func(s string) error {
					_, err := parseInputAmount(s, minAmount)
					return err
				}),
			huh.NewInput().
				Title("Description").
				Value(&in.description),
		),
	)

	return form.Run()
}
