// Package advice turns spending summaries into savings suggestions.
package advice

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/spendwise/internal/model"
	"github.com/cleared-dev/spendwise/internal/summary"
)

// NoDataMessage is returned when there is nothing to base a suggestion on.
const NoDataMessage = "No data available to suggest savings."

// ReductionRate is the share of the top category proposed as savings.
var ReductionRate = decimal.NewFromFloat(0.2)

// Advisor formats suggestions with an optional currency symbol.
type Advisor struct {
	Currency string
}

// Suggest returns a savings tip naming the top spending category.
func (a Advisor) Suggest(expenses []model.Expense) string {
	top, ok := summary.TopCategory(expenses)
	if !ok {
		return NoDataMessage
	}

	saving := top.Amount.Mul(ReductionRate)
	return fmt.Sprintf(
		"You spent the most on %s (%s).\n\n"+
			"Try reducing expenses in this category by %s%%. "+
			"This could save you around %s next month.",
		top.Category,
		a.money(top.Amount),
		ReductionRate.Shift(2).String(),
		a.money(saving),
	)
}

// Saving returns the proposed saving for the top category, or zero.
func Saving(expenses []model.Expense) decimal.Decimal {
	top, ok := summary.TopCategory(expenses)
	if !ok {
		return decimal.Zero
	}
	return top.Amount.Mul(ReductionRate)
}

func (a Advisor) money(d decimal.Decimal) string {
	return a.Currency + d.StringFixed(2)
}

// Suggest is Advisor{}.Suggest.
func Suggest(expenses []model.Expense) string {
	return Advisor{}.Suggest(expenses)
}
