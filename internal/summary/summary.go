// Package summary aggregates expenses by category.
package summary

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/spendwise/internal/model"
)

// CategoryTotal is the summed amount spent in one category.
type CategoryTotal struct {
	Category model.Category
	Amount   decimal.Decimal
}

// Report is a single-period spending summary.
type Report struct {
	Count     int
	Total     decimal.Decimal
	Breakdown []CategoryTotal // largest first
	Top       CategoryTotal
	HasTop    bool
	// Projected is the naive next-period estimate: the same as Total.
	Projected decimal.Decimal
}

// TotalsByCategory sums amounts per category. Only categories present in
// expenses appear as keys.
func TotalsByCategory(expenses []model.Expense) map[model.Category]decimal.Decimal {
	totals := make(map[model.Category]decimal.Decimal)
	for _, e := range expenses {
		totals[e.Category] = totals[e.Category].Add(e.Amount)
	}
	return totals
}

// GrandTotal sums all amounts. It is zero for no expenses.
func GrandTotal(expenses []model.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// Breakdown returns per-category totals ordered by amount descending, then by
// category label ascending.
func Breakdown(expenses []model.Expense) []CategoryTotal {
	totals := TotalsByCategory(expenses)
	out := make([]CategoryTotal, 0, len(totals))
	for cat, amt := range totals {
		out = append(out, CategoryTotal{Category: cat, Amount: amt})
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Amount.Cmp(out[j].Amount); c != 0 {
			return c > 0
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// TopCategory returns the category with the largest total. When several
// categories share the maximum, the lexicographically smallest label wins.
// ok is false for no expenses.
func TopCategory(expenses []model.Expense) (top CategoryTotal, ok bool) {
	b := Breakdown(expenses)
	if len(b) == 0 {
		return CategoryTotal{}, false
	}
	return b[0], true
}

// Summarize builds a Report over expenses.
func Summarize(expenses []model.Expense) Report {
	b := Breakdown(expenses)
	total := GrandTotal(expenses)
	r := Report{
		Count:     len(expenses),
		Total:     total,
		Breakdown: b,
		Projected: total,
	}
	if len(b) > 0 {
		r.Top = b[0]
		r.HasTop = true
	}
	return r
}
