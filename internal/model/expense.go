package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category labels an expense. The set is open-ended.
type Category string

// Columns is the column identity of a ledger, in file order.
var Columns = []string{"Date", "Category", "Amount", "Description"}

// Expense is a single recorded expense (one ledger row).
type Expense struct {
	Date        time.Time
	Category    Category
	Amount      decimal.Decimal // positive magnitude, currency agnostic
	Description string
}

// Ledger is the ordered, append-only list of expenses for one user.
type Ledger struct {
	User     string
	Expenses []Expense
}

// Len returns the number of recorded expenses.
func (l Ledger) Len() int { return len(l.Expenses) }

// IsEmpty reports whether the ledger has no expenses.
func (l Ledger) IsEmpty() bool { return len(l.Expenses) == 0 }
