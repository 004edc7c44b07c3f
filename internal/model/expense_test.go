package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLedgerEmpty(t *testing.T) {
	var l Ledger
	assert.True(t, l.IsEmpty())
	assert.Equal(t, 0, l.Len())

	l.Expenses = append(l.Expenses, Expense{
		Date:     time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC),
		Category: "Food",
		Amount:   decimal.NewFromInt(100),
	})
	assert.False(t, l.IsEmpty())
	assert.Equal(t, 1, l.Len())
}

func TestColumns(t *testing.T) {
	assert.Equal(t, []string{"Date", "Category", "Amount", "Description"}, Columns)
}
