package summary

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jinzhu/now"

	"github.com/cleared-dev/spendwise/internal/model"
)

// Period names accepted by PeriodStart.
const (
	PeriodAll   = "all"
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

var periodStarts = map[string]func(*now.Now) time.Time{
	PeriodAll:   func(*now.Now) time.Time { return time.Time{} },
	PeriodWeek:  (*now.Now).BeginningOfWeek,
	PeriodMonth: (*now.Now).BeginningOfMonth,
	PeriodYear:  (*now.Now).BeginningOfYear,
}

// Periods lists the supported period names, sorted.
func Periods() []string {
	res := make([]string, 0, len(periodStarts))
	for k := range periodStarts {
		res = append(res, k)
	}
	sort.Strings(res)
	return res
}

// PeriodStart returns the first instant of period relative to t. The zero
// time is returned for "all" and the empty string.
func PeriodStart(period string, t time.Time) (time.Time, error) {
	p := strings.ToLower(strings.TrimSpace(period))
	if p == "" {
		p = PeriodAll
	}
	fn, ok := periodStarts[p]
	if !ok {
		return time.Time{}, fmt.Errorf("report period %q is not supported (want one of %s)", period, strings.Join(Periods(), ", "))
	}
	return fn(now.With(t)), nil
}

// Filter keeps expenses dated on or after since, preserving order.
func Filter(expenses []model.Expense, since time.Time) []model.Expense {
	if since.IsZero() {
		return expenses
	}
	day := time.Date(since.Year(), since.Month(), since.Day(), 0, 0, 0, 0, time.UTC)
	res := make([]model.Expense, 0, len(expenses))
	for _, e := range expenses {
		if !e.Date.Before(day) {
			res = append(res, e)
		}
	}
	return res
}
