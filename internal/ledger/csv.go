package ledger

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/spendwise/internal/model"
)

// Header is the CSV header row of a ledger file.
const Header = "Date,Category,Amount,Description"

const (
	numFields  = 4
	dateFormat = "2006-01-02"
	colDate    = 0
	colCat     = 1
	colAmount  = 2
	colDesc    = 3
)

// Older files written by other tools may carry a time of day.
var dateLayouts = []string{dateFormat, "2006-01-02 15:04:05", time.RFC3339}

// CSVCodec reads and writes the comma-separated ledger format.
type CSVCodec struct{}

// Name returns the format name.
func (CSVCodec) Name() string { return "csv" }

// Ext returns the file extension, including the dot.
func (CSVCodec) Ext() string { return ".csv" }

// Decode reads all expenses from a ledger CSV. Empty input and a lone header
// both yield no expenses.
func (CSVCodec) Decode(r io.Reader) ([]model.Expense, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			return nil, &ParseError{Line: perr.Line, Err: perr.Err}
		}
		return nil, fmt.Errorf("reading ledger CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	if err := checkHeader(records[0]); err != nil {
		return nil, &ParseError{Line: 1, Err: err}
	}

	var expenses []model.Expense
	for i, rec := range records[1:] {
		e, err := UnmarshalExpense(rec)
		if err != nil {
			return nil, &ParseError{Line: i + 2, Err: err}
		}
		expenses = append(expenses, e)
	}
	return expenses, nil
}

// Encode writes the header followed by one row per expense.
func (CSVCodec) Encode(w io.Writer, expenses []model.Expense) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(model.Columns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, e := range expenses {
		if err := cw.Write(MarshalExpense(e)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func checkHeader(rec []string) error {
	got := make([]string, len(rec))
	copy(got, rec)
	if len(got) > 0 {
		got[0] = strings.TrimPrefix(got[0], "\ufeff")
	}
	if strings.Join(got, ",") != Header {
		return fmt.Errorf("unexpected header %q, want %q", strings.Join(rec, ","), Header)
	}
	return nil
}

// MarshalExpense converts an Expense to a CSV row.
func MarshalExpense(e model.Expense) []string {
	row := make([]string, numFields)
	row[colDate] = e.Date.Format(dateFormat)
	row[colCat] = string(e.Category)
	row[colAmount] = formatAmount(e.Amount)
	row[colDesc] = e.Description
	return row
}

// UnmarshalExpense converts a CSV row to an Expense.
func UnmarshalExpense(record []string) (model.Expense, error) {
	if len(record) != numFields {
		return model.Expense{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := parseDate(record[colDate])
	if err != nil {
		return model.Expense{}, err
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(record[colAmount]))
	if err != nil {
		return model.Expense{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	return model.Expense{
		Date:        date,
		Category:    model.Category(record[colCat]),
		Amount:      amount,
		Description: record[colDesc],
	}, nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var firstErr error
	for _, layout := range dateLayouts {
		d, err := time.Parse(layout, s)
		if err == nil {
			y, m, day := d.Date()
			return time.Date(y, m, day, 0, 0, 0, 0, time.UTC), nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, fmt.Errorf("parsing date %q: %w", s, firstErr)
}

// formatAmount keeps two decimals unless the value carries more precision.
func formatAmount(d decimal.Decimal) string {
	if d.Exponent() >= -2 {
		return d.StringFixed(2)
	}
	return d.String()
}
